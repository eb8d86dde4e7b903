package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/splitcalc/settlement-calculator/internal/domain"
)

// ConsoleFormatter prints a human readable settlement summary per scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.SettlementReport) ([]byte, error) {
	if results == nil {
		return nil, ErrNilReport
	}
	var buf bytes.Buffer
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		cur := sc.Currency
		title := strings.ToUpper(sc.Name)
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", max(len(title), 32)))
		fmt.Fprintf(&buf, "Expenses: %s", FormatCurrency(sc.TotalCost, cur))
		if sc.TaxTip > 0 {
			fmt.Fprintf(&buf, "  Tax/tip: %s", FormatCurrency(sc.TaxTip, cur))
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf)

		fmt.Fprintf(&buf, "%-20s %12s %12s %12s\n", "Person", "Share", "Paid", "Net")
		for _, b := range sc.Balances {
			fmt.Fprintf(&buf, "%-20s %12s %12s %12s\n",
				truncate(b.Person.Label(), 20),
				FormatCurrency(b.Owed, cur),
				FormatCurrency(b.Paid, cur),
				FormatSigned(b.Net, cur),
			)
		}
		if sc.Correction != nil {
			fmt.Fprintf(&buf, "(rounding: %s adjusted by %s)\n", personName(sc, sc.Correction.Person), FormatSigned(-sc.Correction.Amount, cur))
		}

		fmt.Fprintln(&buf)
		if len(sc.Transfers) == 0 {
			fmt.Fprintln(&buf, "Everyone is settled up.")
		} else {
			fmt.Fprintln(&buf, "Settle up:")
			for _, t := range sc.Transfers {
				fmt.Fprintf(&buf, "  %s pays %s %s\n", t.From.Label(), t.To.Label(), FormatCurrency(t.Amount, cur))
			}
		}

		if len(sc.Warnings) > 0 {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, "Warnings:")
			for _, w := range sc.Warnings {
				fmt.Fprintf(&buf, "  ! %s\n", warningText(w))
			}
		}
	}
	return buf.Bytes(), nil
}

func warningText(w domain.Warning) string {
	if w.Expense == "" {
		return w.Message
	}
	return w.Expense + ": " + w.Message
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
