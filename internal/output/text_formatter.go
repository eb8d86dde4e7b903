package output

import (
	"bytes"
	"fmt"

	"github.com/splitcalc/settlement-calculator/internal/domain"
)

// TextFormatter is the short plain-text summary meant for pasting into a chat.
type TextFormatter struct{}

func (t TextFormatter) Name() string      { return "text" }
func (t TextFormatter) Extension() string { return "txt" }

func (t TextFormatter) Format(results *domain.SettlementReport) ([]byte, error) {
	if results == nil {
		return nil, ErrNilReport
	}
	var buf bytes.Buffer
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		cur := sc.Currency
		fmt.Fprintf(&buf, "%s (total %s)\n", sc.Name, FormatCurrency(sc.TotalCost+sc.TaxTip, cur))
		for _, b := range sc.Balances {
			fmt.Fprintf(&buf, "- %s: share %s, paid %s, %s %s\n",
				b.Person.Label(), FormatCurrency(b.Owed, cur), FormatCurrency(b.Paid, cur),
				balanceStatus(b.Net), FormatCurrency(b.Net.Abs(), cur))
		}
		if len(sc.Transfers) == 0 {
			fmt.Fprintln(&buf, "Nothing to settle.")
			continue
		}
		for _, tr := range sc.Transfers {
			fmt.Fprintf(&buf, "%s → %s: %s\n", tr.From.Label(), tr.To.Label(), FormatCurrency(tr.Amount, cur))
		}
	}
	return buf.Bytes(), nil
}
