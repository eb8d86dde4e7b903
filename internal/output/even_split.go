package output

import (
	"bytes"
	"fmt"

	calc "github.com/splitcalc/settlement-calculator/internal/calculation"
)

// FormatEvenSplit renders the quick even-split result. Seats that absorb the
// leftover cent are marked.
func FormatEvenSplit(res calc.EvenSplitResult, symbol string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Bill:  %s\n", FormatCurrency(res.Bill, symbol))
	if res.Tip > 0 {
		fmt.Fprintf(&buf, "Tip:   %s\n", FormatCurrency(res.Tip, symbol))
	}
	fmt.Fprintf(&buf, "Total: %s\n", FormatCurrency(res.Total, symbol))
	fmt.Fprintf(&buf, "Each of %d pays %s", res.People, FormatCurrency(res.Base, symbol))
	if res.Remainder > 0 {
		fmt.Fprintf(&buf, " (%d pay %s to cover the leftover cents)", res.Remainder, FormatCurrency(res.Base+1, symbol))
	}
	fmt.Fprintln(&buf)
	for i, s := range res.Shares {
		marker := ""
		if i < res.Remainder {
			marker = " *"
		}
		fmt.Fprintf(&buf, "  Person %d: %s%s\n", i+1, FormatCurrency(s, symbol), marker)
	}
	return buf.Bytes()
}
