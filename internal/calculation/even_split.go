package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// EvenSplitInput is the quick "split the bill N ways" calculator.
type EvenSplitInput struct {
	Bill       decimal.Decimal
	TipPercent decimal.Decimal
	People     int
}

// EvenSplitResult lists the seat shares, largest first. The first Remainder
// seats carry one extra cent.
type EvenSplitResult struct {
	Bill      money.Cents   `json:"bill"`
	Tip       money.Cents   `json:"tip"`
	Total     money.Cents   `json:"total"`
	People    int           `json:"people"`
	Base      money.Cents   `json:"base"`
	Remainder int           `json:"remainder"`
	Shares    []money.Cents `json:"shares"`
}

// EvenSplit adds an optional percentage tip to the bill and splits the total
// across People seats. Negative amounts count as zero and fewer than one
// person counts as one.
func EvenSplit(in EvenSplitInput) EvenSplitResult {
	people := in.People
	if people < 1 {
		people = 1
	}
	bill := money.FromDecimal(in.Bill)
	var tip money.Cents
	if in.TipPercent.IsPositive() {
		tip = money.FromDecimal(bill.Decimal().Mul(in.TipPercent).Div(decimal.NewFromInt(100)))
	}
	total := bill + tip
	shares := splitCount(total, people)
	base := total / money.Cents(people)
	return EvenSplitResult{
		Bill:      bill,
		Tip:       tip,
		Total:     total,
		People:    people,
		Base:      base,
		Remainder: int(total - base*money.Cents(people)),
		Shares:    shares,
	}
}
