package output

import (
	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// FormatCurrency formats cents with the given symbol, e.g. "$33.34" or "-$5.00".
func FormatCurrency(amount money.Cents, symbol string) string { return amount.Format(symbol) }

// FormatSigned is FormatCurrency with an explicit plus sign for positive amounts.
func FormatSigned(amount money.Cents, symbol string) string {
	if amount > 0 {
		return "+" + amount.Format(symbol)
	}
	return amount.Format(symbol)
}

// balanceStatus describes a net balance in words.
func balanceStatus(net money.Cents) string {
	switch {
	case net > 0:
		return "gets back"
	case net < 0:
		return "owes"
	default:
		return "settled"
	}
}

func personName(results domain.ScenarioResult, id domain.PersonID) string {
	if b, ok := results.Balance(id); ok {
		return b.Person.Label()
	}
	return string(id)
}
