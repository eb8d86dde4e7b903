package calculation

import (
	"fmt"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// ComputePaid builds the paid ledger from each expense's payer allocation.
// Explicit amounts are credited as entered, even when they do not add up to
// the expense total; such mismatches are reported as warnings only.
// EvenlyAmong splits the expense total across the payers in list order.
func ComputePaid(s domain.Scenario) (domain.Ledger, []domain.Warning) {
	paid := zeroLedger(s.People)
	var warnings []domain.Warning

	for i, e := range s.Expenses {
		total := e.TotalCents()
		warnings = append(warnings, creditPayers(s, paid, e.Payers, total, i, e.Name)...)
	}

	if total, _, ok := taxTipCharge(s); ok {
		warnings = append(warnings, creditPayers(s, paid, s.TaxTip.Payers, total, -1, "tax/tip")...)
	}
	return paid, warnings
}

func creditPayers(s domain.Scenario, paid domain.Ledger, alloc domain.PayerAllocation, total money.Cents, index int, name string) []domain.Warning {
	var warnings []domain.Warning
	switch a := alloc.(type) {
	case domain.Explicit:
		var entered money.Cents
		for _, id := range a.Payers() {
			c := a.Amounts[id]
			if c < 0 {
				c = 0
			}
			if !s.HasPerson(id) {
				warnings = append(warnings, domain.Warning{Expense: name, Index: index, Message: fmt.Sprintf("unknown payer %q ignored", id)})
				continue
			}
			paid[id] += c
			entered += c
		}
		if entered != total {
			warnings = append(warnings, domain.Warning{
				Expense: name,
				Index:   index,
				Message: fmt.Sprintf("payer amounts total %s but cost is %s", entered, total),
			})
		}
	case domain.EvenlyAmong:
		payers, w := resolvePeople(s, a.People, index, name, "payer")
		warnings = append(warnings, w...)
		if len(payers) == 0 {
			if total > 0 {
				warnings = append(warnings, domain.Warning{Expense: name, Index: index, Message: "no payers selected"})
			}
			return warnings
		}
		for id, c := range DistributeEvenly(total, payers) {
			paid[id] += c
		}
	default:
		if total > 0 {
			warnings = append(warnings, domain.Warning{Expense: name, Index: index, Message: "no payers selected"})
		}
	}
	return warnings
}
