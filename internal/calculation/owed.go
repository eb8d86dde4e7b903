package calculation

import (
	"fmt"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// OwedBreakdown is the owed ledger together with the pieces it was built from.
type OwedBreakdown struct {
	Owed      domain.Ledger // expense shares plus tax/tip
	Subtotals domain.Ledger // expense shares only
	TaxTip    domain.Ledger // tax/tip shares only
	Expenses  money.Cents   // total cost of the expenses that were shared out
	TaxTipSum money.Cents
	Warnings  []domain.Warning
}

// ComputeOwed builds the owed ledger: every expense with a non-zero total and
// at least one participant is split evenly across its participants, then a
// restaurant tax/tip charge is spread across the roster. Every roster member
// appears in the result, zero if inactive.
func ComputeOwed(s domain.Scenario) OwedBreakdown {
	b := OwedBreakdown{
		Owed:      zeroLedger(s.People),
		Subtotals: zeroLedger(s.People),
		TaxTip:    zeroLedger(s.People),
	}

	for i, e := range s.Expenses {
		participants, warnings := resolvePeople(s, e.Participants, i, e.Name, "participant")
		b.Warnings = append(b.Warnings, warnings...)
		if len(participants) == 0 {
			b.Warnings = append(b.Warnings, domain.Warning{Expense: e.Name, Index: i, Message: "no participants selected; expense excluded from shares"})
			continue
		}
		total := e.TotalCents()
		if total == 0 {
			continue
		}
		for id, c := range DistributeEvenly(total, participants) {
			b.Subtotals[id] += c
			b.Owed[id] += c
		}
		b.Expenses += total
	}

	total, mode, ok := taxTipCharge(s)
	if !ok {
		if s.TaxTip != nil && s.Kind != domain.ScenarioRestaurant && s.TaxTip.Amount.IsPositive() {
			b.Warnings = append(b.Warnings, domain.Warning{Index: -1, Message: fmt.Sprintf("tax/tip applies to restaurant scenarios only; ignored for %q", s.Kind)})
		}
		return b
	}

	var shares map[domain.PersonID]money.Cents
	if mode == domain.TaxTipProportional {
		weights := make([]Weight, 0, len(s.People))
		for _, p := range s.People {
			weights = append(weights, Weight{Person: p.ID, Weight: b.Subtotals[p.ID]})
		}
		shares = AllocateProportional(total, weights)
		if shares == nil {
			b.Warnings = append(b.Warnings, domain.Warning{Index: -1, Message: "no item subtotals to weight tax/tip; split equally"})
		}
	}
	if shares == nil {
		shares = DistributeEvenly(total, rosterIDs(s.People))
	}
	for id, c := range shares {
		b.TaxTip[id] += c
		b.Owed[id] += c
	}
	b.TaxTipSum = total
	return b
}

// taxTipCharge returns the tax/tip total in cents when it applies to s.
func taxTipCharge(s domain.Scenario) (money.Cents, domain.TaxTipMode, bool) {
	if s.TaxTip == nil || s.Kind != domain.ScenarioRestaurant || len(s.People) == 0 {
		return 0, "", false
	}
	total := money.FromDecimal(s.TaxTip.Amount)
	if total == 0 {
		return 0, "", false
	}
	mode := s.TaxTip.Mode
	if mode == "" {
		mode = domain.TaxTipEqual
	}
	return total, mode, true
}

// resolvePeople drops IDs that are not on the roster and repeated IDs,
// keeping first-seen order.
func resolvePeople(s domain.Scenario, ids []domain.PersonID, index int, expense, role string) ([]domain.PersonID, []domain.Warning) {
	var warnings []domain.Warning
	out := make([]domain.PersonID, 0, len(ids))
	seen := make(map[domain.PersonID]bool, len(ids))
	for _, id := range ids {
		if !s.HasPerson(id) {
			warnings = append(warnings, domain.Warning{Expense: expense, Index: index, Message: fmt.Sprintf("unknown %s %q ignored", role, id)})
			continue
		}
		if seen[id] {
			warnings = append(warnings, domain.Warning{Expense: expense, Index: index, Message: fmt.Sprintf("duplicate %s %q ignored", role, id)})
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, warnings
}

func zeroLedger(people []domain.Person) domain.Ledger {
	l := make(domain.Ledger, len(people))
	for _, p := range people {
		l[p.ID] = 0
	}
	return l
}

func rosterIDs(people []domain.Person) []domain.PersonID {
	ids := make([]domain.PersonID, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	return ids
}
