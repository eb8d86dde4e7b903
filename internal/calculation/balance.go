package calculation

import (
	"fmt"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// NetBalances computes paid − owed for every roster member, applies recorded
// payments, and forces the result to sum to zero. Any imbalance left by
// independent rounding (or by explicit payer amounts that do not match their
// expense) is subtracted from the person with the largest absolute balance;
// ties go to the earliest roster entry. The returned Correction is nil when
// no adjustment was needed.
func NetBalances(people []domain.Person, owed, paid domain.Ledger, payments []domain.Payment) ([]domain.NetBalance, *domain.Correction, []domain.Warning) {
	balances := make([]domain.NetBalance, len(people))
	index := make(map[domain.PersonID]int, len(people))
	for i, p := range people {
		index[p.ID] = i
		balances[i] = domain.NetBalance{Person: p, Owed: owed[p.ID], Paid: paid[p.ID]}
	}

	var warnings []domain.Warning
	for i, pm := range payments {
		from, okFrom := index[pm.From]
		to, okTo := index[pm.To]
		switch {
		case !okFrom || !okTo:
			warnings = append(warnings, domain.Warning{Index: i, Message: fmt.Sprintf("payment %d references unknown person; ignored", i+1)})
			continue
		case pm.Amount <= 0 || pm.From == pm.To:
			continue
		}
		balances[from].PaymentsSent += pm.Amount
		balances[to].PaymentsReceived += pm.Amount
	}

	var sum money.Cents
	for i := range balances {
		b := &balances[i]
		b.Net = b.Paid - b.Owed + b.PaymentsSent - b.PaymentsReceived
		sum += b.Net
	}
	if sum == 0 || len(balances) == 0 {
		return balances, nil, warnings
	}

	largest := 0
	for i := range balances {
		if balances[i].Net.Abs() > balances[largest].Net.Abs() {
			largest = i
		}
	}
	balances[largest].Net -= sum
	return balances, &domain.Correction{Person: balances[largest].Person.ID, Amount: sum}, warnings
}
