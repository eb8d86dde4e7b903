package calculation

import (
	"sort"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

type party struct {
	person    domain.Person
	remaining money.Cents
}

// Settle reduces zero-sum net balances to a list of transfers using greedy
// matching: the largest remaining debtor pays the largest remaining creditor
// the smaller of the two amounts until one side runs out. Equal magnitudes
// keep the order of balances. The result has at most (non-zero balances − 1)
// transfers; it is not guaranteed to be the global minimum.
func Settle(balances []domain.NetBalance) []domain.Transfer {
	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Net > 0:
			creditors = append(creditors, party{person: b.Person, remaining: b.Net})
		case b.Net < 0:
			debtors = append(debtors, party{person: b.Person, remaining: -b.Net})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].remaining > creditors[j].remaining })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].remaining > debtors[j].remaining })

	transfers := make([]domain.Transfer, 0)
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]
		amount := money.Min(d.remaining, c.remaining)
		if amount > 0 {
			transfers = append(transfers, domain.Transfer{From: d.person, To: c.person, Amount: amount})
		}
		d.remaining -= amount
		c.remaining -= amount
		if d.remaining == 0 {
			i++
		}
		if c.remaining == 0 {
			j++
		}
	}
	return transfers
}
