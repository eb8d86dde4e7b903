package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// DistributeEvenly splits total across participants so the shares sum exactly
// to total. Everyone gets floor(total/n); the first total mod n participants,
// in the order given, get one extra cent. An empty participant list yields an
// empty map. A participant listed twice receives both shares.
func DistributeEvenly(total money.Cents, participants []domain.PersonID) map[domain.PersonID]money.Cents {
	shares := make(map[domain.PersonID]money.Cents, len(participants))
	for i, c := range splitCount(total, len(participants)) {
		shares[participants[i]] += c
	}
	return shares
}

// splitCount returns n shares of total, largest first, differing by at most one cent.
func splitCount(total money.Cents, n int) []money.Cents {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	base := total / money.Cents(n)
	remainder := int(total - base*money.Cents(n))
	shares := make([]money.Cents, n)
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}

// Weight is one recipient of a proportional allocation.
type Weight struct {
	Person domain.PersonID
	Weight money.Cents
}

// AllocateProportional splits total in proportion to the weights using the
// largest-remainder method: each recipient gets the floor of their exact
// share, then the leftover cents go one each to the recipients with the
// largest fractional remainders. Equal remainders keep the order of weights.
// A zero or negative weight sum yields nil.
func AllocateProportional(total money.Cents, weights []Weight) map[domain.PersonID]money.Cents {
	var sum int64
	for _, w := range weights {
		if w.Weight > 0 {
			sum += int64(w.Weight)
		}
	}
	if sum == 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}

	type part struct {
		idx  int
		frac decimal.Decimal // remainder of total×weight over sum
	}
	divisor := decimal.NewFromInt(sum)
	alloc := make(map[domain.PersonID]money.Cents, len(weights))
	parts := make([]part, 0, len(weights))
	var allocated money.Cents
	for i, w := range weights {
		weight := int64(w.Weight)
		if weight < 0 {
			weight = 0
		}
		// total×weight can pass int64 for large bills, so the division is exact decimal.
		q, r := decimal.NewFromInt(int64(total)).Mul(decimal.NewFromInt(weight)).QuoRem(divisor, 0)
		floor := money.Cents(q.IntPart())
		alloc[w.Person] += floor
		allocated += floor
		parts = append(parts, part{idx: i, frac: r})
	}

	sort.SliceStable(parts, func(i, j int) bool { return parts[i].frac.GreaterThan(parts[j].frac) })
	for k, left := 0, total-allocated; left > 0 && k < len(parts); left, k = left-1, k+1 {
		alloc[weights[parts[k].idx].Person]++
	}
	return alloc
}
