package domain

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// ExpenseKind labels where an expense came from. The engine treats all kinds alike.
type ExpenseKind string

const (
	KindRestaurantItem ExpenseKind = "restaurant_item"
	KindGroupExpense   ExpenseKind = "group_expense"
	KindLodgingItem    ExpenseKind = "lodging_item"
	KindSharedItem     ExpenseKind = "shared_item"
)

// Expense is a single shared cost.
type Expense struct {
	Name         string          `json:"name"`
	Kind         ExpenseKind     `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     int             `json:"quantity"`
	Participants []PersonID      `json:"participants"`
	Payers       PayerAllocation `json:"-"`
}

// EffectiveQuantity returns the quantity multiplier, treating non-positive values as one.
func (e Expense) EffectiveQuantity() int {
	if e.Quantity <= 0 {
		return 1
	}
	return e.Quantity
}

// TotalCents is amount × quantity rounded half up to whole cents.
// Negative amounts count as zero.
func (e Expense) TotalCents() money.Cents {
	if e.Amount.IsNegative() {
		return 0
	}
	return money.FromDecimal(e.Amount.Mul(decimal.NewFromInt(int64(e.EffectiveQuantity()))))
}

// PayerAllocation records who paid for an expense. It is either EvenlyAmong
// or Explicit; a nil allocation means nobody is recorded as paying.
type PayerAllocation interface {
	// Payers lists the people credited by the allocation in a stable order.
	Payers() []PersonID
	isPayerAllocation()
}

// EvenlyAmong splits the expense total evenly among the listed payers, in list order.
type EvenlyAmong struct {
	People []PersonID `json:"people"`
}

func (a EvenlyAmong) Payers() []PersonID { return append([]PersonID(nil), a.People...) }
func (EvenlyAmong) isPayerAllocation()   {}

// Explicit credits each payer exactly the amount they entered. The amounts
// are taken at face value and are not reconciled against the expense total.
type Explicit struct {
	Amounts map[PersonID]money.Cents `json:"amounts"`
}

// Payers returns the payer IDs sorted lexically.
func (a Explicit) Payers() []PersonID {
	ids := make([]PersonID, 0, len(a.Amounts))
	for id := range a.Amounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Total is the sum of the entered amounts.
func (a Explicit) Total() money.Cents {
	var total money.Cents
	for _, c := range a.Amounts {
		total += c
	}
	return total
}

func (Explicit) isPayerAllocation() {}

// PayerEntry is a payer as captured by an input form: a checked person with
// an optional typed amount.
type PayerEntry struct {
	Person PersonID
	Amount decimal.Decimal
}

// NewPayerAllocation applies the input-form convention: when any entered
// amount is positive the allocation is Explicit (blank amounts credit zero);
// when nothing was typed the expense is split evenly among the checked payers.
// No entries yields nil.
func NewPayerAllocation(entries []PayerEntry) PayerAllocation {
	if len(entries) == 0 {
		return nil
	}
	amounts := make(map[PersonID]money.Cents, len(entries))
	var total money.Cents
	for _, e := range entries {
		c := money.FromDecimal(e.Amount)
		amounts[e.Person] += c
		total += c
	}
	if total > 0 {
		return Explicit{Amounts: amounts}
	}
	people := make([]PersonID, 0, len(entries))
	seen := make(map[PersonID]bool, len(entries))
	for _, e := range entries {
		if seen[e.Person] {
			continue
		}
		seen[e.Person] = true
		people = append(people, e.Person)
	}
	return EvenlyAmong{People: people}
}

// withoutPerson returns a copy of the allocation with id removed.
func withoutPerson(a PayerAllocation, id PersonID) PayerAllocation {
	switch v := a.(type) {
	case EvenlyAmong:
		return EvenlyAmong{People: removeID(v.People, id)}
	case Explicit:
		amounts := make(map[PersonID]money.Cents, len(v.Amounts))
		for p, c := range v.Amounts {
			if p != id {
				amounts[p] = c
			}
		}
		return Explicit{Amounts: amounts}
	default:
		return a
	}
}

func clonePayers(a PayerAllocation) PayerAllocation {
	switch v := a.(type) {
	case EvenlyAmong:
		return EvenlyAmong{People: append([]PersonID(nil), v.People...)}
	case Explicit:
		amounts := make(map[PersonID]money.Cents, len(v.Amounts))
		for p, c := range v.Amounts {
			amounts[p] = c
		}
		return Explicit{Amounts: amounts}
	default:
		return a
	}
}

func removeID(ids []PersonID, id PersonID) []PersonID {
	out := make([]PersonID, 0, len(ids))
	for _, p := range ids {
		if p != id {
			out = append(out, p)
		}
	}
	return out
}
