package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitcalc/settlement-calculator/pkg/money"
)

func sampleScenario() Scenario {
	return Scenario{
		Name: "Dinner",
		Kind: ScenarioRestaurant,
		People: []Person{
			{ID: "a", Name: "Ann"},
			{ID: "b", Name: "Ben"},
			{ID: "c", Name: "Cat"},
		},
		Expenses: []Expense{
			{
				Name:         "Pizza",
				Amount:       decimal.NewFromInt(30),
				Participants: []PersonID{"a", "b", "c"},
				Payers:       EvenlyAmong{People: []PersonID{"a", "b"}},
			},
			{
				Name:         "Wine",
				Amount:       decimal.NewFromInt(20),
				Participants: []PersonID{"b", "c"},
				Payers:       Explicit{Amounts: map[PersonID]money.Cents{"c": 2000}},
			},
		},
		TaxTip: &TaxTip{
			Amount: decimal.NewFromInt(5),
			Mode:   TaxTipEqual,
			Payers: EvenlyAmong{People: []PersonID{"c"}},
		},
		Payments: []Payment{{From: "b", To: "c", Amount: 500}, {From: "a", To: "b", Amount: 100}},
	}
}

func TestRemovePersonCascades(t *testing.T) {
	s := sampleScenario()
	out := s.RemovePerson("c")

	assert.Len(t, out.People, 2)
	assert.False(t, out.HasPerson("c"))
	assert.Equal(t, []PersonID{"a", "b"}, out.Expenses[0].Participants)
	assert.Equal(t, []PersonID{"b"}, out.Expenses[1].Participants)
	assert.Empty(t, out.Expenses[1].Payers.(Explicit).Amounts)
	assert.Empty(t, out.TaxTip.Payers.Payers())
	require.Len(t, out.Payments, 1)
	assert.Equal(t, PersonID("a"), out.Payments[0].From)

	// original untouched
	assert.Len(t, s.People, 3)
	assert.Equal(t, []PersonID{"a", "b", "c"}, s.Expenses[0].Participants)
	assert.Equal(t, money.Cents(2000), s.Expenses[1].Payers.(Explicit).Amounts["c"])
	assert.Equal(t, []PersonID{"c"}, s.TaxTip.Payers.Payers())
	assert.Len(t, s.Payments, 2)
}

func TestAddPersonGeneratesUniqueIDs(t *testing.T) {
	s := Scenario{}
	s1, id1 := s.AddPerson("Ann")
	s2, id2 := s1.AddPerson("Ann")

	assert.NotEqual(t, id1, id2)
	assert.Empty(t, s.People)
	assert.Len(t, s1.People, 1)
	assert.Len(t, s2.People, 2)
	assert.Equal(t, id1, s2.People[0].ID)
}

func TestWithPersonAndRename(t *testing.T) {
	s := sampleScenario()
	renamed := s.RenamePerson("b", "Benjamin")
	p, ok := renamed.Person("b")
	require.True(t, ok)
	assert.Equal(t, "Benjamin", p.Name)
	assert.Equal(t, PersonID("b"), renamed.People[1].ID, "rename keeps roster position")

	orig, _ := s.Person("b")
	assert.Equal(t, "Ben", orig.Name)

	unchanged := s.RenamePerson("zzz", "Nobody")
	assert.Equal(t, s, unchanged)
}

func TestExpenseEditing(t *testing.T) {
	s := sampleScenario()
	added := s.AddExpense(Expense{Name: "Dessert", Amount: decimal.NewFromInt(9), Participants: []PersonID{"a"}})
	assert.Len(t, added.Expenses, 3)
	assert.Len(t, s.Expenses, 2)

	removed := added.RemoveExpense(0)
	require.Len(t, removed.Expenses, 2)
	assert.Equal(t, "Wine", removed.Expenses[0].Name)
	assert.Len(t, added.Expenses, 3)
	assert.Equal(t, "Pizza", added.Expenses[0].Name)

	assert.Equal(t, s, s.RemoveExpense(10))
}

func TestWithTaxTipAndPayment(t *testing.T) {
	s := sampleScenario()
	cleared := s.WithTaxTip(nil)
	assert.Nil(t, cleared.TaxTip)
	assert.NotNil(t, s.TaxTip)

	tt := &TaxTip{Amount: decimal.NewFromInt(3), Mode: TaxTipProportional}
	set := s.WithTaxTip(tt)
	tt.Mode = TaxTipEqual
	assert.Equal(t, TaxTipProportional, set.TaxTip.Mode)

	paid := s.AddPayment(Payment{From: "c", To: "a", Amount: 1})
	assert.Len(t, paid.Payments, 3)
	assert.Len(t, s.Payments, 2)
}

func TestLedgerTotal(t *testing.T) {
	l := Ledger{"a": 3334, "b": 3333, "c": 3333}
	assert.Equal(t, money.Cents(10000), l.Total())
	assert.Equal(t, money.Cents(0), Ledger{}.Total())
}
