package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// ScenarioKind selects the calculator a scenario came from.
type ScenarioKind string

const (
	ScenarioRestaurant ScenarioKind = "restaurant"
	ScenarioGroup      ScenarioKind = "group"
	ScenarioLodging    ScenarioKind = "lodging"
	ScenarioShared     ScenarioKind = "shared"
)

// ValidScenarioKinds lists the accepted scenario kinds.
var ValidScenarioKinds = []ScenarioKind{ScenarioRestaurant, ScenarioGroup, ScenarioLodging, ScenarioShared}

// TaxTipMode selects how a restaurant tax/tip charge is spread.
type TaxTipMode string

const (
	// TaxTipEqual splits the charge evenly across the whole roster.
	TaxTipEqual TaxTipMode = "equal"
	// TaxTipProportional splits the charge by each person's item subtotal.
	TaxTipProportional TaxTipMode = "proportional"
)

// TaxTip is an extra charge on a restaurant bill.
type TaxTip struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   TaxTipMode      `json:"mode"`
	Payers PayerAllocation `json:"-"`
}

// Payment is a transfer that already happened between two roster members.
type Payment struct {
	From   PersonID    `json:"from"`
	To     PersonID    `json:"to"`
	Amount money.Cents `json:"amount"`
	Note   string      `json:"note,omitempty"`
}

// Scenario is the complete input to one settlement calculation. Editing
// methods return a new Scenario and leave the receiver untouched.
type Scenario struct {
	Name     string       `json:"name"`
	Kind     ScenarioKind `json:"kind"`
	Currency string       `json:"currency"`
	People   []Person     `json:"people"`
	Expenses []Expense    `json:"expenses"`
	TaxTip   *TaxTip      `json:"tax_tip,omitempty"`
	Payments []Payment    `json:"payments,omitempty"`
}

// Configuration is a set of independent scenarios loaded from one input file.
type Configuration struct {
	Scenarios []Scenario `json:"scenarios"`
}

// Person looks up a roster member by ID.
func (s Scenario) Person(id PersonID) (Person, bool) {
	for _, p := range s.People {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// HasPerson reports whether id is on the roster.
func (s Scenario) HasPerson(id PersonID) bool {
	_, ok := s.Person(id)
	return ok
}

// AddPerson appends a new person with a freshly generated ID and returns the
// new scenario together with that ID.
func (s Scenario) AddPerson(name string) (Scenario, PersonID) {
	id := PersonID(uuid.NewString())
	return s.WithPerson(Person{ID: id, Name: name}), id
}

// WithPerson appends p to the roster, or replaces the entry with the same ID in place.
func (s Scenario) WithPerson(p Person) Scenario {
	out := s.Clone()
	for i := range out.People {
		if out.People[i].ID == p.ID {
			out.People[i] = p
			return out
		}
	}
	out.People = append(out.People, p)
	return out
}

// RenamePerson changes a display name. Unknown IDs leave the scenario unchanged.
func (s Scenario) RenamePerson(id PersonID, name string) Scenario {
	p, ok := s.Person(id)
	if !ok {
		return s.Clone()
	}
	p.Name = name
	return s.WithPerson(p)
}

// RemovePerson drops a person from the roster and from every expense,
// payer allocation, tax/tip allocation and recorded payment that mentions them.
func (s Scenario) RemovePerson(id PersonID) Scenario {
	out := s.Clone()
	people := out.People[:0]
	for _, p := range out.People {
		if p.ID != id {
			people = append(people, p)
		}
	}
	out.People = people

	for i := range out.Expenses {
		out.Expenses[i].Participants = removeID(out.Expenses[i].Participants, id)
		out.Expenses[i].Payers = withoutPerson(out.Expenses[i].Payers, id)
	}
	if out.TaxTip != nil {
		out.TaxTip.Payers = withoutPerson(out.TaxTip.Payers, id)
	}
	payments := out.Payments[:0]
	for _, pm := range out.Payments {
		if pm.From != id && pm.To != id {
			payments = append(payments, pm)
		}
	}
	out.Payments = payments
	return out
}

// AddExpense appends an expense.
func (s Scenario) AddExpense(e Expense) Scenario {
	out := s.Clone()
	out.Expenses = append(out.Expenses, cloneExpense(e))
	return out
}

// RemoveExpense drops the expense at index i. Out of range indexes are ignored.
func (s Scenario) RemoveExpense(i int) Scenario {
	out := s.Clone()
	if i < 0 || i >= len(out.Expenses) {
		return out
	}
	out.Expenses = append(out.Expenses[:i], out.Expenses[i+1:]...)
	return out
}

// WithTaxTip sets or clears (nil) the tax/tip charge.
func (s Scenario) WithTaxTip(t *TaxTip) Scenario {
	out := s.Clone()
	if t == nil {
		out.TaxTip = nil
		return out
	}
	tt := *t
	tt.Payers = clonePayers(t.Payers)
	out.TaxTip = &tt
	return out
}

// AddPayment records a transfer that already happened.
func (s Scenario) AddPayment(p Payment) Scenario {
	out := s.Clone()
	out.Payments = append(out.Payments, p)
	return out
}

// Clone returns a deep copy.
func (s Scenario) Clone() Scenario {
	out := s
	out.People = append([]Person(nil), s.People...)
	if s.Expenses != nil {
		out.Expenses = make([]Expense, len(s.Expenses))
		for i, e := range s.Expenses {
			out.Expenses[i] = cloneExpense(e)
		}
	}
	if s.TaxTip != nil {
		tt := *s.TaxTip
		tt.Payers = clonePayers(s.TaxTip.Payers)
		out.TaxTip = &tt
	}
	out.Payments = append([]Payment(nil), s.Payments...)
	return out
}

func cloneExpense(e Expense) Expense {
	e.Participants = append([]PersonID(nil), e.Participants...)
	e.Payers = clonePayers(e.Payers)
	return e
}
