package domain

import "github.com/splitcalc/settlement-calculator/pkg/money"

// Ledger maps each roster member to an amount in cents.
type Ledger map[PersonID]money.Cents

// Total sums every entry.
func (l Ledger) Total() money.Cents {
	var total money.Cents
	for _, c := range l {
		total += c
	}
	return total
}

// NetBalance is one person's position after all expenses and recorded payments.
// Net is positive for creditors and negative for debtors.
type NetBalance struct {
	Person           Person      `json:"person"`
	Owed             money.Cents `json:"owed"`
	Paid             money.Cents `json:"paid"`
	PaymentsSent     money.Cents `json:"payments_sent"`
	PaymentsReceived money.Cents `json:"payments_received"`
	Net              money.Cents `json:"net"`
}

// Transfer is one settlement instruction: From pays To the given amount.
type Transfer struct {
	From   Person      `json:"from"`
	To     Person      `json:"to"`
	Amount money.Cents `json:"amount"`
}

// Correction records the rounding imbalance removed from one person's net balance.
type Correction struct {
	Person PersonID    `json:"person"`
	Amount money.Cents `json:"amount"`
}

// Warning is a non-blocking validation message produced during a calculation.
type Warning struct {
	Expense string `json:"expense,omitempty"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ScenarioResult is the output of one settlement calculation.
type ScenarioResult struct {
	Name       string       `json:"name"`
	Kind       ScenarioKind `json:"kind"`
	Currency   string       `json:"currency"`
	TotalCost  money.Cents  `json:"total_cost"`
	TaxTip     money.Cents  `json:"tax_tip"`
	Owed       Ledger       `json:"owed"`
	Paid       Ledger       `json:"paid"`
	Balances   []NetBalance `json:"balances"`
	Transfers  []Transfer   `json:"transfers"`
	Correction *Correction  `json:"correction,omitempty"`
	Warnings   []Warning    `json:"warnings,omitempty"`
}

// Balance returns the net balance entry for id.
func (r ScenarioResult) Balance(id PersonID) (NetBalance, bool) {
	for _, b := range r.Balances {
		if b.Person.ID == id {
			return b, true
		}
	}
	return NetBalance{}, false
}

// SettlementReport collects the results for every scenario in a configuration.
type SettlementReport struct {
	Scenarios []ScenarioResult `json:"scenarios"`
}
