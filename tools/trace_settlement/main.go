package main

import (
	"fmt"
	"os"

	calc "github.com/splitcalc/settlement-calculator/internal/calculation"
	"github.com/splitcalc/settlement-calculator/internal/config"
	"github.com/splitcalc/settlement-calculator/internal/domain"
)

// trace_settlement dumps every intermediate ledger of each scenario as CSV,
// one row per person, followed by the transfers in settlement order.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: trace_settlement <scenario-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	fmt.Println("Scenario,Step,Person,Owed,Subtotal,TaxTip,Paid,Sent,Received,Net")
	for _, s := range cfg.Scenarios {
		owed := calc.ComputeOwed(s)
		paid, _ := calc.ComputePaid(s)
		balances, correction, _ := calc.NetBalances(s.People, owed.Owed, paid, s.Payments)

		for _, b := range balances {
			id := b.Person.ID
			fmt.Printf("%q,balance,%s,%s,%s,%s,%s,%s,%s,%s\n", s.Name, b.Person.Label(),
				owed.Owed[id], owed.Subtotals[id], owed.TaxTip[id], paid[id],
				b.PaymentsSent, b.PaymentsReceived, b.Net)
		}
		if correction != nil {
			fmt.Printf("%q,correction,%s,,,,,,,%s\n", s.Name, name(s, correction.Person), correction.Amount)
		}
		for i, t := range calc.Settle(balances) {
			fmt.Printf("%q,transfer %d,%s -> %s,,,,,,,%s\n", s.Name, i+1, t.From.Label(), t.To.Label(), t.Amount)
		}
	}
}

func name(s domain.Scenario, id domain.PersonID) string {
	if p, ok := s.Person(id); ok {
		return p.Label()
	}
	return string(id)
}
