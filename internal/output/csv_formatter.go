package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/splitcalc/settlement-calculator/internal/domain"
)

// CSVFormatter writes one row per balance and one row per transfer.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(results *domain.SettlementReport) ([]byte, error) {
	if results == nil {
		return nil, ErrNilReport
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Row", "Person", "Counterparty", "Owed", "Paid", "PaymentsSent", "PaymentsReceived", "Net", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, b := range sc.Balances {
			row := []string{
				sc.Name,
				"balance",
				b.Person.Label(),
				"",
				b.Owed.String(),
				b.Paid.String(),
				b.PaymentsSent.String(),
				b.PaymentsReceived.String(),
				b.Net.String(),
				"",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		for i, t := range sc.Transfers {
			row := []string{sc.Name, "transfer " + strconv.Itoa(i+1), t.From.Label(), t.To.Label(), "", "", "", "", "", t.Amount.String()}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
