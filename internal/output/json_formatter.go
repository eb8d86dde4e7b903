package output

import (
	"encoding/json"

	"github.com/splitcalc/settlement-calculator/internal/domain"
)

// JSONFormatter serializes the settlement report as pretty-printed JSON.
// Amounts are integer cents.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.SettlementReport) ([]byte, error) {
	if results == nil {
		return nil, ErrNilReport
	}
	return json.MarshalIndent(results, "", "  ")
}
