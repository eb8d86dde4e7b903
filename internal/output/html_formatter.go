package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// HTMLFormatter produces a printable HTML report (print to PDF from the browser).
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"signed":  FormatSigned,
	"status":  balanceStatus,
	"warning": warningText,
	"total":   func(a, b money.Cents) money.Cents { return a + b },
	"neg":     func(c money.Cents) money.Cents { return -c },
	"name":    personName,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.SettlementReport) ([]byte, error) {
	if results == nil {
		return nil, ErrNilReport
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
