package calculation

import (
	"errors"

	"github.com/splitcalc/settlement-calculator/internal/domain"
)

// ErrNilConfiguration is returned by RunScenarios when no configuration is given.
var ErrNilConfiguration = errors.New("configuration is nil")

// Engine orchestrates a settlement calculation. It holds no per-calculation
// state, so one Engine may be shared across goroutines.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate runs owed aggregation, paid aggregation, net balancing and
// settlement for one scenario. It never fails: bad input is clamped and
// reported through ScenarioResult.Warnings.
func (e *Engine) Calculate(s domain.Scenario) domain.ScenarioResult {
	log := e.logger()

	owed := ComputeOwed(s)
	paid, paidWarnings := ComputePaid(s)
	balances, correction, paymentWarnings := NetBalances(s.People, owed.Owed, paid, s.Payments)
	transfers := Settle(balances)

	warnings := make([]domain.Warning, 0, len(owed.Warnings)+len(paidWarnings)+len(paymentWarnings))
	warnings = append(warnings, owed.Warnings...)
	warnings = append(warnings, paidWarnings...)
	warnings = append(warnings, paymentWarnings...)

	log.Debugf("scenario %q: %d people, %d expenses, cost %s, tax/tip %s", s.Name, len(s.People), len(s.Expenses), owed.Expenses, owed.TaxTipSum)
	if correction != nil {
		log.Debugf("scenario %q: rounding correction of %s applied to %s", s.Name, correction.Amount, correction.Person)
	}
	for _, w := range warnings {
		if w.Expense == "" {
			log.Warnf("scenario %q: %s", s.Name, w.Message)
			continue
		}
		log.Warnf("scenario %q: %s: %s", s.Name, w.Expense, w.Message)
	}

	return domain.ScenarioResult{
		Name:       s.Name,
		Kind:       s.Kind,
		Currency:   s.Currency,
		TotalCost:  owed.Expenses,
		TaxTip:     owed.TaxTipSum,
		Owed:       owed.Owed,
		Paid:       paid,
		Balances:   balances,
		Transfers:  transfers,
		Correction: correction,
		Warnings:   warnings,
	}
}

// RunScenarios calculates every scenario in the configuration independently.
func (e *Engine) RunScenarios(cfg *domain.Configuration) (*domain.SettlementReport, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}
	report := &domain.SettlementReport{Scenarios: make([]domain.ScenarioResult, 0, len(cfg.Scenarios))}
	for _, s := range cfg.Scenarios {
		report.Scenarios = append(report.Scenarios, e.Calculate(s))
	}
	e.logger().Infof("calculated %d scenario(s)", len(report.Scenarios))
	return report, nil
}

// Calculate runs a scenario through a default engine.
func Calculate(s domain.Scenario) domain.ScenarioResult {
	return NewEngine().Calculate(s)
}

func (e *Engine) logger() Logger {
	if e == nil || e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}
