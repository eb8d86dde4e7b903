package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

var (
	ErrNoScenarios     = errors.New("no scenarios provided")
	ErrEmptyRoster     = errors.New("scenario needs at least one person")
	ErrDuplicatePerson = errors.New("duplicate person id")
	ErrAmbiguousPerson = errors.New("ambiguous person name")
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario data.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var fc fileConfiguration
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config, err := fc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration rejects structurally broken input. Problems the
// engine can work around (missing participants, unknown references,
// unreconciled payer amounts) are left to surface as calculation warnings.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil || len(config.Scenarios) == 0 {
		return ErrNoScenarios
	}

	for i := range config.Scenarios {
		if err := ip.validateScenario(&config.Scenarios[i]); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !validKind(scenario.Kind) {
		return fmt.Errorf("scenario kind must be one of %v, got %q", domain.ValidScenarioKinds, scenario.Kind)
	}
	if len(scenario.People) == 0 {
		return ErrEmptyRoster
	}

	seen := make(map[domain.PersonID]bool, len(scenario.People))
	for _, p := range scenario.People {
		if seen[p.ID] {
			return fmt.Errorf("%w %q", ErrDuplicatePerson, p.ID)
		}
		seen[p.ID] = true
	}

	for i, e := range scenario.Expenses {
		switch e.Kind {
		case domain.KindRestaurantItem, domain.KindGroupExpense, domain.KindLodgingItem, domain.KindSharedItem:
		default:
			return fmt.Errorf("expense %d (%s): unknown kind %q", i, e.Name, e.Kind)
		}
	}

	if tt := scenario.TaxTip; tt != nil {
		if tt.Mode != domain.TaxTipEqual && tt.Mode != domain.TaxTipProportional {
			return fmt.Errorf("tax_tip.mode must be 'equal' or 'proportional', got %q", tt.Mode)
		}
	}

	return nil
}

func validKind(kind domain.ScenarioKind) bool {
	for _, k := range domain.ValidScenarioKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// CreateExampleConfiguration creates an example configuration with one
// restaurant bill and one shared holiday rental.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	people := []domain.Person{
		{ID: "ann", Name: "Ann"},
		{ID: "ben", Name: "Ben"},
		{ID: "cat", Name: "Cat"},
	}

	dinner := domain.Scenario{
		Name:     "Friday dinner",
		Kind:     domain.ScenarioRestaurant,
		Currency: "$",
		People:   people,
		Expenses: []domain.Expense{
			{
				Name:         "Margherita pizza",
				Kind:         domain.KindRestaurantItem,
				Amount:       decimal.RequireFromString("14.50"),
				Quantity:     2,
				Participants: []domain.PersonID{"ann", "ben", "cat"},
				Payers:       domain.EvenlyAmong{People: []domain.PersonID{"ann"}},
			},
			{
				Name:         "Bottle of wine",
				Kind:         domain.KindRestaurantItem,
				Amount:       decimal.RequireFromString("32.00"),
				Quantity:     1,
				Participants: []domain.PersonID{"ben", "cat"},
				Payers:       domain.EvenlyAmong{People: []domain.PersonID{"ben"}},
			},
		},
		TaxTip: &domain.TaxTip{
			Amount: decimal.RequireFromString("9.00"),
			Mode:   domain.TaxTipProportional,
			Payers: domain.EvenlyAmong{People: []domain.PersonID{"ann"}},
		},
	}

	cabin := domain.Scenario{
		Name:     "Lake cabin weekend",
		Kind:     domain.ScenarioLodging,
		Currency: "$",
		People:   people,
		Expenses: []domain.Expense{
			{
				Name:         "Cabin, two nights",
				Kind:         domain.KindLodgingItem,
				Amount:       decimal.RequireFromString("185.00"),
				Quantity:     2,
				Participants: []domain.PersonID{"ann", "ben", "cat"},
				Payers: domain.Explicit{Amounts: map[domain.PersonID]money.Cents{
					"ann": 25000,
					"cat": 12000,
				}},
			},
			{
				Name:         "Firewood",
				Kind:         domain.KindLodgingItem,
				Amount:       decimal.RequireFromString("20.00"),
				Quantity:     1,
				Participants: []domain.PersonID{"ben", "cat"},
				Payers:       domain.EvenlyAmong{People: []domain.PersonID{"ben", "cat"}},
			},
		},
		Payments: []domain.Payment{
			{From: "ben", To: "ann", Amount: 5000, Note: "deposit share"},
		},
	}

	return &domain.Configuration{Scenarios: []domain.Scenario{dinner, cabin}}
}

// MarshalConfiguration encodes cfg in the scenario file layout.
func MarshalConfiguration(cfg *domain.Configuration) ([]byte, error) {
	if cfg == nil {
		return nil, ErrNoScenarios
	}
	return yaml.Marshal(fromDomain(cfg))
}

// SaveConfiguration writes cfg to filename as YAML.
func SaveConfiguration(cfg *domain.Configuration, filename string) error {
	b, err := MarshalConfiguration(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
