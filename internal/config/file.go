package config

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

// File layout of a scenario input. Amounts are kept as strings so that blank
// or non-numeric entries can be treated as zero instead of failing the parse.

type fileConfiguration struct {
	Scenarios []fileScenario `yaml:"scenarios"`
}

type fileScenario struct {
	Name     string        `yaml:"name"`
	Kind     string        `yaml:"kind,omitempty"`
	Currency string        `yaml:"currency,omitempty"`
	People   []filePerson  `yaml:"people"`
	Expenses []fileExpense `yaml:"expenses,omitempty"`
	TaxTip   *fileTaxTip   `yaml:"tax_tip,omitempty"`
	Payments []filePayment `yaml:"payments,omitempty"`
}

type filePerson struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
}

type fileExpense struct {
	Name         string      `yaml:"name"`
	Kind         string      `yaml:"kind,omitempty"`
	Amount       string      `yaml:"amount"`
	Quantity     int         `yaml:"quantity,omitempty"`
	Participants []string    `yaml:"participants"`
	Payers       []filePayer `yaml:"payers,omitempty"`
}

type filePayer struct {
	Person string `yaml:"person"`
	Amount string `yaml:"amount,omitempty"`
}

type fileTaxTip struct {
	Amount string      `yaml:"amount"`
	Mode   string      `yaml:"mode,omitempty"`
	Payers []filePayer `yaml:"payers,omitempty"`
}

type filePayment struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount string `yaml:"amount"`
	Note   string `yaml:"note,omitempty"`
}

func (fc fileConfiguration) toDomain() (*domain.Configuration, error) {
	cfg := &domain.Configuration{Scenarios: make([]domain.Scenario, 0, len(fc.Scenarios))}
	for i, fs := range fc.Scenarios {
		s, err := fs.toDomain()
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		cfg.Scenarios = append(cfg.Scenarios, s)
	}
	return cfg, nil
}

func (fs fileScenario) toDomain() (domain.Scenario, error) {
	s := domain.Scenario{
		Name:     fs.Name,
		Kind:     domain.ScenarioKind(fs.Kind),
		Currency: fs.Currency,
	}
	if s.Kind == "" {
		s.Kind = domain.ScenarioGroup
	}
	for i, fp := range fs.People {
		id := fp.ID
		if id == "" {
			id = generatedID(fs.Name, i, fp.Name)
		}
		s.People = append(s.People, domain.Person{ID: domain.PersonID(id), Name: fp.Name})
	}
	var refErr error
	ref := func(r string) domain.PersonID {
		id, err := resolveRef(s.People, r)
		if err != nil && refErr == nil {
			refErr = err
		}
		return id
	}

	for _, fe := range fs.Expenses {
		e := domain.Expense{
			Name:     fe.Name,
			Kind:     domain.ExpenseKind(fe.Kind),
			Amount:   money.ParseDecimal(fe.Amount),
			Quantity: fe.Quantity,
			Payers:   payerAllocation(fe.Payers, ref),
		}
		if e.Kind == "" {
			e.Kind = defaultExpenseKind(s.Kind)
		}
		for _, p := range fe.Participants {
			e.Participants = append(e.Participants, ref(p))
		}
		s.Expenses = append(s.Expenses, e)
	}

	if fs.TaxTip != nil {
		s.TaxTip = &domain.TaxTip{
			Amount: money.ParseDecimal(fs.TaxTip.Amount),
			Mode:   domain.TaxTipMode(fs.TaxTip.Mode),
			Payers: payerAllocation(fs.TaxTip.Payers, ref),
		}
		if s.TaxTip.Mode == "" {
			s.TaxTip.Mode = domain.TaxTipEqual
		}
	}

	for _, fp := range fs.Payments {
		s.Payments = append(s.Payments, domain.Payment{
			From:   ref(fp.From),
			To:     ref(fp.To),
			Amount: money.Parse(fp.Amount),
			Note:   fp.Note,
		})
	}
	if refErr != nil {
		return domain.Scenario{}, refErr
	}
	return s, nil
}

// generatedID derives the id of a person listed without one. The same file
// always yields the same ids.
func generatedID(scenario string, index int, name string) string {
	key := scenario + "/" + strconv.Itoa(index) + "/" + name
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// resolveRef maps a reference to a person ID. IDs win over names; an
// unmatched reference is passed through unchanged so the engine can report it.
// A name shared by several people cannot be resolved.
func resolveRef(people []domain.Person, ref string) (domain.PersonID, error) {
	for _, p := range people {
		if string(p.ID) == ref {
			return p.ID, nil
		}
	}
	var match domain.PersonID
	matches := 0
	for _, p := range people {
		if p.Name == ref {
			if matches == 0 {
				match = p.ID
			}
			matches++
		}
	}
	switch matches {
	case 0:
		return domain.PersonID(ref), nil
	case 1:
		return match, nil
	default:
		return "", fmt.Errorf("%w %q: refer to one of them by id", ErrAmbiguousPerson, ref)
	}
}

func payerAllocation(payers []filePayer, ref func(string) domain.PersonID) domain.PayerAllocation {
	entries := make([]domain.PayerEntry, 0, len(payers))
	for _, fp := range payers {
		entries = append(entries, domain.PayerEntry{Person: ref(fp.Person), Amount: money.ParseDecimal(fp.Amount)})
	}
	return domain.NewPayerAllocation(entries)
}

func defaultExpenseKind(kind domain.ScenarioKind) domain.ExpenseKind {
	switch kind {
	case domain.ScenarioRestaurant:
		return domain.KindRestaurantItem
	case domain.ScenarioLodging:
		return domain.KindLodgingItem
	case domain.ScenarioShared:
		return domain.KindSharedItem
	default:
		return domain.KindGroupExpense
	}
}

func fromDomain(cfg *domain.Configuration) fileConfiguration {
	fc := fileConfiguration{Scenarios: make([]fileScenario, 0, len(cfg.Scenarios))}
	for _, s := range cfg.Scenarios {
		fs := fileScenario{Name: s.Name, Kind: string(s.Kind), Currency: s.Currency}
		for _, p := range s.People {
			fs.People = append(fs.People, filePerson{ID: string(p.ID), Name: p.Name})
		}
		for _, e := range s.Expenses {
			fe := fileExpense{
				Name:     e.Name,
				Kind:     string(e.Kind),
				Amount:   e.Amount.String(),
				Quantity: e.Quantity,
				Payers:   filePayers(e.Payers),
			}
			for _, id := range e.Participants {
				fe.Participants = append(fe.Participants, string(id))
			}
			fs.Expenses = append(fs.Expenses, fe)
		}
		if s.TaxTip != nil {
			fs.TaxTip = &fileTaxTip{
				Amount: s.TaxTip.Amount.String(),
				Mode:   string(s.TaxTip.Mode),
				Payers: filePayers(s.TaxTip.Payers),
			}
		}
		for _, pm := range s.Payments {
			fs.Payments = append(fs.Payments, filePayment{From: string(pm.From), To: string(pm.To), Amount: pm.Amount.String(), Note: pm.Note})
		}
		fc.Scenarios = append(fc.Scenarios, fs)
	}
	return fc
}

func filePayers(a domain.PayerAllocation) []filePayer {
	var out []filePayer
	switch v := a.(type) {
	case domain.EvenlyAmong:
		for _, id := range v.People {
			out = append(out, filePayer{Person: string(id)})
		}
	case domain.Explicit:
		for _, id := range v.Payers() {
			amount := ""
			if c := v.Amounts[id]; c > 0 {
				amount = c.String()
			}
			out = append(out, filePayer{Person: string(id), Amount: amount})
		}
	}
	return out
}
