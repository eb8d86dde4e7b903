package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/splitcalc/settlement-calculator/internal/calculation"
	"github.com/splitcalc/settlement-calculator/internal/domain"
	"github.com/splitcalc/settlement-calculator/pkg/money"
)

func buildTestReport() *domain.SettlementReport {
	people := []domain.Person{{ID: "a", Name: "Ann"}, {ID: "b", Name: "Ben"}, {ID: "c", Name: "Cat"}}
	s := domain.Scenario{
		Name:     "Dinner",
		Kind:     domain.ScenarioRestaurant,
		Currency: "$",
		People:   people,
		Expenses: []domain.Expense{{
			Name:         "Pizza",
			Amount:       decimal.NewFromInt(100),
			Participants: []domain.PersonID{"a", "b", "c"},
			Payers:       domain.EvenlyAmong{People: []domain.PersonID{"a"}},
		}},
	}
	lodging := domain.Scenario{
		Name:   "Cabin",
		Kind:   domain.ScenarioLodging,
		People: people,
		Expenses: []domain.Expense{
			{
				Name:         "Rent",
				Amount:       decimal.NewFromInt(90),
				Participants: []domain.PersonID{"a", "b", "c"},
				Payers:       domain.Explicit{Amounts: map[domain.PersonID]money.Cents{"b": 8000}},
			},
			{Name: "Ghost item", Amount: decimal.NewFromInt(5)},
		},
	}
	report, _ := calculation.NewEngine().RunScenarios(&domain.Configuration{Scenarios: []domain.Scenario{s, lodging}})
	return report
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"DINNER",
		"Ben pays Ann $33.33",
		"Cat pays Ann $33.33",
		"+$66.66",
		"CABIN",
		"rounding: Ben adjusted by",
		"Ghost item: no participants selected",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in console output, got:\n%s", want, content)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := TextFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Dinner (total $100.00)") {
		t.Fatalf("missing header: %s", content)
	}
	if !strings.Contains(content, "- Ann: share $33.34, paid $100.00, gets back $66.66") {
		t.Fatalf("missing balance line: %s", content)
	}
	if !strings.Contains(content, "Ben → Ann: $33.33") {
		t.Fatalf("missing transfer line: %s", content)
	}
}

func TestCSVFormatterRows(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + dinner (3 balances, 2 transfers) + cabin (3 balances, at least 1 transfer)
	if len(lines) < 10 {
		t.Fatalf("expected at least 10 lines, got %d:\n%s", len(lines), out)
	}
	if lines[1] != "Dinner,balance,Ann,,33.34,100.00,0.00,0.00,66.66," {
		t.Fatalf("unexpected first balance row: %q", lines[1])
	}
	if lines[4] != "Dinner,transfer 1,Ben,Ann,,,,,,33.33" {
		t.Fatalf("unexpected first transfer row: %q", lines[4])
	}
}

func TestJSONFormatterUsesCents(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Scenarios []struct {
			Name      string `json:"name"`
			Transfers []struct {
				Amount int64 `json:"amount"`
			} `json:"transfers"`
			Owed map[string]int64 `json:"owed"`
		} `json:"scenarios"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Scenarios[0].Owed["a"] != 3334 {
		t.Fatalf("owed a = %d", decoded.Scenarios[0].Owed["a"])
	}
	if decoded.Scenarios[0].Transfers[0].Amount != 3333 {
		t.Fatalf("first transfer = %d", decoded.Scenarios[0].Transfers[0].Amount)
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"<h2>Dinner</h2>", "Ben pays Ann <strong>$33.33</strong>", "absorbed by Ben", "no participants selected"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in html output", want)
		}
	}
}

// Golden prefix tests keep the first line of each format stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console", "console.golden", ConsoleFormatter{}},
		{"text", "text.golden", TextFormatter{}},
		{"csv", "csv.golden", CSVFormatter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
	}
	report := buildTestReport()
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(report)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			line := strings.SplitN(string(out), "\n", 2)[0] + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console":   "console",
		" JSON ":    "json",
		"clipboard": "text",
		"pdf":       "html",
		"csv":       "csv",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil || f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %v, want %s", in, f, want)
		}
	}
	if GetFormatterByName("yaml") != nil {
		t.Fatalf("expected nil for unknown format")
	}
	if got := AvailableFormatterNames(); strings.Join(got, ",") != "console,csv,html,json,text" {
		t.Fatalf("AvailableFormatterNames = %v", got)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, buildTestReport(), "text"); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output")
	}
	err := WriteReport(&buf, buildTestReport(), "xml")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console, csv, html, json, text") {
		t.Fatalf("error should list formats: %v", err)
	}
}

func TestWriteReportFileAddsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteReportFile(filepath.Join(dir, "settlement"), buildTestReport(), "csv")
	if err != nil {
		t.Fatalf("WriteReportFile: %v", err)
	}
	if filepath.Ext(path) != ".csv" {
		t.Fatalf("expected .csv extension, got %s", path)
	}
	fi, err := os.Stat(path)
	if err != nil || fi.Size() == 0 {
		t.Fatalf("expected non-empty file, err: %v", err)
	}

	kept, err := WriteReportFile(filepath.Join(dir, "out.txt"), buildTestReport(), "json")
	if err != nil || filepath.Base(kept) != "out.txt" {
		t.Fatalf("explicit extension should be kept: %s %v", kept, err)
	}
}

func TestApplyDefaultCurrency(t *testing.T) {
	report := buildTestReport()
	ApplyDefaultCurrency(report, "€")
	if report.Scenarios[0].Currency != "$" {
		t.Fatalf("explicit currency overwritten: %q", report.Scenarios[0].Currency)
	}
	if report.Scenarios[1].Currency != "€" {
		t.Fatalf("default currency not applied: %q", report.Scenarios[1].Currency)
	}
	ApplyDefaultCurrency(nil, "$")
}

func TestFormatEvenSplit(t *testing.T) {
	res := calculation.EvenSplit(calculation.EvenSplitInput{Bill: decimal.NewFromInt(100), People: 3})
	content := string(FormatEvenSplit(res, "$"))
	if !strings.Contains(content, "Person 1: $33.34 *") {
		t.Fatalf("expected first seat to carry the extra cent:\n%s", content)
	}
	if !strings.Contains(content, "Person 3: $33.33\n") {
		t.Fatalf("expected last seat at base share:\n%s", content)
	}
	if !strings.Contains(content, "(1 pay $33.34 to cover the leftover cents)") {
		t.Fatalf("missing remainder note:\n%s", content)
	}
}

func TestFormattersRejectNilReport(t *testing.T) {
	for _, f := range builtInFormatters {
		out, err := f.Format(nil)
		if !errors.Is(err, ErrNilReport) {
			t.Fatalf("%s: expected ErrNilReport, got %v", f.Name(), err)
		}
		if out != nil {
			t.Fatalf("%s: expected no output, got %q", f.Name(), out)
		}
	}
	if err := WriteReport(&bytes.Buffer{}, nil, "console"); !errors.Is(err, ErrNilReport) {
		t.Fatalf("WriteReport: expected ErrNilReport, got %v", err)
	}
}
