package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/splitcalc/settlement-calculator/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrNilReport is returned when a formatter is handed no report.
	ErrNilReport = errors.New("settlement report is nil")
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.SettlementReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when writing to disk.
	Extension() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	TextFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"terminal":    "console",
	"txt":         "text",
	"plain":       "text",
	"clipboard":   "text",
	"print":       "html",
	"pdf":         "html",
	"html-report": "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteReport renders results in the named format to w.
func WriteReport(w io.Writer, results *domain.SettlementReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteReportFile renders results to path, adding the formatter's extension
// when path has none.
func WriteReportFile(path string, results *domain.SettlementReport, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if filepath.Ext(path) == "" {
		path += "." + f.Extension()
	}
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ApplyDefaultCurrency fills in symbol for scenarios that do not name a currency.
func ApplyDefaultCurrency(results *domain.SettlementReport, symbol string) {
	if results == nil {
		return
	}
	for i := range results.Scenarios {
		if results.Scenarios[i].Currency == "" {
			results.Scenarios[i].Currency = symbol
		}
	}
}
