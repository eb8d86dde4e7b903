package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadSettings.
const (
	EnvLogLevel = "LOG_LEVEL"
	EnvFormat   = "SPLITCALC_FORMAT"
	EnvCurrency = "SPLITCALC_CURRENCY"
)

// Settings are CLI defaults taken from the environment.
type Settings struct {
	LogLevel string
	Format   string
	Currency string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{LogLevel: "info", Format: "console", Currency: "$"}
}

// LoadSettings reads the given .env files (missing files are skipped) into the
// process environment without overriding variables that are already set, then
// builds Settings from the environment.
func LoadSettings(envFiles ...string) (Settings, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, err
		}
	}

	s := DefaultSettings()
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		s.Format = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		s.Currency = v
	}
	return s, nil
}
