package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/ksuid/pkg/logger"
)

// Output formats accepted by --format.
const (
	FormatString    = "string"
	FormatInspect   = "inspect"
	FormatTime      = "time"
	FormatTimestamp = "timestamp"
	FormatPayload   = "payload"
	FormatRaw       = "raw"
	FormatJSON      = "json"
	FormatYAML      = "yaml"
	FormatTemplate  = "template"
)

// LogLevelOff disables diagnostics entirely.
const LogLevelOff = "off"

// Precision values accepted by --precision.
const (
	PrecisionSeconds = "s"
	PrecisionMillis  = "ms"
)

var formats = []string{
	FormatString, FormatInspect, FormatTime, FormatTimestamp, FormatPayload,
	FormatRaw, FormatJSON, FormatYAML, FormatTemplate,
}

// Config holds CLI defaults. Every field can be set from the environment and
// overridden by the matching flag.
type Config struct {
	Format    string `env:"KSUID_FORMAT" envDefault:"string"`
	Template  string `env:"KSUID_TEMPLATE"`
	Precision string `env:"KSUID_PRECISION" envDefault:"s"`
	Count     int    `env:"KSUID_COUNT" envDefault:"1"`
	Workers   int    `env:"KSUID_WORKERS" envDefault:"4"`
	Sort      bool   `env:"KSUID_SORT" envDefault:"false"`

	LogLevel  string `env:"KSUID_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"KSUID_LOG_FORMAT" envDefault:"text"`

	// SentryDSN enables error reporting to Sentry when set.
	SentryDSN         string `env:"KSUID_SENTRY_DSN"`
	SentryEnvironment string `env:"KSUID_SENTRY_ENVIRONMENT" envDefault:"production"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfigFrom reads Config from the given variables instead of the
// process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks values that env parsing and flag parsing cannot.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return errors.Join(ErrUnknownFormat, fmt.Errorf("%q, want one of %v", c.Format, formats))
	}
	if c.Format == FormatTemplate && c.Template == "" {
		return ErrTemplateRequired
	}
	if c.Precision != PrecisionSeconds && c.Precision != PrecisionMillis {
		return errors.Join(ErrUnknownPrecision, fmt.Errorf("%q, want s or ms", c.Precision))
	}
	if c.Count < 1 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("count must be positive, got %d", c.Count))
	}
	if c.Workers < 1 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.LogLevel != LogLevelOff {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	if c.LogFormat != string(logger.FormatText) && c.LogFormat != string(logger.FormatJSON) {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("log format %q, want text or json", c.LogFormat))
	}
	return nil
}
