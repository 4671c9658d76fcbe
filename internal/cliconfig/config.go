package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/ezladder/internal/domain"
	"github.com/bft-labs/ezladder/pkg/configurator"
)

// Config holds CLI configuration for ezladder.
type Config struct {
	PolicyPath string

	LadderFeet     float64
	LadderInches   float64
	StandoffInches float64

	Format        string
	LogLevel      string
	Watch         bool
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with the form's opening values.
func DefaultConfig() Config {
	return Config{
		LadderFeet:     configurator.DefaultLadderFeet,
		LadderInches:   configurator.DefaultLadderInches,
		StandoffInches: configurator.DefaultStandoffInches,
		Format:         "text",
		LogLevel:       "info",
		DebounceDelay:  100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors. Measurement values are not
// rejected here; they are normalized and clamped by Inputs.
func (c *Config) Validate() error {
	if c.Format == "" {
		return fmt.Errorf("%w: format is required", domain.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", domain.ErrInvalidConfig, c.LogLevel, err)
	}
	if c.Watch && c.PolicyPath == "" {
		return fmt.Errorf("%w: watch requires a policy file", domain.ErrInvalidConfig)
	}
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("%w: debounce delay must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Inputs returns the configured field values after input normalization.
func (c *Config) Inputs() configurator.Inputs {
	return configurator.Inputs{
		LadderFeet:     c.LadderFeet,
		LadderInches:   c.LadderInches,
		StandoffInches: c.StandoffInches,
	}.Normalize()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setMeasure sets a length from a pointer. Zero is a valid length, so only
// nil means unset.
func (s *configSetter) setMeasure(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setMeasureFromString parses a length from an environment string.
func (s *configSetter) setMeasureFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
