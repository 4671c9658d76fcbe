package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (EZLADDER_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("policy", os.Getenv("EZLADDER_POLICY"), &cfg.PolicyPath)
	s.setString("format", os.Getenv("EZLADDER_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("EZLADDER_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setMeasureFromString("feet", os.Getenv("EZLADDER_LADDER_FEET"), &cfg.LadderFeet); err != nil {
		return err
	}
	if err := s.setMeasureFromString("inches", os.Getenv("EZLADDER_LADDER_INCHES"), &cfg.LadderInches); err != nil {
		return err
	}
	if err := s.setMeasureFromString("standoff", os.Getenv("EZLADDER_STANDOFF_INCHES"), &cfg.StandoffInches); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("EZLADDER_WATCH"), &cfg.Watch)

	if err := s.setDuration("debounce", os.Getenv("EZLADDER_DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}
