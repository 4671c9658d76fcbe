package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and pointers for
// values where zero is meaningful, to make TOML friendly.
type FileConfig struct {
	Policy         string   `toml:"policy"`
	LadderFeet     *float64 `toml:"ladder_feet"`
	LadderInches   *float64 `toml:"ladder_inches"`
	StandoffInches *float64 `toml:"standoff_inches"`
	Format         string   `toml:"format"`
	LogLevel       string   `toml:"log_level"`
	Watch          *bool    `toml:"watch"`
	DebounceDelay  string   `toml:"debounce_delay"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.ezladder/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ezladder", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map). A relative
// policy path is resolved against the config file's directory when baseDir
// is not empty.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool, baseDir string) error {
	s := newConfigSetter(changed)

	policy := fc.Policy
	if policy != "" && baseDir != "" && !filepath.IsAbs(policy) {
		policy = filepath.Join(baseDir, policy)
	}
	s.setString("policy", policy, &cfg.PolicyPath)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setMeasure("feet", fc.LadderFeet, &cfg.LadderFeet)
	s.setMeasure("inches", fc.LadderInches, &cfg.LadderInches)
	s.setMeasure("standoff", fc.StandoffInches, &cfg.StandoffInches)

	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
