package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
	required   bool
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// SetConfigFile sets the config file path. When required is false a missing
// file means "use defaults".
func (l *Loader) SetConfigFile(path string, required bool) {
	l.configFile = path
	l.required = required
}

// ForPaths creates a loader for the config file named by p.
func ForPaths(p *Paths) *Loader {
	l := NewLoader()
	l.SetConfigFile(p.ConfigFile, p.ConfigExplicit)
	return l
}

// Load loads configuration with precedence defaults < config file < env vars.
// The file format follows its extension (.toml, .yaml, .yml, .json); any other
// extension is read as TOML.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	l.setupViper(cfg)

	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LegacyScriptsDir = ExpandTilde(cfg.LegacyScriptsDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the file that was read, or "" when defaults were used.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// setupViper configures Viper with defaults and environment bindings.
func (l *Loader) setupViper(cfg *Config) {
	v := l.v

	v.SetEnvPrefix("TINTCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("shell", cfg.Shell)
	v.SetDefault("hooks", cfg.Hooks)
	v.SetDefault("strict-hooks", cfg.StrictHooks)
	v.SetDefault("log-level", cfg.LogLevel)
	v.SetDefault("legacy-scripts-dir", cfg.LegacyScriptsDir)
	v.SetDefault("items", []map[string]any{})

	v.AutomaticEnv()
}

// loadConfigFile reads the config file if one is set and present.
func (l *Loader) loadConfigFile() error {
	if l.configFile == "" {
		return nil
	}

	if _, err := os.Stat(l.configFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !l.required {
			return nil
		}
		return fmt.Errorf("failed to load config file: %w", err)
	}

	l.v.SetConfigFile(l.configFile)
	if !hasConfigExt(l.configFile) {
		l.v.SetConfigType("toml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", l.configFile, err)
	}
	return nil
}
