package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/tintctl/internal/scheme"
)

// ErrInvalidConfig indicates the configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the user configuration document.
type Config struct {
	// Shell runs every hook as "<shell> -c <hook>"
	Shell string `mapstructure:"shell" yaml:"shell" json:"shell" validate:"required"`

	// Hooks run once per apply, after all item hooks, in order
	Hooks []string `mapstructure:"hooks" yaml:"hooks" json:"hooks"`

	// StrictHooks turns a failing hook into a failed apply
	StrictHooks bool `mapstructure:"strict-hooks" yaml:"strict-hooks" json:"strict-hooks"`

	// LogLevel is the minimum level written to stderr
	LogLevel string `mapstructure:"log-level" yaml:"log-level" json:"log-level" validate:"oneof=trace debug info warn warning error"`

	// LegacyScriptsDir holds base16-<name>.sh scripts used by "set"
	LegacyScriptsDir string `mapstructure:"legacy-scripts-dir" yaml:"legacy-scripts-dir,omitempty" json:"legacy-scripts-dir,omitempty"`

	// Items are the applications themed on apply, in declaration order
	Items []Item `mapstructure:"items" yaml:"items" json:"items" validate:"unique=Name,dive"`
}

// Item is one themed application.
type Item struct {
	// Path is where the template repository comes from; used by install
	Path string `mapstructure:"path" yaml:"path" json:"path" validate:"required"`

	// Name is the local directory name under <data-dir>/repos
	Name string `mapstructure:"name" yaml:"name" json:"name" validate:"required,excludesall=/\\"`

	// ThemesDir is the directory inside the repository holding rendered themes
	ThemesDir string `mapstructure:"themes-dir" yaml:"themes-dir" json:"themes-dir" validate:"required"`

	// Hook runs after the item's file is in place; %f is that file
	Hook string `mapstructure:"hook" yaml:"hook,omitempty" json:"hook,omitempty"`

	// SupportedSystems limits the item to these systems; empty means all
	SupportedSystems []scheme.System `mapstructure:"supported-systems" yaml:"supported-systems,omitempty" json:"supported-systems,omitempty" validate:"dive,oneof=base16 base24"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Shell:    "sh",
		Hooks:    []string{},
		LogLevel: "warn",
		Items:    []Item{},
	}
}

// Supports reports whether the item applies to schemes of system.
func (i Item) Supports(system scheme.System) bool {
	if len(i.SupportedSystems) == 0 {
		return true
	}
	for _, s := range i.SupportedSystems {
		if s == system {
			return true
		}
	}
	return false
}

// ScriptsDir returns the legacy scripts directory, falling back to the
// default under the data directory.
func (c *Config) ScriptsDir(p *Paths) string {
	if c.LegacyScriptsDir != "" {
		return c.LegacyScriptsDir
	}
	return p.DefaultLegacyScriptsDir()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// describe renders a field error using the document's key names.
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	field = keyReplacer.Replace(field)

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "unique":
		return field + " must not repeat an item name"
	case "excludesall":
		return field + " must not contain path separators"
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}

var keyReplacer = strings.NewReplacer(
	"Shell", "shell",
	"Hooks", "hooks",
	"LogLevel", "log-level",
	"Items", "items",
	"Path", "path",
	"Name", "name",
	"ThemesDir", "themes-dir",
	"SupportedSystems", "supported-systems",
)

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
