// Package config locates tintctl's files and loads its configuration.
//
// The configuration file defaults to $XDG_CONFIG_HOME/tintctl/config.toml and
// the data directory (installed schemes, template repositories and the current
// scheme marker) to $XDG_DATA_HOME/tintctl. Both can be overridden with
// environment variables or command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// AppName is the directory name used under the XDG roots.
	AppName = "tintctl"

	// DefaultConfigFileName is the file looked up inside a config directory.
	DefaultConfigFileName = "config.toml"

	// CurrentSchemeFileName holds the identifier of the last applied scheme.
	CurrentSchemeFileName = "current_scheme"

	// LegacyThemeFileName is the colorscheme script written by "set".
	LegacyThemeFileName = "base16_shell_theme"

	// LegacyThemeNameFileName holds the bare theme name written by "set".
	LegacyThemeNameFileName = "theme_name"
)

// configExts are the extensions that mark a path as a config file. Viper picks
// the format from them; anything else is read as TOML.
var configExts = []string{".toml", ".yaml", ".yml", ".json"}

func hasConfigExt(path string) bool {
	return slices.Contains(configExts, strings.ToLower(filepath.Ext(path)))
}

// Paths contains all the filesystem paths used by tintctl.
type Paths struct {
	// ConfigFile is the configuration file (may not exist)
	ConfigFile string

	// ConfigDir holds the config file and the legacy set/init files
	ConfigDir string

	// ConfigExplicit is true when ConfigFile was named by a flag or
	// TINTCTL_CONFIG rather than derived from the XDG defaults
	ConfigExplicit bool

	// DataDir is the root for installed and generated data
	DataDir string

	// Schemes contains <system>/<name>.yaml scheme definitions
	Schemes string

	// Repos contains one template repository per configured item
	Repos string

	// CurrentScheme is the marker file for the applied scheme
	CurrentScheme string
}

// ResolvePaths builds the path set. Non-empty arguments take precedence over
// the environment:
//   - config: flag, then TINTCTL_CONFIG, then $XDG_CONFIG_HOME/tintctl/config.toml,
//     then ~/.config/tintctl/config.toml. A directory, or a missing path without
//     a config file extension, means an optional config.toml inside it.
//   - data: flag, then TINTCTL_DATA_DIR, then $XDG_DATA_HOME/tintctl,
//     then ~/.local/share/tintctl.
func ResolvePaths(configOverride, dataOverride string) (*Paths, error) {
	p := &Paths{}

	configPath := configOverride
	if configPath == "" {
		configPath = os.Getenv("TINTCTL_CONFIG")
	}
	if configPath != "" {
		p.ConfigExplicit = true
	} else {
		dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(dir, DefaultConfigFileName)
	}

	configPath, err := absPath(configPath)
	if err != nil {
		return nil, err
	}
	info, statErr := os.Stat(configPath)
	isDir := statErr == nil && info.IsDir()
	if statErr != nil && !hasConfigExt(configPath) {
		// a directory that "set" will create
		isDir = true
	}
	if isDir {
		p.ConfigDir = configPath
		p.ConfigFile = filepath.Join(configPath, DefaultConfigFileName)
		p.ConfigExplicit = false
	} else {
		p.ConfigFile = configPath
		p.ConfigDir = filepath.Dir(configPath)
	}

	dataDir := dataOverride
	if dataDir == "" {
		dataDir = os.Getenv("TINTCTL_DATA_DIR")
	}
	if dataDir == "" {
		dataDir, err = xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
		if err != nil {
			return nil, err
		}
	}
	dataDir, err = absPath(dataDir)
	if err != nil {
		return nil, err
	}

	p.DataDir = dataDir
	p.Schemes = filepath.Join(dataDir, "schemes")
	p.Repos = filepath.Join(dataDir, "repos")
	p.CurrentScheme = filepath.Join(dataDir, CurrentSchemeFileName)
	return p, nil
}

// LegacyThemeFile is the colorscheme script managed by "set" and "init".
func (p *Paths) LegacyThemeFile() string {
	return filepath.Join(p.ConfigDir, LegacyThemeFileName)
}

// LegacyThemeNameFile is the theme name marker managed by "set".
func (p *Paths) LegacyThemeNameFile() string {
	return filepath.Join(p.ConfigDir, LegacyThemeNameFileName)
}

// DefaultLegacyScriptsDir is where "set" looks for base16-<name>.sh scripts
// when the configuration does not name a directory.
func (p *Paths) DefaultLegacyScriptsDir() string {
	return filepath.Join(p.Repos, "base16-shell", "scripts")
}

func xdgDir(env, homeFallback string) (string, error) {
	if root := os.Getenv(env); root != "" {
		return filepath.Join(root, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, homeFallback, AppName), nil
}

func absPath(path string) (string, error) {
	path = ExpandTilde(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}
