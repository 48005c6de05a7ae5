package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/tintctl/internal/clock"
	"github.com/danieljhkim/tintctl/internal/config"
	"github.com/danieljhkim/tintctl/internal/engine"
	"github.com/danieljhkim/tintctl/internal/fsops"
	"github.com/danieljhkim/tintctl/internal/hash"
	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/items"
	"github.com/danieljhkim/tintctl/internal/scheme"
	"github.com/danieljhkim/tintctl/internal/state"
)

// install lays out what the install command would: scheme files under
// <data>/schemes and one template repository per item under <data>/repos.
type install struct {
	t     *testing.T
	paths *config.Paths
}

func (in *install) write(path, content string) {
	in.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		in.t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		in.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// scheme installs <system>/<name>.yaml with a one-color palette.
func (in *install) scheme(system scheme.System, name, base00 string) {
	in.write(filepath.Join(in.paths.Schemes, string(system), name+".yaml"),
		"system: \""+string(system)+"\"\nname: \""+name+"\"\npalette:\n  base00: \""+base00+"\"\n")
}

// template installs an item's rendered theme for a scheme.
func (in *install) template(item, themesDir, file, content string) {
	in.write(filepath.Join(in.paths.Repos, item, themesDir, file), content)
}

// setupTestEnv creates temporary config and data directories, writing
// <config>/config.toml when configTOML is not empty.
func setupTestEnv(t *testing.T, configTOML string) (*config.Paths, *install) {
	t.Helper()

	for _, key := range []string{"TINTCTL_SHELL", "TINTCTL_HOOKS", "TINTCTL_STRICT_HOOKS", "TINTCTL_LOG_LEVEL", "TINTCTL_LEGACY_SCRIPTS_DIR"} {
		t.Setenv(key, "")
	}

	root := t.TempDir()
	configDir := filepath.Join(root, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if configTOML != "" {
		if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(configTOML), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}

	paths, err := config.ResolvePaths(configDir, filepath.Join(root, "data"))
	if err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}
	return paths, &install{t: t, paths: paths}
}

// newEngine wires a real engine. Build it after installing fixtures: the
// scheme index is read once.
func newEngine(t *testing.T, paths *config.Paths) *engine.Engine {
	t.Helper()

	cfg, err := config.ForPaths(paths).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	fs := fsops.NewRealFS()
	clk := clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	schemes, err := scheme.LoadRepository(fs, paths.Schemes)
	if err != nil {
		t.Fatalf("failed to load schemes: %v", err)
	}

	return engine.New(
		cfg,
		paths,
		schemes,
		items.NewResolver(fs, hash.NewSHA256Hasher(), paths.Repos, paths.DataDir),
		hooks.NewShellRunner(cfg.Shell, clk),
		state.NewCurrentStore(fs, paths.CurrentScheme),
		fs,
		clk,
	)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
