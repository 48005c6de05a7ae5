package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/tintctl/internal/clock"
	"github.com/danieljhkim/tintctl/internal/config"
	"github.com/danieljhkim/tintctl/internal/fsops"
	"github.com/danieljhkim/tintctl/internal/hash"
	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/items"
	"github.com/danieljhkim/tintctl/internal/scheme"
	"github.com/danieljhkim/tintctl/internal/state"
)

const oceanicNextYAML = `system: "base16"
name: "OceanicNext"
author: "https://github.com/voronianski/oceanic-next-color-scheme"
variant: "dark"
palette:
  base00: "#1b2b34"
  base01: "#343d46"
  base02: "#4f5b66"
  base03: "#65737e"
  base04: "#a7adba"
  base05: "#c0c5ce"
  base06: "#cdd3de"
  base07: "#d8dee9"
  base08: "#ec5f67"
  base09: "#f99157"
  base0A: "#fac863"
  base0B: "#99c794"
  base0C: "#5fb3b3"
  base0D: "#6699cc"
  base0E: "#c594c5"
  base0F: "#ab7967"
`

// fakeCall is one recorded Runner invocation.
type fakeCall struct {
	command string
	env     []string
}

// fakeRunner records commands and answers from canned results.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []fakeCall
	stdout map[string]string
	exit   map[string]int
	err    error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{stdout: map[string]string{}, exit: map[string]int{}}
}

func (f *fakeRunner) Run(_ context.Context, command string, env []string) (*hooks.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{command: command, env: env})
	if f.err != nil {
		return nil, f.err
	}
	return &hooks.Result{
		Command:  command,
		Stdout:   f.stdout[command],
		ExitCode: f.exit[command],
	}, nil
}

func (f *fakeRunner) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.command)
	}
	return out
}

// testEnv is a throwaway config dir and data dir.
type testEnv struct {
	paths  *config.Paths
	cfg    *config.Config
	runner hooks.Runner
	fake   *fakeRunner
	fs     fsops.FS
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, "config")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	paths, err := config.ResolvePaths(configDir, filepath.Join(root, "data"))
	require.NoError(t, err)

	fake := newFakeRunner()
	return &testEnv{
		paths:  paths,
		cfg:    config.DefaultConfig(),
		runner: fake,
		fake:   fake,
		fs:     fsops.NewRealFS(),
	}
}

func (te *testEnv) installScheme(t *testing.T, system scheme.System, name, content string) {
	t.Helper()
	dir := filepath.Join(te.paths.Schemes, string(system))
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0644))
}

// addItem configures an item and writes its template for schemeID.
func (te *testEnv) addItem(t *testing.T, name, themesDir, hook, schemeID, ext string) {
	t.Helper()
	te.cfg.Items = append(te.cfg.Items, config.Item{
		Path:      "https://github.com/tinted-theming/" + name,
		Name:      name,
		ThemesDir: themesDir,
		Hook:      hook,
	})
	if schemeID == "" {
		return
	}
	dir := filepath.Join(te.paths.Repos, name, themesDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, schemeID+ext), []byte(name+" "+schemeID), 0644))
}

func (te *testEnv) engine(t *testing.T) *Engine {
	t.Helper()
	repo, err := scheme.LoadRepository(te.fs, te.paths.Schemes)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	clk.SetStep(time.Millisecond)

	return New(
		te.cfg,
		te.paths,
		repo,
		items.NewResolver(te.fs, hash.NewSHA256Hasher(), te.paths.Repos, te.paths.DataDir),
		te.runner,
		state.NewCurrentStore(te.fs, te.paths.CurrentScheme),
		te.fs,
		clk,
	)
}

func (te *testEnv) currentScheme(t *testing.T) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(te.paths.CurrentScheme)
	if os.IsNotExist(err) {
		return "", false
	}
	require.NoError(t, err)
	return string(data), true
}
