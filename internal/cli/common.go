package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tintctl/internal/clock"
	"github.com/danieljhkim/tintctl/internal/config"
	"github.com/danieljhkim/tintctl/internal/engine"
	"github.com/danieljhkim/tintctl/internal/fsops"
	"github.com/danieljhkim/tintctl/internal/hash"
	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/items"
	"github.com/danieljhkim/tintctl/internal/logging"
	"github.com/danieljhkim/tintctl/internal/scheme"
	"github.com/danieljhkim/tintctl/internal/state"
)

// app holds everything a command needs, built once per invocation.
type app struct {
	paths   *config.Paths
	schemes *scheme.Repository
	engine  *engine.Engine
}

// newApp resolves paths, loads the configuration, sets up logging and wires
// the engine with real implementations of all dependencies.
func newApp(cmd *cobra.Command) (*app, error) {
	paths, err := config.ResolvePaths(configPath, dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	loader := config.ForPaths(paths)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})
	logger := logging.Component("cli")
	logger.Debug().
		Str("config", loader.ConfigFileUsed()).
		Str("data_dir", paths.DataDir).
		Msg("configuration loaded")

	fs := fsops.NewRealFS()
	clk := &clock.RealClock{}

	schemes, err := scheme.LoadRepository(fs, paths.Schemes)
	if err != nil {
		return nil, err
	}
	schemes.SetBinaryName(cmd.Root().Name())

	eng := engine.New(
		cfg,
		paths,
		schemes,
		items.NewResolver(fs, hash.NewSHA256Hasher(), paths.Repos, paths.DataDir),
		hooks.NewShellRunner(cfg.Shell, clk),
		state.NewCurrentStore(fs, paths.CurrentScheme),
		fs,
		clk,
	)

	return &app{paths: paths, schemes: schemes, engine: eng}, nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
