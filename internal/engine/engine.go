// Package engine applies color schemes.
//
// The engine is the orchestration layer between CLI commands and the
// lower-level packages. An apply validates the scheme identifier, resolves it
// against the installed schemes, resolves every item's template, writes the
// rendered files and runs their hooks, runs the global hooks and finally
// records the scheme as current.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - Apply: The scheme application state machine
//   - SetLegacy/InitLegacy: The base16-shell style set and init flows
package engine

import (
	"github.com/rs/zerolog"

	"github.com/danieljhkim/tintctl/internal/clock"
	"github.com/danieljhkim/tintctl/internal/config"
	"github.com/danieljhkim/tintctl/internal/fsops"
	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/items"
	"github.com/danieljhkim/tintctl/internal/logging"
	"github.com/danieljhkim/tintctl/internal/scheme"
	"github.com/danieljhkim/tintctl/internal/state"
)

// SchemeIndex resolves scheme identifiers to installed scheme files.
type SchemeIndex interface {
	Resolve(id scheme.ID) (string, error)
	LoadMeta(id scheme.ID) (*scheme.Meta, error)
}

// Engine orchestrates all tintctl operations.
// It is the main API surface called by the CLI.
type Engine struct {
	cfg      *config.Config
	paths    *config.Paths
	schemes  SchemeIndex
	resolver *items.Resolver
	runner   hooks.Runner
	current  *state.CurrentStore
	fs       fsops.FS
	clock    clock.Clock
	logger   zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	cfg *config.Config,
	paths *config.Paths,
	schemes SchemeIndex,
	resolver *items.Resolver,
	runner hooks.Runner,
	current *state.CurrentStore,
	fs fsops.FS,
	clk clock.Clock,
) *Engine {
	return &Engine{
		cfg:      cfg,
		paths:    paths,
		schemes:  schemes,
		resolver: resolver,
		runner:   runner,
		current:  current,
		fs:       fs,
		clock:    clk,
		logger:   logging.Component("engine"),
	}
}

// Current returns the recorded current scheme.
func (e *Engine) Current() (scheme.ID, bool, error) {
	return e.current.Read()
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *config.Config {
	return e.cfg
}
