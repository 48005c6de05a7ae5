package engine

import (
	"time"

	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/items"
	"github.com/danieljhkim/tintctl/internal/scheme"
)

// ApplyResult represents the result of applying a scheme.
// It is returned alongside the error when an apply fails.
type ApplyResult struct {
	// Scheme is the parsed identifier (zero if validation failed)
	Scheme scheme.ID `json:"scheme"`

	// SchemeFile is the installed scheme definition that was resolved
	SchemeFile string `json:"scheme_file,omitempty"`

	// State is the final state: StateDone or StateFailed
	State State `json:"state"`

	// FailedIn is the state that failed; only set when State is StateFailed
	FailedIn State `json:"failed_in,omitempty"`

	// Artifacts are the resolved item templates, in item order
	Artifacts []items.Artifact `json:"artifacts,omitempty"`

	// Written lists artifact paths whose content changed
	Written []string `json:"written,omitempty"`

	// Hooks are the hooks that ran, in execution order
	Hooks []*hooks.Result `json:"hooks,omitempty"`

	// Output is the combined stdout of all hooks
	Output string `json:"output"`

	// Stderr is the concatenated stderr of all hooks
	Stderr string `json:"stderr,omitempty"`

	// Duration is the wall time of the apply
	Duration time.Duration `json:"duration"`
}

// LegacyResult represents the result of a legacy set or init.
type LegacyResult struct {
	// Name is the theme name (empty if init found nothing to load)
	Name string `json:"name,omitempty"`

	// File is the colorscheme file that was sourced
	File string `json:"file,omitempty"`

	// Hooks are the commands that ran
	Hooks []*hooks.Result `json:"hooks,omitempty"`

	// Output is what the command prints on stdout
	Output string `json:"output"`

	// Stderr is the stderr of the sourced script
	Stderr string `json:"stderr,omitempty"`
}
