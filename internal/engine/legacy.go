package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/tintctl/internal/config"
	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/scheme"
	"github.com/danieljhkim/tintctl/internal/state"
)

const (
	legacyPrefix = "base16-"

	// sourceHook loads a colorscheme script into the hook shell.
	sourceHook = `. "` + hooks.FilePlaceholder + `"`

	// binaryName is used in hints that tell the user what to run.
	binaryName = config.AppName
)

// SetLegacy installs the base16-shell script for req.Name as the current
// colorscheme file, records the name, and sources the script.
func (e *Engine) SetLegacy(ctx context.Context, req *SetRequest) (*LegacyResult, error) {
	name := strings.TrimPrefix(strings.TrimSpace(req.Name), legacyPrefix)
	if err := e.fs.ValidateIdentifier(name); err != nil {
		return nil, &scheme.Error{Kind: scheme.ErrInvalidFormat, Msg: fmt.Sprintf("Invalid theme name %q", req.Name)}
	}

	script := filepath.Join(e.cfg.ScriptsDir(e.paths), legacyPrefix+name+".sh")
	exists, err := e.fs.Exists(script)
	if err != nil {
		return nil, fmt.Errorf("failed to check theme script: %w", err)
	}
	if !exists {
		return nil, scheme.NotFound(name)
	}

	themeFile := e.paths.LegacyThemeFile()
	if err := e.fs.Copy(script, themeFile); err != nil {
		return nil, fmt.Errorf("%w to %s: %w", state.ErrPersist, themeFile, err)
	}
	if err := e.legacyNames().WriteName(name); err != nil {
		return nil, err
	}

	res, err := e.sourceLegacy(ctx, themeFile)
	if err != nil {
		return nil, err
	}
	res.Name = name
	res.Output = joinLines(res.Output, "Theme set to: "+name)
	return res, nil
}

// InitLegacy sources the colorscheme file written by SetLegacy. When the
// files do not exist yet it returns a hint instead of an error.
func (e *Engine) InitLegacy(ctx context.Context) (*LegacyResult, error) {
	themeFile := e.paths.LegacyThemeFile()
	name, hasName, err := e.legacyNames().ReadName()
	if err != nil {
		return nil, err
	}
	hasFile, err := e.fs.Exists(themeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", themeFile, err)
	}

	if !hasName || !hasFile {
		e.logger.Debug().Str("file", themeFile).Msg("legacy theme files missing")
		return &LegacyResult{
			Output: "Config files don't exist, run `" + binaryName + " set <THEME_NAME>` to create them",
		}, nil
	}

	res, err := e.sourceLegacy(ctx, themeFile)
	if err != nil {
		return nil, err
	}
	res.Name = name
	return res, nil
}

func (e *Engine) legacyNames() *state.CurrentStore {
	return state.NewCurrentStore(e.fs, e.paths.LegacyThemeNameFile())
}

// sourceLegacy runs the colorscheme script through the hook runner.
func (e *Engine) sourceLegacy(ctx context.Context, file string) (*LegacyResult, error) {
	command := hooks.Command{Template: sourceHook}.Substitute(hooks.Vars{File: file})
	result, err := e.runner.Run(ctx, command, nil)
	if err != nil {
		return nil, err
	}
	if result.Failed() {
		e.logger.Warn().
			Str("file", file).
			Int("exit_code", result.ExitCode).
			Msg("colorscheme script failed")
		if e.cfg.StrictHooks {
			return nil, result.Err()
		}
	}

	var out hooks.Output
	out.Add(result.Stdout)
	return &LegacyResult{
		File:   file,
		Hooks:  []*hooks.Result{result},
		Output: out.String(),
		Stderr: result.Stderr,
	}, nil
}

func joinLines(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}
