package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/tintctl/internal/clock"
	"github.com/danieljhkim/tintctl/internal/hooks"
	"github.com/danieljhkim/tintctl/internal/items"
	"github.com/danieljhkim/tintctl/internal/logging"
	"github.com/danieljhkim/tintctl/internal/scheme"
)

// Apply runs the apply state machine:
// 1. Validating: parse the identifier
// 2. ResolvingScheme: look it up in the installed schemes
// 3. ResolvingItems: find every item's template; any miss fails before writing
// 4. RunningHooks: per item, write its file and run its hook; then global hooks
// 5. PersistingState: record the scheme as current
//
// The result is always returned. On failure it records the state that failed
// and the output of any hooks that already ran.
func (e *Engine) Apply(ctx context.Context, req *ApplyRequest) (*ApplyResult, error) {
	start := e.clock.Now()
	res := &ApplyResult{State: StateValidating}
	var out hooks.Output
	var stderr strings.Builder
	defer func() {
		res.Output = out.String()
		res.Stderr = stderr.String()
		res.Duration = clock.Since(e.clock, start)
	}()

	id, err := scheme.ParseID(req.Scheme)
	if err != nil {
		return res.fail(err)
	}
	res.Scheme = id
	logger := logging.WithScheme(e.logger, id.String())
	ctx = logging.WithContext(ctx, logger)

	res.State = StateResolvingScheme
	schemeFile, err := e.schemes.Resolve(id)
	if err != nil {
		return res.fail(err)
	}
	res.SchemeFile = schemeFile

	res.State = StateResolvingItems
	artifacts, err := e.resolver.Resolve(e.cfg.Items, id)
	if err != nil {
		return res.fail(err)
	}
	res.Artifacts = artifacts

	res.State = StateRunningHooks
	env := e.schemeEnv(id, logger)

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return res.fail(err)
		}

		written, err := e.resolver.Materialize(a)
		if err != nil {
			return res.fail(err)
		}
		if written {
			res.Written = append(res.Written, a.Path)
		}

		cmd := hooks.Command{Template: a.Item.Hook}
		if cmd.Empty() {
			continue
		}
		hookEnv := slices.Concat(env, itemEnv(a))
		if err := e.runHook(ctx, res, &out, &stderr, cmd.Substitute(hooks.Vars{File: a.Path}), hookEnv, logger); err != nil {
			return res.fail(err)
		}
	}

	for _, hook := range e.cfg.Hooks {
		cmd := hooks.Command{Template: hook}
		if cmd.Empty() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res.fail(err)
		}
		if err := e.runHook(ctx, res, &out, &stderr, cmd.Substitute(hooks.Vars{}), env, logger); err != nil {
			return res.fail(err)
		}
	}
	res.State = StatePersistingState
	if err := e.current.Write(id); err != nil {
		return res.fail(err)
	}

	res.State = StateDone
	logger.Info().
		Int("items", len(artifacts)).
		Int("hooks", len(res.Hooks)).
		Msg("scheme applied")
	return res, nil
}

// fail moves the result to StateFailed, remembering where it happened.
func (r *ApplyResult) fail(err error) (*ApplyResult, error) {
	r.FailedIn = r.State
	r.State = StateFailed
	return r, err
}

// runHook runs one command and records its result. A non-zero exit is
// logged and only returned as an error when hooks are strict.
func (e *Engine) runHook(
	ctx context.Context,
	res *ApplyResult,
	out *hooks.Output,
	stderr *strings.Builder,
	command string,
	env []string,
	logger zerolog.Logger,
) error {
	logger.Debug().Str("hook", command).Msg("running hook")

	result, err := e.runner.Run(ctx, command, env)
	if err != nil {
		return err
	}
	res.Hooks = append(res.Hooks, result)
	out.Add(result.Stdout)
	stderr.WriteString(result.Stderr)

	if result.Failed() {
		logger.Warn().
			Str("hook", command).
			Int("exit_code", result.ExitCode).
			Str("stderr", strings.TrimSpace(result.Stderr)).
			Msg("hook failed")
		if e.cfg.StrictHooks {
			return result.Err()
		}
	}
	return nil
}

// schemeEnv describes the scheme to hooks. Metadata is best effort: a scheme
// file that cannot be parsed still gets the identifier variables.
func (e *Engine) schemeEnv(id scheme.ID, logger zerolog.Logger) []string {
	env := []string{
		"TINTCTL_SCHEME_ID=" + id.String(),
		"TINTCTL_SCHEME_SYSTEM=" + string(id.System),
		"TINTCTL_SCHEME_NAME=" + id.Name,
	}

	meta, err := e.schemes.LoadMeta(id)
	if err != nil {
		logger.Debug().Err(err).Msg("scheme metadata unavailable")
		return env
	}
	if meta.Author != "" {
		env = append(env, "TINTCTL_SCHEME_AUTHOR="+meta.Author)
	}
	if meta.Variant != "" {
		env = append(env, "TINTCTL_SCHEME_VARIANT="+meta.Variant)
	}
	for _, key := range meta.Keys() {
		env = append(env, fmt.Sprintf("TINTCTL_SCHEME_PALETTE_%s_HEX=%s",
			strings.ToUpper(key), strings.TrimPrefix(meta.Palette[key], "#")))
	}
	return env
}

func itemEnv(a items.Artifact) []string {
	return []string{
		"TINTCTL_ITEM_NAME=" + a.Item.Name,
		"TINTCTL_ITEM_FILE=" + a.Path,
	}
}
