package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/danieljhkim/tintctl/internal/clock"
	"github.com/danieljhkim/tintctl/internal/logging"
)

// ErrHookFailed indicates a hook exited with a non-zero status.
var ErrHookFailed = errors.New("hook failed")

// Result is the captured outcome of one hook.
type Result struct {
	Command  string        `json:"command"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the hook exited non-zero.
func (r *Result) Failed() bool {
	return r.ExitCode != 0
}

// Err returns an *ExitError for a failed hook and nil otherwise.
func (r *Result) Err() error {
	if !r.Failed() {
		return nil
	}
	return &ExitError{Command: r.Command, ExitCode: r.ExitCode, Stderr: r.Stderr}
}

// ExitError reports a hook that ran but exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("hook %q exited with status %d", e.Command, e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return ErrHookFailed
}

// Runner executes a command line.
// A command that runs and exits non-zero is not an error: the exit code is
// returned in the Result. Errors mean the command could not be started.
type Runner interface {
	Run(ctx context.Context, command string, env []string) (*Result, error)
}

// ShellRunner runs commands through "<shell> -c".
type ShellRunner struct {
	shell string
	clock clock.Clock
}

// NewShellRunner creates a runner using shell (default "sh").
func NewShellRunner(shell string, clk clock.Clock) *ShellRunner {
	if shell == "" {
		shell = "sh"
	}
	if clk == nil {
		clk = &clock.RealClock{}
	}
	return &ShellRunner{shell: shell, clock: clk}
}

// Run executes command, appending env to the current process environment.
// It logs through the logger carried by ctx.
func (r *ShellRunner) Run(ctx context.Context, command string, env []string) (*Result, error) {
	logger := logging.FromContext(ctx)

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := r.clock.Now()
	err := cmd.Run()

	result := &Result{
		Command:  command,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: r.clock.Now().Sub(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			logger.Debug().Err(err).Str("hook", command).Msg("hook did not run")
			return nil, fmt.Errorf("failed to run hook %q: %w", command, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logger.Debug().
		Str("hook", command).
		Int("exit_code", result.ExitCode).
		Dur("duration", result.Duration).
		Msg("hook finished")
	return result, nil
}
