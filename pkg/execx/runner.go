// Package execx wraps subprocess execution behind a small interface so the
// installer, cloner and linker can be tested without invoking real commands.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single subprocess invocation. Package installs can
// be slow on a cold Homebrew cache, so this is generous.
const DefaultTimeout = 10 * time.Minute

// Result holds the outcome of a subprocess invocation
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external commands
type Runner interface {
	// Run executes the command and returns its captured output. A non-zero
	// exit is returned as a Result with ExitCode set and a nil error;
	// err is non-nil only when the command could not be started or timed out.
	Run(ctx context.Context, workDir string, name string, args ...string) (Result, error)

	// LookPath reports whether a command is available on PATH
	LookPath(name string) bool
}

// OSRunner executes commands on the host via os/exec
type OSRunner struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// NewOSRunner creates a runner backed by os/exec
func NewOSRunner() *OSRunner {
	return &OSRunner{
		logger:  logging.GetLogger("execx"),
		timeout: DefaultTimeout,
	}
}

// Run implements Runner
func (r *OSRunner) Run(ctx context.Context, workDir string, name string, args ...string) (Result, error) {
	logging.LogCommand(name, args)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		err = nil
	default:
		r.logger.Error().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Msg("Command could not be run")
		return result, err
	}

	r.logger.Debug().
		Str("command", name).
		Int("exitCode", result.ExitCode).
		Msg("Command finished")

	return result, nil
}

// LookPath implements Runner
func (r *OSRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
