package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner runs commands
type Runner interface {
	// Output runs the command and returns its standard output
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command with its output attached to the runner's writers
	Run(ctx context.Context, name string, args ...string) error
	// Available reports whether name can be found on PATH
	Available(name string) bool
}

// Options contains configuration for the executor
type Options struct {
	Dir    string
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Executor runs commands with os/exec
type Executor struct {
	dir    string
	env    []string
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

var _ Runner = (*Executor)(nil)

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Executor{
		dir:    opts.Dir,
		env:    opts.Env,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

func (e *Executor) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	return cmd
}

// Output runs name and captures its standard output. Standard error is kept
// for the error details when the command fails.
func (e *Executor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	start := time.Now()
	cmd := e.command(ctx, name, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	e.logger.Debug().
		Str("command", name).
		Strs("args", args).
		Dur("duration", time.Since(start)).
		Bool("success", err == nil).
		Msg("Command finished")

	if err != nil {
		if stderr.Len() > 0 {
			e.logger.Trace().Str("stderr", stderr.String()).Msg("Command stderr")
		}
		return stdout.Bytes(), commandError(err, name, args, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Run runs name with its output streamed to the configured writers
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.command(ctx, name, args)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	e.logger.Info().
		Str("command", name).
		Strs("args", args).
		Msg("Executing command")

	if err := cmd.Run(); err != nil {
		e.logger.Error().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Msg("Command execution failed")
		return commandError(err, name, args, "")
	}
	return nil
}

// Available reports whether name resolves to an executable
func (e *Executor) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func commandError(err error, name string, args []string, stderr string) error {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		gerr := errors.Wrapf(err, errors.ErrCommand,
			"%s failed with exit code: %d", name, exitErr.ExitCode()).
			WithDetail("command", line).
			WithDetail("exit_code", exitErr.ExitCode())
		if s := strings.TrimSpace(stderr); s != "" {
			gerr = gerr.WithDetail("stderr", s)
		}
		return gerr
	}

	return errors.Wrapf(err, errors.ErrCommand, "failed to run %s", name).
		WithDetail("command", line)
}

// ExitCode returns the exit code recorded on a command error, or -1
func ExitCode(err error) int {
	if code, ok := errors.GetErrorDetails(err)["exit_code"].(int); ok {
		return code
	}
	return -1
}

// Stderr returns the standard error recorded on a command error
func Stderr(err error) string {
	s, _ := errors.GetErrorDetails(err)["stderr"].(string)
	return s
}
