package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/tapcraft-io/kdbg/internal/logging"
)

// waitDelay bounds how long a cancelled kubectl may take to exit after the interrupt
const waitDelay = 5 * time.Second

// Options configures an Executor
type Options struct {
	// Kubectl is a binary name resolved through PATH, or a path
	Kubectl    string
	Kubeconfig string
	Context    string
	Logger     *slog.Logger
}

// Executor executes kubectl commands
type Executor struct {
	kubectlPath string
	globalArgs  []string
	logger      *slog.Logger
}

// ExecuteResult contains the result of a captured kubectl execution
type ExecuteResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	Error    error
}

// Streams are the standard streams handed to an attached kubectl process
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewExecutor creates a new kubectl executor
func NewExecutor(opts Options) (*Executor, error) {
	name := opts.Kubectl
	if name == "" {
		name = "kubectl"
	}

	kubectlPath, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrKubectlNotFound, name, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	logger.Debug("found kubectl", "path", kubectlPath)

	return &Executor{
		kubectlPath: kubectlPath,
		globalArgs:  GlobalArgs(opts.Kubeconfig, opts.Context),
		logger:      logger,
	}, nil
}

// Execute runs a kubectl command and captures its output
func (e *Executor) Execute(ctx context.Context, args []string) *ExecuteResult {
	start := time.Now()
	result := &ExecuteResult{}

	cmd := e.command(ctx, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	result.ExitCode = exitCode(err)
	result.Error = err

	e.log(args, result.ExitCode, result.Duration, err)

	return result
}

// Run runs a kubectl command attached to the given streams. A non-zero exit is
// reported as a *CommandError.
func (e *Executor) Run(ctx context.Context, args []string, streams Streams) error {
	start := time.Now()

	cmd := e.command(ctx, args)
	cmd.Stdin = streams.In
	cmd.Stdout = streams.Out
	cmd.Stderr = streams.Err

	err := cmd.Run()
	code := exitCode(err)
	e.log(args, code, time.Since(start), err)

	if err != nil {
		return &CommandError{Verb: Verb(args), ExitCode: code, Err: err}
	}
	return nil
}

// RunFirst tries each argument vector in order and stops at the first that
// succeeds. Diagnostics on stderr are discarded for every attempt but the last.
func (e *Executor) RunFirst(ctx context.Context, alternatives [][]string, streams Streams) error {
	if len(alternatives) == 0 {
		return ErrNoAlternatives
	}

	var err error
	for i, args := range alternatives {
		attempt := streams
		if i < len(alternatives)-1 {
			attempt.Err = io.Discard
		}

		err = e.Run(ctx, args, attempt)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}

		e.logger.Debug("alternative failed", logging.Args(args), logging.Err(err))
	}

	return err
}

// command builds the kubectl process. Cancellation interrupts kubectl rather than
// killing it so it can restore the terminal.
func (e *Executor) command(ctx context.Context, args []string) *exec.Cmd {
	full := make([]string, 0, len(e.globalArgs)+len(args))
	full = append(full, e.globalArgs...)
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, e.kubectlPath, full...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = waitDelay
	return cmd
}

func (e *Executor) log(args []string, code int, d time.Duration, err error) {
	attrs := []any{
		logging.Verb(Verb(args)),
		logging.Args(args),
		logging.ExitCode(code),
		logging.Duration(d),
	}

	if err != nil {
		e.logger.Warn("kubectl failed", append(attrs, logging.Err(err))...)
		return
	}
	e.logger.Debug("kubectl finished", attrs...)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
