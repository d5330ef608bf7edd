// Package cli wires the kdbg command tree: configuration, the kubectl
// executor, pod resolution and output rendering.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tapcraft-io/kdbg/internal/config"
	"github.com/tapcraft-io/kdbg/internal/exec"
	"github.com/tapcraft-io/kdbg/internal/k8s"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/internal/resolve"
	"github.com/tapcraft-io/kdbg/internal/tui"
	"github.com/tapcraft-io/kdbg/pkg/types"
	"golang.org/x/term"
)

// Runner runs kubectl, either capturing its output or attached to the terminal
type Runner interface {
	Execute(ctx context.Context, args []string) *exec.ExecuteResult
	Run(ctx context.Context, args []string, streams exec.Streams) error
	RunFirst(ctx context.Context, alternatives [][]string, streams exec.Streams) error
}

// App holds everything the commands share. The function fields are the seams
// tests replace.
type App struct {
	Version string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// LoadConfig returns the configuration before flags are applied
	LoadConfig func() (*config.Config, error)
	// NewRunner builds the kubectl runner once configuration is known
	NewRunner func(opts exec.Options) (Runner, error)
	// CurrentContext reads the active context from kubeconfig
	CurrentContext func(kubeconfig string) (string, error)
	// Contexts lists the contexts in kubeconfig for flag completion
	Contexts func(kubeconfig string) ([]string, error)
	// IsTerminal reports whether the user can interact with a picker or prompt
	IsTerminal func() bool
	// Pick lets the user choose among ambiguous candidates
	Pick func(pattern string, candidates []types.Target) (types.Target, error)
	Now  func() time.Time

	cfg    *config.Config
	logger *slog.Logger
	runner Runner
}

// NewApp returns an App bound to the process streams, kubectl and kubeconfig
func NewApp(version string) *App {
	a := &App{
		Version:        version,
		In:             os.Stdin,
		Out:            os.Stdout,
		Err:            os.Stderr,
		LoadConfig:     config.NewConfig,
		CurrentContext: k8s.GetCurrentContext,
		Contexts:       k8s.GetContexts,
		Now:            time.Now,
		logger:         logging.Discard(),
	}

	a.NewRunner = func(opts exec.Options) (Runner, error) {
		executor, err := exec.NewExecutor(opts)
		if err != nil {
			return nil, err
		}
		return executor, nil
	}
	a.IsTerminal = func() bool {
		return isTerminal(a.In) && isTerminal(a.Out)
	}
	a.Pick = func(pattern string, candidates []types.Target) (types.Target, error) {
		return tui.Pick(pattern, candidates, a.In, a.Out)
	}

	return a
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// kubectl returns the runner, creating it on first use so that commands which
// never call kubectl work without it installed
func (a *App) kubectl() (Runner, error) {
	if a.runner != nil {
		return a.runner, nil
	}

	runner, err := a.NewRunner(exec.Options{
		Kubectl:    a.cfg.Kubectl,
		Kubeconfig: a.cfg.Kubeconfig,
		Context:    a.cfg.Context,
		Logger:     a.logger,
	})
	if err != nil {
		return nil, err
	}

	a.runner = runner
	return runner, nil
}

// querier returns a pod query adapter over the kubectl runner
func (a *App) querier() (*k8s.PodQuerier, error) {
	runner, err := a.kubectl()
	if err != nil {
		return nil, err
	}
	return k8s.NewPodQuerier(runner, a.logger), nil
}

// streams attaches kubectl to the App's terminal
func (a *App) streams() exec.Streams {
	return exec.Streams{In: a.In, Out: a.Out, Err: a.Err}
}

// contextName returns the context shown in headers, empty when unknown
func (a *App) contextName() string {
	if a.cfg.Context != "" {
		return a.cfg.Context
	}

	name, err := a.CurrentContext(a.cfg.Kubeconfig)
	if err != nil {
		a.logger.Debug("reading current context", logging.Err(err))
		return ""
	}
	return name
}

// newResolver returns a resolver over a fresh pod query adapter
func (a *App) newResolver() (*resolve.Resolver, error) {
	q, err := a.querier()
	if err != nil {
		return nil, err
	}
	return resolve.NewResolver(q, a.logger), nil
}
