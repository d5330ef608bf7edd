package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tapcraft-io/kdbg/internal/config"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/internal/tui"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	kubectl    string
	kubeconfig string
	context    string
	noColor    bool
	logLevel   string
	logFormat  string
}

// NewRootCmd builds the kdbg command tree around app
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kdbg",
		Short: "Kubernetes Pod Debugger - Fast kubectl wrapper",
		Long: `kdbg is a thin front-end to kubectl for everyday pod debugging.

Pod arguments are partial names: every pod whose name contains the text is a
match, and a command runs only when exactly one pod matches.

Examples:
  # List pods in all namespaces
  kdbg list

  # Follow the logs of the only pod containing "api"
  kdbg logs api -f

  # Open a shell, choosing interactively when several pods match
  kdbg shell web --pick`,
		Version: app.Version,
		// Errors are rendered once by main
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Completion requests set up from the command being completed
			if cmd.Name() == cobra.ShellCompRequestCmd {
				return nil
			}
			return app.setup(cmd, opts)
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "kdbg version %s\n" .Version}}`)
	rootCmd.SetIn(app.In)
	rootCmd.SetOut(app.Out)
	rootCmd.SetErr(app.Err)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.kubectl, "kubectl", "kubectl", "kubectl binary name or path")
	flags.StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	flags.StringVar(&opts.context, "context", "", "Kubeconfig context to use")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	_ = rootCmd.RegisterFlagCompletionFunc("context", app.completeContexts(opts))

	rootCmd.AddCommand(
		newListCmd(app),
		newLogsCmd(app),
		newExecCmd(app),
		newDescribeCmd(app),
		newTopCmd(app),
		newForwardCmd(app),
		newShellCmd(app),
		newDebugCmd(app),
		newRestartCmd(app),
		newEventsCmd(app),
		newVersionCmd(app),
	)

	return rootCmd
}

// Execute runs kdbg with the process arguments
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(NewApp(version)).ExecuteContext(ctx)
}

// setup loads configuration, applies flags over it and configures logging and
// color. It runs once per process, before any command.
func (a *App) setup(cmd *cobra.Command, opts *rootOptions) error {
	if a.cfg != nil {
		return nil
	}

	// Failures before the config is merged still honor the no-color settings
	if opts.noColor || config.NoColorFromEnv() {
		tui.SetColorEnabled(false)
	}

	cfg, err := a.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("kubectl") {
		cfg.Kubectl = opts.kubectl
	}
	if flags.Changed("kubeconfig") {
		cfg.Kubeconfig = opts.kubeconfig
	}
	if flags.Changed("context") {
		cfg.Context = opts.context
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(a.Err, cfg.LogFormat, cfg.LogLevel)
	tui.SetColorEnabled(!cfg.NoColor)

	if cfg.Path != "" {
		a.logger.Debug("loaded config", "path", cfg.Path)
	}

	return nil
}
