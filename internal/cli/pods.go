package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tapcraft-io/kdbg/internal/exec"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/internal/tui"
)

func newListCmd(app *App) *cobra.Command {
	var (
		namespace string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all pods",
		Long: `List pods with their status.

Examples:
  # List pods in all namespaces
  kdbg list

  # Include restarts and age for one namespace
  kdbg list -n prod -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.querier()
			if err != nil {
				return err
			}

			ns := app.namespace(cmd, namespace)
			pods, err := q.List(cmd.Context(), ns)
			if err != nil {
				return fmt.Errorf("listing pods: %w", err)
			}

			app.logger.Info("listed pods", logging.Namespace(ns), "count", len(pods))

			tui.RenderPodTable(app.Out, pods, tui.TableOptions{
				Verbose: verbose,
				Context: app.contextName(),
				Now:     app.Now(),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace (default: all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show restarts and age")

	return cmd
}

func newTopCmd(app *App) *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show pod resource usage",
		Long: `Show CPU and memory usage of pods. Requires metrics-server in the cluster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			fmt.Fprintln(app.Out, tui.RenderTitle("Pod Resource Usage:", app.contextName()))
			fmt.Fprintln(app.Out, tui.RenderRule())

			if err := runner.Run(cmd.Context(), exec.TopArgs(app.namespace(cmd, namespace)), app.streams()); err != nil {
				fmt.Fprintln(app.Err, tui.RenderWarning("Failed to get resource usage (metrics-server may not be installed)"))
				return fmt.Errorf("getting resource usage: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace (default: all)")

	return cmd
}
