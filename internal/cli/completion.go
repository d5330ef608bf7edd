package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tapcraft-io/kdbg/internal/logging"
)

// completePods completes the pod pattern argument with the names of pods in
// the -n scope that contain the typed text. It lists pods once per call.
func (a *App) completePods(opts *podOptions) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		// Completion bypasses the pre-run hooks
		if err := a.setup(cmd, a.completionRootOptions(cmd)); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		q, err := a.querier()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		pods, err := q.List(cmd.Context(), a.namespace(cmd, opts.namespace))
		if err != nil {
			a.logger.Debug("completing pods", logging.Err(err))
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, pod := range pods {
			if strings.Contains(pod.Name, toComplete) {
				names = append(names, pod.Name)
			}
		}

		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeContexts completes --context with the contexts in kubeconfig
func (a *App) completeContexts(opts *rootOptions) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		contexts, err := a.Contexts(opts.kubeconfig)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, name := range contexts {
			if strings.HasPrefix(name, toComplete) {
				names = append(names, name)
			}
		}

		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// completionRootOptions reads the persistent flag values parsed for cmd
func (a *App) completionRootOptions(cmd *cobra.Command) *rootOptions {
	flags := cmd.Flags()
	opts := &rootOptions{}
	opts.kubectl, _ = flags.GetString("kubectl")
	opts.kubeconfig, _ = flags.GetString("kubeconfig")
	opts.context, _ = flags.GetString("context")
	opts.noColor, _ = flags.GetBool("no-color")
	opts.logLevel, _ = flags.GetString("log-level")
	opts.logFormat, _ = flags.GetString("log-format")
	return opts
}
