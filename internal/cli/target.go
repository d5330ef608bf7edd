package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tapcraft-io/kdbg/internal/exec"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/internal/resolve"
	"github.com/tapcraft-io/kdbg/internal/tui"
	"github.com/tapcraft-io/kdbg/pkg/types"
)

// ErrAborted is returned when the user declines a confirmation prompt
var ErrAborted = errors.New("aborted")

// podOptions are the flags shared by commands that take a pod pattern
type podOptions struct {
	namespace string
	pick      bool
}

func addPodFlags(cmd *cobra.Command, opts *podOptions) {
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Namespace (default: all)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "Choose interactively when several pods match")
}

// namespace returns the -n flag when given, otherwise the configured default
func (a *App) namespace(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("namespace") {
		return flagValue
	}
	return a.cfg.Namespace
}

// resolveTarget resolves pattern to one pod. On ambiguity the candidates are
// printed and, with pick on a terminal, offered for an explicit choice.
func (a *App) resolveTarget(ctx context.Context, cmd *cobra.Command, pattern string, opts *podOptions) (types.Target, error) {
	r, err := a.newResolver()
	if err != nil {
		return types.Target{}, err
	}

	target, err := r.Resolve(ctx, pattern, a.namespace(cmd, opts.namespace))
	if err == nil {
		return target, nil
	}

	var ambiguous *resolve.AmbiguousError
	if errors.As(err, &ambiguous) {
		fmt.Fprintln(a.Out, tui.RenderNotice("Multiple pods found:"))
		for _, c := range ambiguous.Candidates {
			fmt.Fprintf(a.Out, "  - %s (namespace: %s)\n", tui.RenderPodName(c.Name), tui.RenderNamespace(c.Namespace))
		}

		if opts.pick && a.IsTerminal() {
			chosen, pickErr := a.Pick(pattern, ambiguous.Candidates)
			if pickErr == nil {
				return chosen, nil
			}
			if !errors.Is(pickErr, tui.ErrPickCancelled) {
				a.logger.Warn("picker failed", logging.Err(pickErr))
			}
		}
		return types.Target{}, err
	}

	var notFound *resolve.NotFoundError
	if errors.As(err, &notFound) && len(notFound.Suggestions) > 0 {
		fmt.Fprintln(a.Err, tui.RenderNotice("Did you mean: "+strings.Join(notFound.Suggestions, ", ")))
	}

	return types.Target{}, err
}

// confirm asks before running a destructive kubectl command. It only prompts
// when confirmation is configured and was not skipped with yes.
func (a *App) confirm(args []string, question string, yes bool) error {
	if yes || !a.cfg.ConfirmDestructive || !exec.IsDestructive(args) {
		return nil
	}

	fmt.Fprintf(a.Out, "%s [y/N] ", question)

	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return ErrAborted
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return ErrAborted
	}
}

// banner prints the header shown before kubectl takes over the terminal
func (a *App) banner(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(a.Out, line)
	}
	fmt.Fprintln(a.Out, tui.RenderRule())
}
