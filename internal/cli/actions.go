package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tapcraft-io/kdbg/internal/config"
	"github.com/tapcraft-io/kdbg/internal/exec"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/internal/tui"
	"github.com/tapcraft-io/kdbg/pkg/types"
)

// debugShell is the shell started in debug pods
const debugShell = "/bin/sh"

// target formats "NAME (namespace: NS)" for banners
func target(t types.Target) string {
	return tui.RenderTarget(t.Name, t.Namespace)
}

func newLogsCmd(app *App) *cobra.Command {
	var (
		pod  podOptions
		logs exec.LogsOptions
	)

	cmd := &cobra.Command{
		Use:   "logs POD",
		Short: "Get pod logs",
		Long: `Print the logs of the pod whose name contains POD.

Examples:
  # Last 100 lines of the only pod matching "api"
  kdbg logs api

  # Follow a container of a pod in prod
  kdbg logs api -n prod -c server -f`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("tail") {
				logs.Tail = app.cfg.Tail
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(tui.RenderInfo("Logs for pod: " + target(t)))
			return runner.Run(cmd.Context(), exec.LogsArgs(t, logs), app.streams())
		},
	}

	addPodFlags(cmd, &pod)
	cmd.Flags().BoolVarP(&logs.Follow, "follow", "f", false, "Follow logs")
	cmd.Flags().IntVar(&logs.Tail, "tail", config.Default().Tail, "Number of lines")
	cmd.Flags().StringVarP(&logs.Container, "container", "c", "", "Container name")
	cmd.Flags().BoolVarP(&logs.Previous, "previous", "p", false, "Logs of the previous container instance")

	return cmd
}

func newExecCmd(app *App) *cobra.Command {
	var (
		pod       podOptions
		command   string
		container string
	)

	cmd := &cobra.Command{
		Use:   "exec POD [-- COMMAND [ARGS...]]",
		Short: "Execute command in pod",
		Long: `Run a command in the pod whose name contains POD, attached to the terminal.

Examples:
  # Start the default shell
  kdbg exec api

  # Run a command with arguments
  kdbg exec api -- ls -la /`,
		Args: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash == 0 || dash > 1 || (dash < 0 && len(args) != 1) || len(args) == 0 {
				return fmt.Errorf("exec takes one pod pattern, optionally followed by -- and a command")
			}
			return nil
		},
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := []string{app.cfg.ExecCommand}
			if cmd.Flags().Changed("command") {
				argv = []string{command}
			}
			if dash := cmd.ArgsLenAtDash(); dash >= 0 && len(args) > dash {
				argv = args[dash:]
			}

			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(
				tui.RenderInfo("Executing in pod: "+target(t)),
				tui.RenderInfo("Command: "+tui.RenderHighlight(strings.Join(argv, " "))),
			)
			return runner.Run(cmd.Context(), exec.ExecArgs(t, container, argv), app.streams())
		},
	}

	addPodFlags(cmd, &pod)
	cmd.Flags().StringVarP(&command, "command", "c", config.Default().ExecCommand, "Command to run")
	cmd.Flags().StringVar(&container, "container", "", "Container name")

	return cmd
}

func newDescribeCmd(app *App) *cobra.Command {
	var pod podOptions

	cmd := &cobra.Command{
		Use:               "describe POD",
		Short:             "Describe pod",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(tui.RenderInfo("Describing pod: " + target(t)))
			return runner.Run(cmd.Context(), exec.DescribeArgs(t), app.streams())
		},
	}

	addPodFlags(cmd, &pod)

	return cmd
}

func newForwardCmd(app *App) *cobra.Command {
	var pod podOptions

	cmd := &cobra.Command{
		Use:   "forward POD LOCAL_PORT POD_PORT",
		Short: "Port forward to pod",
		Long: `Forward a local port to a port of the pod whose name contains POD.

Examples:
  # Reach port 80 of the web pod on localhost:8080
  kdbg forward web 8080 80`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			localPort, err := parsePort("local port", args[1])
			if err != nil {
				return err
			}
			podPort, err := parsePort("pod port", args[2])
			if err != nil {
				return err
			}

			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(
				tui.RenderInfo(fmt.Sprintf("Port forwarding: localhost:%d -> %s:%d (namespace: %s)",
					localPort, tui.RenderName(t.Name), podPort, tui.RenderNamespace(t.Namespace))),
				tui.RenderNotice("Press Ctrl+C to stop"),
			)
			return runner.Run(cmd.Context(), exec.PortForwardArgs(t, localPort, podPort), app.streams())
		},
	}

	addPodFlags(cmd, &pod)

	return cmd
}

// parsePort parses and range-checks a port argument
func parsePort(name, s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, s)
	}
	if err := config.ValidatePort(name, port); err != nil {
		return 0, err
	}
	return port, nil
}

func newShellCmd(app *App) *cobra.Command {
	var (
		pod       podOptions
		container string
	)

	cmd := &cobra.Command{
		Use:   "shell POD",
		Short: "Open interactive shell in pod",
		Long: `Open a shell in the pod whose name contains POD, trying each configured
shell in turn (by default /bin/bash, then /bin/sh).`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(tui.RenderInfo("Opening shell in pod: " + target(t)))
			return runner.RunFirst(cmd.Context(), exec.ShellAlternatives(t, container, app.cfg.Shells), app.streams())
		},
	}

	addPodFlags(cmd, &pod)
	cmd.Flags().StringVar(&container, "container", "", "Container name")

	return cmd
}

func newDebugCmd(app *App) *cobra.Command {
	var image, namespace string

	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Create debug pod and shell into it",
		Long: `Start a throwaway pod and attach a shell to it. kubectl removes the pod
when the shell exits.

Examples:
  # busybox in the default namespace
  kdbg debug

  # A network toolbox next to the workloads in prod
  kdbg debug -i nicolaka/netshoot -n prod`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("image") {
				image = app.cfg.DebugImage
			}
			if !cmd.Flags().Changed("namespace") {
				namespace = app.cfg.DebugNamespace
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			name := exec.DebugPodName(app.Now())
			app.logger.Info("starting debug pod", logging.Pod(name), logging.Namespace(namespace), "image", image)

			app.banner(
				tui.RenderInfo(fmt.Sprintf("Creating debug pod: %s (image: %s, namespace: %s)",
					tui.RenderName(name), tui.RenderHighlight(image), tui.RenderNamespace(namespace))),
				tui.RenderNotice("Pod will be deleted when you exit the shell"),
			)
			return runner.Run(cmd.Context(), exec.DebugArgs(name, image, namespace, debugShell), app.streams())
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&image, "image", "i", defaults.DebugImage, "Container image")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", defaults.DebugNamespace, "Namespace")

	return cmd
}

func newRestartCmd(app *App) *cobra.Command {
	var (
		pod podOptions
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "restart POD",
		Short: "Restart pod (delete and let it recreate)",
		Long: `Delete the pod whose name contains POD so that its controller recreates it.

With confirm_destructive set in the config file, kdbg asks first unless -y is given.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(
				tui.RenderInfo("Restarting pod: "+target(t)),
				tui.RenderNotice("This will delete the pod and let the controller recreate it"),
			)

			deleteArgs := exec.DeleteArgs(t)
			if err := app.confirm(deleteArgs, fmt.Sprintf("Delete pod %s in %s?", t.Name, t.Namespace), yes); err != nil {
				return err
			}

			if err := runner.Run(cmd.Context(), deleteArgs, app.streams()); err != nil {
				return err
			}

			app.logger.Info("deleted pod", logging.Pod(t.Name), logging.Namespace(t.Namespace))
			fmt.Fprintln(app.Out, tui.RenderSuccess("Pod deleted. Waiting for recreation..."))
			return nil
		},
	}

	addPodFlags(cmd, &pod)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newEventsCmd(app *App) *cobra.Command {
	var pod podOptions

	cmd := &cobra.Command{
		Use:               "events POD",
		Short:             "Show pod events",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePods(&pod),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.resolveTarget(cmd.Context(), cmd, args[0], &pod)
			if err != nil {
				return err
			}

			runner, err := app.kubectl()
			if err != nil {
				return err
			}

			app.banner(tui.RenderInfo("Events for pod: " + target(t)))
			return runner.Run(cmd.Context(), exec.EventsArgs(t), app.streams())
		},
	}

	addPodFlags(cmd, &pod)

	return cmd
}
