package exec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tapcraft-io/kdbg/pkg/types"
)

// LogsOptions holds the optional parts of a logs invocation
type LogsOptions struct {
	Tail      int
	Follow    bool
	Previous  bool
	Container string
}

// GlobalArgs returns the flags prepended to every kubectl invocation
func GlobalArgs(kubeconfig, context string) []string {
	var args []string
	if kubeconfig != "" {
		args = append(args, "--kubeconfig", kubeconfig)
	}
	if context != "" {
		args = append(args, "--context", context)
	}
	return args
}

// ScopeArgs selects one namespace, or all of them when namespace is empty
func ScopeArgs(namespace string) []string {
	if namespace == "" {
		return []string{"--all-namespaces"}
	}
	return []string{"-n", namespace}
}

// ListPodsArgs requests a JSON pod listing
func ListPodsArgs(namespace string) []string {
	args := []string{"get", "pods"}
	args = append(args, ScopeArgs(namespace)...)
	return append(args, "-o", "json")
}

// LogsArgs builds a logs invocation. Follow goes last, as the interactive
// flags do for the other verbs.
func LogsArgs(t types.Target, opts LogsOptions) []string {
	args := []string{"logs", t.Name, "-n", t.Namespace, "--tail", strconv.Itoa(opts.Tail)}
	if opts.Container != "" {
		args = append(args, "-c", opts.Container)
	}
	if opts.Previous {
		args = append(args, "-p")
	}
	if opts.Follow {
		args = append(args, "-f")
	}
	return args
}

// ExecArgs builds an interactive exec invocation
func ExecArgs(t types.Target, container string, command []string) []string {
	args := []string{"exec", "-it", t.Name, "-n", t.Namespace}
	if container != "" {
		args = append(args, "-c", container)
	}
	args = append(args, "--")
	return append(args, command...)
}

// ShellAlternatives builds one exec invocation per shell, in order
func ShellAlternatives(t types.Target, container string, shells []string) [][]string {
	alternatives := make([][]string, 0, len(shells))
	for _, shell := range shells {
		alternatives = append(alternatives, ExecArgs(t, container, []string{shell}))
	}
	return alternatives
}

// DescribeArgs builds a describe invocation
func DescribeArgs(t types.Target) []string {
	return []string{"describe", "pod", t.Name, "-n", t.Namespace}
}

// TopArgs builds a resource usage invocation
func TopArgs(namespace string) []string {
	return append([]string{"top", "pods"}, ScopeArgs(namespace)...)
}

// PortForwardArgs builds a port-forward invocation
func PortForwardArgs(t types.Target, localPort, podPort int) []string {
	return []string{
		"port-forward",
		t.Name,
		fmt.Sprintf("%d:%d", localPort, podPort),
		"-n",
		t.Namespace,
	}
}

// DebugPodName names an ephemeral debug pod after the creation time
func DebugPodName(now time.Time) string {
	return fmt.Sprintf("debug-%d", now.Unix())
}

// DebugArgs builds a run invocation whose pod is removed by kubectl when the
// session ends
func DebugArgs(name, image, namespace, shell string) []string {
	return []string{
		"run",
		name,
		"--image", image,
		"-n", namespace,
		"--restart=Never",
		"--rm",
		"-it",
		"--",
		shell,
	}
}

// DeleteArgs builds a pod delete invocation
func DeleteArgs(t types.Target) []string {
	return []string{"delete", "pod", t.Name, "-n", t.Namespace}
}

// EventsArgs lists the events of one pod, oldest first
func EventsArgs(t types.Target) []string {
	return []string{
		"get", "events",
		"-n", t.Namespace,
		"--field-selector", "involvedObject.name=" + t.Name,
		"--sort-by", ".lastTimestamp",
	}
}

// Verb extracts the kubectl verb from an argument vector
func Verb(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			// global flags that take a separate value
			if arg == "--kubeconfig" || arg == "--context" {
				i++
			}
			continue
		}
		return arg
	}
	return ""
}

// IsDestructive checks if a command removes resources (requires confirmation)
func IsDestructive(args []string) bool {
	return Verb(args) == "delete"
}
