package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyNamespace = "namespace"
	KeyPod       = "pod"
	KeyVerb      = "verb"
	KeyArgs      = "args"
	KeyDuration  = "duration"
	KeyExitCode  = "exit_code"
	KeyError     = "error"
)

// New builds a logger writing to w. Unknown levels fall back to warn and
// unknown formats to text.
func New(w io.Writer, logFormat, logLevel string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(logLevel)}

	var handler slog.Handler

	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Discard returns a logger that drops everything. Used where no logger was configured.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// Namespace returns a slog attribute for the namespace. Empty means all namespaces.
func Namespace(ns string) slog.Attr {
	if ns == "" {
		ns = "*"
	}
	return slog.String(KeyNamespace, ns)
}

// Pod returns a slog attribute for the pod name.
func Pod(name string) slog.Attr {
	return slog.String(KeyPod, name)
}

// Verb returns a slog attribute for the kubectl verb.
func Verb(verb string) slog.Attr {
	return slog.String(KeyVerb, verb)
}

// Args returns a slog attribute for a kubectl argument vector.
func Args(args []string) slog.Attr {
	return slog.String(KeyArgs, strings.Join(args, " "))
}

// Duration returns a slog attribute for an elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// ExitCode returns a slog attribute for a process exit code.
func ExitCode(code int) slog.Attr {
	return slog.Int(KeyExitCode, code)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
