package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tapcraft-io/kdbg/internal/cli"
	"github.com/tapcraft-io/kdbg/internal/tui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Setup signal handling. kubectl shares the terminal and receives Ctrl+C
	// itself; the context stops anything still running on our side.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx, version)
	interrupted := ctx.Err() != nil
	stop()

	if err == nil {
		return
	}

	// An interrupted session (port-forward, logs -f) is not a failure to report
	if interrupted {
		os.Exit(130)
	}

	tui.FprintError(os.Stderr, err.Error())
	os.Exit(1)
}
