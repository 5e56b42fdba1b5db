// Package appshell wires a command runner to the process: signals, argv
// and the exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Runner executes one command line and returns its exit code.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits. SIGINT and SIGTERM cancel the run's
// context; a run that ends after cancellation exits 130 even if it
// reported success. With no arguments the help text is shown.
func Main(run Runner) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	os.Exit(execute(ctx, stop, run, os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, stop context.CancelFunc, run Runner, argv []string, stdout, stderr io.Writer) int {
	defer stop()
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
