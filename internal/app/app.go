// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"biosci/internal/config"
	"biosci/internal/logging"
	"biosci/internal/writers"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailed    = 1
	exitUsage     = 2
	exitIO        = 3
	exitCancelled = 130
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: exitUsage, err: err} }
func ioErr(err error) error    { return &exitError{code: exitIO, err: err} }

// errFailed reports that one or more inputs failed. Each failure has
// already been written to the output and warned about.
var errFailed = &exitError{code: exitFailed, err: errors.New("one or more inputs failed")}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext executes one command line against the process stdin and
// returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(parent, argv, os.Stdin, stdout, stderr)
}

// RunIO is RunContext with an explicit stdin.
func RunIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	st := &state{
		v:      config.New(),
		log:    logging.Discard(),
		stdout: outw,
		stderr: stderr,
	}
	root := newRootCmd(st)
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	code := exitCode(err)
	if parent.Err() != nil && code != exitOK {
		code = exitCancelled
	}
	if err != nil && err != errFailed && code != exitCancelled {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	if ferr := outw.Flush(); ferr != nil && !writers.IsBrokenPipe(ferr) {
		_, _ = fmt.Fprintln(stderr, ferr)
		if code == exitOK {
			code = exitIO
		}
	}
	return code
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, context.Canceled) {
		return exitCancelled
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// cobra reports unknown commands and bad positional arguments as plain
	// errors.
	return exitUsage
}
