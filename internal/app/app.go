// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"seqstat-core/sequence"
	"seqstat/internal/cliutil"
	"seqstat/internal/loader"
	"seqstat/internal/writers"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitIO       = 3
	exitCanceled = 130
)

// usageError marks errors caused by bad flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Input errors that map to the usage exit code rather than I/O.
var usageSentinels = []error{
	cliutil.ErrNoInput,
	loader.ErrNoRecord,
	loader.ErrMultipleRecords,
	sequence.ErrInvalidAlphabet,
	sequence.ErrEmptySequence,
	sequence.ErrInvalidMotif,
	sequence.ErrRegionIndexOutOfRange,
	sequence.ErrInvalidWindowSize,
	sequence.ErrInvalidThreshold,
}

func exitCode(err error) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return exitOK
	}
	if errors.Is(err, context.Canceled) {
		return exitCanceled
	}
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return exitUsage
	}
	for _, s := range usageSentinels {
		if errors.Is(err, s) {
			return exitUsage
		}
	}
	return exitIO
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(ctx, argv, os.Stdin, stdout, stderr)
}

// RunIO executes one seqstat invocation and returns its exit code.
func RunIO(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	e := &env{in: stdin, out: outw, errw: stderr}

	root := newRootCmd(e)
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	code := exitCode(err)
	if code != exitOK {
		_, _ = fmt.Fprintln(stderr, err)
		return code
	}
	if e.noMatch {
		return e.cfg.NoMatchExitCode
	}
	return exitOK
}
