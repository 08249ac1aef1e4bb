// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/axlekit/axle/pkg/diag"
)

// Option configures Execute and Run.
type Option func(*settings)

type settings struct {
	version string
	signals []os.Signal
	args    []string
	argsSet bool
	stdout  io.Writer
	stderr  io.Writer
}

// WithVersion enables --version reporting the given string.
func WithVersion(version string) Option {
	return func(s *settings) { s.version = version }
}

// WithSignals replaces the signals that cancel the command context.
// The default is os.Interrupt.
func WithSignals(signals ...os.Signal) Option {
	return func(s *settings) { s.signals = signals }
}

// WithArgs overrides the raw argument list instead of reading os.Args.
// Intended for tests.
func WithArgs(args []string) Option {
	return func(s *settings) {
		s.args = args
		s.argsSet = true
	}
}

// WithOutput redirects the command's standard output. Intended for tests.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.stdout = w }
}

// WithErrOutput redirects diagnostics and usage errors. Intended for tests.
func WithErrOutput(w io.Writer) Option {
	return func(s *settings) { s.stderr = w }
}

// Execute runs root through fang and maps the outcome to an exit status:
// 0 for success and for help/version requests, the carried code for an
// *ExitError, and 1 for any other failure. On failure the diagnostic and
// its cause chain are printed to stderr, innermost cause last. Errors from
// flag decoding and from the user function take the same path.
func Execute(ctx context.Context, root *cobra.Command, opts ...Option) int {
	s := settings{
		signals: []os.Signal{os.Interrupt},
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.argsSet {
		if s.args == nil {
			// cobra falls back to os.Args for a nil slice.
			s.args = []string{}
		}
		root.SetArgs(s.args)
	}
	if s.stdout != nil {
		root.SetOut(s.stdout)
	}
	root.SetErr(s.stderr)

	fangOpts := []fang.Option{
		fang.WithNotifySignal(s.signals...),
		// One reporting path for decoding errors, user-function failures,
		// and ExitErrors alike: message plus cause chain, innermost last.
		fang.WithErrorHandler(func(_ io.Writer, _ fang.Styles, err error) {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				// A bare exit code carries no diagnostic to print.
				if exitErr.Err != nil {
					diag.Fprint(s.stderr, exitErr.Err)
				}
				return
			}
			diag.Fprint(s.stderr, err)
		}),
	}
	if s.version != "" {
		fangOpts = append(fangOpts, fang.WithVersion(s.version))
	}

	err := fang.Execute(ctx, root, fangOpts...)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// Run is Execute plus os.Exit. It is the one-liner for main:
//
//	func main() { cli.Run(root) }
func Run(root *cobra.Command, opts ...Option) {
	os.Exit(Execute(context.Background(), root, opts...))
}
