// SPDX-License-Identifier: MPL-2.0

package cli

import "fmt"

// Exit codes produced by Execute. Constants rather than magic numbers so
// wrapping scripts can check them symbolically.
const (
	// ExitSuccess indicates the command completed successfully, or that
	// help or version output was requested.
	ExitSuccess = 0

	// ExitFailure indicates any failure without an explicit code:
	// malformed arguments or an error from the user function.
	ExitFailure = 1
)

// ExitError signals a specific exit code without forcing os.Exit inside a
// command handler. Execute unwraps it and returns Code; Err, if set, is
// reported like any other failure.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
