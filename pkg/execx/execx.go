// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/axlekit/axle/pkg/diag"
)

// ExitStatusError reports a subprocess (or script) that exited with a
// non-zero status.
type ExitStatusError struct {
	// Name is the human-readable name of the command, as given to Check.
	Name string
	// Code is the exit status.
	Code int
	// Stderr is the captured standard error output, if any was captured.
	Stderr []byte
}

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", e.Name, e.Code)
	if line := firstLine(e.Stderr); line != "" {
		msg += ": " + line
	}
	return msg
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// Check runs cmd and errors unless it exits successfully. name is used in
// the error message; pass the command's display name, not its full path.
func Check(cmd *exec.Cmd, name string) error {
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitStatusError{Name: name, Code: exitErr.ExitCode(), Stderr: exitErr.Stderr}
	}
	return diag.Wrap(err, "run "+name)
}

// CheckOutput runs cmd and returns its standard output, erroring unless the
// command exits successfully. Standard error is captured into the returned
// ExitStatusError on failure.
func CheckOutput(cmd *exec.Cmd, name string) ([]byte, error) {
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &ExitStatusError{Name: name, Code: exitErr.ExitCode(), Stderr: exitErr.Stderr}
	}
	return out, diag.Wrap(err, "run "+name)
}
