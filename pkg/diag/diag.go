// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"strings"
)

// Error is a diagnostic error with context for user-facing messages. It
// records what operation failed, which resource was involved, and optional
// hints for how to fix the issue.
//
// The zero value is not useful; use New or one of the Wrap constructors.
type Error struct {
	// Op describes what was being attempted as a verb phrase
	// (e.g. "read file", "dial websocket").
	Op string

	// Path identifies the file, URL, or entity involved (optional).
	Path string

	// Dest is the second path for two-path operations such as rename
	// and copy (optional).
	Dest string

	// Hints are suggestions on how to fix the issue (optional).
	Hints []string

	// Cause is the underlying error that triggered this one (optional).
	Cause error
}

// New creates an Error with the given operation.
func New(op string) *Error {
	return &Error{Op: op}
}

// Wrap annotates err with the operation being performed.
// It returns nil if err is nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Cause: err}
}

// WrapPath annotates err with the operation and the path it occurred at.
// It returns nil if err is nil.
func WrapPath(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Cause: err}
}

// WrapPath2 annotates err with the operation and both paths of a two-path
// operation. It returns nil if err is nil.
func WrapPath2(err error, op, src, dst string) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: src, Dest: dst, Cause: err}
}

// WithHint appends remediation hints and returns the receiver for chaining.
func (e *Error) WithHint(hints ...string) *Error {
	e.Hints = append(e.Hints, hints...)
	return e
}

// Error implements the error interface. It returns a concise message of the
// form "failed to <op>[: <path>[ -> <dest>]][: <cause>]".
func (e *Error) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Op)

	if e.Path != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Path)
		if e.Dest != "" {
			msg.WriteString(" -> ")
			msg.WriteString(e.Dest)
		}
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}
