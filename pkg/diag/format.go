// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// head returns err's own message without the trailing message of its cause.
// Errors built with fmt.Errorf("...: %w", cause) and *Error both render their
// cause as a ": <cause>" suffix, which is what gets stripped here.
func head(err error) string {
	msg := err.Error()
	cause := errors.Unwrap(err)
	if cause == nil {
		return msg
	}
	if stripped, ok := strings.CutSuffix(msg, ": "+cause.Error()); ok {
		return stripped
	}
	if msg == cause.Error() {
		// Passthrough wrapper adding no message of its own.
		return ""
	}
	return msg
}

// Chain returns the individual messages of err's unwrap chain, outermost
// first. Each entry is the message contributed by one error, without the
// messages of the errors below it.
func Chain(err error) []string {
	var msgs []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := head(e); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Fprint writes err's message and every cause to w, one per line, innermost
// last. It does nothing if err is nil.
func Fprint(w io.Writer, err error) {
	if err == nil {
		return
	}
	for _, msg := range Chain(err) {
		fmt.Fprintln(w, msg)
	}
}

// Format renders err for display. The non-verbose form is the error message
// followed by hint bullets, if any:
//
//	failed to <op>: <path>: <cause>
//	  • <hint 1>
//	  • <hint 2>
//
// When verbose is true the numbered unwrap chain is appended.
func Format(err error, verbose bool) string {
	var msg strings.Builder

	msg.WriteString(err.Error())

	var de *Error
	if errors.As(err, &de) && len(de.Hints) > 0 {
		msg.WriteString("\n")
		for _, hint := range de.Hints {
			msg.WriteString("\n  • ")
			msg.WriteString(hint)
		}
	}

	if verbose {
		if cause := errors.Unwrap(err); cause != nil {
			msg.WriteString("\n\nError chain:")
			depth := 1
			for e := cause; e != nil; e = errors.Unwrap(e) {
				fmt.Fprintf(&msg, "\n  %d. %s", depth, e.Error())
				depth++
			}
		}
	}

	return msg.String()
}
