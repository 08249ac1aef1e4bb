// SPDX-License-Identifier: MPL-2.0

// Package term provides small terminal conveniences: line-oriented prompts
// and light/dark theme detection for styled output.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/axlekit/axle/pkg/diag"
)

// Prompt prints a formatted prompt to w, then reads and returns one line
// from r, without the trailing newline.
func Prompt(r io.Reader, w io.Writer, format string, a ...any) (string, error) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		return "", diag.Wrap(err, "write prompt")
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", diag.Wrap(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm prompts for a yes/no answer. Empty input selects def; "y" or
// "yes" (any case) is yes, "n" or "no" is no. Other input re-prompts.
func Confirm(r io.Reader, w io.Writer, def bool, format string, a ...any) (bool, error) {
	suffix := " [y/N] "
	if def {
		suffix = " [Y/n] "
	}

	br := bufio.NewReader(r)
	for {
		if _, err := fmt.Fprintf(w, format+suffix, a...); err != nil {
			return false, diag.Wrap(err, "write prompt")
		}

		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return false, diag.Wrap(err, "read input")
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			// No newline at EOF and the input wasn't recognizable.
			return false, diag.Wrap(io.ErrUnexpectedEOF, "read input")
		}
	}
}
