// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package execx

import "os/exec"

// NoWindow suppresses creating a console window for cmd on Windows. It has
// no effect on other platforms and returns cmd for chaining.
func NoWindow(cmd *exec.Cmd) *exec.Cmd {
	return cmd
}
