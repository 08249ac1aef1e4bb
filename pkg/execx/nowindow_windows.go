// SPDX-License-Identifier: MPL-2.0

//go:build windows

package execx

import (
	"os/exec"
	"syscall"
)

// CREATE_NO_WINDOW process creation flag.
const createNoWindow = 0x08000000

// NoWindow suppresses creating a console window for cmd. It returns cmd for
// chaining.
func NoWindow(cmd *exec.Cmd) *exec.Cmd {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= createNoWindow
	return cmd
}
