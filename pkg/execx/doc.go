// SPDX-License-Identifier: MPL-2.0

// Package execx provides subprocess conveniences: a Check helper that turns
// non-zero exit statuses into errors carrying the command name, a Windows
// console-window suppressor, and an in-process portable shell runner built
// on mvdan.cc/sh.
package execx
