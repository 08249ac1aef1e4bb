// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the runtime.GOOS string literals used for
// platform-conditional behavior.
package platform

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
