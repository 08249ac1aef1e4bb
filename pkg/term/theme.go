// SPDX-License-Identifier: MPL-2.0

package term

import "github.com/charmbracelet/lipgloss"

// HasDarkBackground reports whether the terminal appears to use a dark
// background. Detection is delegated to lipgloss and falls back to dark
// when the terminal gives no answer.
func HasDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}

// GlamourStyle returns the glamour style name matching the terminal
// background, suitable for rendering Markdown (e.g. diag.Advice).
func GlamourStyle() string {
	if HasDarkBackground() {
		return "dark"
	}
	return "light"
}
