// SPDX-License-Identifier: MPL-2.0

package diag

import "github.com/charmbracelet/lipgloss"

// Color palette shared by everything this library prints. The colors are
// chosen for good contrast on dark terminal backgrounds.
const (
	// ColorError is red - used for failure output.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorSuccess is green - used for positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorMuted is gray - used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")
)

var (
	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// MutedStyle is for hints and supplementary details.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Styled renders err with a styled "error:" prefix, hints included.
func Styled(err error) string {
	return ErrorStyle.Render("error: ") + Format(err, false)
}
