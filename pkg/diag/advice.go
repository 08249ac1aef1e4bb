// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"github.com/charmbracelet/glamour"
)

// Advice is a Markdown remediation note that can accompany a diagnostic.
// It carries longer-form guidance than the one-line hints on Error, plus
// links to relevant documentation.
type Advice struct {
	// Markdown is the remediation text, rendered with glamour.
	Markdown string

	// Links are documentation URLs appended under a "See also" heading.
	Links []string
}

// Render renders the advice to styled terminal output. stylePath selects the
// glamour style ("dark", "light", "auto", or a path to a style JSON file).
func (a Advice) Render(stylePath string) (string, error) {
	md := a.Markdown
	if len(a.Links) > 0 {
		md += "\n\n## See also\n"
		for _, link := range a.Links {
			md += "\n- <" + link + ">"
		}
	}
	return glamour.Render(md, stylePath)
}
