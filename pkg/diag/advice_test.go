// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"strings"
	"testing"
)

func TestAdvice_Render(t *testing.T) {
	a := Advice{
		Markdown: "# Missing config\n\nCreate one with `init`.",
		Links:    []string{"https://example.com/docs/config"},
	}

	out, err := a.Render("dark")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Missing config") {
		t.Errorf("rendered advice missing title: %q", out)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("rendered advice missing links section: %q", out)
	}
}

func TestAdvice_RenderWithoutLinks(t *testing.T) {
	out, err := Advice{Markdown: "plain note"}.Render("light")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "See also") {
		t.Errorf("no links were given, got %q", out)
	}
}
