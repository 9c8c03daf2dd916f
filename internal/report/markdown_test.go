package report

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleReports())
	for _, want := range []string{
		"# Code analysis report",
		"| Severity | Rule | Location | Message |",
		"| high | api_key | `src/app.js:3` | Hard-coded API key |",
		"## Suggestions",
		"Run a linter",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownNoFindings(t *testing.T) {
	out := Markdown(nil)
	if strings.Contains(out, "| Severity |") {
		t.Fatal("empty report should not render a findings table")
	}
	if !strings.Contains(out, "0 file(s) analyzed") {
		t.Fatalf("missing summary:\n%s", out)
	}
}
