package report

import (
	"fmt"
	"strings"

	"github.com/codewarden/codewarden/internal/types"
)

// Markdown renders reports as a markdown document suitable for pasting into
// a pull request or issue. This is also the clipboard payload for --copy.
func Markdown(reports []types.FileReport) string {
	var b strings.Builder
	b.WriteString("# Code analysis report\n\n")

	var all []types.Finding
	for _, rep := range reports {
		all = append(all, rep.Findings...)
	}
	high, med, low := types.CountBySeverity(all)
	fmt.Fprintf(&b, "%d file(s) analyzed, %d finding(s) (high: %d, medium: %d, low: %d).\n\n",
		len(reports), len(all), high, med, low)

	if len(all) > 0 {
		b.WriteString("| Severity | Rule | Location | Message |\n")
		b.WriteString("|----------|------|----------|---------|\n")
		for _, rep := range reports {
			for _, f := range rep.Findings {
				loc := rep.Path
				if f.Line > 0 {
					loc = fmt.Sprintf("%s:%d", rep.Path, f.Line)
				}
				fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n", f.Severity, f.Rule, loc, f.Message)
			}
		}
		b.WriteString("\n")
	}

	wroteHeader := false
	for _, rep := range reports {
		if len(rep.Suggestions) == 0 {
			continue
		}
		if !wroteHeader {
			b.WriteString("## Suggestions\n\n")
			wroteHeader = true
		}
		fmt.Fprintf(&b, "- `%s`\n", rep.Path)
		for _, s := range rep.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	return b.String()
}
