package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/codewarden/codewarden/internal/types"
)

// PrintOptions controls console rendering.
type PrintOptions struct {
	NoColor         bool
	ShowSuggestions bool
	HideMatches     bool
}

var (
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	medStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	pathStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func severityLabel(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.SevHigh:
		return highStyle.Render(string(s))
	case types.SevMed:
		return medStyle.Render(string(s))
	default:
		return lowStyle.Render(string(s))
	}
}

// PrintText renders reports in a plain columnar format, one line per finding,
// with a per-file header and a summary footer.
func PrintText(w io.Writer, reports []types.FileReport, opts PrintOptions) {
	for _, rep := range reports {
		header := fmt.Sprintf("%s (%s, complexity %d)", rep.Path, rep.Language, rep.Complexity)
		if opts.NoColor {
			fmt.Fprintln(w, header)
		} else {
			fmt.Fprintln(w, pathStyle.Render(rep.Path)+dimStyle.Render(fmt.Sprintf(" (%s, complexity %d)", rep.Language, rep.Complexity)))
		}
		for _, f := range rep.Findings {
			loc := rep.Path
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", rep.Path, f.Line)
			}
			line := fmt.Sprintf("  %-6s %-14s %s  %s", severityLabel(f.Severity, opts.NoColor), f.Rule, loc, f.Message)
			if !opts.HideMatches && f.Match != "" {
				line += "  " + MaskValue(f.Match)
			}
			fmt.Fprintln(w, line)
		}
		if opts.ShowSuggestions {
			for _, s := range rep.Suggestions {
				fmt.Fprintf(w, "  > %s\n", s)
			}
		}
	}
	printSummary(w, reports)
}

func printSummary(w io.Writer, reports []types.FileReport) {
	var all []types.Finding
	for _, rep := range reports {
		all = append(all, rep.Findings...)
	}
	high, med, low := types.CountBySeverity(all)
	fmt.Fprintln(w)
	if len(all) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
	}
	fmt.Fprintf(w, "Files analyzed: %d\n", len(reports))
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", len(all), high, med, low)
}

// MaskValue redacts the middle of a matched value so reports stay safe to
// paste around.
func MaskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

// WriteJSON emits the ordered report sequence as indented JSON.
func WriteJSON(w io.Writer, reports []types.FileReport) error {
	if reports == nil {
		reports = []types.FileReport{} // no `null` in JSON
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// ShouldFail reports whether any finding meets the fail-on threshold
// (low|medium|high). An empty or "none" threshold never fails.
func ShouldFail(reports []types.FileReport, failOn string) bool {
	var threshold int
	switch failOn {
	case "low":
		threshold = 1
	case "medium":
		threshold = 2
	case "high":
		threshold = 3
	default:
		return false
	}
	rank := map[types.Severity]int{types.SevLow: 1, types.SevMed: 2, types.SevHigh: 3}
	for _, rep := range reports {
		for _, f := range rep.Findings {
			if rank[f.Severity] >= threshold {
				return true
			}
		}
	}
	return false
}
