package report

import (
	"fmt"
	"io"

	"github.com/codewarden/codewarden/internal/types"
	"github.com/olekukonko/tablewriter"
)

// PrintTable renders findings in a bordered table followed by per-file
// suggestions and the summary footer.
func PrintTable(w io.Writer, reports []types.FileReport, opts PrintOptions) {
	tbl := tablewriter.NewWriter(w)
	tbl.Header("SEVERITY", "RULE", "LOCATION", "MESSAGE")
	rows := 0
	for _, rep := range reports {
		for _, f := range rep.Findings {
			loc := rep.Path
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", rep.Path, f.Line)
			}
			_ = tbl.Append([]string{string(f.Severity), f.Rule, loc, f.Message})
			rows++
		}
	}
	if rows > 0 {
		_ = tbl.Render()
	}
	if opts.ShowSuggestions {
		for _, rep := range reports {
			for _, s := range rep.Suggestions {
				fmt.Fprintf(w, "%s: %s\n", rep.Path, s)
			}
		}
	}
	printSummary(w, reports)
}
