package tui

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/codewarden/codewarden/internal/report"
	"github.com/codewarden/codewarden/internal/types"
)

// copyFinding puts a one-line summary of the finding on the clipboard and
// returns a status message for the footer.
func copyFinding(e entry) string {
	f := e.finding
	text := fmt.Sprintf("%s:%d %s (%s/%s)", f.Path, f.Line, f.Message, f.Rule, f.Severity)
	if err := clipboard.WriteAll(text); err != nil {
		return "copy failed: " + err.Error()
	}
	return "finding copied"
}

// copyReport puts the full markdown report on the clipboard.
func copyReport(reports []types.FileReport) string {
	if err := clipboard.WriteAll(report.Markdown(reports)); err != nil {
		return "copy failed: " + err.Error()
	}
	return "markdown report copied"
}

// highlightLine runs a single source line through chroma using the language
// tag's lexer. Any failure falls back to the raw line.
func highlightLine(line, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var buf bytes.Buffer
	if err := formatters.TTY256.Format(&buf, styles.Get("monokai"), it); err != nil {
		return line
	}
	return buf.String()
}
