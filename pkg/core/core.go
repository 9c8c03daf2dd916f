package core

import (
	"github.com/codewarden/codewarden/internal/analyzer"
	"github.com/codewarden/codewarden/internal/rules"
	"github.com/codewarden/codewarden/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Options = analyzer.Options
type Finding = types.Finding
type FileReport = types.FileReport

// DefaultOptions returns analysis options with both analyses enabled and the
// default size ceiling.
func DefaultOptions() Options { return analyzer.DefaultOptions() }

// AnalyzePath is the stable entrypoint for other programs: it analyzes a file
// or directory tree and returns the ordered report sequence.
func AnalyzePath(root string, opts Options) ([]FileReport, error) {
	return analyzer.New(opts).AnalyzePath(root)
}

// AnalyzeFile analyzes a single file. Read failures are reported as findings,
// never as errors.
func AnalyzeFile(path string, opts Options) FileReport {
	return analyzer.New(opts).AnalyzeFile(path)
}

// RuleIDs returns the IDs of the configured rules.
// Exposed for convenience to avoid importing internals directly.
func RuleIDs() []string { return rules.IDs() }
