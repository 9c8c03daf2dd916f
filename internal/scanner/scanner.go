// Package scanner applies the static rule table line by line.
package scanner

import (
	"strings"

	"github.com/codewarden/codewarden/internal/rules"
	"github.com/codewarden/codewarden/internal/types"
)

// Scan splits content on newlines and applies every rule to every line,
// reporting matches with 1-based line numbers. Multiple rules may fire on the
// same line and all matches are reported; matching is stateless and
// order-independent across lines.
//
// Secret rules are suppressed on lines that reference an environment-variable
// indirection (see rules.EnvIndirected): a value loaded from the environment
// is not a hard-coded secret, an explicit precision trade-off.
func Scan(path string, data []byte) []types.Finding {
	var out []types.Finding
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		n := i + 1
		if !rules.EnvIndirected(line) {
			for _, r := range rules.SecretRules() {
				if m := r.Matcher.FindString(line); m != "" {
					out = append(out, newFinding(r, path, n, m))
				}
			}
		}
		for _, r := range rules.IssueRules() {
			if m := r.Matcher.FindString(line); m != "" {
				out = append(out, newFinding(r, path, n, m))
			}
		}
	}
	return out
}

func newFinding(r rules.Rule, path string, line int, match string) types.Finding {
	return types.Finding{
		Kind:       r.Kind,
		Severity:   r.Severity,
		Rule:       r.ID,
		Message:    r.Message,
		Path:       path,
		Line:       line,
		Match:      match,
		Suggestion: r.Suggestion,
	}
}
