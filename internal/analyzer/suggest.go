package analyzer

import (
	"github.com/codewarden/codewarden/internal/language"
	"github.com/codewarden/codewarden/internal/types"
)

const (
	suggestSplit    = "Consider splitting this file into smaller modules"
	suggestRefactor = "Refactor recommended: complexity is very high"
	suggestSecrets  = "Move secrets to environment variables or secure configuration"
	suggestTodos    = "Address the accumulated TODO items"
	suggestLinter   = "Run a linter such as ESLint over this file"
)

// todoBacklogThreshold is the number of TODO-type findings above which the
// backlog suggestion fires.
const todoBacklogThreshold = 3

// deriveSuggestions builds the per-file suggestion list. Suggestions are
// additive, not mutually exclusive, and their order reflects the check order
// here.
func deriveSuggestions(rep types.FileReport) []string {
	var out []string
	if rep.Complexity > 20 {
		out = append(out, suggestSplit)
	}
	if rep.Complexity > 50 {
		out = append(out, suggestRefactor)
	}
	secrets, todos := 0, 0
	for _, f := range rep.Findings {
		switch {
		case f.Kind == types.KindSecret:
			secrets++
		case f.Rule == "todo_marker":
			todos++
		}
	}
	if secrets > 0 {
		out = append(out, suggestSecrets)
	}
	if todos > todoBacklogThreshold {
		out = append(out, suggestTodos)
	}
	if language.Linted(rep.Language) {
		out = append(out, suggestLinter)
	}
	return out
}
