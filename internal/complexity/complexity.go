// Package complexity implements a heuristic branching-density score.
//
// The score is a bounded token count, not a real cyclomatic-complexity
// computation: it does not parse the language, so it will over- or
// under-count depending on source dialect.
package complexity

import (
	"os"
	"regexp"
	"strings"
)

// MaxScore caps the reported score regardless of input size.
const MaxScore = 100

var branchTokens = []*regexp.Regexp{
	// conditionals
	regexp.MustCompile(`\bif\s*\(`),
	regexp.MustCompile(`\belse\b`),
	regexp.MustCompile(`\bswitch\s*\(`),
	regexp.MustCompile(`\bcase\s`),
	regexp.MustCompile(`\?[^:\n]*:`), // ternary
	// loops
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bwhile\s*\(`),
	regexp.MustCompile(`\bdo\s*\{`),
	regexp.MustCompile(`\.(?:forEach|map|filter|reduce)\s*\(`),
}

// Score counts conditional and loop tokens across non-blank lines, adds a
// base score of 1, and clamps the total to MaxScore. It is monotonically
// non-decreasing in the number of matched tokens and always at least 1.
func Score(data []byte) int {
	score := 1
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, re := range branchTokens {
			score += len(re.FindAllStringIndex(line, -1))
		}
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ScoreFile reads path and scores its content. A read failure yields the base
// score of 1 with no error surfaced.
func ScoreFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 1
	}
	return Score(data)
}
