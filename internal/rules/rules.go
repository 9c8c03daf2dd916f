package rules

import (
	"regexp"
	"strings"

	"github.com/codewarden/codewarden/internal/types"
)

// Rule pairs a compiled matcher with its classification and the remediation
// suggestion attached to every finding it produces. The rule table is static
// and read-only for the process lifetime.
type Rule struct {
	ID         string
	Matcher    *regexp.Regexp
	Kind       types.Kind
	Severity   types.Severity
	Message    string
	Suggestion string
}

// Environment-indirection markers. A line carrying either marker is assumed
// to load the value from the environment, so secret rules stay quiet on it.
// Only these two literal idioms are recognized; bracket-indexed lookups are
// intentionally not handled.
const (
	envDottedMarker = "process.env."
	envVarMarker    = "$ENV"
)

// EnvIndirected reports whether the line references an environment-variable
// indirection and should be exempt from secret matching.
func EnvIndirected(line string) bool {
	return strings.Contains(line, envDottedMarker) || strings.Contains(line, envVarMarker)
}

var secretRules = []Rule{
	{
		ID:         "api_key",
		Matcher:    regexp.MustCompile(`(?i)api[_-]?key\s*[:=]{1,2}\s*["']?[A-Za-z0-9]{20,}`),
		Kind:       types.KindSecret,
		Severity:   types.SevHigh,
		Message:    "Hard-coded API key",
		Suggestion: "Load API keys from environment variables or a secrets manager",
	},
	{
		ID:         "password",
		Matcher:    regexp.MustCompile(`(?i)password\s*[:=]{1,2}\s*["']?[^\s"']{8,}`),
		Kind:       types.KindSecret,
		Severity:   types.SevHigh,
		Message:    "Hard-coded password",
		Suggestion: "Load passwords from environment variables or a secrets manager",
	},
	{
		ID:         "token",
		Matcher:    regexp.MustCompile(`(?i)token\s*[:=]{1,2}\s*["']?[A-Za-z0-9._-]{32,}`),
		Kind:       types.KindSecret,
		Severity:   types.SevHigh,
		Message:    "Hard-coded token",
		Suggestion: "Load tokens from environment variables or a secrets manager",
	},
	{
		ID:         "private_key",
		Matcher:    regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`),
		Kind:       types.KindSecret,
		Severity:   types.SevHigh,
		Message:    "Private key material",
		Suggestion: "Keep private keys out of source control; reference a key file or vault",
	},
}

var issueRules = []Rule{
	{
		ID:         "debug_print",
		Matcher:    regexp.MustCompile(`(?i)\bconsole\.(?:log|debug)\s*\(|\bprint(?:ln)?\s*\(|\bfmt\.Print|\bSystem\.out\.print`),
		Kind:       types.KindStyle,
		Severity:   types.SevLow,
		Message:    "Debug print statement; remove debug output before release",
		Suggestion: "Remove debug output or route it through a logger",
	},
	{
		ID:         "todo_marker",
		Matcher:    regexp.MustCompile(`\b(?:TODO|FIXME|HACK)\b`),
		Kind:       types.KindStyle,
		Severity:   types.SevLow,
		Message:    "TODO/FIXME marker",
		Suggestion: "Track and resolve TODO items before they go stale",
	},
	{
		ID:         "dynamic_eval",
		Matcher:    regexp.MustCompile(`\beval\s*\(|\bexec\s*\(|\bnew Function\s*\(`),
		Kind:       types.KindBug,
		Severity:   types.SevMed,
		Message:    "Dynamic code evaluation",
		Suggestion: "Avoid eval-style constructs; use explicit dispatch instead",
	},
}

// SecretRules returns the secret-detection rule family.
func SecretRules() []Rule { return secretRules }

// IssueRules returns the common-issue rule family.
func IssueRules() []Rule { return issueRules }

// All returns every rule, secret rules first.
func All() []Rule {
	out := make([]Rule, 0, len(secretRules)+len(issueRules))
	out = append(out, secretRules...)
	out = append(out, issueRules...)
	return out
}

// IDs returns the IDs of every rule in table order.
func IDs() []string {
	all := All()
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	return ids
}
