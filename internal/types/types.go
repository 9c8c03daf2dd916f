package types

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Kind classifies what a finding is about.
type Kind string

const (
	KindSecret     Kind = "secret"
	KindComplexity Kind = "complexity"
	KindStyle      Kind = "style"
	KindBug        Kind = "potential-bug"
)

// Finding describes a single issue detected in a file, optionally tied to a
// line. Findings are immutable once created: produced by the scanner or the
// analyzer, consumed by rendering.
type Finding struct {
	Kind        Kind     `json:"kind"`
	Severity    Severity `json:"severity"`
	Rule        string   `json:"rule,omitempty"`
	Message     string   `json:"message"`
	Path        string   `json:"path"`
	Line        int      `json:"line,omitempty"` // 1-based, 0 if not line-scoped
	Match       string   `json:"match,omitempty"`
	Suggestion  string   `json:"suggestion,omitempty"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// FileReport is the per-file analysis result. One per analyzed file; never
// mutated after construction.
type FileReport struct {
	Path        string    `json:"path"`
	Language    string    `json:"language"`
	SizeBytes   int64     `json:"size_bytes"`
	Complexity  int       `json:"complexity"`
	Findings    []Finding `json:"findings"`
	Suggestions []string  `json:"suggestions"`
}

// CountBySeverity tallies findings per severity level.
func CountBySeverity(findings []Finding) (high, med, low int) {
	for _, f := range findings {
		switch f.Severity {
		case SevHigh:
			high++
		case SevMed:
			med++
		default:
			low++
		}
	}
	return
}
