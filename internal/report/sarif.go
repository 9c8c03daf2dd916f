package report

import (
	"encoding/json"
	"io"

	"github.com/codewarden/codewarden/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID       string            `json:"ruleId"`
	Level        string            `json:"level"`
	Message      sarifMessage      `json:"message"`
	Locations    []sarifLoc        `json:"locations"`
	Fingerprints map[string]string `json:"partialFingerprints,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt     `json:"artifactLocation"`
	Region           *sarifRegion `json:"region,omitempty"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "error"
	case types.SevMed:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF emits findings as a SARIF 2.1.0 log for editor and CI ingest.
func WriteSARIF(w io.Writer, reports []types.FileReport, version string) error {
	results := []sarifResult{}
	for _, rep := range reports {
		for _, f := range rep.Findings {
			var region *sarifRegion
			if f.Line > 0 {
				region = &sarifRegion{StartLine: f.Line}
			}
			res := sarifResult{
				RuleID:  f.Rule,
				Level:   sevToLevel(f.Severity),
				Message: sarifMessage{Text: f.Message},
				Locations: []sarifLoc{{
					PhysicalLocation: sarifPhys{
						ArtifactLocation: sarifArt{URI: rep.Path},
						Region:           region,
					},
				}},
			}
			if f.Fingerprint != "" {
				res.Fingerprints = map[string]string{"primary": f.Fingerprint}
			}
			results = append(results, res)
		}
	}
	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs: []sarifRun{{
			Tool:    sarifTool{Driver: sarifDriver{Name: "codewarden", Version: version}},
			Results: results,
		}},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
