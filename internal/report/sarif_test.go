package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/codewarden/codewarden/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	reports := sampleReports()
	reports[0].Findings[0].Fingerprint = "deadbeefdeadbeef"

	var buf bytes.Buffer
	if err := WriteSARIF(&buf, reports, "0.1.0"); err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Fatalf("version: %v", doc["version"])
	}
	runs := doc["runs"].([]any)
	run := runs[0].(map[string]any)
	results := run["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0].(map[string]any)
	if first["ruleId"] != "api_key" || first["level"] != "error" {
		t.Fatalf("unexpected first result: %v", first)
	}
	if first["partialFingerprints"].(map[string]any)["primary"] != "deadbeefdeadbeef" {
		t.Fatal("fingerprint not propagated")
	}
}

func TestSevToLevel(t *testing.T) {
	if sevToLevel(types.SevHigh) != "error" || sevToLevel(types.SevMed) != "warning" || sevToLevel(types.SevLow) != "note" {
		t.Fatal("severity mapping broken")
	}
}

func TestWriteSARIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, nil, "0.1.0"); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Runs []struct {
			Results []any `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Runs[0].Results == nil {
		t.Fatal("results must be an empty array, not null")
	}
}
