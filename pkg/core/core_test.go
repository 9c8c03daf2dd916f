package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyzePath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.txt")
	if err := os.WriteFile(p, []byte(`api_key = "abcdef1234567890abcdef12"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	reports, err := AnalyzePath(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzePath: %v", err)
	}
	if len(reports) != 1 || len(reports[0].Findings) != 1 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
}

func TestRuleIDs(t *testing.T) {
	ids := RuleIDs()
	if len(ids) == 0 {
		t.Fatal("expected configured rules")
	}
}
