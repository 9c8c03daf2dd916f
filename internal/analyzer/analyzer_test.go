package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codewarden/codewarden/internal/types"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestAnalyzeFileSecret(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg.txt", `const api_key = "abcdef1234567890abcdef1234567890";`)

	rep := New(DefaultOptions()).AnalyzeFile(p)
	require.Len(t, rep.Findings, 1)
	f := rep.Findings[0]
	require.Equal(t, types.KindSecret, f.Kind)
	require.Equal(t, types.SevHigh, f.Severity)
	require.Contains(t, f.Message, "API key")
	require.NotEmpty(t, f.Fingerprint)
	require.Contains(t, rep.Suggestions, suggestSecrets)
}

func TestAnalyzeFileReadFailure(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gone.txt")
	rep := New(DefaultOptions()).AnalyzeFile(p)
	if len(rep.Findings) != 1 {
		t.Fatalf("expected exactly one finding, got %d", len(rep.Findings))
	}
	f := rep.Findings[0]
	if f.Kind != types.KindBug || f.Severity != types.SevLow {
		t.Fatalf("expected potential-bug/low, got %s/%s", f.Kind, f.Severity)
	}
	if !strings.Contains(f.Message, "could not read") {
		t.Fatalf("message should indicate read failure: %q", f.Message)
	}
	if rep.Complexity != 0 {
		t.Fatalf("no complexity computation on read failure, got %d", rep.Complexity)
	}
}

func TestAnalyzeFileOversize(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "big.txt", strings.Repeat(`password = "hunter2hunter"`+"\n", 10))

	opts := DefaultOptions()
	opts.MaxFileBytes = 16
	rep := New(opts).AnalyzeFile(p)
	if len(rep.Findings) != 1 {
		t.Fatalf("oversize file must yield exactly one finding, got %d", len(rep.Findings))
	}
	f := rep.Findings[0]
	if f.Severity != types.SevLow || !strings.Contains(f.Message, "too large") {
		t.Fatalf("unexpected oversize finding: %+v", f)
	}
	if rep.Complexity != 0 {
		t.Fatalf("oversize complexity must be 0, got %d", rep.Complexity)
	}
	if len(rep.Suggestions) != 1 {
		t.Fatalf("expected one generic suggestion, got %v", rep.Suggestions)
	}
}

func TestAnalyzeFileToggles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "x.txt", `api_key = "abcdef1234567890abcdef1234"`+"\nif (a) {}\n")

	opts := DefaultOptions()
	opts.SecretDetection = false
	rep := New(opts).AnalyzeFile(p)
	if len(rep.Findings) != 0 {
		t.Fatalf("secret detection disabled but got findings: %+v", rep.Findings)
	}
	if rep.Complexity == 0 {
		t.Fatal("complexity analysis should still run")
	}

	opts = DefaultOptions()
	opts.ComplexityAnalysis = false
	rep = New(opts).AnalyzeFile(p)
	if rep.Complexity != 0 {
		t.Fatalf("complexity disabled but got %d", rep.Complexity)
	}
	if len(rep.Findings) == 0 {
		t.Fatal("secret detection should still run")
	}
}

func TestSuggestionThresholds(t *testing.T) {
	dir := t.TempDir()
	a := New(DefaultOptions())

	split := writeFile(t, dir, "branchy.txt", strings.Repeat("if (x) {}\n", 25))
	rep := a.AnalyzeFile(split)
	require.Equal(t, []string{suggestSplit}, rep.Suggestions)

	heavy := writeFile(t, dir, "heavy.txt", strings.Repeat("if (x) {}\n", 60))
	rep = a.AnalyzeFile(heavy)
	require.Equal(t, []string{suggestSplit, suggestRefactor}, rep.Suggestions)

	todos := writeFile(t, dir, "todos.txt", strings.Repeat("// TODO item\n", 4))
	rep = a.AnalyzeFile(todos)
	require.Contains(t, rep.Suggestions, suggestTodos)

	few := writeFile(t, dir, "few.txt", strings.Repeat("// TODO item\n", 3))
	rep = a.AnalyzeFile(few)
	require.NotContains(t, rep.Suggestions, suggestTodos)

	js := writeFile(t, dir, "app.js", "var x = 1\n")
	rep = a.AnalyzeFile(js)
	require.Equal(t, []string{suggestLinter}, rep.Suggestions)
}

func TestAnalyzePathMissing(t *testing.T) {
	if _, err := New(DefaultOptions()).AnalyzePath(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestAnalyzePathSingleFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "one.txt", "clean\n")
	reports, err := New(DefaultOptions()).AnalyzePath(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Path != p {
		t.Fatalf("unexpected reports: %+v", reports)
	}
}

func TestAnalyzePathOrderAndFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", `password = "hunter2hunter"`+"\n")
	writeFile(t, dir, "b.txt", "clean\n")
	writeFile(t, dir, "c.txt", "// TODO later\n")

	reports, err := New(DefaultOptions()).AnalyzePath(dir)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	require.True(t, strings.HasSuffix(reports[0].Path, "a.txt"))
	require.True(t, strings.HasSuffix(reports[1].Path, "b.txt"))
	require.True(t, strings.HasSuffix(reports[2].Path, "c.txt"))
}

func TestAnalyzeFilesParallelDeterminism(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt", "f.txt"} {
		paths = append(paths, writeFile(t, dir, name, `token = "ABCDEFGHIJKLMNOPQRSTUVWXYZ123456"`+"\nif (x) {}\n"))
	}

	seq := New(DefaultOptions()).AnalyzeFiles(paths)

	opts := DefaultOptions()
	opts.Threads = 4
	par := New(opts).AnalyzeFiles(paths)

	require.Equal(t, seq, par)
}

func TestAnalyzeFilesEmpty(t *testing.T) {
	// an empty batch, e.g. a clean worktree under --changed, yields no reports
	reports := New(DefaultOptions()).AnalyzeFiles(nil)
	require.Empty(t, reports)
}

func TestWalkFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.js", "var x = 1\n")
	writeFile(t, dir, "skipme.txt", "// TODO\n")
	writeFile(t, dir, ".codewardenignore", "skipme.txt\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755))
	writeFile(t, filepath.Join(dir, "node_modules"), "dep.js", "eval(x)\n")

	reports, err := New(DefaultOptions()).AnalyzePath(dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.True(t, strings.HasSuffix(reports[0].Path, "keep.js"))
}

func TestIncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var x = 1\n")
	writeFile(t, dir, "b.py", "x = 1\n")

	opts := DefaultOptions()
	opts.IncludeGlobs = "**/*.js"
	reports, err := New(opts).AnalyzePath(dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.True(t, strings.HasSuffix(reports[0].Path, "a.js"))
}
