package analyzer

import (
	"fmt"
	"os"
	"sync"

	"github.com/codewarden/codewarden/internal/complexity"
	"github.com/codewarden/codewarden/internal/language"
	"github.com/codewarden/codewarden/internal/logging"
	"github.com/codewarden/codewarden/internal/scanner"
	"github.com/codewarden/codewarden/internal/types"
)

// DefaultMaxFileBytes is the ceiling above which files are reported as too
// large and never scanned.
const DefaultMaxFileBytes int64 = 50 << 20

// Options controls analysis behavior. It is passed in explicitly at
// construction; there is no process-wide configuration singleton.
type Options struct {
	SecretDetection    bool
	ComplexityAnalysis bool
	MaxFileBytes       int64

	// Batch selection
	IncludeGlobs    string
	ExcludeGlobs    string
	DefaultExcludes bool

	// Threads > 1 parallelizes the per-file loop. Results are always
	// returned in enumeration order regardless.
	Threads int
}

// DefaultOptions enables both analyses with the default size ceiling.
func DefaultOptions() Options {
	return Options{
		SecretDetection:    true,
		ComplexityAnalysis: true,
		MaxFileBytes:       DefaultMaxFileBytes,
		DefaultExcludes:    true,
	}
}

// Analyzer coordinates the line scanner and complexity estimator per file and
// derives human-readable suggestions from their results.
type Analyzer struct {
	opts Options
}

// New returns an Analyzer with the given options. A zero MaxFileBytes falls
// back to DefaultMaxFileBytes.
func New(opts Options) *Analyzer {
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = DefaultMaxFileBytes
	}
	return &Analyzer{opts: opts}
}

// AnalyzeFile analyzes a single file. Failures are recovered locally: a file
// that cannot be read yields a report with one synthetic low-severity finding
// and is never a hard error.
func (a *Analyzer) AnalyzeFile(path string) types.FileReport {
	rep := types.FileReport{
		Path:     path,
		Language: language.Detect(path),
	}

	info, err := os.Stat(path)
	if err != nil {
		rep.Findings = []types.Finding{readFailure(path, err)}
		return rep
	}
	rep.SizeBytes = info.Size()

	if rep.SizeBytes > a.opts.MaxFileBytes {
		logging.L.Debugf("skipping oversized file %s (%d bytes)", path, rep.SizeBytes)
		rep.Findings = []types.Finding{{
			Kind:     types.KindComplexity,
			Severity: types.SevLow,
			Rule:     "file_too_large",
			Message:  fmt.Sprintf("File too large to analyze (%d bytes)", rep.SizeBytes),
			Path:     path,
		}}
		rep.Suggestions = []string{suggestSplit}
		return rep
	}

	data, err := os.ReadFile(path)
	if err != nil {
		rep.Findings = []types.Finding{readFailure(path, err)}
		return rep
	}

	if a.opts.SecretDetection {
		rep.Findings = scanner.Scan(path, data)
		for i := range rep.Findings {
			rep.Findings[i].Fingerprint = fingerprint(rep.Findings[i])
		}
	}
	if a.opts.ComplexityAnalysis {
		rep.Complexity = complexity.Score(data)
	}
	rep.Suggestions = deriveSuggestions(rep)
	return rep
}

// AnalyzePath analyzes root, which may be a single file or a directory tree.
// A missing root is the one fatal condition: it is rejected before any
// per-file work begins. Per-file failures never abort the batch.
func (a *Analyzer) AnalyzePath(root string) ([]types.FileReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %s", root)
	}
	if !info.IsDir() {
		return []types.FileReport{a.AnalyzeFile(root)}, nil
	}
	paths, err := a.collect(root)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeFiles(paths), nil
}

// AnalyzeFiles analyzes an explicit file list. Output order equals input
// order: with Threads > 1 workers write into an index-addressed slice, so
// parallel runs produce the same sequence as sequential ones.
func (a *Analyzer) AnalyzeFiles(paths []string) []types.FileReport {
	reports := make([]types.FileReport, len(paths))
	if a.opts.Threads <= 1 {
		for i, p := range paths {
			reports[i] = a.AnalyzeFile(p)
		}
		return reports
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < a.opts.Threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i] = a.AnalyzeFile(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return reports
}

func readFailure(path string, err error) types.Finding {
	return types.Finding{
		Kind:     types.KindBug,
		Severity: types.SevLow,
		Rule:     "read_failure",
		Message:  fmt.Sprintf("could not read file: %v", err),
		Path:     path,
	}
}
