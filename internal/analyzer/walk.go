package analyzer

import (
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/codewarden/codewarden/internal/ignore"
	"github.com/codewarden/codewarden/internal/logging"
)

// IgnoreFileName is the repo-local ignore file honored during traversal.
const IgnoreFileName = ".codewardenignore"

// collect walks root and returns candidate file paths in lexical order.
// Oversized files are not filtered here: the per-file size ceiling is an
// analysis outcome (an explicit finding), not a selection rule.
func (a *Analyzer) collect(root string) ([]string, error) {
	ign, _ := ignore.Load(filepath.Join(root, IgnoreFileName))
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if a.opts.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		if filepath.Base(rel) == IgnoreFileName {
			return nil
		}
		if !a.allowedByGlobs(rel) {
			return nil
		}
		if ign.Match(rel) {
			logging.L.Debugf("ignored by %s: %s", IgnoreFileName, rel)
			return nil
		}
		if a.opts.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	return paths, err
}

// allowedByGlobs applies the include/exclude glob configuration. Include
// globs, when set, act as a positive filter; excludes are subtracted last.
// Matching uses forward-slash semantics.
func (a *Analyzer) allowedByGlobs(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	includes := parseGlobList(a.opts.IncludeGlobs)
	excludes := parseGlobList(a.opts.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(path string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
