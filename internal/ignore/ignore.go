// Package ignore matches paths against a .codewardenignore file.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Matcher holds parsed ignore patterns. The zero value matches nothing.
type Matcher struct {
	dirs  []string // "node_modules/" style entries, without the slash
	globs []string // entries containing glob metacharacters
	exact []string // plain file entries
}

// Load parses an ignore file. A missing file yields an empty matcher and the
// underlying error so callers can distinguish "no file" from "no patterns".
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasSuffix(line, "/"):
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
		case strings.ContainsAny(line, "*?["):
			m.globs = append(m.globs, line)
		default:
			m.exact = append(m.exact, line)
		}
	}
	return m, sc.Err()
}

// Match reports whether the relative path is ignored.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	segments := strings.Split(rel, "/")
	for _, d := range m.dirs {
		for _, seg := range segments[:max(len(segments)-1, 0)] {
			if seg == d {
				return true
			}
		}
	}
	for _, g := range m.globs {
		if ok, _ := filepath.Match(g, base); ok {
			return true
		}
		if ok, _ := filepath.Match(g, rel); ok {
			return true
		}
	}
	for _, e := range m.exact {
		if rel == e || base == e || strings.HasPrefix(rel, e+"/") {
			return true
		}
	}
	return false
}
