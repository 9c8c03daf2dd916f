// Package git lists locally changed files so analysis can be limited to the
// working set. Everything here is offline: no remotes are ever contacted.
package git

import (
	"fmt"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// ChangedFiles returns paths (joined with root) of files the worktree reports
// as added, modified, or untracked, in sorted order for determinism. Deleted
// files are skipped since there is nothing left to analyze.
func ChangedFiles(root string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	var out []string
	for rel, st := range status {
		if st.Worktree == gogit.Deleted || st.Staging == gogit.Deleted {
			continue
		}
		if st.Worktree == gogit.Unmodified && st.Staging == gogit.Unmodified {
			continue
		}
		out = append(out, filepath.Join(root, rel))
	}
	sort.Strings(out)
	return out, nil
}
