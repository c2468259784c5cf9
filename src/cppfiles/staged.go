package cppfiles

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// StagedFiles returns the paths staged in the index of the repository at
// root, relative to the repository root. Staged deletions are skipped:
// there is no content left to check.
func StagedFiles(root string) ([]string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	var files []string
	for path, s := range status {
		switch s.Staging {
		case git.Added, git.Modified, git.Renamed, git.Copied:
			files = append(files, path)
		}
	}

	// Status is a map; sort so discovery order is reproducible.
	sort.Strings(files)
	return files, nil
}
