package cppfiles

import (
	"os"
	"path/filepath"
	"slices"
)

// DefaultMaxDepth bounds the recursive walk so symlink loops cannot
// recurse forever.
const DefaultMaxDepth = 20

// ListFiles returns every file under the given directories, recursing at
// most maxDepth levels. Directories and files whose base name appears in
// the exclude lists are skipped. Pass maxDepth <= 0 for DefaultMaxDepth.
func ListFiles(dirs []string, excludeDirs, excludeFiles []string, maxDepth int) ([]string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var files []string
	for _, dir := range dirs {
		found, err := listDir(dir, excludeDirs, excludeFiles, maxDepth)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func listDir(dir string, excludeDirs, excludeFiles []string, depth int) ([]string, error) {
	if depth == 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if slices.Contains(excludeDirs, entry.Name()) {
				continue
			}
			found, err := listDir(path, excludeDirs, excludeFiles, depth-1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if slices.Contains(excludeFiles, entry.Name()) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// TopLevelDirs lists the directories directly under root. The check
// runner walks these rather than root itself, so files sitting directly
// in root are never candidates.
func TopLevelDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs, nil
}
