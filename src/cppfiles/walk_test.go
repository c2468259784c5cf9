package cppfiles

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "one.cpp"))
	writeFile(t, filepath.Join(dir, "a", "nested", "two.hpp"))
	writeFile(t, filepath.Join(dir, "b", "three.txt"))

	files, err := ListFiles([]string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}, nil, nil, 0)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
}

func TestListFilesExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "keep.cpp"))
	writeFile(t, filepath.Join(dir, "src", "build", "skip.cpp"))
	writeFile(t, filepath.Join(dir, "src", "drop.cpp"))

	files, err := ListFiles([]string{filepath.Join(dir, "src")}, []string{"build"}, []string{"drop.cpp"}, 0)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "keep.cpp" {
		t.Fatalf("got %v, want only keep.cpp", files)
	}
}

func TestListFilesDepthBound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "l1", "shallow.cpp"))
	writeFile(t, filepath.Join(dir, "l1", "l2", "l3", "deep.cpp"))

	// Depth 2 reaches l1 and l2 entries but never descends into l3.
	files, err := ListFiles([]string{filepath.Join(dir, "l1")}, nil, nil, 2)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	if !slices.Contains(names, "shallow.cpp") {
		t.Errorf("shallow.cpp missing from %v", names)
	}
	if slices.Contains(names, "deep.cpp") {
		t.Errorf("deep.cpp should be beyond the depth bound, got %v", names)
	}
}

func TestTopLevelDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rootfile.cpp"))
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	dirs, err := TopLevelDirs(dir)
	if err != nil {
		t.Fatalf("TopLevelDirs: %v", err)
	}
	if len(dirs) != 1 || filepath.Base(dirs[0]) != "sub" {
		t.Fatalf("got %v, want only sub", dirs)
	}
}
