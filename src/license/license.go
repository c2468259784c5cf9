// Package license checks for and inserts required license headers.
package license

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/crewcut/crewcut/src/rules"
)

// ErrHeaderSourceMissing marks a missing required-header source file.
// This is a configuration error that aborts the whole run, not a
// per-file check failure.
var ErrHeaderSourceMissing = errors.New("required license header file not found")

// Check tests whether content begins with the exact text of the header
// file at headerPath. The match includes whitespace; nothing is trimmed
// or normalized. An empty header file trivially passes every file.
func Check(content, headerPath string) (rules.Result, error) {
	required, err := os.ReadFile(headerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rules.Result{}, fmt.Errorf("%w: %s", ErrHeaderSourceMissing, headerPath)
		}
		return rules.Result{}, fmt.Errorf("reading license header %s: %w", headerPath, err)
	}

	if strings.HasPrefix(content, string(required)) {
		return rules.Passed(), nil
	}
	return rules.Failed("Missing or incorrect license header."), nil
}

// NewRule builds the file rule enforcing the license header at
// headerPath.
func NewRule(reg *rules.Registry, headerPath string) (*rules.Rule, error) {
	return reg.New(rules.Spec{
		Name:        "License Header Check",
		Description: "Ensure that the file contains the required license header.",
		Category:    rules.CategoryCppStyle,
		Input:       rules.InputFile,
		Check: func(in rules.Input) (rules.Result, error) {
			file := in.(rules.FileInput)
			return Check(file.Content, headerPath)
		},
	})
}

// Insert prepends the header at headerPath to the file at path if it is
// not already present. It reports whether the file was (or would be)
// modified. With dryRun set, nothing is written.
func Insert(path, headerPath string, dryRun bool) (bool, error) {
	required, err := os.ReadFile(headerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%w: %s", ErrHeaderSourceMissing, headerPath)
		}
		return false, fmt.Errorf("reading license header %s: %w", headerPath, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.HasPrefix(string(content), string(required)) {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	updated := append(append([]byte{}, required...), content...)
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
