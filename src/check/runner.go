// Package check orchestrates rule execution across the candidate file
// set.
package check

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/crewcut/crewcut/src/config"
	"github.com/crewcut/crewcut/src/cppfiles"
	"github.com/crewcut/crewcut/src/rules"
)

// ErrChecksFailed is returned by Run when at least one file failed a
// check. It signals a failing exit code, not an internal error.
var ErrChecksFailed = errors.New("check: style checks failed")

// Runner applies a rule set to the C++ files under Root. The run is
// fully synchronous: every file is opened, read, and closed inline.
type Runner struct {
	Config  config.CppConfig
	Exclude config.ExcludeConfig
	Root    string
	Log     *slog.Logger
}

// Run discovers candidate files, filters them to C++ kinds, and applies
// the given rules file by file. The first file with any failing result
// has each failure logged at error level, after which the run stops;
// later files are never touched. Contract violations and configuration
// errors abort the run immediately.
func (r *Runner) Run(rs []*rules.Rule) error {
	files, err := r.candidates()
	if err != nil {
		return err
	}

	files = cppfiles.FilterCpp(files)
	if len(files) == 0 {
		r.Log.Warn("no files to check")
		return nil
	}

	fileRules := rules.FileRules(rs)
	lineRules := rules.LineRules(rs)

	for _, file := range files {
		r.Log.Debug("checking file", "file", file)

		results, err := r.runFileRules(fileRules, file)
		if err != nil {
			return err
		}

		lineResults, err := r.runLineRules(lineRules, file)
		if err != nil {
			return err
		}
		results = append(results, lineResults...)

		failed := false
		for _, res := range results {
			if res.Failing() {
				failed = true
				r.Log.Error("check failed", "file", file, "description", res.Description)
			}
		}
		if failed {
			return fmt.Errorf("%w: %s", ErrChecksFailed, file)
		}
	}

	return nil
}

func (r *Runner) candidates() ([]string, error) {
	if r.Config.CheckOnlyStagedFiles {
		r.Log.Info("running checks on staged files")
		return cppfiles.StagedFiles(r.Root)
	}

	r.Log.Info("running full checks")

	dirs, err := cppfiles.TopLevelDirs(r.Root)
	if err != nil {
		return nil, fmt.Errorf("listing directories: %w", err)
	}
	r.Log.Debug("checking directories", "dirs", dirs)

	return cppfiles.ListFiles(dirs, r.Exclude.Dirs, r.Exclude.Files, 0)
}

// runFileRules applies every applicable file rule to the file's whole
// content. Handing it a non-file rule is a contract violation and fails
// immediately.
func (r *Runner) runFileRules(rs []*rules.Rule, file string) ([]rules.Result, error) {
	for _, rule := range rs {
		if rule.Input != rules.InputFile {
			return nil, fmt.Errorf("check: non-file rule %q passed to file rule execution", rule.Name)
		}
	}

	kind := cppfiles.Classify(file)

	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	in := rules.FileInput{Content: string(content), Path: file}

	var results []rules.Result
	for _, rule := range rs {
		if !rule.AppliesTo(kind) {
			continue
		}
		res, err := rule.Apply(in)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// runLineRules applies every applicable line rule to each line of the
// file in turn. Handing it a non-line rule is a contract violation and
// fails immediately.
func (r *Runner) runLineRules(rs []*rules.Rule, file string) ([]rules.Result, error) {
	for _, rule := range rs {
		if rule.Input != rules.InputLine {
			return nil, fmt.Errorf("check: non-line rule %q passed to line rule execution", rule.Name)
		}
	}

	kind := cppfiles.Classify(file)

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	var results []rules.Result
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := rules.LineInput{Text: scanner.Text()}
		for _, rule := range rs {
			if !rule.AppliesTo(kind) {
				continue
			}
			res, err := rule.Apply(line)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return results, nil
}
