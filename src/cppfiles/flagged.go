package cppfiles

import (
	"fmt"
	"os"
	"regexp"
)

// FilterFlagged drops files that invoke any of the given library macros
// with a string-literal argument, e.g. SOME_MACRO("..."). Projects list
// macros here whose expansions are known to trip the style checks.
func FilterFlagged(files []string, macros []string) ([]string, error) {
	if len(macros) == 0 {
		return files, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(macros))
	for _, macro := range macros {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(macro)+`\("[^)]*"\)`))
	}

	var kept []string
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		flagged := false
		for _, pattern := range patterns {
			if pattern.Match(content) {
				flagged = true
				break
			}
		}
		if !flagged {
			kept = append(kept, file)
		}
	}
	return kept, nil
}
