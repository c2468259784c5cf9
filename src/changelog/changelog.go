// Package changelog rewrites the changelog's insertion marker when a
// release is cut.
package changelog

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// InsertionMarker sits under the "Next Release" heading and anchors
// where release tooling appends generated notes.
const InsertionMarker = "<!-- insertion marker -->"

// ErrNoReleaseHeading is returned when the changelog has no
// "## Next Release" heading to insert under.
var ErrNoReleaseHeading = errors.New("changelog: could not find '## Next Release' heading")

var nextReleaseRe = regexp.MustCompile(`^##\s+Next Release`)

// Update inserts a dated release entry for version under the
// "## Next Release" heading of the changelog at path and moves the
// insertion marker directly beneath that heading. repoURL is the
// repository base used for the release link.
func Update(path, version, repoURL string, now time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading changelog: %w", err)
	}

	entry := fmt.Sprintf("## [%s](%s/releases/tag/%s) - %s",
		version, repoURL, version, now.UTC().Format("2006-01-02"))

	lines := strings.Split(string(data), "\n")
	var updated []string
	inserted := false

	for _, line := range lines {
		switch {
		case !inserted && nextReleaseRe.MatchString(line):
			// The marker always sits right below the heading; the new
			// entry follows it so older entries stay beneath.
			updated = append(updated, line, "", InsertionMarker, "", entry, "")
			inserted = true
		case strings.Contains(line, InsertionMarker):
			// Drop the old marker wherever it was.
		default:
			updated = append(updated, line)
		}
	}

	if !inserted {
		return ErrNoReleaseHeading
	}

	out := strings.Join(updated, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}
