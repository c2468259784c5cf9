// Package gittag enumerates, orders, and bumps semantic version tags.
package gittag

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrInvalidTag marks a tag name that does not parse as vMAJOR.MINOR.PATCH.
var ErrInvalidTag = errors.New("gittag: invalid tag")

// ErrNoTags is returned by Latest when the repository has no tags and
// an empty tag list is not allowed.
var ErrNoTags = errors.New("gittag: no tags found")

// Options controls tag listing.
type Options struct {
	// Prefix is stripped from tag names before parsing; tags without it
	// are ignored.
	Prefix string

	// EmptyAllowed treats a missing repository or an empty tag list as
	// "no tags" instead of an error.
	EmptyAllowed bool
}

// Parse converts a tag name like "v1.2.3" (optionally carrying the
// configured prefix) into a version. The leading "v" is optional, but
// exactly three numeric components are required.
func Parse(tag string, prefix string) (*semver.Version, error) {
	name := strings.TrimPrefix(tag, prefix)
	name = strings.TrimPrefix(name, "v")

	v, err := semver.StrictNewVersion(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTag, tag, err)
	}
	return v, nil
}

// Format renders a version back into tag form: "<prefix>v1.2.3".
func Format(v *semver.Version, prefix string) string {
	return fmt.Sprintf("%sv%d.%d.%d", prefix, v.Major(), v.Minor(), v.Patch())
}

// List returns every version tag in the repository at root, sorted
// ascending. A tag matching the prefix that fails to parse is an error;
// tags without the prefix are skipped.
func List(root string, opts Options) ([]*semver.Version, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		if opts.EmptyAllowed {
			return nil, nil
		}
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	iter, err := repo.Tags()
	if err != nil {
		if opts.EmptyAllowed {
			return nil, nil
		}
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return ParseAll(names, opts.Prefix)
}

// ParseAll parses and sorts a list of tag names, skipping names without
// the prefix.
func ParseAll(names []string, prefix string) ([]*semver.Version, error) {
	var versions []*semver.Version
	for _, name := range names {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		v, err := Parse(name, prefix)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}

	sort.Sort(semver.Collection(versions))
	return versions, nil
}

// Latest returns the highest version tag. With no tags it returns 0.0.0
// when opts.EmptyAllowed, ErrNoTags otherwise.
func Latest(root string, opts Options) (*semver.Version, error) {
	versions, err := List(root, opts)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		if opts.EmptyAllowed {
			return semver.New(0, 0, 0, "", ""), nil
		}
		return nil, ErrNoTags
	}
	return versions[len(versions)-1], nil
}

// Bump field selectors for Next.
type Bump int

const (
	BumpMajor Bump = iota
	BumpMinor
	BumpPatch
)

// Next returns the latest tag incremented in the given field.
func Next(root string, opts Options, bump Bump) (*semver.Version, error) {
	latest, err := Latest(root, opts)
	if err != nil {
		return nil, err
	}

	var next semver.Version
	switch bump {
	case BumpMajor:
		next = latest.IncMajor()
	case BumpMinor:
		next = latest.IncMinor()
	case BumpPatch:
		next = latest.IncPatch()
	default:
		return nil, fmt.Errorf("gittag: unknown bump field %d", bump)
	}
	return &next, nil
}
