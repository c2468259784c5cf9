package gittag

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
)

func TestParse(t *testing.T) {
	cases := []struct {
		tag    string
		prefix string
		want   string
	}{
		{"v1.2.3", "", "1.2.3"},
		{"1.2.3", "", "1.2.3"},
		{"v0.0.0", "", "0.0.0"},
		{"release/v2.0.1", "release/", "2.0.1"},
		{"v10.20.30", "", "10.20.30"},
	}
	for _, tc := range cases {
		v, err := Parse(tc.tag, tc.prefix)
		if err != nil {
			t.Errorf("Parse(%q, %q): %v", tc.tag, tc.prefix, err)
			continue
		}
		if got := v.String(); got != tc.want {
			t.Errorf("Parse(%q, %q) = %s, want %s", tc.tag, tc.prefix, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, tag := range []string{
		"",
		"v1",
		"v1.2",
		"v1.2.3.4",
		"va.b.c",
		"latest",
		"v1.2.x",
	} {
		if _, err := Parse(tag, ""); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidTag", tag, err)
		}
	}
}

func TestFormat(t *testing.T) {
	v := semver.New(1, 2, 3, "", "")
	if got := Format(v, ""); got != "v1.2.3" {
		t.Errorf("Format = %q", got)
	}
	if got := Format(v, "release/"); got != "release/v1.2.3" {
		t.Errorf("Format with prefix = %q", got)
	}
}

func TestParseAllSortsAscending(t *testing.T) {
	versions, err := ParseAll([]string{"v1.10.0", "v1.2.0", "v0.9.9", "v1.2.1"}, "")
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}

	want := []string{"0.9.9", "1.2.0", "1.2.1", "1.10.0"}
	if len(versions) != len(want) {
		t.Fatalf("got %d versions, want %d", len(versions), len(want))
	}
	for i, v := range versions {
		if v.String() != want[i] {
			t.Errorf("versions[%d] = %s, want %s", i, v, want[i])
		}
	}
}

func TestParseAllSkipsUnprefixed(t *testing.T) {
	versions, err := ParseAll([]string{"release/v1.0.0", "v9.9.9", "nightly"}, "release/")
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(versions) != 1 || versions[0].String() != "1.0.0" {
		t.Errorf("versions = %v, want just 1.0.0", versions)
	}
}

func TestParseAllRejectsBadPrefixedTag(t *testing.T) {
	if _, err := ParseAll([]string{"release/oops"}, "release/"); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("err = %v, want ErrInvalidTag", err)
	}
}

func TestListOutsideRepository(t *testing.T) {
	dir := t.TempDir()

	versions, err := List(dir, Options{EmptyAllowed: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(versions) != 0 {
		t.Errorf("versions = %v, want none", versions)
	}

	if _, err := List(dir, Options{EmptyAllowed: false}); err == nil {
		t.Error("missing repository must error when empty list is not allowed")
	}
}

func TestLatestEmpty(t *testing.T) {
	dir := t.TempDir()

	v, err := Latest(dir, Options{EmptyAllowed: true})
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if v.String() != "0.0.0" {
		t.Errorf("latest of empty repo = %s, want 0.0.0", v)
	}

	if _, err := Latest(dir, Options{EmptyAllowed: false}); err == nil {
		t.Error("empty tag list must error when not allowed")
	}
}

func TestLatestNoTagsInRepository(t *testing.T) {
	dir := t.TempDir()
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("init repo: %v", err)
	}

	if _, err := Latest(dir, Options{EmptyAllowed: false}); !errors.Is(err, ErrNoTags) {
		t.Errorf("err = %v, want ErrNoTags", err)
	}
}

func TestNext(t *testing.T) {
	dir := t.TempDir()
	opts := Options{EmptyAllowed: true}

	cases := []struct {
		bump Bump
		want string
	}{
		{BumpMajor, "1.0.0"},
		{BumpMinor, "0.1.0"},
		{BumpPatch, "0.0.1"},
	}
	for _, tc := range cases {
		v, err := Next(dir, opts, tc.bump)
		if err != nil {
			t.Fatalf("Next(%v): %v", tc.bump, err)
		}
		if v.String() != tc.want {
			t.Errorf("Next(%v) = %s, want %s", tc.bump, v, tc.want)
		}
	}

	if _, err := Next(dir, opts, Bump(42)); err == nil {
		t.Error("unknown bump field must error")
	}
}
