package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crewcut/crewcut/src/logging"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "crewcut.toml", "")

	cfg, err := Load(path, logging.NewWriter(io.Discard, false))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Cpp.StyleChecks || !cfg.Cpp.LicenseHeaderCheck {
		t.Error("style and license checks must default to enabled")
	}
	if cfg.Cpp.CheckOnlyStagedFiles || cfg.Cpp.HeaderGuardsAccordingToFilepath {
		t.Error("staged-only and path guards must default to disabled")
	}
	if !cfg.Git.EmptyTagListAllowed {
		t.Error("empty tag list must default to allowed")
	}
	if cfg.File.Changelog != "CHANGELOG.md" {
		t.Errorf("changelog default = %q", cfg.File.Changelog)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "crewcut.toml", `
[cpp]
style_checks = false
license_header = "LICENSE_HEADER.txt"
check_only_staged_files = true
header_guards_according_to_filepath = true

[git]
tag_prefix = "release/"
empty_tag_list_allowed = false

[exclude]
dirs = ["vendor"]
buggy_cpp_library_macros = ["REGISTER_TYPE"]
`)

	cfg, err := Load(path, logging.NewWriter(io.Discard, false))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Cpp.StyleChecks {
		t.Error("style_checks = false not honored")
	}
	if !cfg.Cpp.LicenseHeaderCheck {
		t.Error("unset license_header_check must keep its default")
	}
	if cfg.Cpp.LicenseHeader != "LICENSE_HEADER.txt" {
		t.Errorf("license_header = %q", cfg.Cpp.LicenseHeader)
	}
	if !cfg.Cpp.CheckOnlyStagedFiles || !cfg.Cpp.HeaderGuardsAccordingToFilepath {
		t.Error("cpp toggles not honored")
	}
	if cfg.Git.TagPrefix != "release/" || cfg.Git.EmptyTagListAllowed {
		t.Errorf("git config not honored: %+v", cfg.Git)
	}
	if len(cfg.Exclude.Dirs) != 1 || cfg.Exclude.Dirs[0] != "vendor" {
		t.Errorf("exclude dirs = %v", cfg.Exclude.Dirs)
	}
	if len(cfg.Exclude.BuggyLibraryMacros) != 1 {
		t.Errorf("macros = %v", cfg.Exclude.BuggyLibraryMacros)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "crewcut.toml", `
[cpp]
style_cheks = true
`)

	if _, err := Load(path, logging.NewWriter(io.Discard, false)); err == nil {
		t.Fatal("misspelled key must be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), logging.NewWriter(io.Discard, false))
	if err == nil {
		t.Fatal("explicit missing config path must error")
	}
}

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestDiscoverNone(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", logging.NewWriter(io.Discard, false))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Cpp.StyleChecks {
		t.Error("no config file means defaults")
	}
}

func TestDiscoverSingle(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("crewcut.toml", []byte("[cpp]\nstyle_checks = false\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load("", logging.NewWriter(io.Discard, false))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cpp.StyleChecks {
		t.Error("discovered config not applied")
	}
}

func TestDiscoverMultipleFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, name := range []string{"crewcut.toml", ".crewcut.toml"} {
		if err := os.WriteFile(name, []byte("[cpp]\nstyle_checks = false\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	var logs strings.Builder
	cfg, err := Load("", logging.NewWriter(&logs, false))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Cpp.StyleChecks {
		t.Error("ambiguous cascade must fall back to defaults")
	}
	if !strings.Contains(logs.String(), "multiple config files") {
		t.Errorf("expected a warning, logs: %s", logs.String())
	}
}

func TestTemplateRoundTrips(t *testing.T) {
	// Every commented key, once uncommented, must parse cleanly.
	uncommented := strings.ReplaceAll(Template(), "#", "")
	uncommented = strings.ReplaceAll(uncommented, "\"<some file path>\"", "\"header.txt\"")

	path := writeConfig(t, "crewcut.toml", uncommented)
	if _, err := Load(path, logging.NewWriter(io.Discard, false)); err != nil {
		t.Fatalf("uncommented template must load: %v", err)
	}
}

func TestTemplateMentionsEverySection(t *testing.T) {
	tpl := Template()
	for _, section := range []string{"[cpp]", "[git]", "[file]", "[exclude]"} {
		if !strings.Contains(tpl, section) {
			t.Errorf("template missing %s", section)
		}
	}
}
