package config

import (
	"fmt"
	"strings"
)

// Template renders a fully commented TOML configuration template with
// every key at its default value, for `crewcut config init`.
func Template() string {
	var b strings.Builder
	cpp := DefaultCppConfig()
	git := DefaultGitConfig()
	file := DefaultFileConfig()

	b.WriteString("[cpp]\n")
	fmt.Fprintf(&b, "#style_checks = %t\n", cpp.StyleChecks)
	fmt.Fprintf(&b, "#license_header_check = %t\n", cpp.LicenseHeaderCheck)
	b.WriteString("#license_header = \"<some file path>\"\n")
	fmt.Fprintf(&b, "#check_only_staged_files = %t\n", cpp.CheckOnlyStagedFiles)
	fmt.Fprintf(&b, "#header_guards_according_to_filepath = %t\n", cpp.HeaderGuardsAccordingToFilepath)
	b.WriteString("\n")

	b.WriteString("[git]\n")
	fmt.Fprintf(&b, "#tag_prefix = %q\n", git.TagPrefix)
	fmt.Fprintf(&b, "#empty_tag_list_allowed = %t\n", git.EmptyTagListAllowed)
	fmt.Fprintf(&b, "#repo_url = %q\n", git.RepoURL)
	b.WriteString("\n")

	b.WriteString("[file]\n")
	fmt.Fprintf(&b, "#changelog = %q\n", file.Changelog)
	b.WriteString("\n")

	b.WriteString("[exclude]\n")
	b.WriteString("#dirs = []\n")
	b.WriteString("#files = []\n")
	b.WriteString("#buggy_cpp_library_macros = []\n")

	return b.String()
}
