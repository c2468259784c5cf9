package style

import (
	"strings"

	"github.com/crewcut/crewcut/src/cppfiles"
	"github.com/crewcut/crewcut/src/rules"
)

// guardSearchLines bounds how far into the file the opening #ifndef may
// appear. Feature-detection and other conditional macros tend to show up
// later; a guard that far down is treated as missing.
const guardSearchLines = 50

// CheckHeaderGuard validates the include-guard structure of a header
// file: an #ifndef within the first guardSearchLines lines, a matching
// #define anywhere in the file, and a closing #endif. When byPath is set
// and the input carries a path, the guard macro must additionally equal
// the name derived from that path.
func CheckHeaderGuard(in rules.FileInput, byPath bool) rules.Result {
	lines := strings.Split(in.Content, "\n")

	macro, ok := findGuardMacro(lines)
	if !ok {
		return rules.Failed("Header guard macro not found with #ifndef.")
	}

	if !findDefine(lines, macro) {
		return rules.Failed("Header guard macro not defined with #define.")
	}

	if !findEndif(lines) {
		return rules.Failed("Header guard missing closing #endif.")
	}

	if byPath && in.Path != "" {
		expected := GuardMacroForPath(in.Path)
		if macro != expected {
			return rules.Failed(
				"Header guard macro %q does not match expected macro %q according to file path.",
				macro, expected)
		}
	}

	return rules.Passed()
}

// findGuardMacro scans at most the first guardSearchLines lines for an
// #ifndef directive and returns its macro name. The first hit wins so
// later conditional #ifndef directives are never mistaken for the guard.
func findGuardMacro(lines []string) (string, bool) {
	for i, raw := range lines {
		if i >= guardSearchLines {
			break
		}
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "#ifndef") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		return parts[1], true
	}
	return "", false
}

func findDefine(lines []string, macro string) bool {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "#define") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		if parts[1] == macro {
			return true
		}
	}
	return false
}

func findEndif(lines []string) bool {
	for _, raw := range lines {
		if strings.HasPrefix(strings.TrimLeft(raw, " \t"), "#endif") {
			return true
		}
	}
	return false
}

// GuardMacroForPath derives the expected guard macro from a header's
// path: uppercase, leading INCLUDE/ or TEST/ segment stripped, path
// separators doubled to "__", trailing .HPP/.H dropped, wrapped as
// __NAME_HPP__. For "include/myfile.hpp" the result is "__MYFILE_HPP__".
func GuardMacroForPath(path string) string {
	macro := strings.ToUpper(path)
	macro = strings.TrimPrefix(macro, "INCLUDE/")
	macro = strings.TrimPrefix(macro, "TEST/")
	macro = strings.ReplaceAll(macro, "/", "__")
	macro = strings.TrimSuffix(macro, ".HPP")
	macro = strings.TrimSuffix(macro, ".H")
	return "__" + macro + "_HPP__"
}

// NewHeaderGuardRule builds the file rule validating header guards.
// Registered against header files only; guards are meaningless in
// sources regardless of the category defaulting.
func NewHeaderGuardRule(reg *rules.Registry, byPath bool) (*rules.Rule, error) {
	return reg.New(rules.Spec{
		Name:        "CheckHeaderGuards",
		Description: "Ensure that all C++ header files have proper header guards.",
		Category:    rules.CategoryCppStyle,
		Input:       rules.InputFile,
		Kinds:       []cppfiles.Kind{cppfiles.KindHeader},
		Check: func(in rules.Input) (rules.Result, error) {
			return CheckHeaderGuard(in.(rules.FileInput), byPath), nil
		},
	})
}
