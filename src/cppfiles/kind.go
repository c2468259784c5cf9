// Package cppfiles classifies and discovers candidate files for C++ checks.
package cppfiles

import (
	"path/filepath"
	"strings"
)

// Kind is the coarse file classification used to match rules to files.
type Kind int

const (
	KindUnknown Kind = iota
	KindHeader
	KindSource
	KindBuildList
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "cpp-header"
	case KindSource:
		return "cpp-source"
	case KindBuildList:
		return "build-list"
	default:
		return "unknown"
	}
}

var headerExts = []string{".h", ".hpp"}
var sourceExts = []string{".c", ".cc", ".cpp", ".cxx"}

// Classify maps a filename to its Kind. Pure function of the name string:
// no I/O, case-sensitive extension matching.
func Classify(name string) Kind {
	for _, ext := range headerExts {
		if strings.HasSuffix(name, ext) {
			return KindHeader
		}
	}
	for _, ext := range sourceExts {
		if strings.HasSuffix(name, ext) {
			return KindSource
		}
	}
	if filepath.Base(name) == "CMakeLists.txt" {
		return KindBuildList
	}
	return KindUnknown
}

// IsCpp reports whether k is one of the C++ kinds (header or source).
func IsCpp(k Kind) bool {
	return k == KindHeader || k == KindSource
}

// AllKinds returns every defined Kind.
func AllKinds() []Kind {
	return []Kind{KindUnknown, KindHeader, KindSource, KindBuildList}
}

// CppKinds returns the C++ kinds only.
func CppKinds() []Kind {
	return []Kind{KindHeader, KindSource}
}

// FilterCpp keeps only paths classified as a C++ kind.
func FilterCpp(paths []string) []string {
	var out []string
	for _, p := range paths {
		if IsCpp(Classify(p)) {
			out = append(out, p)
		}
	}
	return out
}
