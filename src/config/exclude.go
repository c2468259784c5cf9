package config

// ExcludeConfig holds exclusion lists for file discovery and the
// flagged-macro filter.
type ExcludeConfig struct {
	// Dirs are directory base names skipped during the recursive walk.
	Dirs []string `toml:"dirs"`

	// Files are file base names skipped during the recursive walk.
	Files []string `toml:"files"`

	// BuggyLibraryMacros lists library macros whose string-literal
	// invocations mark a file as unfit for style checking.
	BuggyLibraryMacros []string `toml:"buggy_cpp_library_macros"`
}

// DefaultExcludeConfig returns the exclusion defaults.
func DefaultExcludeConfig() ExcludeConfig {
	return ExcludeConfig{}
}
