package config

// FileConfig holds file-related paths.
type FileConfig struct {
	// Changelog is the path to the changelog file updated on release.
	Changelog string `toml:"changelog"`
}

// DefaultFileConfig returns the file defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Changelog: "CHANGELOG.md",
	}
}
