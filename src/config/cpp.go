package config

// CppConfig holds the C++ check configuration.
type CppConfig struct {
	// StyleChecks toggles the built-in style rules (keyword order,
	// header guards).
	StyleChecks bool `toml:"style_checks"`

	// LicenseHeaderCheck toggles verification that source files start
	// with the expected license header.
	LicenseHeaderCheck bool `toml:"license_header_check"`

	// LicenseHeader is the path to the file whose contents every source
	// file must start with. Empty disables the rule even when the check
	// is on.
	LicenseHeader string `toml:"license_header"`

	// CheckOnlyStagedFiles limits checks to files staged in git, for
	// pre-commit hooks.
	CheckOnlyStagedFiles bool `toml:"check_only_staged_files"`

	// HeaderGuardsAccordingToFilepath enforces that a header's guard
	// macro matches the name derived from its path.
	HeaderGuardsAccordingToFilepath bool `toml:"header_guards_according_to_filepath"`
}

// DefaultCppConfig returns the C++ check defaults.
func DefaultCppConfig() CppConfig {
	return CppConfig{
		StyleChecks:        true,
		LicenseHeaderCheck: true,
	}
}
