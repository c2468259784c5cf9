package config

// DefaultRepoURL is used for changelog release links when no repository
// URL is configured.
const DefaultRepoURL = "https://github.com/repo/owner"

// GitConfig holds git tag and repository configuration.
type GitConfig struct {
	// TagPrefix is stripped from tag names before version parsing, for
	// repositories tagging like "release/v1.2.3".
	TagPrefix string `toml:"tag_prefix"`

	// EmptyTagListAllowed treats a repository without tags as version
	// 0.0.0 instead of an error.
	EmptyTagListAllowed bool `toml:"empty_tag_list_allowed"`

	// RepoURL is the repository base URL used to build release links in
	// the changelog.
	RepoURL string `toml:"repo_url"`
}

// DefaultGitConfig returns the git defaults.
func DefaultGitConfig() GitConfig {
	return GitConfig{
		EmptyTagListAllowed: true,
		RepoURL:             DefaultRepoURL,
	}
}
