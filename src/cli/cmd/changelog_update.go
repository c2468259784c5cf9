package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/changelog"
)

var (
	clFile    string
	clRepoURL string
)

var changelogUpdateCmd = &cobra.Command{
	Use:   "update VERSION",
	Short: "Insert a release entry into the changelog",
	Long: `Insert a dated entry for VERSION under the "## Next Release" heading
and move the insertion marker directly beneath it.`,
	Args: cobra.ExactArgs(1),
	RunE: runChangelogUpdate,
}

func init() {
	changelogUpdateCmd.Flags().StringVar(&clFile, "file", "", "changelog file (overrides config)")
	changelogUpdateCmd.Flags().StringVar(&clRepoURL, "repo-url", "", "repository base URL for release links (overrides config)")

	changelogCmd.AddCommand(changelogUpdateCmd)
}

func runChangelogUpdate(cmd *cobra.Command, args []string) error {
	version := args[0]

	path := cfg.File.Changelog
	if clFile != "" {
		path = clFile
	}
	repoURL := cfg.Git.RepoURL
	if clRepoURL != "" {
		repoURL = clRepoURL
	}

	if err := changelog.Update(path, version, repoURL, time.Now()); err != nil {
		return err
	}

	color.Green("%s updated for version %s", path, version)
	return nil
}
