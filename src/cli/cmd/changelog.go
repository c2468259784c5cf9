package cmd

import (
	"github.com/spf13/cobra"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Changelog maintenance",
	Long:  "Update the changelog when cutting a release.",
}

func init() {
	rootCmd.AddCommand(changelogCmd)
}
