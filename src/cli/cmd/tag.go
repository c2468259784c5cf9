package cmd

import (
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Git version tag utilities",
	Long:  "Inspect and bump semantic version tags.",
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
