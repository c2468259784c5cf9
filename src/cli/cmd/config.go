package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
	Long:  "Generate and inspect the crewcut configuration.",
}

func init() {
	rootCmd.AddCommand(configCmd)
}
