package cmd

import (
	"github.com/spf13/cobra"
)

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "License header management",
	Long:  "Add and enforce license headers across C++ sources.",
}

func init() {
	rootCmd.AddCommand(licenseCmd)
}
