package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/license"
)

var (
	laHeader string
	laDryRun bool
)

var licenseAddCmd = &cobra.Command{
	Use:   "add FILE...",
	Short: "Add the license header to specific files",
	Long: `Prepend the configured license header to each given file.

Files already starting with the header are left untouched, so the
command is safe to re-run. With --dry-run the files that would change
are reported without being written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLicenseAdd,
}

func init() {
	licenseAddCmd.Flags().StringVar(&laHeader, "header", "", "license header file (overrides config)")
	licenseAddCmd.Flags().BoolVar(&laDryRun, "dry-run", false, "report files that would change without writing")

	licenseCmd.AddCommand(licenseAddCmd)
}

func headerPath() (string, error) {
	if laHeader != "" {
		return laHeader, nil
	}
	if cfg.Cpp.LicenseHeader != "" {
		return cfg.Cpp.LicenseHeader, nil
	}
	return "", fmt.Errorf("no license header file configured; set cpp.license_header or pass --header")
}

func runLicenseAdd(cmd *cobra.Command, args []string) error {
	header, err := headerPath()
	if err != nil {
		return err
	}

	for _, file := range args {
		added, err := license.Insert(file, header, laDryRun)
		if err != nil {
			return err
		}
		if !added {
			continue
		}
		if laDryRun {
			fmt.Printf("would add license header to %s\n", file)
		} else {
			color.Green("license header added to %s", file)
		}
	}
	return nil
}
