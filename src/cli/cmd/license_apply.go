package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/cppfiles"
	"github.com/crewcut/crewcut/src/license"
)

var lapDryRun bool

var licenseApplyCmd = &cobra.Command{
	Use:   "apply [dirs...]",
	Short: "Add the license header to every C++ file",
	Long: `Walk the given directories (default: the top-level directories of the
working tree) and prepend the configured license header to every C++
file missing it.`,
	RunE: runLicenseApply,
}

func init() {
	licenseApplyCmd.Flags().StringVar(&laHeader, "header", "", "license header file (overrides config)")
	licenseApplyCmd.Flags().BoolVar(&lapDryRun, "dry-run", false, "report files that would change without writing")

	licenseCmd.AddCommand(licenseApplyCmd)
}

func runLicenseApply(cmd *cobra.Command, args []string) error {
	header, err := headerPath()
	if err != nil {
		return err
	}

	dirs := args
	if len(dirs) == 0 {
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dirs, err = cppfiles.TopLevelDirs(root)
		if err != nil {
			return fmt.Errorf("listing directories: %w", err)
		}
	}

	files, err := cppfiles.ListFiles(dirs, cfg.Exclude.Dirs, cfg.Exclude.Files, 0)
	if err != nil {
		return err
	}
	files = cppfiles.FilterCpp(files)

	var changed int
	for _, file := range files {
		added, err := license.Insert(file, header, lapDryRun)
		if err != nil {
			return err
		}
		if !added {
			continue
		}
		changed++
		if lapDryRun {
			fmt.Printf("would add license header to %s\n", file)
		} else {
			color.Green("license header added to %s", file)
		}
	}

	if changed == 0 {
		fmt.Println("all files already carry the license header")
	}
	return nil
}
