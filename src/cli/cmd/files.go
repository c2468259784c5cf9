package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/cppfiles"
)

var filesSkipFlagged bool

var filesCmd = &cobra.Command{
	Use:   "files [dirs...]",
	Short: "List checkable C++ files",
	Long: `List the C++ files the style checks would run against.

With --skip-flagged, files invoking any of the configured library
macros (exclude.buggy_cpp_library_macros) are dropped from the list.`,
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().BoolVar(&filesSkipFlagged, "skip-flagged", false, "drop files containing configured library macros")

	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
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

	if filesSkipFlagged {
		files, err = cppfiles.FilterFlagged(files, cfg.Exclude.BuggyLibraryMacros)
		if err != nil {
			return err
		}
	}

	for _, file := range files {
		fmt.Println(file)
	}
	return nil
}
