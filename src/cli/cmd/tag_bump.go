package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/gittag"
)

var (
	bumpMajor bool
	bumpMinor bool
	bumpPatch bool
)

var tagBumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Print the latest version tag incremented by one field",
	Long: `Print the next version tag: the latest tag with exactly one of
major, minor, or patch incremented.`,
	RunE: runTagBump,
}

func init() {
	tagBumpCmd.Flags().StringVar(&tagPrefix, "prefix", "", "tag prefix to match and strip (overrides config)")
	tagBumpCmd.Flags().BoolVar(&bumpMajor, "major", false, "increment the major version")
	tagBumpCmd.Flags().BoolVar(&bumpMinor, "minor", false, "increment the minor version")
	tagBumpCmd.Flags().BoolVar(&bumpPatch, "patch", false, "increment the patch version")

	tagCmd.AddCommand(tagBumpCmd)
}

func runTagBump(cmd *cobra.Command, args []string) error {
	var bump gittag.Bump
	switch {
	case bumpMajor && !bumpMinor && !bumpPatch:
		bump = gittag.BumpMajor
	case bumpMinor && !bumpMajor && !bumpPatch:
		bump = gittag.BumpMinor
	case bumpPatch && !bumpMajor && !bumpMinor:
		bump = gittag.BumpPatch
	default:
		return fmt.Errorf("specify exactly one of --major, --minor, or --patch")
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	opts := tagOptions()
	next, err := gittag.Next(root, opts, bump)
	if err != nil {
		return err
	}

	fmt.Println(gittag.Format(next, opts.Prefix))
	return nil
}
