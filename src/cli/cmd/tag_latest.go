package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/gittag"
)

var (
	tagPrefix  string
	tagNoEmpty bool
)

var tagLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the latest version tag",
	Long: `Print the highest semantic version tag of the repository.

A repository without tags prints v0.0.0 unless --no-empty is set, in
which case it is an error.`,
	RunE: runTagLatest,
}

func init() {
	tagLatestCmd.Flags().StringVar(&tagPrefix, "prefix", "", "tag prefix to match and strip (overrides config)")
	tagLatestCmd.Flags().BoolVar(&tagNoEmpty, "no-empty", false, "treat a repository without tags as an error")

	tagCmd.AddCommand(tagLatestCmd)
}

func tagOptions() gittag.Options {
	prefix := cfg.Git.TagPrefix
	if tagPrefix != "" {
		prefix = tagPrefix
	}
	allowed := cfg.Git.EmptyTagListAllowed
	if tagNoEmpty {
		allowed = false
	}
	return gittag.Options{Prefix: prefix, EmptyAllowed: allowed}
}

func runTagLatest(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	opts := tagOptions()
	latest, err := gittag.Latest(root, opts)
	if err != nil {
		return err
	}

	fmt.Println(gittag.Format(latest, opts.Prefix))
	return nil
}
