package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/check"
	"github.com/crewcut/crewcut/src/rules"
	"github.com/crewcut/crewcut/src/style"
)

var (
	checkLicenseHeader string
	checkStaged        bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run C++ style checks",
	Long: `Run the configured C++ style checks over the repository.

Checks header guard structure, canonical keyword ordering, and license
headers. The run stops at the first file with failures and exits
non-zero.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkLicenseHeader, "license-header", "", "license header file to enforce (overrides config)")
	checkCmd.Flags().BoolVar(&checkStaged, "staged", false, "check only files staged in git")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cppCfg := cfg.Cpp
	if checkLicenseHeader != "" {
		cppCfg.LicenseHeader = checkLicenseHeader
	}
	if checkStaged {
		cppCfg.CheckOnlyStagedFiles = true
	}

	rs, err := style.BuildRules(cppCfg, rules.NewRegistry(), log)
	if err != nil {
		return err
	}

	runner := &check.Runner{
		Config:  cppCfg,
		Exclude: cfg.Exclude,
		Root:    root,
		Log:     log,
	}

	if err := runner.Run(rs); err != nil {
		if errors.Is(err, check.ErrChecksFailed) {
			return fmt.Errorf("checks failed, see log output above")
		}
		return err
	}
	return nil
}
