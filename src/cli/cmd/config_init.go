package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/config"
)

var ciForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented configuration template",
	Long: `Write a crewcut.toml template with every key commented out at its
default value. Refuses to overwrite an existing file unless --force is
given.`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&ciForce, "force", false, "overwrite an existing crewcut.toml")

	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	const path = "crewcut.toml"

	if !ciForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, pass --force to overwrite", path)
		}
	}

	if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	color.Green("wrote %s", path)
	return nil
}
