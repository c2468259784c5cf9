package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewcut/crewcut/src/config"
	"github.com/crewcut/crewcut/src/logging"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "crewcut",
	Short: "C++ style checks and release chores",
	Long:  "crewcut — C++ style validation, license header management, and small git/release automation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.New(verbose)

		// Version prints without touching the config cascade.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile, log)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: crewcut.toml or .crewcut.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
