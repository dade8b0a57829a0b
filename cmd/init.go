package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/chunlian/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize chunlian configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the upstream model, gateway port and storage backend, and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
