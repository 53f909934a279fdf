package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/siteshell/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a siteshell configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the answers to the config file. Bot credentials are never written; supply them through SITESHELL_RELAY_BOT_TOKEN and SITESHELL_RELAY_CHAT_ID.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
