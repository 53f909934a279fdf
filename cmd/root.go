package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/config"
)

var (
	cfgFile string
	verbose bool
	logFile string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "siteshell",
	Short: "Interactive site shell with a private message relay",
	Long: `siteshell runs the interactive shell of a small business website:
scroll-aware navigation, a first-visit onboarding modal, a chat widget and
a contact form. Messages are relayed to a Telegram chat through a small
server that keeps the bot credentials off the client.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}
