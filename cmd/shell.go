package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/db"
	"github.com/ziadkadry99/siteshell/internal/onboarding"
	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/shell"
	"github.com/ziadkadry99/siteshell/internal/tui"
)

var shellStartPath string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Browse the site shell in the terminal",
	Long: `Runs the interactive site shell in the terminal. Messages from the chat
widget and the contact form are posted to the relay intermediary at
shell.relay_url. The onboarding flag is kept in shell.storage_path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.ValidateShell(); err != nil {
			return err
		}

		// The terminal belongs to the UI, so logs go to a file.
		if logFile == "" {
			path := filepath.Join(filepath.Dir(cfg.Shell.StoragePath), "shell.log")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating log directory: %w", err)
			}
			l, err := newLogger(path)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
		}

		database, err := db.Open(cfg.Shell.StoragePath)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer database.Close()

		sender := relay.NewProxySender(cfg.Shell.RelayURL, cfg.ProxyTimeout(), logger.Named("proxy"))

		s, err := shell.New(shell.Options{
			Sender:          sender,
			Flags:           onboarding.NewStore(database),
			Logger:          logger,
			StartPath:       shellStartPath,
			ScrollThreshold: cfg.Shell.ScrollThreshold,
			OnboardingDelay: cfg.OnboardingDelay(),
			ChatResetDelay:  cfg.ChatResetDelay(),
		})
		if err != nil {
			return err
		}
		if err := s.Mount(context.Background()); err != nil {
			logger.Warn("onboarding auto-open disabled", zap.Error(err))
		}
		defer func() {
			s.Unmount()
			s.Wait()
		}()

		m := tui.New(s)
		defer m.Close()

		logger.Info("shell started", zap.String("relay", cfg.Shell.RelayURL), zap.String("storage", database.Path()))
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
			return fmt.Errorf("running shell: %w", err)
		}
		return nil
	},
}

func init() {
	shellCmd.Flags().StringVar(&shellStartPath, "path", "/", "page to open first")
	rootCmd.AddCommand(shellCmd)
}
