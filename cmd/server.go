package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the message relay intermediary",
	Long:  `Starts the HTTP intermediary that accepts messages from the site and forwards them to the configured Telegram chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.ValidateRelay(); err != nil {
			return err
		}

		sender := relay.NewTelegramSender(relay.TelegramConfig{
			APIBase:  cfg.Relay.APIBase,
			BotToken: cfg.Relay.BotToken,
			ChatID:   cfg.Relay.ChatID,
			Timeout:  cfg.RelayTimeout(),
		}, logger.Named("telegram"))

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}, sender, logger.Named("server"))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		logger.Info("siteshell server starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.Strings("allowed_origins", cfg.Server.AllowedOrigins),
		)
		return g.Wait()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serverCmd)
}
