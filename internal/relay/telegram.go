package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTelegramAPI is the base URL of the Telegram Bot API.
const DefaultTelegramAPI = "https://api.telegram.org"

// TelegramSender posts messages to a chat through a Telegram bot. It holds the
// bot token, so it only ever runs inside the intermediary server.
type TelegramSender struct {
	apiBase  string
	botToken string
	chatID   string
	client   *http.Client
	logger   *zap.Logger
}

// TelegramConfig holds the bot credentials and endpoint for a TelegramSender.
type TelegramConfig struct {
	APIBase  string // defaults to DefaultTelegramAPI
	BotToken string
	ChatID   string
	Timeout  time.Duration
}

// NewTelegramSender creates a TelegramSender. A nil logger disables logging.
func NewTelegramSender(cfg TelegramConfig, logger *zap.Logger) *TelegramSender {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultTelegramAPI
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TelegramSender{
		apiBase:  strings.TrimRight(cfg.APIBase, "/"),
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send delivers the formatted payload with one sendMessage call.
func (s *TelegramSender) Send(ctx context.Context, p MessagePayload) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: s.chatID, Text: FormatText(p)})
	if err != nil {
		return s.fail(&DeliveryError{Err: fmt.Errorf("marshalling message: %w", err)})
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	return s.fail(post(ctx, s.client, url, body))
}

func (s *TelegramSender) fail(err error) error {
	if err == nil {
		return nil
	}
	// The URL embeds the bot token; only the status and cause are logged.
	s.logger.Warn("relay send failed",
		zap.String("sender", "telegram"),
		zap.Error(redact(err, s.botToken)))
	return err
}

// post sends a JSON body and maps every failure to a *DeliveryError.
func post(ctx context.Context, client *http.Client, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Err: fmt.Errorf("creating relay request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return &DeliveryError{Err: fmt.Errorf("sending relay request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("relay returned status %d", resp.StatusCode),
		}
	}
	return nil
}

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(msg, secret, "<redacted>"))
}
