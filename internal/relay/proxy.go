package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MessagesPath is the intermediary endpoint that accepts payloads.
const MessagesPath = "/api/messages"

// ProxySender forwards payloads to the intermediary server, which owns the
// relay credentials. This is the sender the shell uses.
type ProxySender struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewProxySender creates a ProxySender targeting the intermediary at baseURL.
func NewProxySender(baseURL string, timeout time.Duration, logger *zap.Logger) *ProxySender {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProxySender{
		url:    strings.TrimRight(baseURL, "/") + MessagesPath,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Send posts the payload as JSON with a single attempt.
func (s *ProxySender) Send(ctx context.Context, p MessagePayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return &DeliveryError{Err: fmt.Errorf("marshalling payload: %w", err)}
	}

	if err := post(ctx, s.client, s.url, body); err != nil {
		s.logger.Warn("relay send failed",
			zap.String("sender", "proxy"),
			zap.String("url", s.url),
			zap.Error(err))
		return err
	}
	return nil
}
