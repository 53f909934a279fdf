package relay

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MaxBodyBytes bounds the size of a message request body.
const MaxBodyBytes = 64 << 10

// RegisterRoutes mounts the relay endpoint on the given router. The sender is
// expected to hold the upstream credentials.
func RegisterRoutes(r chi.Router, sender Sender, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Post(MessagesPath, handleSend(sender, logger))
}

func handleSend(sender Sender, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

		var p MessagePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := sender.Send(r.Context(), p); err != nil {
			var de *DeliveryError
			if errors.As(err, &de) {
				logger.Error("relaying message",
					zap.Int("upstream_status", de.StatusCode),
					zap.String("subject", p.Subject))
			}
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "delivery failed"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
