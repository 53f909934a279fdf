package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/relay"
)

type captureSender struct {
	got []relay.MessagePayload
}

func (c *captureSender) Send(_ context.Context, p relay.MessagePayload) error {
	c.got = append(c.got, p)
	return nil
}

func TestHealthz(t *testing.T) {
	srv := New(Config{Port: 0}, &captureSender{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestRelayRouteMounted(t *testing.T) {
	sender := &captureSender{}
	srv := New(Config{}, sender, nil)

	payload := relay.MessagePayload{FirstName: "Jo", LastName: "Doe", Email: "jo@x.com", Subject: "Hi", Message: "hello"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, relay.MessagesPath, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if len(sender.got) != 1 || sender.got[0] != payload {
		t.Errorf("sender received %+v", sender.got)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := New(Config{AllowedOrigins: []string{"https://example.com"}}, &captureSender{}, nil)

	req := httptest.NewRequest(http.MethodOptions, relay.MessagesPath, nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, relay.MessagesPath, nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected origin allowed: %q", got)
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := New(Config{}, &captureSender{}, nil)
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
