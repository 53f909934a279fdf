package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultAllowedOrigins are the browser origins allowed to call the relay
// intermediary during local development.
var DefaultAllowedOrigins = []string{
	"http://localhost:*",
	"http://127.0.0.1:*",
}

// DefaultStoragePath returns the client-local storage file under the user's
// home directory, falling back to the working directory.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".siteshell", "storage.db")
	}
	return filepath.Join(home, ".siteshell", "storage.db")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...),
		},
		Relay: RelayConfig{
			APIBase:        "https://api.telegram.org",
			TimeoutSeconds: 10,
		},
		Shell: ShellConfig{
			RelayURL:          "http://localhost:8080",
			StoragePath:       DefaultStoragePath(),
			ScrollThreshold:   100,
			OnboardingDelayMS: 2000,
			ChatResetDelayMS:  3000,
		},
	}
}

// RelayTimeout returns the relay timeout as a duration.
func (c *Config) RelayTimeout() time.Duration {
	return time.Duration(c.Relay.TimeoutSeconds) * time.Second
}

// proxyOverhead is the time the intermediary may spend on top of its own
// upstream timeout before answering the shell.
const proxyOverhead = 5 * time.Second

// ProxyTimeout returns how long the shell waits for the intermediary. It
// outlasts the intermediary's upstream call so a delivered message is not
// reported as failed.
func (c *Config) ProxyTimeout() time.Duration {
	return c.RelayTimeout() + proxyOverhead
}

// OnboardingDelay returns the onboarding auto-open delay.
func (c *Config) OnboardingDelay() time.Duration {
	return time.Duration(c.Shell.OnboardingDelayMS) * time.Millisecond
}

// ChatResetDelay returns how long the chat widget acknowledges a success.
func (c *Config) ChatResetDelay() time.Duration {
	return time.Duration(c.Shell.ChatResetDelayMS) * time.Millisecond
}
