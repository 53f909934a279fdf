package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "SITESHELL_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SITESHELL_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SITESHELL_RELAY_BOT_TOKEN -> relay.bot_token.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps SITESHELL_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + field
}

// Save writes the configuration to the given YAML file path. Relay secrets
// are left out.
func (c *Config) Save(path string) error {
	out := *c
	out.Relay.BotToken = ""
	out.Relay.ChatID = ""

	data, err := yamlv3.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Relay.TimeoutSeconds < 0 {
		return fmt.Errorf("relay.timeout_seconds must be non-negative")
	}
	if c.Shell.ScrollThreshold < 0 {
		return fmt.Errorf("shell.scroll_threshold must be non-negative")
	}
	if c.Shell.OnboardingDelayMS < 0 || c.Shell.ChatResetDelayMS < 0 {
		return fmt.Errorf("shell delays must be non-negative")
	}
	if c.Shell.StoragePath == "" {
		return fmt.Errorf("shell.storage_path is required")
	}
	return nil
}

// ValidateRelay checks that the intermediary has its relay credentials.
func (c *Config) ValidateRelay() error {
	if c.Relay.BotToken == "" {
		return fmt.Errorf("relay bot token is required: set %sRELAY_BOT_TOKEN", EnvPrefix)
	}
	if c.Relay.ChatID == "" {
		return fmt.Errorf("relay chat id is required: set %sRELAY_CHAT_ID", EnvPrefix)
	}
	return nil
}

// ValidateShell checks that the shell knows where to relay messages.
func (c *Config) ValidateShell() error {
	if c.Shell.RelayURL == "" {
		return fmt.Errorf("shell.relay_url is required")
	}
	if !strings.HasPrefix(c.Shell.RelayURL, "http://") && !strings.HasPrefix(c.Shell.RelayURL, "https://") {
		return fmt.Errorf("shell.relay_url must be an http(s) URL, got %q", c.Shell.RelayURL)
	}
	return nil
}
