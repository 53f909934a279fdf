package config

// Config is the top-level siteshell configuration, corresponding to .siteshell.yml.
type Config struct {
	Server ServerConfig `yaml:"server" koanf:"server"`
	Relay  RelayConfig  `yaml:"relay" koanf:"relay"`
	Shell  ShellConfig  `yaml:"shell" koanf:"shell"`
}

// ServerConfig configures the relay intermediary.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// RelayConfig holds the messaging provider settings. BotToken and ChatID are
// secrets and are expected from the environment (SITESHELL_RELAY_BOT_TOKEN,
// SITESHELL_RELAY_CHAT_ID); Save never writes them.
type RelayConfig struct {
	APIBase        string `yaml:"api_base" koanf:"api_base"`
	BotToken       string `yaml:"bot_token,omitempty" koanf:"bot_token"`
	ChatID         string `yaml:"chat_id,omitempty" koanf:"chat_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ShellConfig configures the interactive client.
type ShellConfig struct {
	RelayURL          string  `yaml:"relay_url" koanf:"relay_url"`
	StoragePath       string  `yaml:"storage_path" koanf:"storage_path"`
	ScrollThreshold   float64 `yaml:"scroll_threshold" koanf:"scroll_threshold"`
	OnboardingDelayMS int     `yaml:"onboarding_delay_ms" koanf:"onboarding_delay_ms"`
	ChatResetDelayMS  int     `yaml:"chat_reset_delay_ms" koanf:"chat_reset_delay_ms"`
}
