package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultConfigPath is where the wizard writes its result.
const DefaultConfigPath = ".siteshell.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to siteshell! Let's configure the relay and the shell.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Role of this machine.
	rolePrompt := promptui.Select{
		Label: "What will run here",
		Items: []string{
			"server: relay intermediary holding the messaging credentials",
			"shell:  interactive client that talks to an intermediary",
			"both",
		},
	}
	roleIdx, _, err := rolePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("role selection: %w", err)
	}
	wantServer := roleIdx == 0 || roleIdx == 2
	wantShell := roleIdx == 1 || roleIdx == 2

	if wantServer {
		// 2. Port.
		portPrompt := promptui.Prompt{
			Label:    "Intermediary port",
			Default:  strconv.Itoa(cfg.Server.Port),
			Validate: validatePort,
		}
		portStr, err := portPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("port: %w", err)
		}
		cfg.Server.Port, _ = strconv.Atoi(portStr)

		// 3. Allowed origins.
		originsPrompt := promptui.Prompt{
			Label:   "Allowed browser origins (comma-separated)",
			Default: strings.Join(cfg.Server.AllowedOrigins, ","),
		}
		originsStr, err := originsPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("allowed origins: %w", err)
		}
		cfg.Server.AllowedOrigins = splitAndTrim(originsStr)
	}

	if wantShell {
		// 4. Intermediary URL.
		urlPrompt := promptui.Prompt{
			Label:   "Relay intermediary URL",
			Default: fmt.Sprintf("http://localhost:%d", cfg.Server.Port),
		}
		relayURL, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("relay url: %w", err)
		}
		cfg.Shell.RelayURL = relayURL

		// 5. Storage.
		storagePrompt := promptui.Prompt{
			Label:   "Local storage file",
			Default: cfg.Shell.StoragePath,
		}
		storagePath, err := storagePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("storage path: %w", err)
		}
		cfg.Shell.StoragePath = storagePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Credentials stay in the environment.
	if wantServer {
		for _, v := range []string{EnvPrefix + "RELAY_BOT_TOKEN", EnvPrefix + "RELAY_CHAT_ID"} {
			if os.Getenv(v) == "" {
				fmt.Printf("\nNote: Set %s in the server's environment before running siteshell server.\n", v)
			}
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
