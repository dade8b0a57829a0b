package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// upstreamPresets are the base URLs offered by the wizard.
var upstreamPresets = []struct {
	Label   string
	BaseURL string
	Model   string
}{
	{Label: "DeepSeek", BaseURL: "https://api.deepseek.com", Model: "deepseek-chat"},
	{Label: "OpenAI", BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini"},
	{Label: "Custom (OpenAI-compatible)", BaseURL: "", Model: ""},
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("新春快乐! Let's configure chunlian.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Upstream.
	labels := make([]string, len(upstreamPresets))
	for i, p := range upstreamPresets {
		labels[i] = p.Label
	}
	upstreamPrompt := promptui.Select{
		Label: "Select chat-completion upstream",
		Items: labels,
	}
	idx, _, err := upstreamPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("upstream selection: %w", err)
	}
	preset := upstreamPresets[idx]

	baseURLPrompt := promptui.Prompt{
		Label:   "Base URL",
		Default: preset.BaseURL,
		Validate: func(s string) error {
			return validateURL("base_url", s)
		},
	}
	if cfg.BaseURL, err = baseURLPrompt.Run(); err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: preset.Model,
	}
	if cfg.Model, err = modelPrompt.Run(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 2. Gateway.
	portPrompt := promptui.Prompt{
		Label:   "Gateway port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)
	cfg.GatewayURL = fmt.Sprintf("http://localhost:%d", cfg.Port)

	// 3. Storage.
	backendPrompt := promptui.Select{
		Label: "Where should history and settings be stored?",
		Items: []string{string(BackendFile), string(BackendSQLite)},
	}
	_, backend, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store backend: %w", err)
	}
	cfg.Store.Backend = Backend(backend)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv(APIKeyEnvVar) == "" {
		fmt.Printf("\nNote: set %s in your environment (or .env) before running chunlian server.\n", APIKeyEnvVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
