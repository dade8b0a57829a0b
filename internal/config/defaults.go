package config

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".chunlian.yml"

// APIKeyEnvVar is the environment variable holding the upstream credential.
const APIKeyEnvVar = "OPENAI_API_KEY"

// legacyEnv maps the gateway's historical environment variable names to
// config keys. NODE_ENV is handled separately.
var legacyEnv = map[string]string{
	APIKeyEnvVar:      "api_key",
	"OPENAI_BASE_URL": "base_url",
	"AI_MODEL":        "model",
	"PORT":            "port",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "https://api.deepseek.com",
		Model:      "deepseek-chat",
		Port:       3000,
		StaticDir:  "dist",
		GatewayURL: "http://localhost:3000",
		DataDir:    ".chunlian",
		Store:      StoreConfig{Backend: BackendFile},
		LogLevel:   "info",
	}
}
