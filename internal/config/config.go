package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "CHUNLIAN_"

// Load reads configuration from the given YAML file, then overlays
// environment variables. A .env file in the working directory is loaded
// into the environment first; variables already set are not overridden.
//
// Environment precedence, lowest first: OPENAI_API_KEY, OPENAI_BASE_URL,
// AI_MODEL, PORT and NODE_ENV=production, then CHUNLIAN_* keys.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.ProviderWithValue("", ".", legacyEnvKey), nil); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	// CHUNLIAN_STORE_BACKEND -> store.backend, CHUNLIAN_LOG_LEVEL -> log_level.
	if err := k.Load(env.Provider(envPrefix, ".", prefixedEnvKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// legacyEnvKey maps unprefixed variables to config keys; an empty key
// tells koanf to skip the variable.
func legacyEnvKey(name, value string) (string, any) {
	if name == "NODE_ENV" {
		if value == "production" {
			return "serve_static", true
		}
		return "", nil
	}
	if key, ok := legacyEnv[name]; ok && value != "" {
		return key, value
	}
	return "", nil
}

func prefixedEnvKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if rest, ok := strings.CutPrefix(key, "store_"); ok {
		return "store." + rest
	}
	return key
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if err := validateURL("base_url", c.BaseURL); err != nil {
		return err
	}
	if err := validateURL("gateway_url", c.GatewayURL); err != nil {
		return err
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}

	if c.ServeStatic && c.StaticDir == "" {
		return fmt.Errorf("static_dir is required when serve_static is on")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	switch c.Store.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid store.backend %q: must be one of file, sqlite", c.Store.Backend)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute URL", key, raw)
	}
	return nil
}

// DBPath is the SQLite database used by the sqlite store backend.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "chunlian.db")
}

// StoreDir is the directory used by the file store backend.
func (c *Config) StoreDir() string {
	return filepath.Join(c.DataDir, "storage")
}
