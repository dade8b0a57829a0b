package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/client"
	"github.com/ziadkadry99/chunlian/internal/config"
	"github.com/ziadkadry99/chunlian/internal/db"
	"github.com/ziadkadry99/chunlian/internal/generation"
	"github.com/ziadkadry99/chunlian/internal/llm"
	"github.com/ziadkadry99/chunlian/internal/store"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `chunlian init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	setupLogging(cfg.LogLevel)
	return cfg, nil
}

// newGenerator builds the upstream generator. A missing API key is not an
// error: the gateway still starts and reports it per request.
func newGenerator(cfg *config.Config) (*generation.Generator, error) {
	provider, err := llm.NewProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	if errors.Is(err, llm.ErrMissingAPIKey) {
		logrus.Warnf("%s is not set; generation requests will fail", config.APIKeyEnvVar)
		return generation.New(nil, cfg.Model), nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	return generation.New(provider, cfg.Model), nil
}

func newClient(cfg *config.Config) *client.Client {
	return client.New(cfg.GatewayURL, client.WithUserAgent("chunlian/"+Version))
}

// openStore opens the app store on the configured backend. The returned
// close function flushes the store and releases the backend.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		st, err := store.Open(ctx, store.NewSQLitePersister(database))
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		return st, func() error {
			return errors.Join(st.Close(), database.Close())
		}, nil

	default:
		st, err := store.Open(ctx, store.NewFilePersister(cfg.StoreDir()))
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}
}

// interrupted reports whether err means the user left a prompt.
func interrupted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, context.Canceled)
}
