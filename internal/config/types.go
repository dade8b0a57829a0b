package config

// Backend selects where the app store snapshot is persisted.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Config is the top-level chunlian configuration, corresponding to .chunlian.yml.
type Config struct {
	// APIKey is only ever read from the environment; Save never writes it.
	APIKey      string      `yaml:"-" koanf:"api_key"`
	BaseURL     string      `yaml:"base_url" koanf:"base_url"`
	Model       string      `yaml:"model" koanf:"model"`
	Port        int         `yaml:"port" koanf:"port"`
	ServeStatic bool        `yaml:"serve_static" koanf:"serve_static"`
	StaticDir   string      `yaml:"static_dir" koanf:"static_dir"`
	GatewayURL  string      `yaml:"gateway_url" koanf:"gateway_url"`
	DataDir     string      `yaml:"data_dir" koanf:"data_dir"`
	Store       StoreConfig `yaml:"store" koanf:"store"`
	LogLevel    string      `yaml:"log_level" koanf:"log_level"`
}

// StoreConfig holds persistence settings for the app store.
type StoreConfig struct {
	Backend Backend `yaml:"backend" koanf:"backend"`
}
