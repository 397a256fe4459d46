package config

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	PageSize int    `mapstructure:"page_size"`
}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 30,
		},
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "USD", PageSize: 10},
	}
}
