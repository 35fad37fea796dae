package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Storage
	DatabaseFile string `mapstructure:"database_file"`

	// Session cookie signing key. Generated at startup when empty.
	SecretKey string `mapstructure:"secret_key"`

	// HTTP settings
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
}

const (
	DefaultDatabaseFile = "data.db"
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 5000
	DefaultLogLevel     = "info"
)

// Load reads configuration from the optional YAML file at configPath and from
// WATCHLIST_* environment variables. Every setting has a default, so running
// with no config file and no environment is valid.
func Load(configPath string) (*Config, error) {
	// Set defaults (registering the keys also makes env overrides visible
	// to Unmarshal)
	viper.SetDefault("database_file", DefaultDatabaseFile)
	viper.SetDefault("secret_key", "")
	viper.SetDefault("host", DefaultHost)
	viper.SetDefault("port", DefaultPort)
	viper.SetDefault("ssl_cert", "")
	viper.SetDefault("ssl_key", "")
	viper.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	viper.SetEnvPrefix("WATCHLIST")
	viper.AutomaticEnv()

	if configPath != "" {
		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseFile == "" {
		return fmt.Errorf("database_file is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert file does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key file does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("WATCHLIST_DEV_MODE") == "1"
}
