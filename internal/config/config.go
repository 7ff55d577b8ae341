package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the PrimeEstate backend
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Database DatabaseConfig `mapstructure:"database"`
	Chat     ChatConfig     `mapstructure:"chat"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

// AdminConfig holds admin authentication configuration
type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ChatConfig holds chatbot dialogue configuration
type ChatConfig struct {
	WelcomeMessage string `mapstructure:"welcome_message"`
	// SignificantActions are case-insensitive substrings of an interest
	// label that force a lead write even after the first one was sent.
	SignificantActions []string `mapstructure:"significant_actions"`
	SessionTTLMinutes  int      `mapstructure:"session_ttl_minutes"`
	SeedCatalog        bool     `mapstructure:"seed_catalog"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("PRIMEESTATE")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")

	v.SetDefault("admin.api_key", "")

	v.SetDefault("database.path", "./data/primeestate.db")

	v.SetDefault("chat.welcome_message",
		"Hello! Welcome to PrimeEstate. I'm your virtual assistant. Could you please share your name?")
	v.SetDefault("chat.significant_actions", []string{
		"mortgage calculator",
		"requested agent",
	})
	v.SetDefault("chat.session_ttl_minutes", 60)
	v.SetDefault("chat.seed_catalog", true)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
