package gateway

import (
	"fmt"
	"os"

	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultTOPdeskURL is used when TOPDESK_URL is not set.
const DefaultTOPdeskURL = "https://cartaoelo.topdesk.net/tas/api"

const defaultAddress = ":8080"

// Config holds all gateway settings. It is built once at startup and stays
// immutable afterwards.
type Config struct {
	// Address the HTTP server listens on.
	Address string `yaml:"address"`
	// Username and Password are the expected inbound Basic Auth credentials.
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	// LegacyErrors restores the historical behavior of masking upstream
	// failures as empty 200 responses instead of returning 502/504.
	LegacyErrors bool `yaml:"legacy_errors"`
	// TOPdesk is the outbound client configuration.
	TOPdesk topdesk.Config `yaml:"topdesk"`
}

var validate = validator.New()

// FromEnv builds the configuration from environment variables. Missing
// credentials are an error, there are no placeholder fallbacks.
func FromEnv() (*Config, error) {
	config := &Config{
		Address:      getenv("SERVER_ADDR", defaultAddress),
		Username:     os.Getenv("API_USERNAME"),
		Password:     os.Getenv("API_PASSWORD"),
		LegacyErrors: os.Getenv("LEGACY_ERRORS") == "true",
		TOPdesk:      TOPdeskFromEnv(),
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return config, nil
}

// TOPdeskFromEnv reads only the outbound client settings. Used directly by
// the CLI commands that exercise the client without the gateway.
func TOPdeskFromEnv() topdesk.Config {
	return topdesk.Config{
		BaseURL:  getenv("TOPDESK_URL", DefaultTOPdeskURL),
		Username: os.Getenv("TOPDESK_USER"),
		Password: os.Getenv("TOPDESK_API_KEY"),
	}
}

// LoadConfigFile reads and validates a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}
	if config.Address == "" {
		config.Address = defaultAddress
	}
	if config.TOPdesk.BaseURL == "" {
		config.TOPdesk.BaseURL = DefaultTOPdeskURL
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &config, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
