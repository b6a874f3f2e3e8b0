// Package models defines data structures for configuration, requests and results.
package models

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL      = "http://127.0.0.1:5000/api"
	DefaultTimeout     = 60 * time.Second
	DefaultDownloadDir = "."
)

// Config holds runtime configuration for the client.
// Values come from the YAML file, then .env / SUMMARIZER_* environment, then CLI flags.
type Config struct {
	APIURL      string        `yaml:"api_url"`
	Timeout     time.Duration `yaml:"timeout"`
	DownloadDir string        `yaml:"download_dir"`
	LogFile     string        `yaml:"log_file"`
	Defaults    Defaults      `yaml:"defaults"`
}

// Defaults are the summarize form values used when a flag is not given.
type Defaults struct {
	Format   Format `yaml:"format"`
	Language string `yaml:"language"`
	Length   Length `yaml:"length"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		Timeout:     DefaultTimeout,
		DownloadDir: DefaultDownloadDir,
		Defaults: Defaults{
			Format:   FormatParagraph,
			Language: "en",
			Length:   LengthMedium,
		},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, &ConfigError{Field: path, Message: err.Error()}
			}
		}
	}

	// Load .env file if exists
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	c.APIURL = getEnvOrDefault("SUMMARIZER_API_URL", c.APIURL)
	c.DownloadDir = getEnvOrDefault("SUMMARIZER_DOWNLOAD_DIR", c.DownloadDir)
	c.LogFile = getEnvOrDefault("SUMMARIZER_LOG_FILE", c.LogFile)
	c.Defaults.Language = getEnvOrDefault("SUMMARIZER_LANGUAGE", c.Defaults.Language)

	if v := os.Getenv("SUMMARIZER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return &ConfigError{Field: "SUMMARIZER_TIMEOUT", Message: err.Error()}
		}
		c.Timeout = d
	}
	if v := os.Getenv("SUMMARIZER_FORMAT"); v != "" {
		c.Defaults.Format = Format(strings.TrimSpace(v))
	}
	if v := os.Getenv("SUMMARIZER_LENGTH"); v != "" {
		l, err := ParseLength(v)
		if err != nil {
			return &ConfigError{Field: "SUMMARIZER_LENGTH", Message: err.Error()}
		}
		c.Defaults.Length = l
	}
	return nil
}

// Validate checks that the configuration can be used to reach the backend.
// The default format is normalized to its canonical spelling.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return &ConfigError{Field: "api_url", Message: "API URL is required"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: "timeout", Message: "timeout must be positive"}
	}
	format, err := ParseFormat(string(c.Defaults.Format))
	if err != nil {
		return &ConfigError{Field: "defaults.format", Message: err.Error()}
	}
	c.Defaults.Format = format
	if !c.Defaults.Length.Valid() {
		return &ConfigError{Field: "defaults.length", Message: fmt.Sprintf("length must be 1, 2 or 3, got %d", c.Defaults.Length)}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
