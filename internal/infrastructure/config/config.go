// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for futchat configuration.
	DefaultConfigDir = ".futchat"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "chat.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	FootballAPI FootballAPIConfig `yaml:"football_api,omitempty"`
	Sofascore   SofascoreConfig   `yaml:"sofascore,omitempty"`
	LLM         LLMConfig         `yaml:"llm,omitempty"`
	SQLite      SQLiteConfig      `yaml:"sqlite,omitempty"`
}

// FootballAPIConfig holds configuration for the api-football provider.
type FootballAPIConfig struct {
	BaseURL string        `yaml:"base_url,omitempty"`
	APIKey  string        `yaml:"api_key,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// SofascoreConfig holds configuration for the sofascore provider.
type SofascoreConfig struct {
	BaseURL string        `yaml:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LLMConfig holds configuration for the optional summary-polish provider.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// SQLiteConfig holds configuration for the conversation database.
type SQLiteConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		FootballAPI: FootballAPIConfig{
			BaseURL: "https://api-football-v1.p.rapidapi.com/v3",
			Timeout: 15 * time.Second,
		},
		Sofascore: SofascoreConfig{
			BaseURL: "https://api.sofascore.com/api/v1",
			Timeout: 15 * time.Second,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
	}
}

// Load loads configuration from the .futchat directory in the given path.
// A missing config file is not an error; defaults plus environment
// overrides apply so the CLI works out of the box.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("FOOTBALL_API_KEY"); key != "" && c.FootballAPI.APIKey == "" {
		c.FootballAPI.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = key
	}
}

// ConfigDir returns the path to the .futchat config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
