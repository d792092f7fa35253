package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

// Config is the pokebrowse configuration document.
type Config struct {
	API     APIConfig  `koanf:"api" yaml:"api"`
	HTTP    HTTPConfig `koanf:"http" yaml:"http"`
	DataDir string     `koanf:"data_dir" yaml:"data_dir" validate:"required"`
	Log     LogConfig  `koanf:"log" yaml:"log"`
}

// APIConfig points at the PokeAPI deployment.
type APIConfig struct {
	BaseURL   string `koanf:"base_url" yaml:"base_url" validate:"required,api_url"`
	UserAgent string `koanf:"user_agent" yaml:"user_agent,omitempty"`
}

// HTTPConfig tunes the HTTP client. A zero timeout waits forever.
type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout" yaml:"timeout" validate:"gte=0"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level string `koanf:"level" yaml:"level" validate:"required,oneof=trace debug info warn error"`
	// File is where the interactive browser logs; empty means
	// <data_dir>/pokebrowse.log.
	File  string `koanf:"file" yaml:"file,omitempty"`
	Human bool   `koanf:"human" yaml:"human"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   pokeapi.DefaultBaseURL,
			UserAgent: "pokebrowse",
		},
		DataDir: DefaultDataDir(),
		Log: LogConfig{
			Level: "info",
			Human: true,
		},
	}
}

// DefaultDataDir is ~/.pokebrowse, or .pokebrowse when HOME is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pokebrowse"
	}
	return filepath.Join(home, ".pokebrowse")
}

// DefaultPath is where the config file is looked up when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// StorePath is the preference database location.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "pokebrowse.db")
}

// LogFilePath is where the interactive browser writes logs.
func (c *Config) LogFilePath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "pokebrowse.log")
}
