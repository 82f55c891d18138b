package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds per-workspace settings from .tasklist/config.yaml
type Config struct {
	// Data file name inside the .tasklist directory
	DataFile string `mapstructure:"data_file"`

	// Order used by `sort` when no argument is given
	DefaultSort string `mapstructure:"default_sort"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		DataFile:    "tasks.txt",
		DefaultSort: "asc",
	}
}

// loadConfig reads the workspace config, keeping defaults for missing keys
func loadConfig(workspaceDir string) (*Config, error) {
	cfg := DefaultConfig()

	path := configPath(workspaceDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultConfig().DataFile
	}
	return cfg, nil
}

func configPath(workspaceDir string) string {
	return filepath.Join(workspaceDir, ".tasklist", "config.yaml")
}
