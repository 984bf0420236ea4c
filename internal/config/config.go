// Package config handles configuration management for hr-reportgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for hr-reportgen.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Schema is the database schema holding the warehouse tables.
	Schema string `mapstructure:"schema"`

	// Run holds configuration for the run subcommand.
	Run RunConfig `mapstructure:"run"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`
}

// RunConfig holds configuration for the reporting pipeline.
type RunConfig struct {
	// OutputDir is the directory the showcase and powerbi bundles are
	// written under.
	OutputDir string `mapstructure:"output_dir"`

	// Chart controls whether the attrition trend chart is rendered.
	Chart bool `mapstructure:"chart"`
}

// SeedConfig holds configuration for demo warehouse seeding.
type SeedConfig struct {
	// Employees is the number of employee fact rows to generate.
	Employees int `mapstructure:"employees"`

	// Seed is the RNG seed for reproducible data (0 = random).
	Seed uint64 `mapstructure:"seed"`

	// DropExisting drops the hr schema before seeding.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Schema:   "hr",
		Run: RunConfig{
			OutputDir: "output",
			Chart:     true,
		},
		Seed: SeedConfig{
			Employees: 500,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./hr-reportgen.yaml
// 3. ~/.config/hr-reportgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("hr-reportgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "hr-reportgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Schema == "" {
		return fmt.Errorf("warehouse schema is required")
	}
	return nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Run.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Seed.Employees < 1 {
		return fmt.Errorf("employees must be at least 1")
	}
	return nil
}
