// ABOUTME: Configuration loading for the jrpccheck tool
// ABOUTME: YAML file via viper with defaults applied after unmarshal

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

type OutputConfig struct {
	// Format is "compact" or "pretty"; re-encoded documents are printed in
	// this form.
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "compact"},
	}
}

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "compact"
	}

	if cfg.Output.Format != "compact" && cfg.Output.Format != "pretty" {
		return nil, fmt.Errorf("invalid output.format: %s (must be 'compact' or 'pretty')", cfg.Output.Format)
	}

	return &cfg, nil
}
