package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for the analyze command
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for the analyze command
type DefaultsConfig struct {
	Top  int    `mapstructure:"top"`  // top N error paths in the report
	Out  string `mapstructure:"out"`  // report output directory
	Open bool   `mapstructure:"open"` // open the HTML report in a viewer
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			Top:  5,
			Out:  "output",
			Open: true,
		},
	}
}

// Load loads configuration from files and environment.
// Config file search order (highest precedence first):
// 1. ./.logtriage.yaml or ./.logtriage.yml
// 2. ~/.logtriage.yaml or ~/.logtriage.yml
// 3. $XDG_CONFIG_HOME/logtriage/config.yaml (or ~/.config/logtriage/config.yaml)
// 4. /etc/logtriage/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logtriage.yaml", ".logtriage.yml", "logtriage.yaml", "logtriage.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	// Search locations in order of precedence (highest first)
	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "logtriage"))
	}
	searchPaths = append(searchPaths, "/etc/logtriage")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGTRIAGE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGTRIAGE_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGTRIAGE_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGTRIAGE_TOP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Top = n
		}
	}
	if v := os.Getenv("LOGTRIAGE_OUT"); v != "" {
		cfg.Defaults.Out = v
	}
	if v := os.Getenv("LOGTRIAGE_OPEN"); v == "false" || v == "0" {
		cfg.Defaults.Open = false
	}
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
