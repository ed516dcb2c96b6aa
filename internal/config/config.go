// Package config loads crewclock settings from a YAML file and the
// environment. Every key can be overridden with a CREWCLOCK_* variable,
// so the tool works on a fresh machine with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Database  string `mapstructure:"database"`
	UserID    string `mapstructure:"user_id"`
	Email     string `mapstructure:"email"`
	Admin     bool   `mapstructure:"admin"`
	ExportDir string `mapstructure:"export_dir"`
}

// DefaultPath returns the per-user config file location, honoring
// XDG_CONFIG_HOME when set.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "crewclock", "crewclock.yml"), nil
}

// Load reads configuration from path. An empty path means the default
// location; a missing file is fine and yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CREWCLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	v.SetDefault("database", filepath.Join(home, ".crewclock", "crewclock.db"))
	v.SetDefault("user_id", "local")
	v.SetDefault("email", "")
	v.SetDefault("admin", false)
	v.SetDefault("export_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
