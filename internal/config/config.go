package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskboard/internal/store"
)

// AppName names the config directory and the data directory (~/.taskboard)
const AppName = "taskboard"

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Daemon      DaemonConfig  `yaml:"daemon"`
	Log         LogConfig     `yaml:"log"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// StorageConfig locates the board file
type StorageConfig struct {
	// Path overrides <home>/tasks.json. A leading ~/ is expanded.
	Path string `yaml:"path,omitempty"`
}

// DaemonConfig controls the command daemon and whether the CLI looks for it
type DaemonConfig struct {
	SocketPath string `yaml:"socket_path,omitempty"`
	Disabled   bool   `yaml:"disabled,omitempty"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TASKBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TASKBOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnvOverrides lets the environment win over the config file
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("TASKBOARD_FILE"); v != "" {
		config.Storage.Path = v
	}
	if v := os.Getenv("TASKBOARD_SOCKET"); v != "" {
		config.Daemon.SocketPath = v
	}
	if v := os.Getenv("TASKBOARD_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("TASKBOARD_NO_DAEMON"); v != "" && v != "0" && v != "false" {
		config.Daemon.Disabled = true
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		// No config location; run on defaults
		config := Default()
		loadThemeFile(config)
		applyEnvOverrides(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path. A missing file yields defaults.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	}

	var config Config
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	loadThemeFile(&config)
	applyEnvOverrides(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// SaveFile writes the config as YAML to configPath, creating its directory
func (c *Config) SaveFile(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := homeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}

// BoardPath returns the board file location: the configured path, or <home>/tasks.json
func (c *Config) BoardPath() (string, error) {
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}
	return store.DefaultPath()
}

// SocketPath returns the daemon socket location, ~/.taskboard/taskboard.sock by default
func (c *Config) SocketPath() (string, error) {
	if c.Daemon.SocketPath != "" {
		return expandHome(c.Daemon.SocketPath)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".sock"), nil
}

// LogPath returns the log file location, ~/.taskboard/logs/taskboard.log by default
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return expandHome(c.Log.Path)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", AppName+".log"), nil
}

// DataDir returns ~/.taskboard
func DataDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+AppName), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", store.ErrHomeDir, err)
	}
	return home, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
