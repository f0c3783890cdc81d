// Package config provides configuration management for appgroup.
// It handles loading the embedded defaults, merging the user config file
// over them, and accessing the result.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lvim-tech/appgroup/pkg/labels"
)

//go:embed default.toml
var defaultConfigData string

// Config is the effective configuration of one invocation
type Config struct {
	GroupsFile    string             `toml:"groups_file"`
	LogLevel      string             `toml:"log_level"`
	Dialog        string             `toml:"dialog"`
	Launch        LaunchConfig       `toml:"launch"`
	Picker        PickerConfig       `toml:"picker"`
	Notifications NotificationConfig `toml:"notifications"`
	Labels        map[string]string  `toml:"labels"`

	// Warnings collected while loading, logged once a logger exists
	Warnings []string `toml:"-"`
}

// LaunchConfig describes the command that opens an application
type LaunchConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// PickerConfig restricts the application picker
type PickerConfig struct {
	FileType string `toml:"file_type"`
}

// NotificationConfig controls desktop notifications of action results
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	Tool    string `toml:"tool"`
	Timeout int    `toml:"timeout"`
	Urgency string `toml:"urgency"`
}

// NotificationConfigFile is read from TOML (pointers for optional fields)
type NotificationConfigFile struct {
	Enabled *bool   `toml:"enabled"`
	Tool    *string `toml:"tool"`
	Timeout *int    `toml:"timeout"`
	Urgency *string `toml:"urgency"`
}

// LaunchConfigFile is read from TOML
type LaunchConfigFile struct {
	Command *string  `toml:"command"`
	Args    []string `toml:"args"`
}

// ConfigFile is the user config file as written
type ConfigFile struct {
	GroupsFile    *string                `toml:"groups_file"`
	LogLevel      *string                `toml:"log_level"`
	Dialog        *string                `toml:"dialog"`
	Launch        LaunchConfigFile       `toml:"launch"`
	Picker        PickerConfig           `toml:"picker"`
	Notifications NotificationConfigFile `toml:"notifications"`
	Labels        map[string]string      `toml:"labels"`
}

// GetUserConfigPath returns ~/.config/appgroup/config.toml, honouring XDG_CONFIG_HOME
func GetUserConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "appgroup", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "appgroup", "config.toml")
}

// Load reads the defaults and merges the user config at path over them.
// An empty path means GetUserConfigPath. A user file that cannot be used
// is reported in Warnings and the defaults are kept.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path == "" {
		path = GetUserConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		cfg = mergeUserConfig(cfg, path)
	}

	cfg.GroupsFile = expandHome(cfg.GroupsFile)
	return cfg, nil
}

// mergeUserConfig merges the user file over cfg, or returns cfg with a warning
func mergeUserConfig(cfg *Config, path string) *Config {
	userCfg, err := loadConfigFromFile(path)
	if err != nil {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("failed to load user config %s: %v; using default configuration", path, err))
		return cfg
	}

	merged := mergeConfigs(cfg, userCfg)
	if err := merged.Validate(); err != nil {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("invalid user config %s: %v; using default configuration", path, err))
		return cfg
	}
	return merged
}

// Validate checks the values a user can get wrong
func (c *Config) Validate() error {
	switch c.Dialog {
	case "", "auto", "osascript", "zenity", "terminal":
	default:
		return fmt.Errorf("unknown dialog backend %q", c.Dialog)
	}

	if _, err := labels.Compile(c.Labels); err != nil {
		return err
	}
	return nil
}

// LabelSet compiles the label templates
func (c *Config) LabelSet() (*labels.Set, error) {
	return labels.Compile(c.Labels)
}

// LaunchCommand returns the opener command, picking the platform default when unset
func (c *Config) LaunchCommand() string {
	if c.Launch.Command != "" {
		return c.Launch.Command
	}
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// loadDefaultConfig decodes the embedded default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile decodes a user config file
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merges the user config over the defaults (user overrides defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg
	merged.Labels = make(map[string]string, len(defaultCfg.Labels))
	for key, text := range defaultCfg.Labels {
		merged.Labels[key] = text
	}

	if userCfg.GroupsFile != nil && *userCfg.GroupsFile != "" {
		merged.GroupsFile = *userCfg.GroupsFile
	}
	if userCfg.LogLevel != nil && *userCfg.LogLevel != "" {
		merged.LogLevel = *userCfg.LogLevel
	}
	if userCfg.Dialog != nil && *userCfg.Dialog != "" {
		merged.Dialog = *userCfg.Dialog
	}

	// Launch
	if userCfg.Launch.Command != nil {
		merged.Launch.Command = *userCfg.Launch.Command
	}
	if len(userCfg.Launch.Args) > 0 {
		merged.Launch.Args = userCfg.Launch.Args
	}

	// Picker
	if userCfg.Picker.FileType != "" {
		merged.Picker.FileType = userCfg.Picker.FileType
	}

	mergeNotificationConfig(&merged.Notifications, &userCfg.Notifications)

	// Labels: a user may override any subset
	for key, text := range userCfg.Labels {
		if text != "" {
			merged.Labels[key] = text
		}
	}

	return &merged
}

// mergeNotificationConfig merges notification settings
func mergeNotificationConfig(merged *NotificationConfig, user *NotificationConfigFile) {
	if user.Enabled != nil {
		merged.Enabled = *user.Enabled
	}
	if user.Tool != nil && *user.Tool != "" {
		merged.Tool = *user.Tool
	}
	if user.Timeout != nil {
		merged.Timeout = *user.Timeout
	}
	if user.Urgency != nil && *user.Urgency != "" {
		merged.Urgency = *user.Urgency
	}
}

// InitUserConfig writes the default config to path (GetUserConfigPath when empty)
func InitUserConfig(path string) (string, error) {
	if path == "" {
		path = GetUserConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigData), 0644); err != nil {
		return path, fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

// GetDefaultConfigContent returns the embedded default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
