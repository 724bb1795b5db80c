package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/dotoo/internal/config/colors"
)

// ColorScheme is re-exported so callers need not import the colors package
type ColorScheme = colors.ColorScheme

// Orphan policies applied to a deleted project's tasks
const (
	OrphanCascade  = "cascade"
	OrphanReassign = "reassign"
	OrphanKeep     = "keep"
)

// CalendarConfig tunes due-date classification
type CalendarConfig struct {
	WarningDays int `yaml:"warning_days"`
}

// GanttConfig tunes the timeline window and bar geometry
type GanttConfig struct {
	WindowDays    int     `yaml:"window_days"`
	LeadDays      int     `yaml:"lead_days"`
	FallbackWidth float64 `yaml:"fallback_width"`
	MinBarWidth   float64 `yaml:"min_bar_width"`
}

// BackupConfig controls backup retention
type BackupConfig struct {
	Keep int `yaml:"keep"`
}

// Config represents the application configuration
type Config struct {
	DataDir      string         `yaml:"data_dir"`
	LogLevel     string         `yaml:"log_level"`
	Timezone     string         `yaml:"timezone"`
	OrphanPolicy string         `yaml:"orphan_policy"`
	Calendar     CalendarConfig `yaml:"calendar"`
	Gantt        GanttConfig    `yaml:"gantt"`
	Backups      BackupConfig   `yaml:"backups"`
	KeyMappings  KeyMappings    `yaml:"key_mappings"`
	ColorScheme  ColorScheme    `yaml:"theme"`
}

// Default returns a config with every value at its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from DOTOO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("DOTOO_THEME_FILE")
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

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(&config)

	if dir := os.Getenv("DOTOO_DATA_DIR"); dir != "" {
		config.DataDir = dir
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects values the rest of the program cannot work with
func (c *Config) Validate() error {
	switch c.OrphanPolicy {
	case OrphanCascade, OrphanReassign, OrphanKeep:
	default:
		return fmt.Errorf("invalid orphan_policy %q (must be: cascade, reassign, keep)", c.OrphanPolicy)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Gantt.WindowDays < 1 {
		return fmt.Errorf("gantt.window_days must be positive, got %d", c.Gantt.WindowDays)
	}
	return nil
}

// Location resolves the configured timezone, defaulting to the system zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dotoo", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dotoo", "config.yaml"), nil
}

// defaultDataDir returns ~/.dotoo, or a relative .dotoo when home is unknown
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dotoo"
	}
	return filepath.Join(home, ".dotoo")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.OrphanPolicy == "" {
		c.OrphanPolicy = OrphanCascade
	}
	if c.Calendar.WarningDays <= 0 {
		c.Calendar.WarningDays = 3
	}
	if c.Gantt.WindowDays == 0 {
		c.Gantt.WindowDays = 28
	}
	if c.Gantt.LeadDays == 0 {
		c.Gantt.LeadDays = 4
	}
	if c.Gantt.FallbackWidth <= 0 {
		c.Gantt.FallbackWidth = 100
	}
	if c.Gantt.MinBarWidth <= 0 {
		c.Gantt.MinBarWidth = 20
	}
	if c.Backups.Keep <= 0 {
		c.Backups.Keep = 10
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
