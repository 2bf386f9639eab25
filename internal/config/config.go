package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Seed         uint64 `toml:"seed"`
	UnicodeSuits bool   `toml:"unicode_suits"`
	Color        string `toml:"color"`
	LogLevel     string `toml:"log_level"`
	Theme        Theme  `toml:"theme"`
}

// Theme holds the hex colours used to draw the board
type Theme struct {
	Red       string `toml:"red"`
	Black     string `toml:"black"`
	Highlight string `toml:"highlight"`
	Selected  string `toml:"selected"`
}

// Default returns the configuration written on first load
func Default() *Config {
	return &Config{
		UnicodeSuits: true,
		Color:        ColorAuto,
		LogLevel:     "info",
		Theme: Theme{
			Red:       "#e74c3c",
			Black:     "#dfe6e9",
			Highlight: "#27ae60",
			Selected:  "#c0392b",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "klondike", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at path, creating it with defaults if missing
func LoadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	// Keys missing from the file keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()
	if err := Save(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config to path
func Save(configPath string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks enumerated values and theme colours
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for key, hex := range c.Theme.colors() {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("theme.%s: %q is not a hex colour", key, hex)
		}
	}
	return nil
}

// Level parses LogLevel as a slog level
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

func (t *Theme) colors() map[string]string {
	return map[string]string{
		"red":       t.Red,
		"black":     t.Black,
		"highlight": t.Highlight,
		"selected":  t.Selected,
	}
}

// Keys lists the names accepted by Set
func Keys() []string {
	keys := []string{"seed", "unicode_suits", "color", "log_level"}
	for k := range Default().Theme.colors() {
		keys = append(keys, "theme."+k)
	}
	sort.Strings(keys[4:])
	return keys
}

// Set updates one key from its string form
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "seed":
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		next.Seed = seed
	case "unicode_suits":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("unicode_suits: %w", err)
		}
		next.UnicodeSuits = b
	case "color":
		next.Color = strings.ToLower(value)
	case "log_level":
		next.LogLevel = strings.ToLower(value)
	case "theme.red":
		next.Theme.Red = value
	case "theme.black":
		next.Theme.Black = value
	case "theme.highlight":
		next.Theme.Highlight = value
	case "theme.selected":
		next.Theme.Selected = value
	default:
		return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
