package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const maxDisplays = 3

type Display struct {
	Index      int    `yaml:"index"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type Config struct {
	// API is auto, modern (win8) or legacy (win7).
	API         string `yaml:"api"`
	Debug       bool   `yaml:"debug"`
	LogLevel    string `yaml:"log_level"`
	LogEvents   bool   `yaml:"log_events"`
	WindowClass string `yaml:"window_class"`

	Displays         []Display         `yaml:"displays"`
	WindowProperties map[string]uint64 `yaml:"window_properties"`
}

func DefaultConfig() *Config {
	return &Config{
		API:         "auto",
		LogLevel:    "info",
		LogEvents:   true,
		WindowClass: "WinTouchDisplay",
		Displays: []Display{
			{Index: 0, Width: 1280, Height: 720, Title: "Display 0"},
		},
		WindowProperties: map[string]uint64{},
	}
}

func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "wintouch", "config.yaml"), nil
}

// LoadFromPath overlays the YAML file at path on DefaultConfig. A missing
// file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.API) {
	case "auto", "modern", "pointer", "win8", "legacy", "touch", "win7":
	default:
		return fmt.Errorf("api: unknown value %q", c.API)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if strings.TrimSpace(c.WindowClass) == "" {
		return errors.New("window_class must not be empty")
	}
	if len(c.Displays) == 0 {
		return errors.New("displays: at least one display is required")
	}
	seen := map[int]bool{}
	for i, d := range c.Displays {
		if d.Index < 0 || d.Index >= maxDisplays {
			return fmt.Errorf("displays[%d]: index %d not in [0,%d)", i, d.Index, maxDisplays)
		}
		if seen[d.Index] {
			return fmt.Errorf("displays[%d]: duplicate index %d", i, d.Index)
		}
		seen[d.Index] = true
		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("displays[%d]: width and height must be positive", i)
		}
	}
	for name := range c.WindowProperties {
		if strings.TrimSpace(name) == "" {
			return errors.New("window_properties: empty property name")
		}
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
