package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"protox/internal/editor"
)

type Config struct {
	SaveDirectory string  `mapstructure:"save_directory"`
	StartMenu     bool    `mapstructure:"start_menu"`
	Confirmations bool    `mapstructure:"confirmations"`
	Surface       string  `mapstructure:"surface"`
	CellWidth     float64 `mapstructure:"cell_width"`
	CellHeight    float64 `mapstructure:"cell_height"`
	LogFile       string  `mapstructure:"log_file"`
}

func defaultConfig() *Config {
	return &Config{
		StartMenu:     true,
		Confirmations: true,
		Surface:       editor.DefaultSurface.Name,
		CellWidth:     8,
		CellHeight:    16,
	}
}

// loadConfig reads ~/.config/protox/config.yaml (or path, when set) and
// PROTOX_* environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	def := defaultConfig()
	v := viper.New()
	v.SetDefault("save_directory", def.SaveDirectory)
	v.SetDefault("start_menu", def.StartMenu)
	v.SetDefault("confirmations", def.Confirmations)
	v.SetDefault("surface", def.Surface)
	v.SetDefault("cell_width", def.CellWidth)
	v.SetDefault("cell_height", def.CellHeight)
	v.SetDefault("log_file", def.LogFile)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv("PROTOX_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "protox"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROTOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.CellWidth <= 0 {
		c.CellWidth = 8
	}
	if c.CellHeight <= 0 {
		c.CellHeight = 16
	}
	c.SaveDirectory = expandPath(c.SaveDirectory)
	c.LogFile = expandPath(c.LogFile)
}

// expandPath resolves a leading ~ and makes the path absolute.
func expandPath(p string) string {
	if p == "" {
		return ""
	}
	if expanded, err := homedir.Expand(p); err == nil {
		p = expanded
	}
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

// SurfacePreset returns the configured starting surface.
func (c *Config) SurfacePreset() editor.Surface {
	if s, ok := editor.PresetByName(c.Surface); ok {
		return s
	}
	return editor.DefaultSurface
}

// GetSavePath joins filename onto the save directory, if one is set.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	return filepath.Join(c.SaveDirectory, filename)
}

// EnsureSaveDirectory creates the save directory when it is missing.
func (c *Config) EnsureSaveDirectory() error {
	if c.SaveDirectory == "" {
		return nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}
	return nil
}
