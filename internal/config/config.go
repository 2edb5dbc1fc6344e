// Package config loads the YAML configuration used by the fastdeck CLI.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-fastdeck/internal/fileutil"
	"github.com/alnah/go-fastdeck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRange      = errors.New("field out of range")
)

// Field length limits.
const (
	MaxThemeLength     = 50   // "moon", "black", "custom"
	MaxURLLength       = 2048 // Browser limit
	MaxStyleNameLength = 100
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxAddrLength      = 255
)

// DefaultAddr is where the preview server listens when no address is set.
const DefaultAddr = "127.0.0.1:8000"

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-fastdeck"

// Config holds all configuration for deck generation.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Server ServerConfig `yaml:"server"`
}

// RenderConfig mirrors the presentation render options.
// Zero values mean "use the library default".
type RenderConfig struct {
	Theme       string  `yaml:"theme"`       // reveal.js theme name or "custom"
	CustomTheme string  `yaml:"customTheme"` // stylesheet URL, required when theme is "custom"
	Width       int     `yaml:"width"`       // slide width in px
	Height      int     `yaml:"height"`      // slide height in px
	MinScale    float64 `yaml:"minScale"`
	MaxScale    float64 `yaml:"maxScale"`
	Margin      float64 `yaml:"margin"` // fraction of the slide size, 0 to 1
	Style       string  `yaml:"style"`  // extra CSS style name from assets (empty = default)
	Pretty      bool    `yaml:"pretty"` // indent slide markup
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the deck file
	PDF        bool   `yaml:"pdf"`        // also export a PDF
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = use embedded assets
}

// ServerConfig defines preview server options.
type ServerConfig struct {
	Addr string `yaml:"addr"` // host:port
}

// Validate checks field lengths and numeric ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}

	if c.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
			return fmt.Errorf("%w: server.addr %q: %v", ErrFieldRange, c.Server.Addr, err)
		}
	}

	return nil
}

// Validate checks render field lengths and numeric ranges. Deck files
// embed a RenderConfig, so it is validated on its own as well.
func (r *RenderConfig) Validate() error {
	if err := validateFieldLength("render.theme", r.Theme, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.customTheme", r.CustomTheme, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.style", r.Style, MaxStyleNameLength); err != nil {
		return err
	}

	if r.Width < 0 {
		return fmt.Errorf("%w: render.width must not be negative, got %d", ErrFieldRange, r.Width)
	}
	if r.Height < 0 {
		return fmt.Errorf("%w: render.height must not be negative, got %d", ErrFieldRange, r.Height)
	}
	if r.MinScale < 0 || r.MaxScale < 0 {
		return fmt.Errorf("%w: render scales must not be negative", ErrFieldRange)
	}
	if r.MinScale > 0 && r.MaxScale > 0 && r.MinScale > r.MaxScale {
		return fmt.Errorf("%w: render.minScale %.2f exceeds render.maxScale %.2f",
			ErrFieldRange, r.MinScale, r.MaxScale)
	}
	if r.Margin < 0 || r.Margin > 1 {
		return fmt.Errorf("%w: render.margin must be between 0 and 1, got %.2f", ErrFieldRange, r.Margin)
	}
	return nil
}

// Merge returns r with every non-zero field of o applied on top.
// Pretty is set when either side sets it.
func (r RenderConfig) Merge(o RenderConfig) RenderConfig {
	if o.Theme != "" {
		r.Theme = o.Theme
	}
	if o.CustomTheme != "" {
		r.CustomTheme = o.CustomTheme
	}
	if o.Width != 0 {
		r.Width = o.Width
	}
	if o.Height != 0 {
		r.Height = o.Height
	}
	if o.MinScale != 0 {
		r.MinScale = o.MinScale
	}
	if o.MaxScale != 0 {
		r.MaxScale = o.MaxScale
	}
	if o.Margin != 0 {
		r.Margin = o.Margin
	}
	if o.Style != "" {
		r.Style = o.Style
	}
	r.Pretty = r.Pretty || o.Pretty
	return r
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that defers every render setting to
// the library defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-fastdeck/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
