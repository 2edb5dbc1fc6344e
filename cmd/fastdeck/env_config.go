package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-fastdeck/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "FASTDECK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // FASTDECK_CONFIG: config file name or path
	Theme      string        // FASTDECK_THEME: reveal.js theme name
	Style      string        // FASTDECK_STYLE: CSS style name
	OutputDir  string        // FASTDECK_OUTPUT_DIR: default output directory
	AssetPath  string        // FASTDECK_ASSET_PATH: custom asset directory
	Addr       string        // FASTDECK_ADDR: preview server address
	Timeout    time.Duration // FASTDECK_TIMEOUT: PDF export timeout
}

// knownEnvVars lists valid FASTDECK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"FASTDECK_CONFIG":     true,
	"FASTDECK_THEME":      true,
	"FASTDECK_STYLE":      true,
	"FASTDECK_OUTPUT_DIR": true,
	"FASTDECK_ASSET_PATH": true,
	"FASTDECK_ADDR":       true,
	"FASTDECK_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("FASTDECK_CONFIG"),
		Theme:      os.Getenv("FASTDECK_THEME"),
		Style:      os.Getenv("FASTDECK_STYLE"),
		OutputDir:  os.Getenv("FASTDECK_OUTPUT_DIR"),
		AssetPath:  os.Getenv("FASTDECK_ASSET_PATH"),
		Addr:       os.Getenv("FASTDECK_ADDR"),
	}

	if timeout := os.Getenv("FASTDECK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized FASTDECK_*
// variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This gives: CLI flags > deck file > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Theme != "" && cfg.Render.Theme == "" {
		cfg.Render.Theme = env.Theme
	}
	if env.Style != "" && cfg.Render.Style == "" {
		cfg.Render.Style = env.Style
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	// DefaultConfig always sets an address, so the env var replaces it
	// unless the config file chose another one.
	if env.Addr != "" && (cfg.Server.Addr == "" || cfg.Server.Addr == config.DefaultAddr) {
		cfg.Server.Addr = env.Addr
	}
}
