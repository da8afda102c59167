package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything dexter reads from config.toml.
type Config struct {
	APIBase           string
	FallbackMaxID     int
	StartID           int
	Transition        time.Duration
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	Burst             int
	DiscardStale      bool
	LogFile           string
}

const (
	defaultConfigPath        = "~/.config/dexter/config.toml"
	defaultLogFile           = "~/.local/state/dexter/dexter.log"
	defaultAPIBase           = "https://pokeapi.co/api/v2"
	defaultFallbackMaxID     = 1010
	defaultStartID           = 1
	defaultTransitionMS      = 180
	defaultTimeoutSeconds    = 10
	defaultRequestsPerSecond = 5
	defaultBurst             = 2
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:           defaultAPIBase,
		FallbackMaxID:     defaultFallbackMaxID,
		StartID:           defaultStartID,
		Transition:        defaultTransitionMS * time.Millisecond,
		RequestTimeout:    defaultTimeoutSeconds * time.Second,
		RequestsPerSecond: defaultRequestsPerSecond,
		Burst:             defaultBurst,
		DiscardStale:      true,
		LogFile:           mustExpand(defaultLogFile),
	}
}

// Load locates and parses the dexter config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase           string  `toml:"api_base"`
		FallbackMaxID     int     `toml:"fallback_max_id"`
		StartID           int     `toml:"start_id"`
		TransitionMS      int     `toml:"transition_ms"`
		TimeoutSeconds    int     `toml:"request_timeout_seconds"`
		RequestsPerSecond float64 `toml:"requests_per_second"`
		Burst             int     `toml:"burst"`
		DiscardStale      *bool   `toml:"discard_stale"`
		LogFile           *string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if raw.FallbackMaxID > 0 {
		cfg.FallbackMaxID = raw.FallbackMaxID
	}
	if raw.StartID > 0 {
		cfg.StartID = raw.StartID
	}
	if raw.TransitionMS > 0 {
		cfg.Transition = time.Duration(raw.TransitionMS) * time.Millisecond
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = raw.RequestsPerSecond
	}
	if raw.Burst > 0 {
		cfg.Burst = raw.Burst
	}
	if raw.DiscardStale != nil {
		cfg.DiscardStale = *raw.DiscardStale
	}
	if raw.LogFile != nil {
		// An explicit empty log_file disables the diagnostic log.
		cfg.LogFile = ""
		if trimmed := strings.TrimSpace(*raw.LogFile); trimmed != "" {
			cfg.LogFile = mustExpand(trimmed)
		}
	}

	return cfg, nil
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
