package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"calcpad/internal/logger"
)

const (
	// DirName is the per-user directory under $HOME.
	DirName  = ".calcpad"
	fileName = "config.json"

	DefaultAddr         = "127.0.0.1:8087"
	DefaultMaxBodyBytes = 4096
)

// Color modes for CLI output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrExists is returned by WriteDefault when the file is already there.
	ErrExists = errors.New("config file already exists")
)

// Config holds runtime options for the CLI and server.
type Config struct {
	Addr         string `json:"addr"`           // listen address for serve, e.g. 127.0.0.1:8087
	LogLevel     string `json:"log_level"`      // debug, info, warn, error, none
	LogFile      string `json:"log_file"`       // empty discards log output
	MaxBodyBytes int64  `json:"max_body_bytes"` // request body limit for the JSON API
	Color        string `json:"color"`          // auto, always, never
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:         DefaultAddr,
		LogLevel:     "info",
		MaxBodyBytes: DefaultMaxBodyBytes,
		Color:        ColorAuto,
	}
}

// DefaultPath returns $HOME/.calcpad/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName, fileName), nil
}

// Load reads path over the defaults and applies environment overrides. An
// empty path means DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	if err := readJSON(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CALCPAD_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := lookup("CALCPAD_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("CALCPAD_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup("CALCPAD_MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("CALCPAD_MAX_BODY_BYTES: %w", err)
		}
		c.MaxBodyBytes = n
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logger.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}

// WriteDefault writes Default() to path. It refuses to replace an existing
// file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return writeJSON(path, Default(), 0o600)
}
