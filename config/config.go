// Package config loads gridkit settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvInputDir = "GRIDKIT_INPUT_DIR"
	EnvWorkers  = "GRIDKIT_WORKERS"
	EnvLogLevel = "GRIDKIT_LOG_LEVEL"
)

// DefaultInputDir is where puzzle inputs are looked up when no file is given.
const DefaultInputDir = "inputs"

// ErrInvalidValue is returned when an environment value cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	InputDir string     // directory holding day_NN.txt inputs
	Workers  int        // parallel workers for the obstacle sweep
	LogLevel slog.Level // minimum level written to stderr
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		InputDir: DefaultInputDir,
		Workers:  runtime.NumCPU(),
		LogLevel: slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. A missing default .env is not an error. Variables already set
// in the environment take precedence over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment alone.
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvInputDir); ok {
		cfg.InputDir = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := ParseWorkers(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// ParseWorkers parses a positive worker count.
func ParseWorkers(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: workers must be a positive integer, got %q", ErrInvalidValue, s)
	}
	return n, nil
}

// ParseLevel parses debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidValue, s)
	}
	return lvl, nil
}

// lookup returns a non-empty environment value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
