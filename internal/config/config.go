// Package config loads runtime settings from the environment, after merging an
// optional .env file from the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel     = "DAYNIGHT_LOG_LEVEL"
	EnvMaxLineBytes = "DAYNIGHT_MAX_LINE_BYTES"
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 64 * 1024 * 1024

type Config struct {
	LogLevel     string
	MaxLineBytes int
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Load reads .env (if present) and then the process environment. Variables
// already set in the environment win over .env values.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	maxLine, err := getEnvInt(EnvMaxLineBytes, DefaultMaxLineBytes)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogLevel:     strings.ToLower(getEnv(EnvLogLevel, "info")),
		MaxLineBytes: maxLine,
	}

	if cfg.MaxLineBytes <= 0 {
		return Config{}, errors.New("max line bytes must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
