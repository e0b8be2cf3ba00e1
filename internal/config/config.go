// Package config reads CLI defaults from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/output"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvRows     = "SHEETPEEK_ROWS"
	EnvMaxCols  = "SHEETPEEK_MAX_COLS"
	EnvFormat   = "SHEETPEEK_FORMAT"
	EnvEngine   = "SHEETPEEK_ENGINE"
	EnvEncoding = "SHEETPEEK_ENCODING"
	EnvLogLevel = "SHEETPEEK_LOG_LEVEL"
)

// Config holds the defaults of the shared CLI flags.
type Config struct {
	Rows     int
	MaxCols  int
	Format   output.Format
	Engine   sheetpeek.Engine
	Encoding string
	LogLevel logrus.Level
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Rows:     sheetpeek.DefaultRows,
		Format:   output.FormatText,
		Engine:   sheetpeek.EngineAuto,
		Encoding: "utf-8",
		LogLevel: logrus.WarnLevel,
	}
}

// Load reads a .env file from the working directory when present, then the
// SHEETPEEK_* variables. Invalid values keep the default and log a warning.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("failed to read .env file")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	cfg := Default()

	cfg.Rows = getEnvIntOrDefault(EnvRows, cfg.Rows, 1)
	cfg.MaxCols = getEnvIntOrDefault(EnvMaxCols, cfg.MaxCols, 0)

	if value := os.Getenv(EnvFormat); value != "" {
		if f, err := output.ParseFormat(value); err == nil {
			cfg.Format = f
		} else {
			warnInvalid(EnvFormat, value, err)
		}
	}

	if value := os.Getenv(EnvEngine); value != "" {
		if e, err := sheetpeek.ParseEngine(value); err == nil {
			cfg.Engine = e
		} else {
			warnInvalid(EnvEngine, value, err)
		}
	}

	cfg.Encoding = getEnvOrDefault(EnvEncoding, cfg.Encoding)

	if value := os.Getenv(EnvLogLevel); value != "" {
		if level, err := logrus.ParseLevel(value); err == nil {
			cfg.LogLevel = level
		} else {
			warnInvalid(EnvLogLevel, value, err)
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault parses key as an integer no smaller than minValue.
func getEnvIntOrDefault(key string, defaultValue, minValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		warnInvalid(key, value, err)
		return defaultValue
	}
	if intValue < minValue {
		warnInvalid(key, value, errors.New("value out of range"))
		return defaultValue
	}
	return intValue
}

func warnInvalid(key, value string, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"key":   key,
		"value": value,
	}).Warn("ignoring invalid environment value")
}
