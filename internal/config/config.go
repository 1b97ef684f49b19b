// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
	"github.com/ironsheep/image-edit-mcp/internal/logger"
)

// Environment variables read by Load.
const (
	EnvLogLevel    = "IMAGE_EDIT_LOG_LEVEL"
	EnvResample    = "IMAGE_EDIT_RESAMPLE"
	EnvJPEGQuality = "IMAGE_EDIT_JPEG_QUALITY"
	EnvAutoOrient  = "IMAGE_EDIT_AUTO_ORIENT"
)

// Config holds the server settings.
type Config struct {
	LogLevel    logger.LogLevel
	Resample    string
	JPEGQuality int
	AutoOrient  bool
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		LogLevel:    logger.INFO,
		Resample:    "box",
		JPEGQuality: imaging.DefaultJPEGQuality,
	}
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the signature
// of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvResample); ok && v != "" {
		if _, err := imaging.ParseFilter(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvResample, err)
		}
		cfg.Resample = strings.ToLower(v)
	}

	if v, ok := lookup(EnvJPEGQuality); ok && v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return nil, fmt.Errorf("%s: quality must be an integer between 1 and 100, got %q", EnvJPEGQuality, v)
		}
		cfg.JPEGQuality = q
	}

	if v, ok := lookup(EnvAutoOrient); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvAutoOrient, err)
		}
		cfg.AutoOrient = b
	}

	return cfg, nil
}

// HandleOptions converts the configuration into options for new handles.
func (c *Config) HandleOptions() []imaging.Option {
	return []imaging.Option{
		imaging.WithFilter(c.Resample),
		imaging.WithJPEGQuality(c.JPEGQuality),
		imaging.WithAutoOrientation(c.AutoOrient),
	}
}
