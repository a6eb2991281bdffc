package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// LoadFromFile reads a ServerConfiguration from a JSON or YAML file. The
// format is auto-detected from the extension (.yaml, .yml for YAML,
// otherwise JSON). Fields absent from the file keep their defaults.
func LoadFromFile(path string) (*ServerConfiguration, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := DefaultServerConfiguration()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		return cfg, nil
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return cfg, nil
}

// Environment variables recognized by ApplyEnv.
const (
	EnvPort      = "FAULTD_PORT"
	EnvHost      = "FAULTD_HOST"
	EnvLogLevel  = "FAULTD_LOG_LEVEL"
	EnvLogFormat = "FAULTD_LOG_FORMAT"
)

// ApplyEnv overlays environment variables onto the configuration.
// Environment values win over file values; unset variables change nothing.
func (c *ServerConfiguration) ApplyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		c.HTTPPort = port
	}
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	return nil
}
