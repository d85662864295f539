package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name written by `crashplot init`.
const DefaultConfigFile = ".crashplot.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		// An empty file is a valid config with nothing to override
		if errors.Is(err, io.EOF) {
			return &cf, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// FindConfigFile resolves a user-supplied config path.
// The path is used as given when it exists. A relative path that does not
// exist in the current directory is looked up in the XDG config directory.
// Returns the empty string when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath == "" {
		return ""
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	if filepath.IsAbs(configPath) {
		return ""
	}

	xdgPath := filepath.Join(XDGConfigDir(), configPath)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}
