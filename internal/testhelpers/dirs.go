// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// ConfigDir creates a temporary directory with the peruse config structure.
// Returns the temp dir root and the config dir path.
// The temp dir is automatically cleaned up when the test completes.
func ConfigDir(t *testing.T) (tempDir, configDir string) {
	t.Helper()
	tempDir = t.TempDir()
	configDir = filepath.Join(tempDir, "peruse")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	return tempDir, configDir
}

// WriteConfig writes content to a config.toml inside configDir and returns
// the file's path.
func WriteConfig(t *testing.T, configDir, content string) string {
	t.Helper()
	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}
