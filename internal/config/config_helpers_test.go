package config

import (
	"os"
	"path/filepath"
	"testing"

	"quizgen/internal/spec"
)

// validConfig returns a normalized config used by validation tests.
func validConfig() spec.Config {
	return Default()
}

// writeConfig writes a config body under dir/.quizgen and returns its path.
func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
