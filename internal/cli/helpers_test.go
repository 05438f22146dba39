package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"quizgen/internal/config"
	"quizgen/internal/testutil"
)

// project is a temp directory holding a config and its input workbook.
type project struct {
	root   string
	config string
	input  string
	output string
}

// newProject scaffolds a config and writes the fixture as its input.
func newProject(t *testing.T, fx testutil.Fixture) project {
	t.Helper()
	root := t.TempDir()
	p := project{
		root:   root,
		config: config.ConfigPath(root),
		input:  filepath.Join(root, "domande_risposte.xlsx"),
		output: filepath.Join(root, "quiz_randomizzati.xlsx"),
	}
	if err := config.Scaffold(p.config, "domande_risposte.xlsx", "quiz_randomizzati.xlsx"); err != nil {
		t.Fatalf("scaffold config: %v", err)
	}
	testutil.WriteWorkbook(t, p.input, fx)
	return p
}

// writeConfigFile writes a raw config body under root/.quizgen.
func writeConfigFile(t *testing.T, root, body string) string {
	t.Helper()
	path := config.ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func assertAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected %s to be absent, stat returned %v", path, err)
	}
}
