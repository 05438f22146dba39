package cli

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizgen/internal/config"
)

func withInitInput(t *testing.T, input string) {
	t.Helper()
	original := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = original })
}

// TestInitScaffoldsConfig verifies init writes a loadable config with the prompted paths.
func TestInitScaffoldsConfig(t *testing.T) {
	root := t.TempDir()
	path := config.ConfigPath(root)
	withInitInput(t, "y\nbank.xlsx\n\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Wrote "+path) {
		t.Fatalf("expected confirmation, got %q", out.String())
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if cfg.Input != filepath.Join(root, "bank.xlsx") {
		t.Fatalf("expected prompted input, got %q", cfg.Input)
	}
	if cfg.Output != filepath.Join(root, "quiz_randomizzati.xlsx") {
		t.Fatalf("expected default output, got %q", cfg.Output)
	}
}

// TestInitCancelled verifies declining the prompt writes nothing.
func TestInitCancelled(t *testing.T) {
	root := t.TempDir()
	path := config.ConfigPath(root)
	withInitInput(t, "n\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Init cancelled") {
		t.Fatalf("expected cancellation, got %q", errOut.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no config file, stat returned %v", err)
	}
}

// TestInitRefusesOverwrite verifies an existing config is left alone.
func TestInitRefusesOverwrite(t *testing.T) {
	root := t.TempDir()
	path := writeConfigFile(t, root, "version: 1\n")
	withInitInput(t, "y\n\n\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %q", errOut.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "version: 1\n" {
		t.Fatalf("config was modified: %q", data)
	}
}

// TestPromptYesNo verifies accepted answers and re-prompting.
func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		input      string
		defaultYes bool
		want       bool
		wantErr    bool
	}{
		{input: "\n", defaultYes: true, want: true},
		{input: "\n", defaultYes: false, want: false},
		{input: "yes\n", want: true},
		{input: "si\n", want: true},
		{input: "maybe\nno\n", defaultYes: true, want: false},
		{input: "maybe", wantErr: true},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := promptYesNo(bufioReader(tc.input), &out, "Continue?", tc.defaultYes)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("input %q: expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("input %q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

// TestPromptStringRequiresValue verifies an empty answer without default fails at EOF.
func TestPromptStringRequiresValue(t *testing.T) {
	var out bytes.Buffer
	if _, err := promptString(bufioReader("\n"), &out, "Input", ""); err == nil {
		t.Fatalf("expected error for missing value")
	}
	got, err := promptString(bufioReader("  quiz.xlsx  \n"), &out, "Input", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "quiz.xlsx" {
		t.Fatalf("expected trimmed answer, got %q", got)
	}
}

func bufioReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}
