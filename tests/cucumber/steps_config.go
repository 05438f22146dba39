//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"

	"quizgen/internal/config"
	"quizgen/internal/testutil"
)

// enterWorkDir creates a temp directory and makes it the working directory
// so the CLI resolves default workbook names inside it.
func (s *featureState) enterWorkDir() error {
	dir, err := os.MkdirTemp("", "quizgen-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter temp dir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func (s *featureState) anInputWorkbook(questions, answers int) error {
	s.fixture.Questions = questions
	s.fixture.Answers = answers
	return nil
}

func (s *featureState) theInputHasNoTemplate() error {
	s.fixture.OmitTemplate = true
	return nil
}

func (s *featureState) theInputIsNotPresent() error {
	s.noInput = true
	return nil
}

// theConfigIsInvalid writes a config with an unsupported version.
func (s *featureState) theConfigIsInvalid() error {
	path := config.ConfigPath(s.workDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte("version: 99\n"), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// writeInput saves the scenario fixture as the input workbook.
func (s *featureState) writeInput() error {
	if s.noInput {
		return nil
	}
	return testutil.BuildWorkbook(s.inputPath(), s.fixture)
}
