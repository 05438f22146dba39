package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizgen/internal/quiz"
)

const defaultConfig = `version: 1
# Workbook paths are relative to the directory holding .quizgen/.
input: %q
output: %q

quiz_count: 20
questions_per_quiz: 10
answers_per_question: 4

sheets:
  data: "domande_risposte"
  template: "template"
  prefix: "Quiz_"

layout:
  label_cell: "A47"
  question_column: "B"
  first_question_row: 7
  answer_row_offset: 2
  row_stride: 4
  answer_columns: ["B", "D", "F", "H"]
`

// Scaffold writes the default config to configPath, refusing to overwrite.
// Empty input or output paths fall back to the built-in workbook names.
func Scaffold(configPath, input, output string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	body := fmt.Sprintf(defaultConfig,
		defaultString(input, quiz.DefaultInput),
		defaultString(output, quiz.DefaultOutput))
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
