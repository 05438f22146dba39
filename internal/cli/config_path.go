package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/quiz"
	"quizgen/internal/spec"
)

// resolveConfigPath normalizes a config path or finds it from CWD. An empty
// result with a nil error means no config file exists.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		found, err := config.FindConfigPath("")
		if errors.Is(err, config.ErrConfigNotFound) {
			return "", nil
		}
		return found, err
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the config file or falls back to the built-in defaults.
func loadConfig(configPath string) (spec.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return spec.Config{}, err
	}
	if resolved == "" {
		return config.Default(), nil
	}
	return config.Load(resolved)
}

// paramsFromConfig maps a validated config onto generator parameters.
func paramsFromConfig(cfg spec.Config) quiz.Params {
	return quiz.Params{
		InputPath:          cfg.Input,
		OutputPath:         cfg.Output,
		QuizCount:          cfg.QuizCount,
		QuestionsPerQuiz:   cfg.QuestionsPerQuiz,
		AnswersPerQuestion: cfg.AnswersPerQuestion,
		DataSheet:          cfg.Sheets.Data,
		TemplateSheet:      cfg.Sheets.Template,
		SheetPrefix:        cfg.Sheets.Prefix,
		Layout: quiz.Layout{
			LabelCell:        cfg.Layout.LabelCell,
			QuestionColumn:   cfg.Layout.QuestionColumn,
			FirstQuestionRow: cfg.Layout.FirstQuestionRow,
			AnswerRowOffset:  cfg.Layout.AnswerRowOffset,
			RowStride:        cfg.Layout.RowStride,
			AnswerColumns:    append([]string(nil), cfg.Layout.AnswerColumns...),
		},
	}
}
