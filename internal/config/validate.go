package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"quizgen/internal/spec"
	"quizgen/internal/workbook"
)

// Validate checks a normalized config and reports every issue found.
func Validate(cfg *spec.Config) error {
	c := &issueCollector{}

	if cfg.Version == 0 {
		c.add("version", "is required")
	} else if cfg.Version != 1 {
		c.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateCounts(c, cfg)
	validateSheets(c, cfg)
	validateLayout(c, cfg)

	if cfg.Input != "" && cfg.Output != "" && sameFile(cfg.Input, cfg.Output) {
		c.add("output", fmt.Sprintf("must differ from input %q", cfg.Input))
	}
	return c.result()
}

func validateCounts(c *issueCollector, cfg *spec.Config) {
	if cfg.QuizCount < 1 {
		c.add("quiz_count", "must be >= 1")
	}
	if cfg.QuestionsPerQuiz < 1 {
		c.add("questions_per_quiz", "must be >= 1")
	}
	if cfg.AnswersPerQuestion < 1 {
		c.add("answers_per_question", "must be >= 1")
	} else if cfg.AnswersPerQuestion > len(cfg.Layout.AnswerColumns) {
		c.add("answers_per_question", fmt.Sprintf("exceeds the %d layout.answer_columns", len(cfg.Layout.AnswerColumns)))
	}
}

func validateSheets(c *issueCollector, cfg *spec.Config) {
	if cfg.Sheets.Data == cfg.Sheets.Template {
		c.add("sheets.template", fmt.Sprintf("must differ from sheets.data %q", cfg.Sheets.Data))
	}
	if len(cfg.Sheets.Data) > workbook.MaxSheetNameLength {
		c.add("sheets.data", fmt.Sprintf("exceeds %d characters", workbook.MaxSheetNameLength))
	}
	if len(cfg.Sheets.Template) > workbook.MaxSheetNameLength {
		c.add("sheets.template", fmt.Sprintf("exceeds %d characters", workbook.MaxSheetNameLength))
	}
	if cfg.QuizCount >= 1 {
		last := cfg.Sheets.Prefix + strconv.Itoa(cfg.QuizCount)
		if len(last) > workbook.MaxSheetNameLength {
			c.add("sheets.prefix", fmt.Sprintf("sheet name %q exceeds %d characters", last, workbook.MaxSheetNameLength))
		}
	}
}

func validateLayout(c *issueCollector, cfg *spec.Config) {
	layout := cfg.Layout
	if !workbook.ValidCell(layout.LabelCell) {
		c.add("layout.label_cell", fmt.Sprintf("invalid cell reference %q", layout.LabelCell))
	}
	if !workbook.ValidColumn(layout.QuestionColumn) {
		c.add("layout.question_column", fmt.Sprintf("invalid column %q", layout.QuestionColumn))
	}
	if layout.FirstQuestionRow < 1 {
		c.add("layout.first_question_row", "must be >= 1")
	}
	if layout.RowStride < 1 {
		c.add("layout.row_stride", "must be >= 1")
	}
	if layout.FirstQuestionRow+layout.AnswerRowOffset < 1 {
		c.add("layout.answer_row_offset", "places answers above row 1")
	}
	seen := map[string]struct{}{}
	for i, column := range layout.AnswerColumns {
		field := fmt.Sprintf("layout.answer_columns[%d]", i)
		if !workbook.ValidColumn(column) {
			c.add(field, fmt.Sprintf("invalid column %q", column))
			continue
		}
		if _, exists := seen[column]; exists {
			c.add(field, fmt.Sprintf("duplicate column %q", column))
		}
		seen[column] = struct{}{}
	}
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
