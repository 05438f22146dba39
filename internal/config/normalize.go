package config

import (
	"strings"

	"quizgen/internal/quiz"
	"quizgen/internal/spec"
)

// Normalize trims string fields and fills every unset field with its default.
func Normalize(cfg *spec.Config) {
	cfg.Input = strings.TrimSpace(cfg.Input)
	cfg.Output = strings.TrimSpace(cfg.Output)
	if cfg.Input == "" {
		cfg.Input = quiz.DefaultInput
	}
	if cfg.Output == "" {
		cfg.Output = quiz.DefaultOutput
	}
	if cfg.QuizCount == 0 {
		cfg.QuizCount = quiz.DefaultQuizCount
	}
	if cfg.QuestionsPerQuiz == 0 {
		cfg.QuestionsPerQuiz = quiz.DefaultQuestionsPerQuiz
	}
	if cfg.AnswersPerQuestion == 0 {
		cfg.AnswersPerQuestion = quiz.DefaultAnswersPerQuestion
	}

	sheets := &cfg.Sheets
	sheets.Data = defaultString(sheets.Data, quiz.DefaultDataSheet)
	sheets.Template = defaultString(sheets.Template, quiz.DefaultTemplateSheet)
	sheets.Prefix = defaultString(sheets.Prefix, quiz.DefaultSheetPrefix)

	layout := &cfg.Layout
	def := quiz.DefaultLayout()
	layout.LabelCell = strings.ToUpper(defaultString(layout.LabelCell, def.LabelCell))
	layout.QuestionColumn = strings.ToUpper(defaultString(layout.QuestionColumn, def.QuestionColumn))
	if layout.FirstQuestionRow == 0 {
		layout.FirstQuestionRow = def.FirstQuestionRow
	}
	if layout.AnswerRowOffset == 0 {
		layout.AnswerRowOffset = def.AnswerRowOffset
	}
	if layout.RowStride == 0 {
		layout.RowStride = def.RowStride
	}
	if len(layout.AnswerColumns) == 0 {
		layout.AnswerColumns = def.AnswerColumns
	}
	for i, column := range layout.AnswerColumns {
		layout.AnswerColumns[i] = strings.ToUpper(strings.TrimSpace(column))
	}
}

func defaultString(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
