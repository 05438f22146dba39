package quiz

import (
	"fmt"
	"path/filepath"
	"strconv"

	"quizgen/internal/workbook"
)

// Defaults used when a Params field is left zero.
const (
	DefaultInput              = "domande_risposte.xlsx"
	DefaultOutput             = "quiz_randomizzati.xlsx"
	DefaultQuizCount          = 20
	DefaultQuestionsPerQuiz   = 10
	DefaultAnswersPerQuestion = 4
	DefaultDataSheet          = "domande_risposte"
	DefaultTemplateSheet      = "template"
	DefaultSheetPrefix        = "Quiz_"
)

// Params describes one generation run.
type Params struct {
	InputPath          string
	OutputPath         string
	QuizCount          int
	QuestionsPerQuiz   int
	AnswersPerQuestion int
	DataSheet          string
	TemplateSheet      string
	SheetPrefix        string
	Layout             Layout
}

// DefaultParams returns the stock parameters.
func DefaultParams() Params {
	return Params{}.withDefaults()
}

func (p Params) withDefaults() Params {
	if p.InputPath == "" {
		p.InputPath = DefaultInput
	}
	if p.OutputPath == "" {
		p.OutputPath = DefaultOutput
	}
	if p.QuizCount == 0 {
		p.QuizCount = DefaultQuizCount
	}
	if p.QuestionsPerQuiz == 0 {
		p.QuestionsPerQuiz = DefaultQuestionsPerQuiz
	}
	if p.AnswersPerQuestion == 0 {
		p.AnswersPerQuestion = DefaultAnswersPerQuestion
	}
	if p.DataSheet == "" {
		p.DataSheet = DefaultDataSheet
	}
	if p.TemplateSheet == "" {
		p.TemplateSheet = DefaultTemplateSheet
	}
	if p.SheetPrefix == "" {
		p.SheetPrefix = DefaultSheetPrefix
	}
	if p.Layout.LabelCell == "" && p.Layout.QuestionColumn == "" && len(p.Layout.AnswerColumns) == 0 {
		p.Layout = DefaultLayout()
	}
	return p
}

// validate reports parameters no input workbook could satisfy.
func (p Params) validate() error {
	if p.QuizCount < 1 {
		return fmt.Errorf("%w: quiz count must be >= 1, got %d", ErrInvalidParams, p.QuizCount)
	}
	if p.QuestionsPerQuiz < 1 {
		return fmt.Errorf("%w: questions per quiz must be >= 1, got %d", ErrInvalidParams, p.QuestionsPerQuiz)
	}
	if p.AnswersPerQuestion < 1 {
		return fmt.Errorf("%w: answers per question must be >= 1, got %d", ErrInvalidParams, p.AnswersPerQuestion)
	}
	if p.DataSheet == p.TemplateSheet {
		return fmt.Errorf("%w: data and template sheet are both %q", ErrInvalidParams, p.DataSheet)
	}
	if err := p.Layout.Validate(p.AnswersPerQuestion); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if n := len(p.SheetName(p.QuizCount)); n > workbook.MaxSheetNameLength {
		return fmt.Errorf("%w: sheet name %q is %d characters, limit is %d", ErrInvalidParams, p.SheetName(p.QuizCount), n, workbook.MaxSheetNameLength)
	}
	if samePath(p.InputPath, p.OutputPath) {
		return fmt.Errorf("%w: input and output are the same file %q", ErrInvalidParams, p.InputPath)
	}
	return nil
}

// SheetName returns the name of the generated sheet for quiz number n.
func (p Params) SheetName(n int) string {
	return p.SheetPrefix + strconv.Itoa(n)
}

// Label returns the "<n>/<count>" text written on quiz number n.
func (p Params) Label(n int) string {
	return strconv.Itoa(n) + "/" + strconv.Itoa(p.QuizCount)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
