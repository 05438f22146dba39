package testutil

import (
	"fmt"
	"testing"

	"quizgen/internal/workbook"
)

// Fixture describes an input workbook for generator tests.
type Fixture struct {
	Questions     int
	Answers       int
	DataSheet     string
	TemplateSheet string
	OmitData      bool
	OmitTemplate  bool
	ExtraSheets   []string
}

// QuestionText is the text stored for 1-based question i.
func QuestionText(i int) string {
	return fmt.Sprintf("Question %d", i)
}

// AnswerText is the text stored for 1-based answer k of question i.
func AnswerText(i, k int) string {
	return fmt.Sprintf("Answer %d.%d", i, k)
}

// TemplateTitle is the marker written at A1 of every fixture template.
const TemplateTitle = "Quiz sheet"

// WriteWorkbook saves a fixture workbook at path, failing the test on error.
func WriteWorkbook(t testing.TB, path string, fx Fixture) {
	t.Helper()
	if err := BuildWorkbook(path, fx); err != nil {
		t.Fatalf("write fixture workbook: %v", err)
	}
}

// BuildWorkbook saves a fixture workbook at path. The data sheet holds
// Questions rows of one question plus Answers answer columns; the template
// carries TemplateTitle at A1 and placeholders in the default question cells.
func BuildWorkbook(path string, fx Fixture) error {
	if fx.Questions == 0 {
		fx.Questions = 10
	}
	if fx.Answers == 0 {
		fx.Answers = 4
	}
	if fx.DataSheet == "" {
		fx.DataSheet = "domande_risposte"
	}
	if fx.TemplateSheet == "" {
		fx.TemplateSheet = "template"
	}

	book, err := workbook.New("cover")
	if err != nil {
		return fmt.Errorf("new workbook: %w", err)
	}
	defer book.Close()
	if err := book.SetCell("cover", "A1", "cover page"); err != nil {
		return fmt.Errorf("write cover: %w", err)
	}

	if !fx.OmitData {
		if err := book.AddSheet(fx.DataSheet); err != nil {
			return err
		}
		for i := 1; i <= fx.Questions; i++ {
			if err := setCell(book, fx.DataSheet, "A", i, QuestionText(i)); err != nil {
				return err
			}
			for k := 1; k <= fx.Answers; k++ {
				column, err := workbook.ColumnName(k + 1)
				if err != nil {
					return err
				}
				if err := setCell(book, fx.DataSheet, column, i, AnswerText(i, k)); err != nil {
					return err
				}
			}
		}
	}
	if !fx.OmitTemplate {
		if err := book.AddSheet(fx.TemplateSheet); err != nil {
			return err
		}
		if err := setCell(book, fx.TemplateSheet, "A", 1, TemplateTitle); err != nil {
			return err
		}
		for slot := 0; slot < 10; slot++ {
			if err := setCell(book, fx.TemplateSheet, "B", 7+slot*4, "question placeholder"); err != nil {
				return err
			}
		}
	}
	for _, name := range fx.ExtraSheets {
		if err := book.AddSheet(name); err != nil {
			return err
		}
	}
	return book.SaveAs(path)
}

func setCell(book *workbook.File, sheet, column string, row int, value string) error {
	cell, err := workbook.CellName(column, row)
	if err != nil {
		return err
	}
	return book.SetCell(sheet, cell, value)
}
