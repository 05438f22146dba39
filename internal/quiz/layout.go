package quiz

import (
	"fmt"

	"quizgen/internal/workbook"
)

// Layout locates the label, question and answer cells on a template sheet.
// Question slot j sits at row FirstQuestionRow + j*RowStride; its answers sit
// AnswerRowOffset rows below, one per AnswerColumns entry.
type Layout struct {
	LabelCell        string
	QuestionColumn   string
	FirstQuestionRow int
	AnswerRowOffset  int
	RowStride        int
	AnswerColumns    []string
}

// DefaultLayout matches the stock template: label at A47, questions in
// column B from row 7 every 4 rows, answers two rows below in B, D, F and H.
func DefaultLayout() Layout {
	return Layout{
		LabelCell:        "A47",
		QuestionColumn:   "B",
		FirstQuestionRow: 7,
		AnswerRowOffset:  2,
		RowStride:        4,
		AnswerColumns:    []string{"B", "D", "F", "H"},
	}
}

// QuestionCell returns the cell holding the question at slot.
func (l Layout) QuestionCell(slot int) (string, error) {
	return workbook.CellName(l.QuestionColumn, l.questionRow(slot))
}

// AnswerCell returns the cell holding answer position k of the question at slot.
func (l Layout) AnswerCell(slot, k int) (string, error) {
	if k < 0 || k >= len(l.AnswerColumns) {
		return "", fmt.Errorf("answer position %d outside %d answer columns", k, len(l.AnswerColumns))
	}
	return workbook.CellName(l.AnswerColumns[k], l.questionRow(slot)+l.AnswerRowOffset)
}

func (l Layout) questionRow(slot int) int {
	return l.FirstQuestionRow + slot*l.RowStride
}

// Validate checks the layout can hold the given number of answers per question.
func (l Layout) Validate(answers int) error {
	if !workbook.ValidCell(l.LabelCell) {
		return fmt.Errorf("label cell %q is not a valid cell reference", l.LabelCell)
	}
	if !workbook.ValidColumn(l.QuestionColumn) {
		return fmt.Errorf("question column %q is not a valid column", l.QuestionColumn)
	}
	if l.FirstQuestionRow < 1 {
		return fmt.Errorf("first question row must be >= 1, got %d", l.FirstQuestionRow)
	}
	if l.RowStride < 1 {
		return fmt.Errorf("row stride must be >= 1, got %d", l.RowStride)
	}
	if l.FirstQuestionRow+l.AnswerRowOffset < 1 {
		return fmt.Errorf("answer row offset %d places answers above row 1", l.AnswerRowOffset)
	}
	for i, column := range l.AnswerColumns {
		if !workbook.ValidColumn(column) {
			return fmt.Errorf("answer column %d %q is not a valid column", i, column)
		}
	}
	if answers > len(l.AnswerColumns) {
		return fmt.Errorf("%d answers per question but only %d answer columns", answers, len(l.AnswerColumns))
	}
	return nil
}
