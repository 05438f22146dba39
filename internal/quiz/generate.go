// Package quiz builds randomized quiz sheets from a question bank sheet and a
// template sheet of the same workbook.
package quiz

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"quizgen/internal/fileutil"
	"quizgen/internal/question"
)

// Generate copies the input workbook to the output path and appends
// QuizCount sheets cloned from the template, each holding a fresh shuffle of
// the question bank and of every question's answers.
//
// A missing sheet or an undersized bank deletes the output again. Any other
// failure after the copy leaves the partial output in place.
func Generate(params Params, opts ...Option) (Summary, error) {
	params = params.withDefaults()
	s := newSettings(opts)
	if err := params.validate(); err != nil {
		return Summary{}, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"run_id": s.runID,
		"input":  params.InputPath,
		"output": params.OutputPath,
	})

	if err := requireInput(params.InputPath); err != nil {
		return Summary{}, err
	}
	if err := fileutil.CopyFile(params.InputPath, params.OutputPath); err != nil {
		return Summary{}, &UnexpectedIOError{Op: "copy input", Err: err}
	}
	log.Debug("copied input")

	book, err := s.open(params.OutputPath)
	if err != nil {
		return Summary{}, &UnexpectedIOError{Op: "open output", Err: err}
	}

	summary := Summary{
		RunID:     s.runID,
		Input:     params.InputPath,
		Output:    params.OutputPath,
		Seed:      s.seed,
		QuizCount: params.QuizCount,
	}
	sheets, err := fill(book, params, s.newRand(), log)
	closeErr := book.Close()
	if err != nil {
		if removesOutput(err) {
			if removeErr := os.Remove(params.OutputPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
				log.WithError(removeErr).Warn("remove rejected output")
			}
		}
		return Summary{}, err
	}
	if closeErr != nil {
		return Summary{}, &UnexpectedIOError{Op: "close output", Err: closeErr}
	}
	summary.Sheets = sheets
	log.WithField("sheets", len(sheets)).Info("generated quizzes")
	return summary, nil
}

func requireInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return &UnexpectedIOError{Op: "stat input", Err: err}
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}

// fill validates the copied workbook, writes every quiz sheet and saves.
func fill(book Workbook, params Params, rng *rand.Rand, log logrus.FieldLogger) ([]SheetSummary, error) {
	bank, err := loadBank(book, params)
	if err != nil {
		return nil, err
	}
	sheets := make([]SheetSummary, 0, params.QuizCount)
	for n := 1; n <= params.QuizCount; n++ {
		sheet, err := writeQuiz(book, params, bank, n, rng)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"quiz": n, "sheet": sheet.Name}).Debug("wrote quiz sheet")
		sheets = append(sheets, sheet)
	}
	if err := book.Save(); err != nil {
		return nil, &UnexpectedIOError{Op: "save output", Err: err}
	}
	return sheets, nil
}

// loadBank checks the required sheets and free target names, then extracts the bank.
func loadBank(book Workbook, params Params) (question.Bank, error) {
	for _, name := range []string{params.DataSheet, params.TemplateSheet} {
		if !book.HasSheet(name) {
			return nil, &MissingSheetError{Name: name}
		}
	}
	rows, err := book.Rows(params.DataSheet)
	if err != nil {
		return nil, &UnexpectedIOError{Op: "read question sheet", Err: err}
	}
	bank, err := question.ExtractBank(rows, params.QuestionsPerQuiz, params.AnswersPerQuestion)
	if err != nil {
		var shapeErr *question.ShapeError
		if errors.As(err, &shapeErr) {
			return nil, malformedShape(params.DataSheet, shapeErr)
		}
		return nil, &MalformedInputError{Sheet: params.DataSheet, Reason: err.Error(), Err: err}
	}
	for n := 1; n <= params.QuizCount; n++ {
		if name := params.SheetName(n); book.HasSheet(name) {
			return nil, &MalformedInputError{
				Sheet:  name,
				Reason: "a sheet with this name already exists in the input",
			}
		}
	}
	return bank, nil
}

// writeQuiz clones the template as quiz number n and fills it.
func writeQuiz(book Workbook, params Params, bank question.Bank, n int, rng *rand.Rand) (SheetSummary, error) {
	sheet := SheetSummary{Name: params.SheetName(n), Label: params.Label(n)}
	if err := book.CloneSheet(params.TemplateSheet, sheet.Name); err != nil {
		return SheetSummary{}, &UnexpectedIOError{Op: "clone template", Err: err}
	}
	if err := book.SetCell(sheet.Name, params.Layout.LabelCell, sheet.Label); err != nil {
		return SheetSummary{}, &UnexpectedIOError{Op: "write label", Err: err}
	}

	order := rng.Perm(len(bank))
	sheet.Questions = make([]PlacedQuestion, 0, len(order))
	for slot, index := range order {
		placed, err := writeQuestion(book, params.Layout, sheet.Name, slot, bank[index], rng)
		if err != nil {
			return SheetSummary{}, err
		}
		sheet.Questions = append(sheet.Questions, placed)
	}
	return sheet, nil
}

func writeQuestion(book Workbook, layout Layout, sheet string, slot int, record question.Record, rng *rand.Rand) (PlacedQuestion, error) {
	cell, err := layout.QuestionCell(slot)
	if err != nil {
		return PlacedQuestion{}, &UnexpectedIOError{Op: "locate question cell", Err: err}
	}
	if err := book.SetCell(sheet, cell, record.Text); err != nil {
		return PlacedQuestion{}, &UnexpectedIOError{Op: "write question", Err: err}
	}
	placed := PlacedQuestion{
		Cell:        cell,
		SourceRow:   record.Row,
		Text:        record.Text,
		AnswerOrder: make([]int, 0, len(record.Answers)),
		Answers:     make([]string, 0, len(record.Answers)),
	}
	for k, source := range rng.Perm(len(record.Answers)) {
		answerCell, err := layout.AnswerCell(slot, k)
		if err != nil {
			return PlacedQuestion{}, &UnexpectedIOError{Op: "locate answer cell", Err: err}
		}
		answer := record.Answers[source]
		if err := book.SetCell(sheet, answerCell, answer); err != nil {
			return PlacedQuestion{}, &UnexpectedIOError{Op: "write answer", Err: err}
		}
		placed.AnswerOrder = append(placed.AnswerOrder, source+1)
		placed.Answers = append(placed.Answers, answer)
	}
	return placed, nil
}
