//go:build cucumber
// +build cucumber

package cucumber

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/cucumber/godog"

	"quizgen/internal/quiz"
	"quizgen/internal/testutil"
	"quizgen/internal/workbook"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) stdoutMentions(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in stdout, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) stderrMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in stderr, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) noOutputWorkbookExists() error {
	if _, err := os.Stat(s.outputPath()); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("expected no output workbook, stat returned %v", err)
	}
	return nil
}

// withOutput opens the output workbook for the duration of fn.
func (s *featureState) withOutput(fn func(book *workbook.File) error) error {
	book, err := workbook.Open(s.outputPath())
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer book.Close()
	return fn(book)
}

// quizSheets returns the generated sheet names in workbook order.
func quizSheets(book *workbook.File) []string {
	var names []string
	for _, name := range book.Sheets() {
		if strings.HasPrefix(name, quiz.DefaultSheetPrefix) {
			names = append(names, name)
		}
	}
	return names
}

// cellAt reads the cell the layout assigns to a question slot.
func cellAt(book *workbook.File, sheet string, locate func(int) (string, error), slot int) (string, error) {
	ref, err := locate(slot)
	if err != nil {
		return "", err
	}
	return book.Cell(sheet, ref)
}

func (s *featureState) theOutputHasQuizSheets(count int) error {
	return s.withOutput(func(book *workbook.File) error {
		want := []string{"cover", quiz.DefaultDataSheet, quiz.DefaultTemplateSheet}
		for n := 1; n <= count; n++ {
			want = append(want, fmt.Sprintf("%s%d", quiz.DefaultSheetPrefix, n))
		}
		if got := book.Sheets(); !slices.Equal(got, want) {
			return fmt.Errorf("expected sheets %v, got %v", want, got)
		}
		return nil
	})
}

func (s *featureState) sheetCellIs(sheet, cell, want string) error {
	return s.withOutput(func(book *workbook.File) error {
		got, err := book.Cell(sheet, cell)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("expected %s!%s to be %q, got %q", sheet, cell, want, got)
		}
		return nil
	})
}

func (s *featureState) everySheetHoldsEachQuestion() error {
	layout := quiz.DefaultLayout()
	var want []string
	for i := 1; i <= s.fixture.Questions; i++ {
		want = append(want, testutil.QuestionText(i))
	}
	slices.Sort(want)
	return s.withOutput(func(book *workbook.File) error {
		for _, sheet := range quizSheets(book) {
			var got []string
			for slot := 0; slot < s.fixture.Questions; slot++ {
				value, err := cellAt(book, sheet, layout.QuestionCell, slot)
				if err != nil {
					return err
				}
				got = append(got, value)
			}
			slices.Sort(got)
			if !slices.Equal(got, want) {
				return fmt.Errorf("sheet %s holds questions %v", sheet, got)
			}
		}
		return nil
	})
}

func (s *featureState) everyAnswerRowMatches() error {
	layout := quiz.DefaultLayout()
	byQuestion := map[string]int{}
	for i := 1; i <= s.fixture.Questions; i++ {
		byQuestion[testutil.QuestionText(i)] = i
	}
	return s.withOutput(func(book *workbook.File) error {
		for _, sheet := range quizSheets(book) {
			for slot := 0; slot < s.fixture.Questions; slot++ {
				question, err := cellAt(book, sheet, layout.QuestionCell, slot)
				if err != nil {
					return err
				}
				i, ok := byQuestion[question]
				if !ok {
					return fmt.Errorf("sheet %s slot %d holds unknown question %q", sheet, slot, question)
				}
				var want, got []string
				for k := 0; k < s.fixture.Answers; k++ {
					want = append(want, testutil.AnswerText(i, k+1))
					ref, err := layout.AnswerCell(slot, k)
					if err != nil {
						return err
					}
					value, err := book.Cell(sheet, ref)
					if err != nil {
						return err
					}
					got = append(got, value)
				}
				slices.Sort(want)
				slices.Sort(got)
				if !slices.Equal(got, want) {
					return fmt.Errorf("sheet %s slot %d answers %v, want %v", sheet, slot, got, want)
				}
			}
		}
		return nil
	})
}
