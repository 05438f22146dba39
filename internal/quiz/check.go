package quiz

import (
	"quizgen/internal/question"
)

// Inspection describes an input workbook that passed Check.
type Inspection struct {
	Input string
	Bank  question.Bank
}

// Check runs the sheet and shape validation of Generate against the input
// directly, without copying or writing anything.
func Check(params Params, opts ...Option) (Inspection, error) {
	params = params.withDefaults()
	s := newSettings(opts)
	if err := params.validate(); err != nil {
		return Inspection{}, err
	}
	if err := requireInput(params.InputPath); err != nil {
		return Inspection{}, err
	}
	book, err := s.open(params.InputPath)
	if err != nil {
		return Inspection{}, &UnexpectedIOError{Op: "open input", Err: err}
	}
	bank, err := loadBank(book, params)
	closeErr := book.Close()
	if err != nil {
		return Inspection{}, err
	}
	if closeErr != nil {
		return Inspection{}, &UnexpectedIOError{Op: "close input", Err: closeErr}
	}
	return Inspection{Input: params.InputPath, Bank: bank}, nil
}
