package quiz

import (
	"errors"
	"fmt"

	"quizgen/internal/question"
)

// ErrInputNotFound indicates the input workbook does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrInvalidParams indicates generation parameters that can never succeed.
var ErrInvalidParams = errors.New("invalid parameters")

// MissingSheetError reports a required sheet absent from the input.
type MissingSheetError struct {
	Name string
}

func (err *MissingSheetError) Error() string {
	return fmt.Sprintf("sheet %q not found in input", err.Name)
}

// MalformedInputError reports a data sheet or workbook that cannot hold the quiz.
type MalformedInputError struct {
	Sheet  string
	Reason string
	Err    error
}

func (err *MalformedInputError) Error() string {
	return fmt.Sprintf("sheet %q is malformed: %s", err.Sheet, err.Reason)
}

func (err *MalformedInputError) Unwrap() error {
	return err.Err
}

// UnexpectedIOError wraps any read, write or save failure past the copy step.
type UnexpectedIOError struct {
	Op  string
	Err error
}

func (err *UnexpectedIOError) Error() string {
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *UnexpectedIOError) Unwrap() error {
	return err.Err
}

// Kind classifies generation failures.
type Kind string

const (
	KindNone          Kind = ""
	KindInputNotFound Kind = "input_not_found"
	KindMissingSheet  Kind = "missing_sheet"
	KindMalformed     Kind = "malformed_shape"
	KindUnexpectedIO  Kind = "unexpected_io"
	KindInvalidParams Kind = "invalid_params"
)

// KindOf maps an error returned by Generate or Check to its Kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var missing *MissingSheetError
	var malformed *MalformedInputError
	switch {
	case errors.Is(err, ErrInputNotFound):
		return KindInputNotFound
	case errors.Is(err, ErrInvalidParams):
		return KindInvalidParams
	case errors.As(err, &missing):
		return KindMissingSheet
	case errors.As(err, &malformed):
		return KindMalformed
	default:
		return KindUnexpectedIO
	}
}

// removesOutput reports whether a failure deletes the copied output file.
// Only the validated failures do; anything else leaves the partial copy.
func removesOutput(err error) bool {
	switch KindOf(err) {
	case KindMissingSheet, KindMalformed:
		return true
	default:
		return false
	}
}

func malformedShape(sheet string, err *question.ShapeError) error {
	return &MalformedInputError{Sheet: sheet, Reason: err.Error(), Err: err}
}
