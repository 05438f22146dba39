package cli

import (
	"errors"
	"fmt"
	"io"

	"quizgen/internal/quiz"
)

// reportGenerationError prints a one-line message for err and returns the
// exit code for its kind.
func reportGenerationError(stderr io.Writer, err error) int {
	var missing *quiz.MissingSheetError
	switch quiz.KindOf(err) {
	case quiz.KindInputNotFound:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitInputNotFound
	case quiz.KindMissingSheet:
		if errors.As(err, &missing) {
			fmt.Fprintf(stderr, "Error: sheet %q was not found in the input workbook\n", missing.Name)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return ExitMissingSheet
	case quiz.KindMalformed:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitMalformed
	case quiz.KindInvalidParams:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitIO
	}
}
