package question

import "fmt"

// ShapeError reports a data grid smaller than the bank requires.
type ShapeError struct {
	Rows     int
	Columns  int
	WantRows int
	WantCols int
}

// Error returns a readable message for shape failures.
func (err *ShapeError) Error() string {
	return fmt.Sprintf("expected at least %d rows x %d columns, found %d rows x %d columns",
		err.WantRows, err.WantCols, err.Rows, err.Columns)
}

// Dimensions returns the used row count and the widest row of a grid.
func Dimensions(rows [][]string) (int, int) {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	return len(rows), columns
}

// CheckShape verifies the grid holds questions rows and answers+1 columns.
func CheckShape(rows [][]string, questions, answers int) error {
	if questions <= 0 {
		return fmt.Errorf("questions per quiz must be > 0, got %d", questions)
	}
	if answers <= 0 {
		return fmt.Errorf("answers per question must be > 0, got %d", answers)
	}
	rowCount, columnCount := Dimensions(rows)
	if rowCount < questions || columnCount < answers+1 {
		return &ShapeError{
			Rows:     rowCount,
			Columns:  columnCount,
			WantRows: questions,
			WantCols: answers + 1,
		}
	}
	return nil
}
