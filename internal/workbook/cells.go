package workbook

import "github.com/xuri/excelize/v2"

// CellName joins a column name and a 1-based row into an A1 reference.
func CellName(column string, row int) (string, error) {
	return excelize.JoinCellName(column, row)
}

// ValidCell reports whether ref is a well-formed A1 reference.
func ValidCell(ref string) bool {
	_, _, err := excelize.CellNameToCoordinates(ref)
	return err == nil
}

// ValidColumn reports whether name is a well-formed column name.
func ValidColumn(name string) bool {
	_, err := excelize.ColumnNameToNumber(name)
	return err == nil
}

// MaxSheetNameLength is the longest sheet name spreadsheet applications accept.
const MaxSheetNameLength = excelize.MaxSheetNameLength

// ColumnName converts a 1-based column number to its letters.
func ColumnName(n int) (string, error) {
	return excelize.ColumnNumberToName(n)
}
