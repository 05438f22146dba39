// Package workbook wraps the spreadsheet operations quizgen needs on top of
// excelize: open, clone a sheet, read a used range, write a cell, save.
package workbook

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrSheetExists is returned when a clone target is already present.
var ErrSheetExists = errors.New("sheet already exists")

// File is an open spreadsheet document.
type File struct {
	file *excelize.File
	path string
}

// Open loads the workbook stored at path.
func Open(path string) (*File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return &File{file: f, path: path}, nil
}

// New returns an empty workbook whose single default sheet is renamed to first.
func New(first string) (*File, error) {
	f := excelize.NewFile()
	if first != "" {
		if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("rename default sheet: %w", err)
		}
	}
	return &File{file: f}, nil
}

// Path returns the file the workbook was opened from or last saved to.
func (w *File) Path() string {
	return w.path
}

// Sheets lists sheet names in workbook order.
func (w *File) Sheets() []string {
	return w.file.GetSheetList()
}

// HasSheet reports whether a sheet with the given name exists.
func (w *File) HasSheet(name string) bool {
	index, err := w.file.GetSheetIndex(name)
	return err == nil && index >= 0
}

// AddSheet appends an empty sheet.
func (w *File) AddSheet(name string) error {
	if w.HasSheet(name) {
		return fmt.Errorf("add sheet %q: %w", name, ErrSheetExists)
	}
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("add sheet %q: %w", name, err)
	}
	return nil
}

// Rows returns the used range of a sheet as formatted cell text, starting at A1.
// Trailing empty cells of each row are omitted.
func (w *File) Rows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheet, err)
	}
	return rows, nil
}

// CloneSheet appends a copy of src named dst, carrying cells, styles and merges.
func (w *File) CloneSheet(src, dst string) error {
	from, err := w.file.GetSheetIndex(src)
	if err != nil {
		return fmt.Errorf("clone %q: %w", src, err)
	}
	if from < 0 {
		return fmt.Errorf("clone %q: %w", src, excelize.ErrSheetNotExist{SheetName: src})
	}
	if w.HasSheet(dst) {
		return fmt.Errorf("clone %q to %q: %w", src, dst, ErrSheetExists)
	}
	to, err := w.file.NewSheet(dst)
	if err != nil {
		return fmt.Errorf("clone %q to %q: %w", src, dst, err)
	}
	if err := w.file.CopySheet(from, to); err != nil {
		return fmt.Errorf("clone %q to %q: %w", src, dst, err)
	}
	return nil
}

// SetCell writes a value at an A1-style cell reference.
func (w *File) SetCell(sheet, cell string, value any) error {
	if err := w.file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// Cell reads the formatted text at an A1-style cell reference.
func (w *File) Cell(sheet, cell string) (string, error) {
	value, err := w.file.GetCellValue(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("read %s!%s: %w", sheet, cell, err)
	}
	return value, nil
}

// Save writes the workbook back to the path it was opened from.
func (w *File) Save() error {
	if w.path == "" {
		return errors.New("save workbook: no path, use SaveAs")
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %q: %w", w.path, err)
	}
	return nil
}

// SaveAs writes the workbook to path and remembers it for later saves.
func (w *File) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	w.path = path
	return nil
}

// Close releases temporary resources held by the workbook.
func (w *File) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close workbook: %w", err)
	}
	return nil
}
