// Package workbook reads and writes the spreadsheet sources the pipeline
// works with: the inventory extract, the lookup workbooks with their
// named Excel table objects, and the decorated output.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"mastermaker/internal/table"
)

// I/O errors. Both are fatal; the pipeline never partially processes.
var (
	ErrSourceNotFound = errors.New("source file not found")
	ErrLookupNotFound = errors.New("lookup not found")
)

// LatestMatching returns the newest file in folder whose name starts
// with prefix and ends in .xlsx, by modification time.
func LatestMatching(folder, prefix string) (string, error) {
	pattern := filepath.Join(folder, prefix+"*.xlsx")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no files matching %s", ErrSourceNotFound, pattern)
	}

	newest := ""
	var newestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = m
			newestMod = info.ModTime().UnixNano()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("%w: no readable files matching %s", ErrSourceNotFound, pattern)
	}
	return newest, nil
}

// Workbook wraps one open spreadsheet file.
type Workbook struct {
	path string
	f    *excelize.File
}

// Open opens a workbook for reading.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{path: path, f: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the file path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// ReadSheet loads a whole sheet as a table. The first row supplies the
// column names; blank cells become absent fields.
func (w *Workbook) ReadSheet(name string) (*table.Table, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q in %s: %v", ErrLookupNotFound, name, w.path, err)
	}
	return rowsToTable(rows), nil
}

// ReadTable loads a named Excel table object, searching every sheet.
// This mirrors how the reference workbooks expose their lookup data:
// as table objects, not whole sheets.
func (w *Workbook) ReadTable(name string) (*table.Table, error) {
	for _, sheet := range w.f.GetSheetList() {
		tables, err := w.f.GetTables(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables on sheet %q in %s: %w", sheet, w.path, err)
		}
		for _, tbl := range tables {
			if tbl.Name != name {
				continue
			}
			rows, err := w.rangeRows(sheet, tbl.Range)
			if err != nil {
				return nil, fmt.Errorf("failed to read table %q in %s: %w", name, w.path, err)
			}
			return rowsToTable(rows), nil
		}
	}
	return nil, fmt.Errorf("%w: table %q in %s", ErrLookupNotFound, name, w.path)
}

// rangeRows reads the cells of an A1-style range like "A1:D10".
func (w *Workbook) rangeRows(sheet, ref string) ([][]string, error) {
	corners := strings.Split(ref, ":")
	if len(corners) != 2 {
		return nil, fmt.Errorf("malformed range %q", ref)
	}
	c1, r1, err := excelize.CellNameToCoordinates(corners[0])
	if err != nil {
		return nil, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(corners[1])
	if err != nil {
		return nil, err
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}

	var rows [][]string
	for row := r1; row <= r2; row++ {
		cells := make([]string, 0, c2-c1+1)
		for col := c1; col <= c2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			v, err := w.f.GetCellValue(sheet, cell)
			if err != nil {
				return nil, err
			}
			cells = append(cells, v)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// rowsToTable converts raw sheet rows into a table. Header cells are
// trimmed; empty header cells are dropped along with their column. Body
// cells holding the empty string are treated as absent.
func rowsToTable(rows [][]string) *table.Table {
	if len(rows) == 0 {
		return table.New()
	}

	type headerCol struct {
		name string
		idx  int
	}
	var headers []headerCol
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		headers = append(headers, headerCol{name: name, idx: i})
	}

	t := table.New()
	for _, h := range headers {
		t.Columns = append(t.Columns, h.name)
	}
	for _, raw := range rows[1:] {
		rec := make(table.Record, len(headers))
		for _, h := range headers {
			if h.idx >= len(raw) {
				continue
			}
			if raw[h.idx] == "" {
				continue
			}
			rec[h.name] = raw[h.idx]
		}
		t.Append(rec)
	}
	return t
}

// WriteTable writes the table as a single-sheet workbook at path,
// creating parent directories as needed. Absent fields become blank
// cells.
func WriteTable(path, sheet string, t *table.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name output sheet: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range t.Rows {
		cells := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = rec.Str(col)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save output workbook: %w", err)
	}
	return nil
}
