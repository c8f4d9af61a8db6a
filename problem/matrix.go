// SPDX-License-Identifier: MIT

package problem

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
)

// DefaultSheet is read from workbooks when no sheet is named.
const DefaultSheet = "Sheet1"

// ErrBadCell indicates a grid cell that is not an integer.
var ErrBadCell = errors.New("problem: bad matrix cell")

// LoadMatrix reads a matrix file chosen by extension: .csv, .xlsx, or a
// YAML/JSON list of rows. sheet only applies to .xlsx.
func LoadMatrix(path, sheet string) (*incidence.Matrix, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("problem: open csv: %w", err)
		}
		defer f.Close()

		return ReadCSV(f)
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("problem: open xlsx: %w", err)
		}
		defer f.Close()

		return readWorkbook(f, sheet)
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("problem: read matrix: %w", err)
		}
		var rows [][]int
		// JSON is valid YAML for a list of integer rows.
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("problem: decode matrix: %w", err)
		}

		return incidence.FromRows(rows)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV reads a 0/1 grid from CSV.
func ReadCSV(r io.Reader) (*incidence.Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // a header may be wider; parseGrid checks data rows
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("problem: read csv: %w", err)
	}

	return parseGrid(records, false)
}

// ReadXLSX reads a 0/1 grid from a workbook stream.
func ReadXLSX(r io.Reader, sheet string) (*incidence.Matrix, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("problem: open xlsx: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (*incidence.Matrix, error) {
	name := sheet
	if name == "" {
		name = DefaultSheet
		if sheets := f.GetSheetList(); len(sheets) > 0 && !slices.Contains(sheets, DefaultSheet) {
			name = sheets[0]
		}
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("problem: read sheet %q: %w", name, err)
	}

	// GetRows drops trailing empty cells, so short rows end in zeros.
	return parseGrid(rows, true)
}

// parseGrid turns string cells into a matrix. A first row with text past
// its first cell is a header; a first column that is text in every data
// row holds labels. Short rows are padded with zeros when pad is set,
// otherwise they are rejected with incidence.ErrNonRectangular.
func parseGrid(records [][]string, pad bool) (*incidence.Matrix, error) {
	grid := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(rec))
		blank := true
		for j, cell := range rec {
			row[j] = strings.TrimSpace(cell)
			blank = blank && row[j] == ""
		}
		if !blank {
			grid = append(grid, row)
		}
	}

	if len(grid) > 0 && len(grid[0]) > 1 && slices.ContainsFunc(grid[0][1:], isText) {
		grid = grid[1:]
	}
	labeled := len(grid) > 0
	for _, row := range grid {
		if len(row) == 0 || !isText(row[0]) {
			labeled = false
			break
		}
	}

	width := 0
	for i, row := range grid {
		if labeled {
			grid[i] = row[1:]
		}
		if !pad && len(grid[i]) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 1 has %d",
				incidence.ErrNonRectangular, i+1, len(grid[i]), len(grid[0]))
		}
		width = max(width, len(grid[i]))
	}

	values := make([][]int, len(grid))
	for i, row := range grid {
		values[i] = make([]int, width)
		for j, cell := range row {
			if cell == "" {
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %q", ErrBadCell, i+1, j+1, cell)
			}
			values[i][j] = v
		}
	}
	if len(values) == 0 {
		return incidence.New(0, 0)
	}

	return incidence.FromRows(values)
}

// isText reports a non-empty cell that is not an integer.
func isText(cell string) bool {
	if cell == "" {
		return false
	}
	_, err := strconv.Atoi(cell)

	return err != nil
}
