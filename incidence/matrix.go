// SPDX-License-Identifier: MIT

package incidence

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDim bounds editor-driven dimensions (see Clamp). The matrix itself
// accepts any non-negative shape; the analysis row ceiling is enforced by
// the deficit package.
const MaxDim = 30

// Label prefixes for operations (rows) and parameters (columns).
const (
	RowPrefix = "F"
	ColPrefix = "P"
)

// Matrix is a row-major m×n grid of binary cells.
// r is rows (operations), c is columns (parameters); data holds r*c cells.
type Matrix struct {
	r, c int     // number of rows and columns
	data []uint8 // flat backing storage, len == r*c, values in {0,1}
}

// New creates an r×c Matrix filled with zeros. Zero dimensions are legal
// and produce an empty matrix.
// Complexity: O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// FromRows builds a Matrix from a rectangular [][]int of 0/1 values.
// The input is deep-copied; later edits to values do not leak in.
// Returns ErrNonRectangular or ErrNonBinary (wrapped with the position).
// Complexity: O(m×n).
func FromRows(values [][]int) (*Matrix, error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	m := &Matrix{r: rows, c: cols, data: make([]uint8, rows*cols)}

	var i, j int
	for i = 0; i < rows; i++ {
		if len(values[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(values[i]), cols, ErrNonRectangular)
		}
		for j = 0; j < cols; j++ {
			switch values[i][j] {
			case 0:
			case 1:
				m.data[i*cols+j] = 1
			default:
				return nil, fmt.Errorf("FromRows(%d,%d)=%d: %w", i, j, values[i][j], ErrNonBinary)
			}
		}
	}

	return m, nil
}

// Rows returns m, the number of operations.
func (m *Matrix) Rows() int { return m.r }

// Cols returns n, the number of parameters.
func (m *Matrix) Cols() int { return m.c }

// Empty reports whether the matrix has no rows or no columns.
func (m *Matrix) Empty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the cell value (0 or 1) at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return int(m.data[idx]), nil
}

// IsSet is the unchecked accessor used by hot loops. The caller guarantees
// 0 ≤ row < Rows() and 0 ≤ col < Cols(); otherwise it panics like a slice.
func (m *Matrix) IsSet(row, col int) bool {
	return m.data[row*m.c+col] == 1
}

// Set writes v (0 or 1) at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v != 0 && v != 1 {
		return fmt.Errorf("Matrix.Set(%d,%d)=%d: %w", row, col, v, ErrNonBinary)
	}
	m.data[idx] = uint8(v)

	return nil
}

// Toggle flips the cell at (row, col), mirroring a checkbox click.
// Complexity: O(1).
func (m *Matrix) Toggle(row, col int) error {
	idx, err := m.indexOf("Toggle", row, col)
	if err != nil {
		return err
	}
	m.data[idx] ^= 1

	return nil
}

// Resize reshapes the matrix in place to rows×cols. Cells inside the
// overlap of the old and new shapes keep their values; new cells are 0.
// Complexity: O(rows*cols).
func (m *Matrix) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Resize(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]uint8, rows*cols)
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(data[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, data

	return nil
}

// Clone returns a deep copy, suitable as a frozen snapshot.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	data := make([]uint8, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Row returns a copy of row i as 0/1 ints.
func (m *Matrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = int(m.data[i*m.c+j])
	}

	return out, nil
}

// ToRows exports the matrix as a fresh [][]int.
func (m *Matrix) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i], _ = m.Row(i)
	}

	return out
}

// ZeroRows returns, ascending, the rows with no 1 in any of cols. Such a
// row touches nothing in cols and adds exactly +1 to any subset's deficit.
// cols must lie in [0, Cols()).
// Complexity: O(m×|cols|).
func (m *Matrix) ZeroRows(cols []int) []int {
	var out []int
	for i := 0; i < m.r; i++ {
		idle := true
		for _, j := range cols {
			if m.data[i*m.c+j] == 1 {
				idle = false
				break
			}
		}
		if idle {
			out = append(out, i)
		}
	}

	return out
}

// String implements fmt.Stringer with one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('0' + m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// RowLabel returns the 1-based operation label for row i ("F1" for 0).
func RowLabel(i int) string { return RowPrefix + strconv.Itoa(i+1) }

// ColLabel returns the 1-based parameter label for column j ("P1" for 0).
func ColLabel(j int) string { return ColPrefix + strconv.Itoa(j+1) }

// Clamp bounds editor-supplied dimensions to [1, MaxDim].
func Clamp(rows, cols int) (int, int) {
	return min(max(rows, 1), MaxDim), min(max(cols, 1), MaxDim)
}
