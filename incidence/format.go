// SPDX-License-Identifier: MIT

package incidence

import (
	"strconv"
	"strings"
)

// minCellWidth is the narrowest column in the bordered layout.
const minCellWidth = 3

// Format renders the matrix as a bordered ASCII table with F/P labels:
//
//	+-----+-----+-----+
//	|     | P1  | P2  |
//	+=====+=====+=====+
//	| F1  |  1  |  0  |
//	+-----+-----+-----+
//
// An empty matrix renders as the empty string.
// Complexity: O(m×n).
func (m *Matrix) Format() string {
	if m.Empty() {
		return ""
	}

	// Column 0 holds row labels; columns 1..n hold parameter labels.
	widths := make([]int, m.c+1)
	widths[0] = max(minCellWidth, len(RowLabel(m.r-1)))
	for j := 0; j < m.c; j++ {
		widths[j+1] = max(minCellWidth, len(ColLabel(j)))
	}

	var sb strings.Builder
	rule := func(ch byte) {
		sb.WriteByte('+')
		for _, w := range widths {
			sb.WriteString(strings.Repeat(string(ch), w+2))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	line := func(cells []string) {
		sb.WriteByte('|')
		for k, text := range cells {
			sb.WriteString(center(text, widths[k]))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}

	header := make([]string, 0, m.c+1)
	header = append(header, "")
	for j := 0; j < m.c; j++ {
		header = append(header, ColLabel(j))
	}
	rule('-')
	line(header)
	rule('=')

	cells := make([]string, m.c+1)
	for i := 0; i < m.r; i++ {
		cells[0] = RowLabel(i)
		for j := 0; j < m.c; j++ {
			cells[j+1] = strconv.Itoa(int(m.data[i*m.c+j]))
		}
		line(cells)
		rule('-')
	}

	return sb.String()
}

// center pads text to width with the extra space on the right, plus one
// space of margin on each side.
func center(text string, width int) string {
	pad := max(width-len(text), 0)
	left := pad / 2

	return " " + strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left) + " "
}
