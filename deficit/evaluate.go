// SPDX-License-Identifier: MIT

package deficit

import (
	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
	"github.com/Niceman228/matrix-task-status-diagnostics/indexset"
)

// Record is one row subset L with its covering set σ(L,J) and deficit.
// Records are never mutated once produced.
type Record struct {
	Rows    []int `json:"rows" yaml:"rows"`       // strictly increasing row indices
	Covered []int `json:"covered" yaml:"covered"` // sorted, ⊆ U
	Deficit int   `json:"deficit" yaml:"deficit"` // |Rows| − |Covered|
}

// Evaluate returns the universe columns touched by at least one of rows and
// the deficit |rows| − |covered|. With an empty universe, covered is empty
// and the deficit equals len(rows).
//
// rows and universe must index into m; universe need not be sorted (it is
// normalized first), so covered is always ascending.
// Complexity: O(|rows|·|universe|).
func Evaluate(m *incidence.Matrix, universe, rows []int) (covered []int, deficit int) {
	return evaluate(m, indexset.Normalize(universe), rows)
}

// evaluate is the hot-loop form of Evaluate: universe is already sorted.
// Scanning columns in the outer loop emits covered in universe order and
// lets a column stop at the first row that touches it.
func evaluate(m *incidence.Matrix, universe, rows []int) ([]int, int) {
	covered := make([]int, 0, min(len(universe), len(rows)))
	for _, col := range universe {
		for _, row := range rows {
			if m.IsSet(row, col) {
				covered = append(covered, col)
				break
			}
		}
	}

	return covered, len(rows) - len(covered)
}
