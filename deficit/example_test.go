// SPDX-License-Identifier: MIT

package deficit_test

import (
	"fmt"

	"github.com/Niceman228/matrix-task-status-diagnostics/deficit"
	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
)

// ExampleAnalyze reduces a three-operation model where F1 and F2 both
// compute P1 only: together they over-determine it.
func ExampleAnalyze() {
	m, _ := incidence.FromRows([][]int{
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 1},
	})

	res, err := deficit.Analyze(m, []int{0, 1, 2}, []int{1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c := deficit.Classify(res)

	fmt.Println("max deficit:", c.MaxDeficit)
	for _, rec := range res.Best {
		fmt.Println("rows:", rec.Rows, "covered:", rec.Covered)
	}
	fmt.Println("chi:", c.Chi, "status:", c.Status)

	// Output:
	// max deficit: 1
	// rows: [0 1] covered: [0]
	// chi: J+ status: infeasible
}

// ExampleRefinement relabels a positive deficit when the known parameters
// are fixed externally.
func ExampleRefinement() {
	m, _ := incidence.FromRows([][]int{{1}, {1}})
	res, _ := deficit.Analyze(m, []int{0}, nil)

	base := deficit.Classify(res)
	fixed := deficit.Refinement{FixedInputs: true}.Apply(base, res)
	fmt.Println(base.Status, "->", fixed.Status)

	// Output:
	// infeasible -> contradictory
}
