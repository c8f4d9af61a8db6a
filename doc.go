// SPDX-License-Identifier: MIT

// Package diagnostics classifies design problems stated over a binary
// incidence matrix of operations (rows F1..Fm) and parameters (columns
// P1..Pn) with the deficit method.
//
// For a set of known parameters J every nonempty subset L of rows is
// scored by its deficit d(L) = |L| - |P(L) ∩ U|, where U = P \ J. The
// maximal deficit over all subsets gives the state χ(J) (J+, J0, J-)
// and the status of the problem (infeasible, calculation, optimization).
//
// Three questions are answered on the same engine:
//
//	status  is the task with known J and required τ well posed?
//	pair    is the pair (inputs I, targets T) correct?
//	link    are the inputs of two operations informationally linked?
//
// Layout:
//
//	incidence/  the immutable 0/1 matrix, labels and ASCII rendering
//	indexset/   sorted parameter index sets (union, difference, complement)
//	subset/     row subset enumeration and the row ceiling
//	deficit/    the engine: evaluation, global max reduction, classification
//	analysis/   mode adapters, guards, notices and the Report
//	report/     text, markdown, HTML and JSON renderings of a Report
//	problem/    problem files (YAML, JSON) and matrix files (CSV, XLSX)
//	server/     HTTP API with metrics and bounded concurrency
//	cmd/deficit the command line: analyze and serve
//
// Quick example:
//
//	m, _ := incidence.FromRows([][]int{{1, 1, 0}, {0, 1, 1}})
//	rep, err := analysis.Run(m, analysis.StatusMode{Known: []int{0}, Required: []int{2}})
//	if err != nil {
//		// rep still carries the notices explaining the abort
//	}
//	fmt.Println(rep.Chi, rep.Status) // J0 calculation
package diagnostics
