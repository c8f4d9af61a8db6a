// SPDX-License-Identifier: MIT

// Package problem loads analysis problems from files.
//
// A problem file (.yaml, .yml or .json) names the mode, the matrix and the
// mode's selections:
//
//	name: gearbox
//	mode: pair            # status | pair | link
//	matrix:               # or matrix_file: model.xlsx (or .csv, .yaml, .json)
//	  - [1, 1, 0]
//	  - [0, 1, 1]
//	inputs: [P1]          # zero-based ints or P-labels
//	targets: [P3]
//
// Selections per mode: status uses known/required, pair uses
// inputs/targets, link uses first_inputs/second_inputs and an optional
// analysis list (absent means the complement of the union).
//
// Matrix files: CSV and XLSX grids may carry a header row (P1, P2, ...)
// and a label column (F1, F2, ...); both are detected and skipped. Empty
// cells read as 0. XLSX reads the named sheet, else Sheet1, else the first
// sheet.
package problem
