// SPDX-License-Identifier: MIT

// Package incidence models the binary operation×parameter matrix used by the
// deficit method.
//
// What:
//
//   - Matrix is an m×n grid of 0/1 cells: rows are operations F1..Fm,
//     columns are parameters P1..Pn.
//   - Parameter and operation identity is purely positional; labels are
//     derived from indices (RowLabel, ColLabel).
//   - Resize keeps the overlapping sub-rectangle and zero-fills new cells,
//     so an editor can grow or shrink the model without losing input.
//
// Why:
//
//   - The analysis engine only reads a snapshot; Clone gives callers a cheap
//     way to freeze the matrix before a long enumeration.
//
// Complexity:
//
//   - New, FromRows, Clone, Resize: O(m×n) time and memory.
//   - At, Set, Toggle: O(1).
//
// Errors:
//
//   - ErrBadShape         negative dimensions.
//   - ErrNonRectangular   rows of differing lengths.
//   - ErrNonBinary        a cell other than 0 or 1.
//   - ErrOutOfRange       row or column index outside the grid.
package incidence
