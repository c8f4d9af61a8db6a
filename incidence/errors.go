// SPDX-License-Identifier: MIT

package incidence

import "errors"

// Every message is prefixed with "incidence: ..." so it greps cleanly in logs.
// Callers match with errors.Is; wrapped forms carry the offending position.
var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("incidence: invalid shape")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("incidence: all rows must have the same length")

	// ErrNonBinary indicates a cell value other than 0 or 1.
	ErrNonBinary = errors.New("incidence: cell value must be 0 or 1")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("incidence: index out of range")
)
