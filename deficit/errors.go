// SPDX-License-Identifier: MIT

package deficit

import (
	"errors"

	"github.com/Niceman228/matrix-task-status-diagnostics/subset"
)

var (
	// ErrNilMatrix indicates a nil *incidence.Matrix argument.
	ErrNilMatrix = errors.New("deficit: nil matrix")

	// ErrTooManyRows is the enumeration ceiling circuit breaker. It is the
	// subset package sentinel, so errors.Is matches either name.
	ErrTooManyRows = subset.ErrTooManyRows

	// ErrNoSubsets indicates that enumeration produced nothing to reduce,
	// which only happens for a matrix without rows.
	ErrNoSubsets = errors.New("deficit: no row subsets produced")
)
