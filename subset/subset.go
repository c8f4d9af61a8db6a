// SPDX-License-Identifier: MIT

// Package subset enumerates the non-empty subsets of m row indices.
//
// What:
//
//   - All(m) yields every non-empty subset of {0,...,m-1}, grouped by size
//     ascending (1, 2, ..., m); each size class is in lexicographic order.
//   - OfSize(m, k) yields one size class.
//   - Count(m) = 2^m − 1, the length of All(m).
//
// The sequences are lazy and restartable: each range over the returned
// iter.Seq starts from the first subset, and breaking out of the loop stops
// generation. Every yielded slice is freshly allocated and strictly
// increasing; consumers may keep it.
//
// Cost is exponential in m. Callers must bound m with Check before ranging
// over All; a reference ceiling is 15 rows (32,767 subsets). MaxRows is an
// absolute bound past which All panics.
//
// Complexity:
//
//   - All(m):       O(m·2^m) time, O(m) live memory per yielded subset.
//   - OfSize(m,k):  O(k·C(m,k)).
package subset

import (
	"errors"
	"fmt"
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxRows is the absolute enumeration bound: 2^MaxRows−1 still fits an int
// on every platform Go supports.
const MaxRows = 30

// panicTooManyRows is raised by All when m exceeds MaxRows.
const panicTooManyRows = "subset: All: m exceeds MaxRows"

// ErrTooManyRows is returned by Check when m exceeds the given ceiling.
var ErrTooManyRows = errors.New("subset: row count exceeds enumeration ceiling")

// Check returns ErrTooManyRows (wrapped with m and the ceiling) when
// m > ceiling. A ceiling above MaxRows is treated as MaxRows.
func Check(m, ceiling int) error {
	ceiling = min(ceiling, MaxRows)
	if m > ceiling {
		return fmt.Errorf("m=%d > %d: %w", m, ceiling, ErrTooManyRows)
	}

	return nil
}

// Count returns 2^m − 1, the number of non-empty subsets; 0 for m ≤ 0.
// It panics when m > MaxRows.
func Count(m int) int {
	if m <= 0 {
		return 0
	}
	if m > MaxRows {
		panic(panicTooManyRows)
	}

	return 1<<m - 1
}

// CountOfSize returns C(m, k); 0 when k is outside [1, m].
func CountOfSize(m, k int) int {
	if k < 1 || k > m {
		return 0
	}

	return combin.Binomial(m, k)
}

// OfSize yields the k-element subsets of {0,...,m-1} in lexicographic order.
// Nothing is yielded when k is outside [1, m].
func OfSize(m, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 1 || k > m {
			return
		}
		gen := combin.NewCombinationGenerator(m, k)
		for gen.Next() {
			// nil dst: the generator allocates, so each subset is independent.
			if !yield(gen.Combination(nil)) {
				return
			}
		}
	}
}

// All yields every non-empty subset of {0,...,m-1}: size 1 first, then
// size 2, and so on up to m. It panics when m > MaxRows.
func All(m int) iter.Seq[[]int] {
	if m > MaxRows {
		panic(panicTooManyRows)
	}

	return func(yield func([]int) bool) {
		for k := 1; k <= m; k++ {
			for s := range OfSize(m, k) {
				if !yield(s) {
					return
				}
			}
		}
	}
}
