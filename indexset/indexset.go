// SPDX-License-Identifier: MIT

// Package indexset provides set algebra over zero-based parameter indices.
//
// Every result is a fresh, strictly increasing []int: duplicates collapse
// and callers may retain or mutate results freely. Inputs are never
// modified. Sets are small (n ≤ a few dozen parameters), so sorted slices
// with binary search beat hash sets on both allocation and determinism.
//
// Complexity (k = total input length):
//
//   - Normalize, Union:           O(k log k)
//   - Difference, Intersect:      O(k log k)
//   - Complement, Range:          O(n + k log k)
//   - Contains:                   O(log k)
package indexset

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfRange indicates an index outside [0, n).
var ErrOutOfRange = errors.New("indexset: index out of range")

// Normalize returns the sorted, de-duplicated copy of idx.
// A nil or empty input yields an empty, non-nil slice.
func Normalize(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)
	slices.Sort(out)

	return slices.Compact(out)
}

// Range returns [0, 1, ..., n-1]; empty for n ≤ 0.
func Range(n int) []int {
	out := make([]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, i)
	}

	return out
}

// Union returns the normalized union of all sets.
func Union(sets ...[]int) []int {
	total := 0
	for _, s := range sets {
		total += len(s)
	}
	all := make([]int, 0, total)
	for _, s := range sets {
		all = append(all, s...)
	}

	return Normalize(all)
}

// Difference returns a \ b, normalized.
func Difference(a, b []int) []int {
	nb := Normalize(b)
	out := make([]int, 0, len(a))
	for _, x := range Normalize(a) {
		if !Contains(nb, x) {
			out = append(out, x)
		}
	}

	return out
}

// Intersect returns a ∩ b, normalized.
func Intersect(a, b []int) []int {
	nb := Normalize(b)
	out := make([]int, 0, min(len(a), len(b)))
	for _, x := range Normalize(a) {
		if Contains(nb, x) {
			out = append(out, x)
		}
	}

	return out
}

// Complement returns [0, n) \ a.
func Complement(n int, a []int) []int {
	return Difference(Range(n), a)
}

// Contains reports whether x is in the normalized set sorted.
func Contains(sorted []int, x int) bool {
	_, ok := slices.BinarySearch(sorted, x)

	return ok
}

// IsSuperset reports whether every element of sub is in sup.
// Both must be normalized. The empty set is a subset of everything.
func IsSuperset(sup, sub []int) bool {
	if len(sub) > len(sup) {
		return false
	}
	for _, x := range sub {
		if !Contains(sup, x) {
			return false
		}
	}

	return true
}

// Validate checks that every index lies in [0, n).
// The error names the first offending index.
func Validate(n int, idx []int) error {
	for _, x := range idx {
		if x < 0 || x >= n {
			return fmt.Errorf("index %d not in [0,%d): %w", x, n, ErrOutOfRange)
		}
	}

	return nil
}
