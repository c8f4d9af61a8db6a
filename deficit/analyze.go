// SPDX-License-Identifier: MIT

package deficit

import (
	"fmt"
	"math"

	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
	"github.com/Niceman228/matrix-task-status-diagnostics/indexset"
	"github.com/Niceman228/matrix-task-status-diagnostics/subset"
)

// Result is the outcome of one exhaustive reduction.
type Result struct {
	// MaxDeficit is max d(L) over every non-empty row subset L.
	MaxDeficit int

	// Best holds every subset whose deficit equals MaxDeficit, in
	// enumeration order (size ascending, then lexicographic).
	Best []Record

	// Universe is U, normalized.
	Universe []int

	// Requirement is the effective requirement τ_eff = τ ∩ U, normalized.
	Requirement []int

	// CoversRequirement: τ_eff is empty, or some d=0 subset covers τ_eff.
	CoversRequirement bool

	// CoversUniverse: U is empty, or some d=0 subset covers U exactly.
	CoversUniverse bool

	// Evaluated is the number of subsets scanned (2^m − 1 on completion).
	Evaluated int

	// Profile is the deficit distribution; nil unless WithProfile was given
	// and m ≤ ProfileMaxRows.
	Profile *Profile
}

// Analyze runs the deficit reduction of m against universe U.
// requirement is τ; entries outside U are already known and are ignored,
// so the flag CoversRequirement is judged against τ ∩ U.
//
// Stage 1 (Validate): nil matrix, index ranges, row ceiling.
// Stage 2 (Prepare): snapshot the matrix, normalize U and τ_eff.
// Stage 3 (Execute): walk subset.All, keeping every maximal record.
// Stage 4 (Finalize): attach the optional profile.
//
// When the ceiling is exceeded Analyze returns ErrTooManyRows without
// evaluating a single subset.
func Analyze(m *incidence.Matrix, universe, requirement []int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts)

	if err := indexset.Validate(m.Cols(), universe); err != nil {
		return nil, fmt.Errorf("deficit: universe: %w", err)
	}
	if err := indexset.Validate(m.Cols(), requirement); err != nil {
		return nil, fmt.Errorf("deficit: requirement: %w", err)
	}
	if err := subset.Check(m.Rows(), o.ceiling); err != nil {
		return nil, fmt.Errorf("deficit: %w", err)
	}

	// The caller may keep editing its matrix; we only read the snapshot.
	snap := m.Clone()
	u := indexset.Normalize(universe)
	tau := indexset.Intersect(requirement, u)

	res := &Result{
		MaxDeficit:        math.MinInt,
		Universe:          u,
		Requirement:       tau,
		CoversRequirement: len(tau) == 0,
		CoversUniverse:    len(u) == 0,
	}

	var samples []float64
	collect := o.profile && snap.Rows() <= ProfileMaxRows
	if collect {
		samples = make([]float64, 0, subset.Count(snap.Rows()))
	}

	for rows := range subset.All(snap.Rows()) {
		if res.Evaluated%CancelCheckInterval == 0 {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
		}
		res.Evaluated++

		covered, d := evaluate(snap, u, rows)
		if collect {
			samples = append(samples, float64(d))
		}
		if d == 0 {
			if !res.CoversRequirement && indexset.IsSuperset(covered, tau) {
				res.CoversRequirement = true
			}
			if !res.CoversUniverse && len(covered) == len(u) {
				res.CoversUniverse = true
			}
		}

		switch {
		case d > res.MaxDeficit:
			res.MaxDeficit = d
			res.Best = append(res.Best[:0], Record{Rows: rows, Covered: covered, Deficit: d})
		case d == res.MaxDeficit:
			res.Best = append(res.Best, Record{Rows: rows, Covered: covered, Deficit: d})
		}
	}

	if res.Evaluated == 0 {
		return nil, ErrNoSubsets
	}
	if collect {
		res.Profile = newProfile(samples)
	}

	return res, nil
}
