// SPDX-License-Identifier: MIT

// Package deficit implements the deficit method over a binary incidence
// matrix: per-subset deficit evaluation, the exhaustive extremal reduction,
// and the mode-agnostic classifier.
//
// What:
//
//   - Evaluate(m, U, L) computes σ(L,J), the universe columns touched by the
//     rows in L, and the deficit d(L) = |L| − |σ(L,J)|.
//   - Analyze walks every non-empty row subset (2^m − 1 of them), tracks the
//     maximum deficit and retains every subset attaining it, and computes
//     two coverage flags in the same pass:
//     CoversRequirement: some d=0 subset covers the effective requirement;
//     CoversUniverse: some d=0 subset covers U exactly.
//   - Classify maps a Result to χ(J) ∈ {J+, J0, J−} and a problem status
//     (infeasible, calculation, optimization). Refinement optionally relabels
//     infeasible as contradictory or splits out a mixed status.
//
// Deficit sign:
//
//   - d > 0  the rows outnumber the universe parameters they touch
//     (over-constrained with respect to U).
//   - d = 0  balanced; a candidate computational block.
//   - d < 0  the rows touch more universe parameters than there are rows
//     (under-determined).
//
// Complexity:
//
//   - Evaluate: O(|L|·|U|).
//   - Analyze:  O(2^m · m · |U|) time, O(m + n + |best|) memory
//     (plus O(2^m) transient memory when WithProfile is set).
//
// Options:
//
//   - WithRowCeiling(n)  abort with ErrTooManyRows when m > n (default 15).
//   - WithContext(ctx)   stop early when ctx is done.
//   - WithProfile()      collect the deficit distribution (Result.Profile).
//
// Errors:
//
//   - ErrNilMatrix       nil matrix.
//   - ErrTooManyRows     m exceeds the row ceiling; nothing is enumerated.
//   - ErrNoSubsets       the matrix has zero rows.
//   - indexset.ErrOutOfRange  universe or requirement index outside [0,n).
//   - context errors     propagated from WithContext.
package deficit
