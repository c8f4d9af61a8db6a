// SPDX-License-Identifier: MIT

// Package analysis is the entry point of the deficit method: it turns a
// matrix and mode-specific parameter selections into a classified Report.
//
// What:
//
//   - Three Adapter implementations derive the known set J and the
//     requirement τ from raw selections:
//     StatusMode  J = Known,          τ = Required;
//     PairMode    J = Inputs (I),     τ = Targets (T);
//     LinkMode    J = Iij ∪ Iik,      τ = Analysis, or P \ J when nil.
//   - Run applies the guards, delegates the reduction to deficit.Analyze,
//     classifies the result and lets the adapter phrase the Verdict.
//
// Guards (checked in this order, before any subset is enumerated):
//
//  1. empty matrix (m = 0 or n = 0)          ErrEmptyMatrix
//  2. selection index outside [0, n)         ErrIndexOutOfRange
//  3. m above the row ceiling                ErrTooManyRows
//  4. STATUS/PAIR with τ \ J empty           ErrEmptyRequirement
//  5. LINK with U = P \ J empty              ErrEmptyUniverse
//
// A guard abort is a reported outcome: Run returns the partially filled
// Report (mode, dimensions, derived sets, a warning Notice) together with
// the sentinel error. The overlap τ ∩ J is always reported as an info
// Notice and never aborts. A positive deficit is a classification, not an
// error.
//
// Modes interpret the same Classification differently: STATUS and PAIR
// read Status, LINK reads χ (J+ means the two operations are
// interdependent).
//
// Options:
//
//   - WithRowCeiling(n)   enumeration ceiling (default deficit.DefaultRowCeiling).
//   - WithFixedInputs()   report a positive deficit as contradictory.
//   - WithMixedStatus()   split calculation into mixed when U is not covered.
//   - WithProfile()       attach the deficit distribution.
//   - WithContext(ctx)    cancel a long enumeration.
//   - WithLogger(l)       zap logger for guard aborts and completed runs.
//
// Complexity: dominated by deficit.Analyze, O(2^m · m · |U|).
package analysis
