// SPDX-License-Identifier: MIT

package deficit

// Chi is the system-level state χ(J).
type Chi string

const (
	// ChiPlus: some subset has a positive deficit (over-determined w.r.t. J).
	ChiPlus Chi = "J+"
	// ChiZero: max deficit 0 and a balanced subset covers U exactly.
	ChiZero Chi = "J0"
	// ChiMinus: everything else (under-determined).
	ChiMinus Chi = "J-"
)

// Status is the design-problem status.
type Status string

// StatusOf yields infeasible, calculation or optimization; contradictory
// and mixed only come from a Refinement.
const (
	StatusInfeasible    Status = "infeasible"
	StatusContradictory Status = "contradictory"
	StatusCalculation   Status = "calculation"
	StatusMixed         Status = "mixed"
	StatusOptimization  Status = "optimization"
)

// Classification is derived per run and never stored.
type Classification struct {
	MaxDeficit int    `json:"maxDeficit" yaml:"max_deficit"`
	Chi        Chi    `json:"chi" yaml:"chi"`
	Status     Status `json:"status" yaml:"status"`
}

// ChiOf maps the extremal deficit and universe coverage to χ(J).
func ChiOf(maxDeficit int, coversUniverse bool) Chi {
	switch {
	case maxDeficit > 0:
		return ChiPlus
	case maxDeficit == 0 && coversUniverse:
		return ChiZero
	default:
		return ChiMinus
	}
}

// StatusOf maps the extremal deficit and requirement coverage to a status.
// It is independent of χ.
func StatusOf(maxDeficit int, coversRequirement bool) Status {
	switch {
	case maxDeficit > 0:
		return StatusInfeasible
	case maxDeficit == 0 && coversRequirement:
		return StatusCalculation
	default:
		return StatusOptimization
	}
}

// Classify derives the Classification of r.
func Classify(r *Result) Classification {
	return Classification{
		MaxDeficit: r.MaxDeficit,
		Chi:        ChiOf(r.MaxDeficit, r.CoversUniverse),
		Status:     StatusOf(r.MaxDeficit, r.CoversRequirement),
	}
}

// Refinement holds optional domain assumptions layered over Classify.
// The zero value changes nothing.
type Refinement struct {
	// FixedInputs treats the known parameters as externally fixed, so a
	// positive deficit means the givens contradict each other:
	// infeasible becomes contradictory.
	FixedInputs bool

	// SplitMixed reports calculation as mixed when a balanced subset
	// determines τ_eff but none covers the whole universe: the requirement
	// is computable, the remaining unknowns still need a criterion.
	SplitMixed bool
}

// Apply returns c adjusted by rf. r supplies the coverage flags.
func (rf Refinement) Apply(c Classification, r *Result) Classification {
	if rf.FixedInputs && c.Status == StatusInfeasible {
		c.Status = StatusContradictory
	}
	if rf.SplitMixed && c.Status == StatusCalculation && !r.CoversUniverse {
		c.Status = StatusMixed
	}

	return c
}
