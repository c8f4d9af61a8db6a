// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/Niceman228/matrix-task-status-diagnostics/deficit"
	"github.com/Niceman228/matrix-task-status-diagnostics/indexset"
)

// NamedSet is a labeled parameter set shown in reports, e.g. "I" or "Iij".
type NamedSet struct {
	Name    string `json:"name" yaml:"name"`
	Indices []int  `json:"indices" yaml:"indices"`
}

// Selection is what an Adapter derives for a matrix with n parameters.
// Every slice is fresh and sorted.
type Selection struct {
	Known     []int      // J
	Required  []int      // τ as selected
	Universe  []int      // U = P \ J
	Effective []int      // τ_eff = τ \ J
	Overlap   []int      // τ ∩ J
	Sets      []NamedSet // mode-specific inputs, in display order
}

// newSelection validates known and required against n and derives the
// remaining sets.
func newSelection(n int, known, required []int) (Selection, error) {
	if err := indexset.Validate(n, known); err != nil {
		return Selection{}, fmt.Errorf("analysis: known: %w", err)
	}
	if err := indexset.Validate(n, required); err != nil {
		return Selection{}, fmt.Errorf("analysis: required: %w", err)
	}

	return Selection{
		Known:     indexset.Normalize(known),
		Required:  indexset.Normalize(required),
		Universe:  indexset.Complement(n, known),
		Effective: indexset.Difference(required, known),
		Overlap:   indexset.Intersect(required, known),
	}, nil
}

// Adapter derives (J, τ) for one mode and interprets the mode-agnostic
// classification. Implementations hold the raw selections only; they are
// values and safe to reuse across runs.
type Adapter interface {
	// Mode names the strategy.
	Mode() Mode

	// Select validates the raw selections against n parameters and
	// derives the sets. Out-of-range indices wrap ErrIndexOutOfRange.
	Select(n int) (Selection, error)

	// Guard returns the mode's pre-enumeration error for sel, or nil.
	Guard(sel Selection) error

	// Interpret maps a classification to the mode's verdict.
	Interpret(c deficit.Classification) Verdict
}

// StatusMode determines the design-problem status: J = Known, τ = Required.
type StatusMode struct {
	Known    []int `json:"known" yaml:"known"`
	Required []int `json:"required" yaml:"required"`
}

// Mode implements Adapter.
func (StatusMode) Mode() Mode { return ModeStatus }

// Select implements Adapter.
func (s StatusMode) Select(n int) (Selection, error) {
	sel, err := newSelection(n, s.Known, s.Required)
	if err != nil {
		return sel, err
	}
	sel.Sets = []NamedSet{
		{Name: "J", Indices: sel.Known},
		{Name: "τ", Indices: sel.Required},
	}

	return sel, nil
}

// Guard implements Adapter.
func (StatusMode) Guard(sel Selection) error {
	if len(sel.Effective) == 0 {
		return ErrEmptyRequirement
	}

	return nil
}

// Interpret implements Adapter: the status is the verdict.
func (StatusMode) Interpret(c deficit.Classification) Verdict {
	switch c.Status {
	case deficit.StatusInfeasible:
		return VerdictInfeasible
	case deficit.StatusContradictory:
		return VerdictContradictory
	case deficit.StatusCalculation:
		return VerdictCalculation
	case deficit.StatusMixed:
		return VerdictMixed
	default:
		return VerdictOptimization
	}
}

// PairMode checks whether the given inputs I determine the targets T.
type PairMode struct {
	Inputs  []int `json:"inputs" yaml:"inputs"`
	Targets []int `json:"targets" yaml:"targets"`
}

// Mode implements Adapter.
func (PairMode) Mode() Mode { return ModePair }

// Select implements Adapter.
func (p PairMode) Select(n int) (Selection, error) {
	sel, err := newSelection(n, p.Inputs, p.Targets)
	if err != nil {
		return sel, err
	}
	sel.Sets = []NamedSet{
		{Name: "I", Indices: sel.Known},
		{Name: "T", Indices: sel.Required},
	}

	return sel, nil
}

// Guard implements Adapter.
func (PairMode) Guard(sel Selection) error {
	if len(sel.Effective) == 0 {
		return ErrEmptyRequirement
	}

	return nil
}

// Interpret implements Adapter. Mixed still determines T, so the pair is
// correct.
func (PairMode) Interpret(c deficit.Classification) Verdict {
	switch c.Status {
	case deficit.StatusInfeasible, deficit.StatusContradictory:
		return VerdictPairIncorrect
	case deficit.StatusCalculation, deficit.StatusMixed:
		return VerdictPairCorrect
	default:
		return VerdictPairNeedsCriterion
	}
}

// LinkMode checks whether two operations with input sets Iij and Iik are
// informationally linked. J = Iij ∪ Iik. Analysis overrides τ; a nil
// Analysis means the complement of J.
type LinkMode struct {
	FirstInputs  []int `json:"firstInputs" yaml:"first_inputs"`
	SecondInputs []int `json:"secondInputs" yaml:"second_inputs"`
	Analysis     []int `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// Mode implements Adapter.
func (LinkMode) Mode() Mode { return ModeLink }

// Select implements Adapter.
func (l LinkMode) Select(n int) (Selection, error) {
	if err := indexset.Validate(n, l.FirstInputs); err != nil {
		return Selection{}, fmt.Errorf("analysis: first inputs: %w", err)
	}
	if err := indexset.Validate(n, l.SecondInputs); err != nil {
		return Selection{}, fmt.Errorf("analysis: second inputs: %w", err)
	}
	known := indexset.Union(l.FirstInputs, l.SecondInputs)
	required := l.Analysis
	if required == nil {
		required = indexset.Complement(n, known)
	}

	sel, err := newSelection(n, known, required)
	if err != nil {
		return sel, err
	}
	sel.Sets = []NamedSet{
		{Name: "Iij", Indices: indexset.Normalize(l.FirstInputs)},
		{Name: "Iik", Indices: indexset.Normalize(l.SecondInputs)},
		{Name: "J = Iij ∪ Iik", Indices: sel.Known},
		{Name: "analysis", Indices: sel.Required},
	}

	return sel, nil
}

// Guard implements Adapter. An empty τ is allowed: χ over J is meaningful
// on its own.
func (LinkMode) Guard(sel Selection) error {
	if len(sel.Universe) == 0 {
		return ErrEmptyUniverse
	}

	return nil
}

// Interpret implements Adapter: χ is authoritative.
func (LinkMode) Interpret(c deficit.Classification) Verdict {
	if c.Chi == deficit.ChiPlus {
		return VerdictInterdependent
	}

	return VerdictIndependent
}

var (
	_ Adapter = StatusMode{}
	_ Adapter = PairMode{}
	_ Adapter = LinkMode{}
)
