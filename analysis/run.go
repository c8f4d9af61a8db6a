// SPDX-License-Identifier: MIT

package analysis

import (
	"time"

	"go.uber.org/zap"

	"github.com/Niceman228/matrix-task-status-diagnostics/deficit"
	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
	"github.com/Niceman228/matrix-task-status-diagnostics/subset"
)

// Report is everything a renderer needs about one run. Chi, Status and
// Verdict are empty when Completed is false.
type Report struct {
	Mode Mode `json:"mode"`
	Rows int  `json:"rows"`
	Cols int  `json:"cols"`

	Known                []int      `json:"known"`
	Required             []int      `json:"required"`
	Universe             []int      `json:"universe"`
	EffectiveRequirement []int      `json:"effectiveRequirement"`
	Overlap              []int      `json:"overlap"`
	Sets                 []NamedSet `json:"sets,omitempty"`
	IdleRows             []int      `json:"idleRows"`

	Completed   bool             `json:"completed"`
	MaxDeficit  int              `json:"maxDeficit"`
	Chi         deficit.Chi      `json:"chi,omitempty"`
	Status      deficit.Status   `json:"status,omitempty"`
	Verdict     Verdict          `json:"verdict,omitempty"`
	BestSubsets []deficit.Record `json:"bestSubsets"`
	Evaluated   int              `json:"evaluated"`
	Profile     *deficit.Profile `json:"profile,omitempty"`

	Notices []Notice `json:"notices"`

	// Matrix is the snapshot the run analyzed; nil only for a nil input.
	Matrix *incidence.Matrix `json:"-"`
}

// Classification returns the classified triple of a completed run.
func (r *Report) Classification() deficit.Classification {
	return deficit.Classification{MaxDeficit: r.MaxDeficit, Chi: r.Chi, Status: r.Status}
}

// Run analyzes m under adapter a.
//
// Stage 1 (Validate): adapter, empty matrix, selections.
// Stage 2 (Guard): overlap notice, row ceiling, mode guard.
// Stage 3 (Execute): deficit.Analyze, then idle rows of a completed run.
// Stage 4 (Classify): Classify, refinement, adapter verdict.
//
// On a guard abort Run returns the Report filled up to that stage plus the
// sentinel error; see the package documentation for the order. m is
// snapshotted first, so the caller may keep mutating it.
func Run(m *incidence.Matrix, a Adapter, opts ...Option) (*Report, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	o := gatherOptions(opts)
	start := time.Now()

	rep := &Report{
		Mode:                 a.Mode(),
		Known:                []int{},
		Required:             []int{},
		Universe:             []int{},
		EffectiveRequirement: []int{},
		Overlap:              []int{},
		IdleRows:             []int{},
		BestSubsets:          []deficit.Record{},
		Notices:              []Notice{},
	}
	abort := func(err error) (*Report, error) {
		rep.Notices = append(rep.Notices, guardNotice(rep, o.ceiling, err))
		o.logger.Info("analysis aborted",
			zap.String("mode", string(rep.Mode)),
			zap.Int("rows", rep.Rows),
			zap.Int("cols", rep.Cols),
			zap.Error(err),
		)

		return rep, err
	}

	// Stage 1
	if m == nil {
		return abort(ErrEmptyMatrix)
	}
	snap := m.Clone()
	rep.Matrix, rep.Rows, rep.Cols = snap, snap.Rows(), snap.Cols()
	if snap.Empty() {
		return abort(ErrEmptyMatrix)
	}
	sel, err := a.Select(rep.Cols)
	if err != nil {
		return abort(err)
	}
	rep.Known, rep.Required, rep.Universe = sel.Known, sel.Required, sel.Universe
	rep.EffectiveRequirement, rep.Overlap, rep.Sets = sel.Effective, sel.Overlap, sel.Sets

	// Stage 2
	if len(sel.Overlap) > 0 {
		rep.Notices = append(rep.Notices, overlapNotice(rep.Mode, sel.Overlap))
	}
	if err := subset.Check(rep.Rows, o.ceiling); err != nil {
		return abort(err)
	}
	if err := a.Guard(sel); err != nil {
		return abort(err)
	}

	// Stage 3
	res, err := deficit.Analyze(snap, sel.Universe, sel.Effective, o.deficitOptions()...)
	if err != nil {
		return abort(err)
	}
	if idle := snap.ZeroRows(sel.Universe); len(idle) > 0 {
		rep.IdleRows = idle
		rep.Notices = append(rep.Notices, idleRowsNotice(idle))
	}

	// Stage 4
	c := o.refinement.Apply(deficit.Classify(res), res)
	rep.Completed = true
	rep.MaxDeficit, rep.Chi, rep.Status = c.MaxDeficit, c.Chi, c.Status
	rep.Verdict = a.Interpret(c)
	rep.BestSubsets = res.Best
	rep.Evaluated = res.Evaluated
	rep.Profile = res.Profile

	o.logger.Debug("analysis completed",
		zap.String("mode", string(rep.Mode)),
		zap.Int("rows", rep.Rows),
		zap.Int("cols", rep.Cols),
		zap.Int("max_deficit", rep.MaxDeficit),
		zap.String("chi", string(rep.Chi)),
		zap.String("status", string(rep.Status)),
		zap.Int("best", len(rep.BestSubsets)),
		zap.Int("evaluated", rep.Evaluated),
		zap.Duration("elapsed", time.Since(start)),
	)

	return rep, nil
}
