// SPDX-License-Identifier: MIT

package analysis_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
	"github.com/Niceman228/matrix-task-status-diagnostics/deficit"
	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
)

func mustMatrix(t *testing.T, rows [][]int) *incidence.Matrix {
	t.Helper()
	m, err := incidence.FromRows(rows)
	require.NoError(t, err)

	return m
}

func noticeCodes(r *analysis.Report) []analysis.NoticeCode {
	codes := make([]analysis.NoticeCode, 0, len(r.Notices))
	for _, n := range r.Notices {
		codes = append(codes, n.Code)
	}

	return codes
}

var ignoreMatrix = cmpopts.IgnoreFields(analysis.Report{}, "Matrix")

//----------------------------------------------------------------------------//
// STATUS
//----------------------------------------------------------------------------//

func TestRun_StatusCalculation(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{1, 0},
		{0, 1},
	})
	rep, err := analysis.Run(m, analysis.StatusMode{Required: []int{0}})
	require.NoError(t, err)

	want := &analysis.Report{
		Mode:                 analysis.ModeStatus,
		Rows:                 2,
		Cols:                 2,
		Known:                []int{},
		Required:             []int{0},
		Universe:             []int{0, 1},
		EffectiveRequirement: []int{0},
		Overlap:              []int{},
		Sets: []analysis.NamedSet{
			{Name: "J", Indices: []int{}},
			{Name: "τ", Indices: []int{0}},
		},
		IdleRows:   []int{},
		Completed:  true,
		MaxDeficit: 0,
		Chi:        deficit.ChiZero,
		Status:     deficit.StatusCalculation,
		Verdict:    analysis.VerdictCalculation,
		BestSubsets: []deficit.Record{
			{Rows: []int{0}, Covered: []int{0}, Deficit: 0},
			{Rows: []int{1}, Covered: []int{1}, Deficit: 0},
			{Rows: []int{0, 1}, Covered: []int{0, 1}, Deficit: 0},
		},
		Evaluated: 3,
		Notices:   []analysis.Notice{},
	}
	if diff := cmp.Diff(want, rep, ignoreMatrix, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, [][]int{{1, 0}, {0, 1}}, rep.Matrix.ToRows())
}

func TestRun_StatusInfeasibleAndRefinements(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 0}, {1, 0}, {0, 1}})
	a := analysis.StatusMode{Known: nil, Required: []int{1}}

	rep, err := analysis.Run(m, a)
	require.NoError(t, err)
	assert.Equal(t, deficit.StatusInfeasible, rep.Status)
	assert.Equal(t, deficit.ChiPlus, rep.Chi)
	assert.Equal(t, analysis.VerdictInfeasible, rep.Verdict)

	rep, err = analysis.Run(m, a, analysis.WithFixedInputs())
	require.NoError(t, err)
	assert.Equal(t, deficit.StatusContradictory, rep.Status)
	assert.Equal(t, analysis.VerdictContradictory, rep.Verdict)
}

func TestRun_StatusMixed(t *testing.T) {
	// {F1} balances P1 only; {F2} touches P2 and P3: U is never covered.
	m := mustMatrix(t, [][]int{{1, 0, 0}, {0, 1, 1}})
	a := analysis.StatusMode{Required: []int{0}}

	rep, err := analysis.Run(m, a)
	require.NoError(t, err)
	assert.Equal(t, deficit.StatusCalculation, rep.Status)
	assert.Equal(t, deficit.ChiMinus, rep.Chi)

	rep, err = analysis.Run(m, a, analysis.WithMixedStatus())
	require.NoError(t, err)
	assert.Equal(t, deficit.StatusMixed, rep.Status)
	assert.Equal(t, analysis.VerdictMixed, rep.Verdict)
}

func TestRun_IdleRows(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 0}, {0, 0}, {1, 0}})
	rep, err := analysis.Run(m, analysis.StatusMode{Known: []int{0}, Required: []int{1}})
	require.NoError(t, err)

	// U = {P2}; no row touches it.
	assert.Equal(t, []int{0, 1, 2}, rep.IdleRows)
	assert.Contains(t, noticeCodes(rep), analysis.NoticeIdleRows)
	assert.Equal(t, 3, rep.MaxDeficit)
	assert.Equal(t, deficit.StatusInfeasible, rep.Status)
}

//----------------------------------------------------------------------------//
// PAIR
//----------------------------------------------------------------------------//

func TestRun_PairOverlap(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 1, 0}, {0, 1, 1}})
	rep, err := analysis.Run(m, analysis.PairMode{Inputs: []int{0}, Targets: []int{0, 2}})
	require.NoError(t, err)

	assert.Equal(t, []int{0}, rep.Overlap)
	assert.Equal(t, []int{2}, rep.EffectiveRequirement)
	assert.Equal(t, []int{1, 2}, rep.Universe)
	require.NotEmpty(t, rep.Notices)
	assert.Equal(t, analysis.NoticeOverlap, rep.Notices[0].Code)
	assert.Equal(t, analysis.LevelInfo, rep.Notices[0].Level)
	assert.Contains(t, rep.Notices[0].Message, "{P1}")
	assert.Equal(t, analysis.VerdictPairCorrect, rep.Verdict)
}

func TestRun_PairVerdicts(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		pair analysis.PairMode
		want analysis.Verdict
	}{
		{"Correct", [][]int{{1, 1}}, analysis.PairMode{Inputs: []int{0}, Targets: []int{1}}, analysis.VerdictPairCorrect},
		{"Incorrect", [][]int{{1, 1}, {1, 1}}, analysis.PairMode{Inputs: []int{0}, Targets: []int{1}}, analysis.VerdictPairIncorrect},
		{"NeedsCriterion", [][]int{{1, 1, 1}}, analysis.PairMode{Inputs: []int{0}, Targets: []int{1}}, analysis.VerdictPairNeedsCriterion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := analysis.Run(mustMatrix(t, tc.rows), tc.pair)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rep.Verdict)
			assert.NotEmpty(t, rep.Verdict.Message())
		})
	}
}

//----------------------------------------------------------------------------//
// LINK
//----------------------------------------------------------------------------//

func TestRun_Link(t *testing.T) {
	t.Run("Interdependent", func(t *testing.T) {
		m := mustMatrix(t, [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 1}})
		rep, err := analysis.Run(m, analysis.LinkMode{FirstInputs: []int{0}, SecondInputs: []int{1}})
		require.NoError(t, err)

		assert.Equal(t, []int{0, 1}, rep.Known)
		assert.Equal(t, []int{2}, rep.Universe)
		assert.Equal(t, []int{2}, rep.Required, "nil analysis set defaults to the complement of J")
		assert.Equal(t, deficit.ChiPlus, rep.Chi)
		assert.Equal(t, analysis.VerdictInterdependent, rep.Verdict)
		require.Len(t, rep.Sets, 4)
		assert.Equal(t, "Iij", rep.Sets[0].Name)
	})

	t.Run("Independent", func(t *testing.T) {
		m := mustMatrix(t, [][]int{{1, 1, 0}, {0, 0, 1}})
		rep, err := analysis.Run(m, analysis.LinkMode{FirstInputs: []int{0}, SecondInputs: []int{0}})
		require.NoError(t, err)

		assert.Equal(t, deficit.ChiZero, rep.Chi)
		assert.Equal(t, analysis.VerdictIndependent, rep.Verdict)
	})

	t.Run("EmptyAnalysisProceeds", func(t *testing.T) {
		m := mustMatrix(t, [][]int{{1, 1}})
		rep, err := analysis.Run(m, analysis.LinkMode{FirstInputs: []int{0}, Analysis: []int{}})
		require.NoError(t, err)

		assert.Empty(t, rep.Required)
		assert.True(t, rep.Completed)
	})

	t.Run("EmptyUniverse", func(t *testing.T) {
		m := mustMatrix(t, [][]int{{1, 1}})
		rep, err := analysis.Run(m, analysis.LinkMode{FirstInputs: []int{0}, SecondInputs: []int{1}})
		assert.ErrorIs(t, err, analysis.ErrEmptyUniverse)
		require.NotNil(t, rep)
		assert.False(t, rep.Completed)
		assert.Equal(t, []analysis.NoticeCode{analysis.NoticeEmptyUniverse}, noticeCodes(rep))
	})
}

//----------------------------------------------------------------------------//
// Guards
//----------------------------------------------------------------------------//

func TestRun_Guards(t *testing.T) {
	sixteen, err := incidence.New(16, 2)
	require.NoError(t, err)
	empty, err := incidence.New(0, 2)
	require.NoError(t, err)

	cases := []struct {
		name    string
		m       *incidence.Matrix
		adapter analysis.Adapter
		err     error
		code    analysis.NoticeCode
	}{
		{"NilMatrix", nil, analysis.StatusMode{Required: []int{0}}, analysis.ErrEmptyMatrix, analysis.NoticeEmptyMatrix},
		{"ZeroRows", empty, analysis.StatusMode{Required: []int{0}}, analysis.ErrEmptyMatrix, analysis.NoticeEmptyMatrix},
		{"EmptyBeatsIndex", empty, analysis.StatusMode{Required: []int{9}}, analysis.ErrEmptyMatrix, analysis.NoticeEmptyMatrix},
		{"IndexOutOfRange", mustMatrix(t, [][]int{{1}}), analysis.PairMode{Targets: []int{3}}, analysis.ErrIndexOutOfRange, analysis.NoticeIndexOutOfRange},
		{"LinkIndexOutOfRange", mustMatrix(t, [][]int{{1}}), analysis.LinkMode{SecondInputs: []int{-1}}, analysis.ErrIndexOutOfRange, analysis.NoticeIndexOutOfRange},
		{"TooLarge", sixteen, analysis.StatusMode{Required: []int{0}}, analysis.ErrTooManyRows, analysis.NoticeTooLarge},
		{"TooLargeBeatsRequirement", sixteen, analysis.StatusMode{}, analysis.ErrTooManyRows, analysis.NoticeTooLarge},
		{"StatusNoRequirement", mustMatrix(t, [][]int{{1, 0}}), analysis.StatusMode{Known: []int{0}}, analysis.ErrEmptyRequirement, analysis.NoticeEmptyRequirement},
		{"PairTargetsInInputs", mustMatrix(t, [][]int{{1, 0}}), analysis.PairMode{Inputs: []int{0, 1}, Targets: []int{1}}, analysis.ErrEmptyRequirement, analysis.NoticeEmptyRequirement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := analysis.Run(tc.m, tc.adapter)
			require.ErrorIs(t, err, tc.err)
			require.NotNil(t, rep, "guards return a partial report")

			assert.False(t, rep.Completed)
			assert.Empty(t, rep.BestSubsets)
			assert.Zero(t, rep.Evaluated)
			assert.Empty(t, rep.Verdict)
			require.NotEmpty(t, rep.Notices)
			last := rep.Notices[len(rep.Notices)-1]
			assert.Equal(t, tc.code, last.Code)
			assert.Equal(t, analysis.LevelWarning, last.Level)
		})
	}
}

func TestRun_PairOverlapSurvivesGuard(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 0}})
	rep, err := analysis.Run(m, analysis.PairMode{Inputs: []int{0, 1}, Targets: []int{1}})
	require.ErrorIs(t, err, analysis.ErrEmptyRequirement)

	assert.Equal(t, []analysis.NoticeCode{analysis.NoticeOverlap, analysis.NoticeEmptyRequirement}, noticeCodes(rep))
	assert.Contains(t, rep.Notices[1].Message, "already in I")
}

func TestRun_PairWithoutTargets(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 0}})
	rep, err := analysis.Run(m, analysis.PairMode{Inputs: []int{0}})
	require.ErrorIs(t, err, analysis.ErrEmptyRequirement)

	assert.Equal(t, []analysis.NoticeCode{analysis.NoticeEmptyRequirement}, noticeCodes(rep))
	assert.Contains(t, rep.Notices[0].Message, "No target parameter T is selected")
	assert.NotContains(t, rep.Notices[0].Message, "already in I")
}

func TestRun_RowCeilingOption(t *testing.T) {
	m, err := incidence.New(4, 1)
	require.NoError(t, err)

	_, err = analysis.Run(m, analysis.StatusMode{Required: []int{0}}, analysis.WithRowCeiling(3))
	assert.ErrorIs(t, err, analysis.ErrTooManyRows)

	assert.Panics(t, func() { analysis.WithRowCeiling(0) })
	assert.Panics(t, func() { analysis.WithRowCeiling(31) })
}

func TestRun_NilAdapter(t *testing.T) {
	rep, err := analysis.Run(mustMatrix(t, [][]int{{1}}), nil)
	assert.ErrorIs(t, err, analysis.ErrNilAdapter)
	assert.Nil(t, rep)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := analysis.Run(mustMatrix(t, [][]int{{1}}), analysis.StatusMode{Required: []int{0}}, analysis.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []analysis.NoticeCode{analysis.NoticeCanceled}, noticeCodes(rep))
}

func TestRun_CanceledSkipsIdleRows(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := mustMatrix(t, [][]int{{1, 0}, {0, 0}})
	rep, err := analysis.Run(m, analysis.StatusMode{Known: []int{0}, Required: []int{1}}, analysis.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, rep.Completed)
	assert.Empty(t, rep.IdleRows)
	assert.NotContains(t, noticeCodes(rep), analysis.NoticeIdleRows)
}

//----------------------------------------------------------------------------//
// Ambient behaviour
//----------------------------------------------------------------------------//

func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	m := mustMatrix(t, [][]int{{1}})

	_, err := analysis.Run(m, analysis.StatusMode{Required: []int{0}}, analysis.WithLogger(logger))
	require.NoError(t, err)
	_, err = analysis.Run(m, analysis.StatusMode{}, analysis.WithLogger(logger))
	require.Error(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "analysis completed", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "analysis aborted", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "status", entries[1].ContextMap()["mode"])
}

func TestRun_Idempotent(t *testing.T) {
	m := mustMatrix(t, [][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}, {0, 0, 1}})
	a := analysis.PairMode{Inputs: []int{0}, Targets: []int{1, 2}}

	first, err := analysis.Run(m, a, analysis.WithProfile())
	require.NoError(t, err)
	second, err := analysis.Run(m, a, analysis.WithProfile())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, ignoreMatrix); diff != "" {
		t.Fatalf("runs differ (-first +second):\n%s", diff)
	}
	require.NotNil(t, first.Profile)
}

func TestRun_SnapshotIsolation(t *testing.T) {
	m := mustMatrix(t, [][]int{{1}, {1}})
	rep, err := analysis.Run(m, analysis.StatusMode{Required: []int{0}})
	require.NoError(t, err)

	require.NoError(t, m.Resize(1, 1))
	assert.Equal(t, 2, rep.Matrix.Rows())
}

func TestReport_JSONFields(t *testing.T) {
	m := mustMatrix(t, [][]int{{1}, {1}})
	rep, err := analysis.Run(m, analysis.StatusMode{Required: []int{0}})
	require.NoError(t, err)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"maxDeficit", "chi", "status", "bestSubsets", "universe",
		"effectiveRequirement", "overlap", "mode", "known", "required",
		"idleRows", "verdict", "notices", "evaluated",
	} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "Matrix")
	assert.Equal(t, "J+", fields["chi"])
	assert.Equal(t, deficit.Classification{MaxDeficit: 1, Chi: deficit.ChiPlus, Status: deficit.StatusInfeasible}, rep.Classification())
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]analysis.Mode{
		"status": analysis.ModeStatus,
		" PAIR ": analysis.ModePair,
		"Link":   analysis.ModeLink,
	} {
		got, err := analysis.ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := analysis.ParseMode("graph")
	assert.ErrorIs(t, err, analysis.ErrUnknownMode)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "∅", analysis.Labels(nil, incidence.RowLabel))
	assert.Equal(t, "{F1, F3}", analysis.Labels([]int{0, 2}, incidence.RowLabel))
}
