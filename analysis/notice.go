// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
)

// Level grades a Notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// NoticeCode identifies a Notice kind independently of its text.
type NoticeCode string

const (
	NoticeEmptyMatrix      NoticeCode = "empty-matrix"
	NoticeIndexOutOfRange  NoticeCode = "index-out-of-range"
	NoticeTooLarge         NoticeCode = "too-large"
	NoticeEmptyRequirement NoticeCode = "empty-requirement"
	NoticeEmptyUniverse    NoticeCode = "empty-universe"
	NoticeNoSubsets        NoticeCode = "no-subsets"
	NoticeCanceled         NoticeCode = "canceled"
	NoticeOverlap          NoticeCode = "overlap"
	NoticeIdleRows         NoticeCode = "idle-rows"
)

// Notice is an informational or warning line attached to a Report.
type Notice struct {
	Code    NoticeCode `json:"code" yaml:"code"`
	Level   Level      `json:"level" yaml:"level"`
	Message string     `json:"message" yaml:"message"`
}

func overlapNotice(mode Mode, overlap []int) Notice {
	known := "J"
	if mode == ModePair {
		known = "I"
	}

	return Notice{
		Code:  NoticeOverlap,
		Level: LevelInfo,
		Message: fmt.Sprintf("Parameters %s are already in %s and count as known.",
			Labels(overlap, incidence.ColLabel), known),
	}
}

func idleRowsNotice(rows []int) Notice {
	return Notice{
		Code:  NoticeIdleRows,
		Level: LevelInfo,
		Message: fmt.Sprintf("Rows %s touch no analyzed parameter; each adds +1 to any subset's deficit.",
			Labels(rows, incidence.RowLabel)),
	}
}

// guardNotice phrases the warning for a guard or enumeration error.
func guardNotice(rep *Report, ceiling int, err error) Notice {
	n := Notice{Level: LevelWarning}
	mode := rep.Mode
	switch {
	case errors.Is(err, ErrEmptyMatrix):
		n.Code, n.Message = NoticeEmptyMatrix, "The matrix is empty: add at least one operation and one parameter."
	case errors.Is(err, ErrIndexOutOfRange):
		n.Code, n.Message = NoticeIndexOutOfRange, "A selected parameter is outside the matrix: "+err.Error()+"."
	case errors.Is(err, ErrTooManyRows):
		n.Code = NoticeTooLarge
		n.Message = fmt.Sprintf("The model is too large: m = %d exceeds the enumeration limit of %d operations.",
			rep.Rows, ceiling)
	case errors.Is(err, ErrEmptyRequirement) && mode == ModePair && len(rep.Required) == 0:
		n.Code, n.Message = NoticeEmptyRequirement, "No target parameter T is selected: select at least one."
	case errors.Is(err, ErrEmptyRequirement) && mode == ModePair:
		n.Code = NoticeEmptyRequirement
		n.Message = "Every parameter in T is already in I: remove at least one parameter from I or add one to T."
	case errors.Is(err, ErrEmptyRequirement):
		n.Code, n.Message = NoticeEmptyRequirement, "No required parameter outside J is selected: select at least one."
	case errors.Is(err, ErrEmptyUniverse):
		n.Code, n.Message = NoticeEmptyUniverse, "Every parameter is an input of Iij ∪ Iik: nothing is left to analyze."
	case errors.Is(err, ErrNoSubsets):
		n.Code, n.Message = NoticeNoSubsets, "No row subsets were produced: check the matrix."
	default:
		n.Code, n.Message = NoticeCanceled, "The analysis was interrupted: "+err.Error()+"."
	}

	return n
}

// Labels renders indices with label, e.g. "{F1, F3}", or "∅" when empty.
func Labels(idx []int, label func(int) string) string {
	if len(idx) == 0 {
		return "∅"
	}
	parts := make([]string, len(idx))
	for k, i := range idx {
		parts[k] = label(i)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
