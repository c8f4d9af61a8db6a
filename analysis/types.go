// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Niceman228/matrix-task-status-diagnostics/deficit"
	"github.com/Niceman228/matrix-task-status-diagnostics/indexset"
	"github.com/Niceman228/matrix-task-status-diagnostics/subset"
)

var (
	// ErrNilAdapter is returned when Run receives a nil Adapter.
	ErrNilAdapter = errors.New("analysis: nil adapter")

	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("analysis: empty matrix")

	// ErrIndexOutOfRange aliases the indexset sentinel for selections
	// outside [0, n).
	ErrIndexOutOfRange = indexset.ErrOutOfRange

	// ErrTooManyRows aliases the enumeration ceiling sentinel.
	ErrTooManyRows = deficit.ErrTooManyRows

	// ErrNoSubsets aliases the deficit sentinel for an empty enumeration.
	ErrNoSubsets = deficit.ErrNoSubsets

	// ErrEmptyRequirement indicates STATUS or PAIR with τ \ J empty.
	ErrEmptyRequirement = errors.New("analysis: effective requirement is empty")

	// ErrEmptyUniverse indicates LINK with every parameter in J.
	ErrEmptyUniverse = errors.New("analysis: universe is empty")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("analysis: unknown mode")
)

// Mode names an analysis strategy.
type Mode string

const (
	ModeStatus Mode = "status" // design-problem status
	ModePair   Mode = "pair"   // correctness of an (I, T) pair
	ModeLink   Mode = "link"   // dependency between two operations
)

// ParseMode accepts the mode names case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeStatus, ModePair, ModeLink:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

const panicRowCeilingInvalid = "analysis: WithRowCeiling: ceiling must be in [1, subset.MaxRows]"

// Option configures Run.
type Option func(*Options)

// Options holds the resolved Run configuration.
type Options struct {
	ceiling    int
	refinement deficit.Refinement
	profile    bool
	ctx        context.Context
	logger     *zap.Logger
}

// DefaultOptions returns the reference configuration: ceiling 15, no
// refinement, no profile, background context, no-op logger.
func DefaultOptions() Options {
	return Options{
		ceiling: deficit.DefaultRowCeiling,
		ctx:     context.Background(),
		logger:  zap.NewNop(),
	}
}

// WithRowCeiling sets the enumeration ceiling. It panics outside
// [1, subset.MaxRows].
func WithRowCeiling(n int) Option {
	if n < 1 || n > subset.MaxRows {
		panic(panicRowCeilingInvalid)
	}

	return func(o *Options) { o.ceiling = n }
}

// WithFixedInputs treats the known parameters as externally fixed, so a
// positive deficit is reported as contradictory.
func WithFixedInputs() Option {
	return func(o *Options) { o.refinement.FixedInputs = true }
}

// WithMixedStatus reports calculation as mixed when τ is computable but no
// balanced subset covers the whole universe.
func WithMixedStatus() Option {
	return func(o *Options) { o.refinement.SplitMixed = true }
}

// WithProfile attaches the deficit distribution to the Report.
func WithProfile() Option {
	return func(o *Options) { o.profile = true }
}

// WithContext bounds the enumeration; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// deficitOptions translates o into options for deficit.Analyze.
func (o Options) deficitOptions() []deficit.Option {
	out := []deficit.Option{
		deficit.WithRowCeiling(o.ceiling),
		deficit.WithContext(o.ctx),
	}
	if o.profile {
		out = append(out, deficit.WithProfile())
	}

	return out
}
