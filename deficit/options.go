// SPDX-License-Identifier: MIT

package deficit

import (
	"context"

	"github.com/Niceman228/matrix-task-status-diagnostics/subset"
)

// DefaultRowCeiling is the reference enumeration ceiling: 2^15 − 1 = 32,767
// subsets, each scanning U.
const DefaultRowCeiling = 15

// CancelCheckInterval is how many subsets Analyze evaluates between
// context checks.
const CancelCheckInterval = 1024

// ProfileMaxRows bounds WithProfile: above it the O(2^m) sample buffer is
// not built and Result.Profile stays nil.
const ProfileMaxRows = 20

const panicRowCeilingInvalid = "deficit: WithRowCeiling: ceiling must be in [1, subset.MaxRows]"

// Option configures Analyze.
type Option func(*Options)

// Options holds the resolved Analyze configuration.
type Options struct {
	ceiling int             // DefaultRowCeiling
	ctx     context.Context // context.Background()
	profile bool            // false
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ceiling: DefaultRowCeiling,
		ctx:     context.Background(),
	}
}

// RowCeiling returns the effective enumeration ceiling.
func (o Options) RowCeiling() int { return o.ceiling }

// WithRowCeiling sets the maximum row count Analyze will enumerate.
// It panics when n is outside [1, subset.MaxRows] (programmer error).
func WithRowCeiling(n int) Option {
	if n < 1 || n > subset.MaxRows {
		panic(panicRowCeilingInvalid)
	}

	return func(o *Options) {
		o.ceiling = n
	}
}

// WithContext lets the caller abandon a long enumeration. A nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithProfile enables collection of the deficit distribution.
func WithProfile() Option {
	return func(o *Options) {
		o.profile = true
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
