// SPDX-License-Identifier: MIT

package config

import (
	"go.uber.org/zap"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
)

// AnalysisOptions translates the engine section into analysis options.
// logger may be nil.
func (e EngineConfig) AnalysisOptions(logger *zap.Logger) []analysis.Option {
	opts := []analysis.Option{
		analysis.WithRowCeiling(e.RowCeiling),
		analysis.WithLogger(logger),
	}
	if e.FixedInputs {
		opts = append(opts, analysis.WithFixedInputs())
	}
	if e.MixedStatus {
		opts = append(opts, analysis.WithMixedStatus())
	}
	if e.Profile {
		opts = append(opts, analysis.WithProfile())
	}

	return opts
}
