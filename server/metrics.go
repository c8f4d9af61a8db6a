// SPDX-License-Identifier: MIT

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deficit_analyses_total",
		Help: "Analyses served, by mode and outcome (a status or a guard code).",
	}, []string{"mode", "outcome"})

	analysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "deficit_analysis_duration_seconds",
		Help:    "Wall time of analysis.Run, by mode.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"mode"})

	subsetsEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deficit_subsets_evaluated_total",
		Help: "Row subsets evaluated across all analyses.",
	})

	analysesInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "deficit_analyses_in_flight",
		Help: "Analyses currently holding a worker slot.",
	})

	rejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deficit_requests_rejected_total",
		Help: "Requests rejected before analysis, by reason.",
	}, []string{"reason"})
)
