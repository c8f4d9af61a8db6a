// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niceman228/matrix-task-status-diagnostics/internal/config"
)

func TestAnalyze_BusyWhenSlotsTaken(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxConcurrent = 1
	cfg.Server.AnalysisTimeout = 20 * time.Millisecond
	s := New(cfg, nil)

	require.NoError(t, s.sem.Acquire(context.Background(), 1))
	defer s.sem.Release(1)

	before := testutil.ToFloat64(rejectedTotal.WithLabelValues("busy"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze",
		strings.NewReader(`{"mode":"status","matrix":[[1]],"required":[0]}`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(rejectedTotal.WithLabelValues("busy")))
}

func TestAnalyze_CountsOutcomes(t *testing.T) {
	s := New(config.DefaultConfig(), nil)
	counter := analysesTotal.WithLabelValues("pair", "calculation")
	before := testutil.ToFloat64(counter)
	subsetsBefore := testutil.ToFloat64(subsetsEvaluated)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze",
		strings.NewReader(`{"mode":"pair","matrix":[[1,1]],"inputs":[0],"targets":[1]}`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, subsetsBefore+1, testutil.ToFloat64(subsetsEvaluated))
	assert.Zero(t, testutil.ToFloat64(analysesInFlight))
}

func TestClassifyOutcome(t *testing.T) {
	status, outcome := classifyOutcome(nil, context.DeadlineExceeded)
	assert.Equal(t, http.StatusGatewayTimeout, status)
	assert.Equal(t, "timeout", outcome)

	status, _ = classifyOutcome(nil, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
}
