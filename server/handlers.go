// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
	"github.com/Niceman228/matrix-task-status-diagnostics/problem"
	"github.com/Niceman228/matrix-task-status-diagnostics/report"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AnalyzeRequest is the body of POST /api/v1/analyze: a problem with an
// inline matrix plus rendering choices.
type AnalyzeRequest struct {
	problem.Problem

	// Format selects the response body: json (default), text, markdown or html.
	Format string `json:"format,omitempty" validate:"omitempty,oneof=json text markdown html"`
	// Profile attaches the deficit distribution.
	Profile bool `json:"profile,omitempty"`
}

// AnalyzeResponse is the JSON response: the report plus a run ID.
type AnalyzeResponse struct {
	RunID string `json:"runId"`
	*analysis.Report
	Error string `json:"error,omitempty"`
}

type errorResponse struct {
	RunID string `json:"runId,omitempty"`
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID))
	w.Header().Set("X-Run-ID", runID)

	// Stage 1 (Decode): strict JSON, bounded body.
	var req AnalyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.reject(w, runID, "decode", http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.MatrixFile != "" {
		s.reject(w, runID, "matrix_file", http.StatusBadRequest, errors.New("matrixFile is not accepted over HTTP; send the matrix inline"))
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.reject(w, runID, "invalid", http.StatusBadRequest, err)
		return
	}
	m, adapter, err := req.Build()
	if err != nil {
		s.reject(w, runID, "invalid", http.StatusBadRequest, err)
		return
	}
	format := report.FormatJSON
	if req.Format != "" {
		format = report.Format(req.Format)
	}

	// Stage 2 (Acquire): one worker slot within the analysis deadline.
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Server.AnalysisTimeout)
	defer cancel()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.reject(w, runID, "busy", http.StatusServiceUnavailable, fmt.Errorf("no analysis slot available: %w", err))
		return
	}
	defer s.sem.Release(1)
	analysesInFlight.Inc()
	defer analysesInFlight.Dec()

	// Stage 3 (Run)
	opts := append(s.cfg.Engine.AnalysisOptions(log), analysis.WithContext(ctx))
	if req.Profile {
		opts = append(opts, analysis.WithProfile())
	}
	start := time.Now()
	rep, runErr := analysis.Run(m, adapter, opts...)
	analysisDuration.WithLabelValues(string(adapter.Mode())).Observe(time.Since(start).Seconds())

	status, outcome := classifyOutcome(rep, runErr)
	analysesTotal.WithLabelValues(string(adapter.Mode()), outcome).Inc()
	if rep != nil {
		subsetsEvaluated.Add(float64(rep.Evaluated))
	}

	// Stage 4 (Render)
	if format == report.FormatJSON {
		resp := AnalyzeResponse{RunID: runID, Report: rep}
		if runErr != nil {
			resp.Error = runErr.Error()
		}
		writeJSON(w, status, resp)

		return
	}
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(status)
	if err := report.Write(w, rep, format, report.WithSubsetLimit(s.cfg.Report.SubsetLimit)); err != nil {
		log.Warn("render failed", zap.Error(err))
	}
}

// classifyOutcome maps a run result to an HTTP status and a metric label.
func classifyOutcome(rep *analysis.Report, err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, string(rep.Status)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "canceled"
	case rep != nil && len(rep.Notices) > 0:
		// Guard aborts are reported outcomes.
		return http.StatusUnprocessableEntity, string(rep.Notices[len(rep.Notices)-1].Code)
	default:
		return http.StatusInternalServerError, "error"
	}
}

func (s *Server) reject(w http.ResponseWriter, runID, reason string, status int, err error) {
	rejectedTotal.WithLabelValues(reason).Inc()
	s.logger.Info("request rejected",
		zap.String("run_id", runID),
		zap.String("reason", reason),
		zap.Error(err),
	)
	writeJSON(w, status, errorResponse{RunID: runID, Error: err.Error()})
}

func contentType(f report.Format) string {
	switch f {
	case report.FormatHTML:
		return "text/html; charset=utf-8"
	case report.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
