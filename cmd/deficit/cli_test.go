// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
)

// execute runs the root command with an isolated config and env file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--log-level", "error",
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestAnalyze_ProblemFile(t *testing.T) {
	path := writeFile(t, "p.yaml", "mode: status\nmatrix: [[1, 1, 0], [0, 1, 1]]\nknown: [P1]\nrequired: [P3]\n")

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Design problem status\n")
	assert.Contains(t, out, "Status: calculation\n")
	assert.Contains(t, out, "Conclusion: "+analysis.VerdictCalculation.Message())
}

func TestAnalyze_InlineFlags(t *testing.T) {
	matrix := writeFile(t, "m.csv", ",P1,P2\nF1,1,0\nF2,1,1\n")

	out, err := execute(t, "analyze", "--matrix", matrix, "--mode", "PAIR",
		"--inputs", "P1", "--targets", "P2", "--format", "md", "--profile")
	require.NoError(t, err)
	assert.Contains(t, out, "## Correctness of the pair (I, T)")
	assert.Contains(t, out, "Deficit profile:")
}

func TestAnalyze_GuardPrintsReport(t *testing.T) {
	path := writeFile(t, "p.json", `{"mode":"pair","matrix":[[1,1]],"inputs":["P1"],"targets":["P1"]}`)

	out, err := execute(t, "analyze", path)
	require.ErrorIs(t, err, analysis.ErrEmptyRequirement)
	assert.Contains(t, out, "[warning] Every parameter in T is already in I")
	assert.NotContains(t, out, "Conclusion")
}

func TestAnalyze_OutputFileAndCeiling(t *testing.T) {
	path := writeFile(t, "p.yaml", "mode: link\nmatrix: [[1, 0], [1, 1], [0, 1]]\nfirst_inputs: [P1]\n")
	dest := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, "analyze", path, "-f", "json", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mode": "link"`)

	_, err = execute(t, "analyze", path, "--ceiling", "2")
	assert.ErrorIs(t, err, analysis.ErrTooManyRows)
}

func TestAnalyze_Errors(t *testing.T) {
	path := writeFile(t, "p.yaml", "mode: status\nmatrix: [[1]]\nrequired: [P1]\n")
	matrix := writeFile(t, "m.csv", "1,0\n")

	cases := []struct {
		name string
		args []string
	}{
		{"NoInput", []string{"analyze"}},
		{"ModeWithoutMatrix", []string{"analyze", "--mode", "status"}},
		{"FileAndMatrix", []string{"analyze", path, "--matrix", matrix}},
		{"BadMode", []string{"analyze", "--matrix", matrix, "--mode", "graph"}},
		{"BadIndex", []string{"analyze", "--matrix", matrix, "--mode", "status", "--required", "Q1"}},
		{"BadFormat", []string{"analyze", path, "--format", "pdf"}},
		{"BadCeiling", []string{"analyze", path, "--ceiling", "31"}},
		{"TooManyArgs", []string{"analyze", path, path}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--addr", addr,
		"--config", filepath.Join(dir, "none.yaml"),
		"--env-file", filepath.Join(dir, "none.env"),
		"--log-level", "error",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop")
	}
}
