// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
	"github.com/Niceman228/matrix-task-status-diagnostics/problem"
	"github.com/Niceman228/matrix-task-status-diagnostics/report"
)

type analyzeFlags struct {
	format      string
	subsetLimit int
	ceiling     int
	fixedInputs bool
	mixedStatus bool
	profile     bool
	output      string

	mode     string
	matrix   string
	sheet    string
	known    []string
	required []string
	inputs   []string
	targets  []string
	first    []string
	second   []string
	analysis []string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	f := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze [problem-file]",
		Short: "Run one analysis and print the report",
		Long: `Run one analysis from a problem file (YAML or JSON) or from inline flags.

Parameters are given as zero-based indices ("2") or labels ("P3").`,
		Example: `  deficit analyze gearbox.yaml --format markdown
  deficit analyze --matrix model.csv --mode status --known P1,P2 --required P5
  deficit analyze --matrix model.xlsx --mode link --first P1 --second P2 --analysis P4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", "", "report format: text, markdown, html, json (default from config)")
	fl.IntVar(&f.subsetLimit, "subset-limit", 0, "maximal subsets listed in the report")
	fl.IntVar(&f.ceiling, "ceiling", 0, "row ceiling for exhaustive enumeration")
	fl.BoolVar(&f.fixedInputs, "fixed-inputs", false, "report a positive deficit as contradictory")
	fl.BoolVar(&f.mixedStatus, "mixed-status", false, "split calculation into mixed when U is not fully covered")
	fl.BoolVar(&f.profile, "profile", false, "include the deficit distribution")
	fl.StringVarP(&f.output, "output", "o", "", "write the report to a file instead of stdout")

	fl.StringVar(&f.mode, "mode", "", "inline problem mode: status, pair, link")
	fl.StringVar(&f.matrix, "matrix", "", "inline problem matrix file (.csv, .xlsx, .yaml, .json)")
	fl.StringVar(&f.sheet, "sheet", "", "worksheet name for .xlsx matrices")
	fl.StringSliceVar(&f.known, "known", nil, "status: known parameters J")
	fl.StringSliceVar(&f.required, "required", nil, "status: required parameters τ")
	fl.StringSliceVar(&f.inputs, "inputs", nil, "pair: input parameters I")
	fl.StringSliceVar(&f.targets, "targets", nil, "pair: target parameters T")
	fl.StringSliceVar(&f.first, "first", nil, "link: inputs of the first operation")
	fl.StringSliceVar(&f.second, "second", nil, "link: inputs of the second operation")
	fl.StringSliceVar(&f.analysis, "analysis", nil, "link: analyzed parameters (default: all outside J)")

	return cmd
}

func (a *app) analyze(cmd *cobra.Command, args []string, f *analyzeFlags) error {
	cfg := a.cfg
	fl := cmd.Flags()
	if fl.Changed("ceiling") {
		cfg.Engine.RowCeiling = f.ceiling
	}
	if fl.Changed("fixed-inputs") {
		cfg.Engine.FixedInputs = f.fixedInputs
	}
	if fl.Changed("mixed-status") {
		cfg.Engine.MixedStatus = f.mixedStatus
	}
	if fl.Changed("profile") {
		cfg.Engine.Profile = f.profile
	}
	if fl.Changed("subset-limit") {
		cfg.Report.SubsetLimit = f.subsetLimit
	}
	if fl.Changed("format") {
		cfg.Report.Format = f.format
	}
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}
	cfg.Report.Format = string(format)
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := loadProblem(cmd, args, f)
	if err != nil {
		return err
	}
	m, adapter, err := p.Build()
	if err != nil {
		return err
	}

	log := a.logger.With(zap.String("mode", string(adapter.Mode())))
	if p.Name != "" {
		log = log.With(zap.String("problem", p.Name))
	}
	opts := append(cfg.Engine.AnalysisOptions(log), analysis.WithContext(cmd.Context()))

	start := time.Now()
	rep, runErr := analysis.Run(m, adapter, opts...)
	log.Debug("analysis finished", zap.Duration("elapsed", time.Since(start)), zap.Error(runErr))
	if rep == nil {
		return runErr
	}

	var out io.Writer = cmd.OutOrStdout()
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", f.output, err)
		}
		defer file.Close()
		out = file
	}
	if err := report.Write(out, rep, format, report.WithSubsetLimit(cfg.Report.SubsetLimit)); err != nil {
		return err
	}

	// A guard abort still prints its report; the exit status reflects it.
	return runErr
}

// loadProblem reads the problem file argument or assembles one from the
// inline flags.
func loadProblem(cmd *cobra.Command, args []string, f *analyzeFlags) (*problem.Problem, error) {
	if len(args) == 1 {
		if f.matrix != "" || f.mode != "" {
			return nil, errors.New("--mode and --matrix cannot be combined with a problem file")
		}

		return problem.Load(args[0])
	}
	if f.matrix == "" || f.mode == "" {
		return nil, errors.New("either a problem file or both --mode and --matrix are required")
	}

	mode, err := analysis.ParseMode(f.mode)
	if err != nil {
		return nil, err
	}
	m, err := problem.LoadMatrix(f.matrix, f.sheet)
	if err != nil {
		return nil, err
	}
	p := &problem.Problem{Mode: mode, Matrix: m.ToRows()}

	lists := []struct {
		flag string
		src  []string
		dst  *problem.IndexList
	}{
		{"known", f.known, &p.Known},
		{"required", f.required, &p.Required},
		{"inputs", f.inputs, &p.Inputs},
		{"targets", f.targets, &p.Targets},
		{"first", f.first, &p.FirstInputs},
		{"second", f.second, &p.SecondInputs},
		{"analysis", f.analysis, &p.Analysis},
	}
	for _, l := range lists {
		if !cmd.Flags().Changed(l.flag) {
			continue
		}
		idx, err := problem.ParseIndexList(l.src)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", l.flag, err)
		}
		if idx == nil {
			// --analysis= selects nothing rather than the default.
			idx = problem.IndexList{}
		}
		*l.dst = idx
	}

	return p, nil
}
