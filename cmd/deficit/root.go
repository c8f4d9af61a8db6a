// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Niceman228/matrix-task-status-diagnostics/internal/config"
	"github.com/Niceman228/matrix-task-status-diagnostics/internal/logging"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "deficit",
		Short: "Classify design problems from an incidence matrix (deficit method)",
		Long: `deficit enumerates every subset of operations (rows F1..Fm) of a binary
incidence matrix, computes d(L) = |L| - |covered parameters| and derives
the system state χ(J) and the design-problem status.

Modes:
  status  known parameters J, required parameters τ
  pair    inputs I, targets T: is the pair (I, T) correct?
  link    inputs Iij and Iik of two operations: are they linked?`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "deficit.yaml", "config file (missing file means defaults)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// setup loads .env, the config and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	return nil
}
