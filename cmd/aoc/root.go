// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/internal/challenges"
)

// app is the state shared by all commands.
type app struct {
	configPath string
	verbose    bool

	cfg    *aoc.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve Advent of Code puzzles with parsex grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			cfg, err := aoc.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("configuration loaded",
				zap.String("path", a.configPath),
				zap.Int("year", cfg.Year),
				zap.String("dir", cfg.Dir),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "aoc.yaml", "Configuration file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(
		newRunCmd(a),
		newFetchCmd(a),
		newWatchCmd(a),
		newListCmd(a),
	)
	return cmd
}

func (a *app) client() *aoc.Client {
	return aoc.NewClient(a.cfg.BaseURL, a.cfg.Year, a.cfg.Session, a.cfg.Timeout)
}

// parseDay reads a puzzle day from 1 to 25.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", arg)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("day %d is out of range 1-25", day)
	}
	return day, nil
}

// challenge resolves a day argument to an implemented day.
func challenge(arg string) (aoc.Challenge, error) {
	day, err := parseDay(arg)
	if err != nil {
		return aoc.Challenge{}, err
	}
	ch, ok := challenges.Lookup(day)
	if !ok {
		return aoc.Challenge{}, fmt.Errorf("day %d is not implemented", day)
	}
	return ch, nil
}

func printResult(cmd *cobra.Command, ch aoc.Challenge, res aoc.Result, submitted bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s part %d: %d", ch.Name(), res.Part, res.Answer)
	if submitted {
		fmt.Fprintf(out, " (%s", res.Verdict)
		if res.Cached {
			fmt.Fprint(out, ", already submitted")
		}
		fmt.Fprint(out, ")")
	}
	fmt.Fprintln(out)
}
