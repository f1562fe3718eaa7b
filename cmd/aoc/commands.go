// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/internal/challenges"
)

func newRunCmd(a *app) *cobra.Command {
	var submit bool
	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve the open part of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := challenge(args[0])
			if err != nil {
				return err
			}

			var (
				client *aoc.Client
				ledger *aoc.Ledger
			)
			if submit {
				client = a.client()
				ledger, err = aoc.OpenLedger(a.cfg.Ledger)
				if err != nil {
					return err
				}
				defer ledger.Close()
			}

			res, err := aoc.NewRunner(a.cfg, client, ledger, a.logger).Run(cmd.Context(), ch, submit)
			if err != nil {
				return err
			}
			printResult(cmd, ch, res, submit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&submit, "submit", "s", false, "Submit the answer")
	return cmd
}

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <day>",
		Short: "Download the input and description of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// any day can be fetched before its grammar exists
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			r := aoc.NewRunner(a.cfg, a.client(), nil, a.logger)
			if err := r.Fetch(cmd.Context(), day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "day%02d fetched into %s\n", day, a.cfg.DayDir(day))
			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-run a day whenever its input or description changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := challenge(args[0])
			if err != nil {
				return err
			}
			r := aoc.NewRunner(a.cfg, nil, nil, a.logger)
			run := func() {
				res, err := r.Run(cmd.Context(), ch, false)
				if err != nil {
					a.logger.Error("run failed", zap.String("challenge", ch.Name()), zap.Error(err))
					return
				}
				printResult(cmd, ch, res, false)
			}

			run()
			return aoc.NewWatcher(a.cfg.DayDir(ch.Day), a.logger).Watch(cmd.Context(), run)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := aoc.NewRunner(a.cfg, nil, nil, a.logger)
			for _, ch := range challenges.All() {
				part, err := r.Part(ch.Day)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tpart %d\n", ch.Name(), part)
			}
			return nil
		},
	}
}
