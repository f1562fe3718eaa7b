// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/text"
)

const (
	inputFile  = "input.txt"
	readmeFile = "README.md"
	partTwo    = "--- Part Two ---"
)

// Result is the outcome of one run.
type Result struct {
	Day    int
	Part   int
	Answer int

	// Verdict is set when the answer was submitted or found in the ledger.
	Verdict Verdict

	// Cached reports that Verdict came from the ledger.
	Cached bool
}

// Runner solves challenges from the on-disk layout described in the
// package documentation.
type Runner struct {
	cfg    *Config
	client *Client
	ledger *Ledger
	logger *zap.Logger
}

// NewRunner returns a runner. client and ledger may be nil when runs never
// submit; a nil logger discards output.
func NewRunner(cfg *Config, client *Client, ledger *Ledger, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, client: client, ledger: ledger, logger: logger}
}

// Input returns the puzzle input of day.
func (r *Runner) Input(day int) (string, error) {
	b, err := os.ReadFile(filepath.Join(r.cfg.DayDir(day), inputFile))
	if err != nil {
		return "", fmt.Errorf("failed to read day %d input: %w", day, err)
	}
	return string(b), nil
}

// Part returns the part currently open for day: 2 once the stored
// description contains part two, 1 otherwise.
func (r *Runner) Part(day int) (int, error) {
	b, err := os.ReadFile(filepath.Join(r.cfg.DayDir(day), readmeFile))
	if errors.Is(err, os.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read day %d description: %w", day, err)
	}
	if strings.Contains(string(b), partTwo) {
		return 2, nil
	}
	return 1, nil
}

// Run solves the open part of ch and, when submit is set, submits the
// answer unless the ledger already holds a verdict for it.
func (r *Runner) Run(ctx context.Context, ch Challenge, submit bool) (Result, error) {
	res := Result{Day: ch.Day}

	input, err := r.Input(ch.Day)
	if err != nil {
		return res, err
	}
	if res.Part, err = r.Part(ch.Day); err != nil {
		return res, err
	}

	res.Answer, err = ch.Solve(input, res.Part)
	if err != nil {
		var pe *parsex.Error
		if errors.As(err, &pe) {
			return res, fmt.Errorf("%s: parse error at %s: %w", ch.Name(), text.Locate(input, pe.Offset), err)
		}
		return res, fmt.Errorf("%s: %w", ch.Name(), err)
	}
	r.logger.Info("solved",
		zap.String("challenge", ch.Name()),
		zap.Int("part", res.Part),
		zap.Int("answer", res.Answer),
	)

	if !submit {
		return res, nil
	}
	return r.submit(ctx, res)
}

func (r *Runner) submit(ctx context.Context, res Result) (Result, error) {
	if r.ledger != nil {
		v, ok, err := r.ledger.Lookup(ctx, res.Day, res.Part, res.Answer)
		if err != nil {
			return res, err
		}
		if ok {
			r.logger.Info("answer already submitted",
				zap.Int("day", res.Day),
				zap.Int("part", res.Part),
				zap.Stringer("verdict", v),
			)
			res.Verdict, res.Cached = v, true
			return res, nil
		}
	}
	if r.client == nil {
		return res, errors.New("submit: no client configured")
	}

	v, err := r.client.Submit(ctx, res.Day, res.Part, res.Answer)
	if err != nil {
		return res, fmt.Errorf("submit day %d part %d: %w", res.Day, res.Part, err)
	}
	res.Verdict = v
	r.logger.Info("answer submitted",
		zap.Int("day", res.Day),
		zap.Int("part", res.Part),
		zap.Int("answer", res.Answer),
		zap.Stringer("verdict", v),
	)

	if r.ledger != nil {
		if err := r.ledger.Record(ctx, res.Day, res.Part, res.Answer, v); err != nil {
			r.logger.Warn("failed to record verdict", zap.Error(err))
		}
	}
	return res, nil
}

// Fetch downloads the input and description of day into its directory.
func (r *Runner) Fetch(ctx context.Context, day int) error {
	if r.client == nil {
		return errors.New("fetch: no client configured")
	}
	dir := r.cfg.DayDir(day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	input, err := r.client.Input(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch day %d input: %w", day, err)
	}
	if err := os.WriteFile(filepath.Join(dir, inputFile), input, 0o644); err != nil {
		return err
	}

	desc, err := r.client.Description(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch day %d description: %w", day, err)
	}
	if err := os.WriteFile(filepath.Join(dir, readmeFile), []byte(desc), 0o644); err != nil {
		return err
	}

	r.logger.Info("fetched",
		zap.Int("day", day),
		zap.String("dir", dir),
		zap.Int("input_bytes", len(input)),
	)
	return nil
}
