// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command aoc runs, submits and fetches Advent of Code puzzles.
//
// Usage:
//
//	aoc run 4 [--submit]   solve the open part of day 4
//	aoc fetch 4            download input.txt and README.md for day 4
//	aoc watch 4            re-run day 4 whenever its files change
//	aoc list               show the implemented days
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
