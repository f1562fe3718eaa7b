// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package aoc runs puzzle solutions against their inputs and talks to the
// Advent of Code website.
//
// The on-disk layout is one directory per day under [Config.Dir]:
//
//	challenges/
//	  day04/
//	    input.txt   puzzle input
//	    README.md   puzzle description; part two is unlocked once it
//	                contains "--- Part Two ---"
//
// A [Runner] ties the pieces together: it reads the input, hands it to a
// [Challenge], solves the part the description says is current and,
// optionally, submits the answer through a [Client]. Verdicts that settle
// an answer are kept in a [Ledger] so the same answer is never sent twice.
package aoc
