// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package challenges holds the grammar and solution of each puzzle day.
//
// Every day turns its input into a [aoc.Solution] with a grammar built from
// parsex combinators over [text.Input]; the solutions themselves are plain
// Go over the parsed values.
package challenges

import (
	"slices"

	"code.hybscloud.com/parsex/internal/aoc"
)

var registry = []aoc.Challenge{
	{Day: 1, Parse: ParseDay01},
	{Day: 2, Parse: ParseDay02},
	{Day: 4, Parse: ParseDay04},
	{Day: 5, Parse: ParseDay05},
	{Day: 6, Parse: ParseDay06},
}

// All returns every implemented challenge in day order.
func All() []aoc.Challenge {
	return slices.Clone(registry)
}

// Lookup returns the challenge of day.
func Lookup(day int) (aoc.Challenge, bool) {
	for _, c := range registry {
		if c.Day == day {
			return c, true
		}
	}
	return aoc.Challenge{}, false
}
