// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import "fmt"

// Solution is a parsed puzzle input that can answer both parts.
type Solution interface {
	PartOne() int
	PartTwo() int
}

// Challenge binds a day to the grammar that turns its input into a
// [Solution].
type Challenge struct {
	Day   int
	Parse func(input string) (Solution, error)
}

// Name returns "dayNN".
func (c Challenge) Name() string {
	return fmt.Sprintf("day%02d", c.Day)
}

// Solve parses input and answers the given part.
func (c Challenge) Solve(input string, part int) (int, error) {
	sol, err := c.Parse(input)
	if err != nil {
		return 0, err
	}
	switch part {
	case 1:
		return sol.PartOne(), nil
	case 2:
		return sol.PartTwo(), nil
	}
	return 0, fmt.Errorf("%s: no part %d", c.Name(), part)
}
