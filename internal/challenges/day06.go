// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenges

import (
	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/text"
)

// School counts lanternfish by days left until they spawn, 0 through 8.
type School [9]int

var timers = parsex.SeparatedList1(
	parsex.Verify(text.OneDigit(), func(t int) bool { return t <= 8 }),
	text.Tag(","),
)

// ParseDay06 parses a comma separated list of timers.
func ParseDay06(input string) (aoc.Solution, error) {
	ts, err := text.ParseAll(timers, input)
	if err != nil {
		return nil, err
	}
	var s School
	for _, t := range ts {
		s[t]++
	}
	return &s, nil
}

// After returns the size of the school after the given number of days.
func (s *School) After(days int) int {
	b := *s
	for range days {
		spawning := b[0]
		copy(b[:], b[1:])
		b[6] += spawning
		b[8] = spawning
	}
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

func (s *School) PartOne() int { return s.After(80) }
func (s *School) PartTwo() int { return s.After(256) }
