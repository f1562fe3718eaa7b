// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenges

import (
	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/text"
)

// Sonar is a list of depth measurements.
type Sonar []int

var depths = text.Lines(text.Number[int]())

// ParseDay01 parses one depth per line.
func ParseDay01(input string) (aoc.Solution, error) {
	d, err := text.ParseAll(depths, input)
	if err != nil {
		return nil, err
	}
	return Sonar(d), nil
}

// increases counts the measurements larger than the one window positions
// earlier. Comparing sliding-window sums of width w reduces to this, since
// adjacent windows share all but their end points.
func (s Sonar) increases(window int) int {
	n := 0
	for i := window; i < len(s); i++ {
		if s[i] > s[i-window] {
			n++
		}
	}
	return n
}

func (s Sonar) PartOne() int { return s.increases(1) }
func (s Sonar) PartTwo() int { return s.increases(3) }
