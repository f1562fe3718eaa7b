// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenges

import (
	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/text"
)

// Point is a position on the ocean floor.
type Point struct{ X, Y int }

// Segment is a line of hydrothermal vents from one end to the other.
type Segment [2]Point

var (
	coords = parsex.Map(
		parsex.And(parsex.From(text.Number[int]()).Skip(text.Tag(",")), text.Number[int]()),
		func(p parsex.Pair[int, int]) Point { return Point{X: p.Fst, Y: p.Snd} },
	)
	segments = text.Lines(parsex.SeparatedArray[Segment](coords, text.Tag(" -> ")))
)

// Vents are the segments read from the submarine's scanner.
type Vents []Segment

// ParseDay05 parses one "x1,y1 -> x2,y2" segment per line.
func ParseDay05(input string) (aoc.Solution, error) {
	s, err := text.ParseAll(segments, input)
	if err != nil {
		return nil, err
	}
	return Vents(s), nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// overlaps counts the points covered by at least two segments.
// Diagonal segments are always at 45 degrees.
func (v Vents) overlaps(diagonals bool) int {
	seen := make(map[Point]int)
	n := 0
	for _, s := range v {
		dx, dy := sign(s[1].X-s[0].X), sign(s[1].Y-s[0].Y)
		if dx != 0 && dy != 0 && !diagonals {
			continue
		}
		p := s[0]
		for {
			seen[p]++
			if seen[p] == 2 {
				n++
			}
			if p == s[1] {
				break
			}
			p.X += dx
			p.Y += dy
		}
	}
	return n
}

func (v Vents) PartOne() int { return v.overlaps(false) }
func (v Vents) PartTwo() int { return v.overlaps(true) }
