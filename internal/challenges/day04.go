// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenges

import (
	"math"
	"strconv"
	"strings"

	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/text"
)

// Board is a 5x5 bingo card.
type Board [5][5]int

// Bingo is a draw order and the cards in play.
type Bingo struct {
	Draws  []int
	Boards []Board
}

// cells are two columns wide, right aligned: " 8" or "22".
var cell = parsex.MapRes(text.Take(2), func(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
})

var (
	row   = parsex.SeparatedArray[[5]int](cell, text.Tag(" "))
	board = parsex.SeparatedArray[Board](row, text.LineEnding())

	draws = parsex.From(parsex.SeparatedList1(text.Number[int](), text.Tag(","))).Skip(text.Tag("\n\n"))
	bingo = parsex.And(draws, parsex.SeparatedList1(board, text.Tag("\n\n")))
)

// ParseDay04 parses the draw order followed by a blank line and the boards,
// one blank line apart.
func ParseDay04(input string) (aoc.Solution, error) {
	p, err := text.ParseAll(bingo, input)
	if err != nil {
		return nil, err
	}
	return &Bingo{Draws: p.Fst, Boards: p.Snd}, nil
}

// wins returns the draw index at which b completes a row or column and its
// score, or ok == false when it never does.
func (b *Board) wins(turn map[int]int, draws []int) (at, score int, ok bool) {
	at = math.MaxInt
	for i := range 5 {
		rowAt, colAt := 0, 0
		for j := range 5 {
			rowAt = max(rowAt, turnOf(turn, b[i][j]))
			colAt = max(colAt, turnOf(turn, b[j][i]))
		}
		at = min(at, rowAt, colAt)
	}
	if at == math.MaxInt {
		return 0, 0, false
	}
	for _, r := range b {
		for _, n := range r {
			if turnOf(turn, n) > at {
				score += n
			}
		}
	}
	return at, score * draws[at], true
}

func turnOf(turn map[int]int, n int) int {
	if t, ok := turn[n]; ok {
		return t
	}
	return math.MaxInt
}

// scores returns the scores of the first and the last board to win.
func (g *Bingo) scores() (first, last int) {
	turn := make(map[int]int, len(g.Draws))
	for i, n := range g.Draws {
		if _, seen := turn[n]; !seen {
			turn[n] = i
		}
	}
	firstAt, lastAt := math.MaxInt, -1
	for i := range g.Boards {
		at, score, ok := g.Boards[i].wins(turn, g.Draws)
		if !ok {
			continue
		}
		if at < firstAt {
			firstAt, first = at, score
		}
		if at > lastAt {
			lastAt, last = at, score
		}
	}
	return first, last
}

// PartOne scores the first board to win.
func (g *Bingo) PartOne() int {
	first, _ := g.scores()
	return first
}

// PartTwo scores the last board to win.
func (g *Bingo) PartTwo() int {
	_, last := g.scores()
	return last
}
