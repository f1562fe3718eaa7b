// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenges

import (
	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/internal/aoc"
	"code.hybscloud.com/parsex/text"
)

// Direction is a submarine command.
type Direction uint8

const (
	Forward Direction = iota
	Down
	Up
)

// Command moves the submarine.
type Command struct {
	Dir Direction
	X   int
}

func command(dir Direction, keyword string) parsex.Parser[text.Input, Command] {
	x := parsex.From(text.Number[int]()).PrecededBy(text.Tag(keyword + " "))
	return parsex.Map(x, func(n int) Command {
		return Command{Dir: dir, X: n}
	})
}

var course = text.Lines(parsex.Alt(
	command(Forward, "forward"),
	command(Down, "down"),
	command(Up, "up"),
))

// Course is a planned list of commands.
type Course []Command

// ParseDay02 parses one command per line.
func ParseDay02(input string) (aoc.Solution, error) {
	cmds, err := text.ParseAll(course, input)
	if err != nil {
		return nil, err
	}
	return Course(cmds), nil
}

// PartOne multiplies the final position and depth when down and up change
// the depth directly.
func (c Course) PartOne() int {
	pos, depth := 0, 0
	for _, cmd := range c {
		switch cmd.Dir {
		case Forward:
			pos += cmd.X
		case Down:
			depth += cmd.X
		case Up:
			depth -= cmd.X
		}
	}
	return pos * depth
}

// PartTwo is PartOne with down and up steering the aim instead.
func (c Course) PartTwo() int {
	pos, depth, aim := 0, 0, 0
	for _, cmd := range c {
		switch cmd.Dir {
		case Forward:
			pos += cmd.X
			depth += aim * cmd.X
		case Down:
			aim += cmd.X
		case Up:
			aim -= cmd.X
		}
	}
	return pos * depth
}
