// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"code.hybscloud.com/parsex"
)

var errOverflow = errors.New("value out of range")

// digits matches Digit1, optionally preceded by '-' when signed is set.
func digits(signed bool) Matcher {
	digit1 := Digit1()
	return func(in Input) (Input, string, error) {
		start := in
		if signed && in.HasPrefix("-") {
			in = in.Advance(1)
		}
		rest, _, err := digit1(in)
		if err != nil {
			return start, "", err
		}
		return rest, start.String()[:rest.Offset()-start.Offset()], nil
	}
}

// Number parses a decimal integer of type T.
// Signed types accept a leading '-'. Values that do not fit T fail with a
// [parsex.KindMapRes] error positioned where the number starts.
func Number[T constraints.Integer]() *parsex.MapResParser[Input, string, T] {
	signed := ^T(0) < 0
	return parsex.MapRes(Parser[string](digits(signed)), func(s string) (T, error) {
		if signed {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, err
			}
			if int64(T(v)) != v {
				return 0, errOverflow
			}
			return T(v), nil
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if uint64(T(v)) != v {
			return 0, errOverflow
		}
		return T(v), nil
	})
}

// Binary parses a run of digits as a base-2 unsigned integer. Any digit
// other than '0' or '1' fails the conversion at the start of the run.
func Binary() *parsex.MapResParser[Input, string, uint64] {
	return parsex.MapRes(Parser[string](Digit1()), func(s string) (uint64, error) {
		return strconv.ParseUint(s, 2, 64)
	})
}

// Lines parses one or more p separated by line endings.
func Lines[O any](p Parser[O]) *parsex.ListParser[Input, O, string] {
	return parsex.SeparatedList1(p, Parser[string](LineEnding()))
}

// Grid parses lines of consecutive p, such as a character map.
func Grid[O any](p Parser[O]) *parsex.ListParser[Input, []O, string] {
	return Lines(Parser[[]O](parsex.Many1(p)))
}

// Parse runs p over s and returns its output, ignoring any input p leaves.
func Parse[O any](p Parser[O], s string) (O, error) {
	_, o, err := p.Parse(New(s))
	return o, err
}

// ParseAll runs p over s and requires that nothing but whitespace is left.
// Leftover text fails with a [parsex.KindEof] error at its start.
func ParseAll[O any](p Parser[O], s string) (O, error) {
	rest, o, err := p.Parse(New(s))
	if err != nil {
		return o, err
	}
	if strings.TrimSpace(rest.String()) != "" {
		var zero O
		return zero, parsex.NewError(rest, parsex.KindEof)
	}
	return o, nil
}
