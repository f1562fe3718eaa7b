// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text

import (
	"unicode"
	"unicode/utf8"

	"code.hybscloud.com/parsex"
)

// Parser is a parser over [Input].
type Parser[O any] = parsex.Parser[Input, O]

// Matcher is a parser producing the matched text.
// Matchers never consume input when they fail.
type Matcher = parsex.Func[Input, string]

// Tag matches the literal s.
func Tag(s string) Matcher {
	return func(in Input) (Input, string, error) {
		if !in.HasPrefix(s) {
			return in, "", parsex.NewError(in, parsex.KindTag)
		}
		return in.Advance(len(s)), s, nil
	}
}

// Char matches the single rune r.
func Char(r rune) Matcher {
	return func(in Input) (Input, string, error) {
		c, size := utf8.DecodeRuneInString(in.String())
		if size == 0 || c != r {
			return in, "", parsex.NewError(in, parsex.KindChar)
		}
		return in.Advance(size), in.String()[:size], nil
	}
}

// Take matches exactly n runes.
func Take(n int) Matcher {
	return func(in Input) (Input, string, error) {
		s := in.String()
		end := 0
		for range n {
			if end >= len(s) {
				return in, "", parsex.NewError(in, parsex.KindTake)
			}
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
		}
		return in.Advance(end), s[:end], nil
	}
}

// TakeWhile1 matches the longest non-empty run of runes satisfying pred.
// An empty run fails with kind.
func TakeWhile1(pred func(rune) bool, kind parsex.ErrorKind) Matcher {
	return func(in Input) (Input, string, error) {
		n := span(in.String(), pred)
		if n == 0 {
			return in, "", parsex.NewError(in, kind)
		}
		return in.Advance(n), in.String()[:n], nil
	}
}

// TakeWhile matches the longest, possibly empty, run of runes satisfying pred.
func TakeWhile(pred func(rune) bool) Matcher {
	return func(in Input) (Input, string, error) {
		n := span(in.String(), pred)
		return in.Advance(n), in.String()[:n], nil
	}
}

func span(s string, pred func(rune) bool) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	return n
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
func isBlank(r rune) bool { return r == ' ' || r == '\t' }

// Digit1 matches one or more ASCII decimal digits.
func Digit1() Matcher {
	return TakeWhile1(isDigit, parsex.KindDigit)
}

// Alpha1 matches one or more letters.
func Alpha1() Matcher {
	return TakeWhile1(unicode.IsLetter, parsex.KindAlpha)
}

// Space0 matches zero or more spaces and tabs.
func Space0() Matcher {
	return TakeWhile(isBlank)
}

// Space1 matches one or more spaces and tabs.
func Space1() Matcher {
	return TakeWhile1(isBlank, parsex.KindSpace)
}

// LineEnding matches "\n" or "\r\n".
func LineEnding() Matcher {
	return func(in Input) (Input, string, error) {
		switch {
		case in.HasPrefix("\n"):
			return in.Advance(1), "\n", nil
		case in.HasPrefix("\r\n"):
			return in.Advance(2), "\r\n", nil
		}
		return in, "", parsex.NewError(in, parsex.KindLineEnding)
	}
}

// Empty matches the empty string anywhere.
func Empty() Matcher {
	return func(in Input) (Input, string, error) {
		return in, "", nil
	}
}

// Rest matches everything that is left.
func Rest() Matcher {
	return func(in Input) (Input, string, error) {
		return in.Advance(in.Len()), in.String(), nil
	}
}

// OneDigit matches a single ASCII decimal digit and produces its value.
func OneDigit() parsex.Func[Input, int] {
	return func(in Input) (Input, int, error) {
		s := in.String()
		if len(s) == 0 || !isDigit(rune(s[0])) {
			return in, 0, parsex.NewError(in, parsex.KindDigit)
		}
		return in.Advance(1), int(s[0] - '0'), nil
	}
}
