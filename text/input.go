// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package text provides base parsers over string input for use with parsex
// combinators: tags, characters, digits, whitespace, line endings and numbers.
package text

import (
	"fmt"
	"strings"
)

// Input is a cursor into a source string.
// Copying an Input copies the cursor only; the string is shared.
type Input struct {
	src string
	off int
}

// New returns a cursor at the start of s.
func New(s string) Input {
	return Input{src: s}
}

// Len returns the number of bytes left.
func (in Input) Len() int { return len(in.src) - in.off }

// Offset returns the byte offset from the start of the source.
func (in Input) Offset() int { return in.off }

// String returns the remaining text.
func (in Input) String() string { return in.src[in.off:] }

// Source returns the whole source string.
func (in Input) Source() string { return in.src }

// Advance returns the cursor moved n bytes forward.
// n is clamped to the remaining length.
func (in Input) Advance(n int) Input {
	if n > in.Len() {
		n = in.Len()
	}
	in.off += n
	return in
}

// HasPrefix reports whether the remaining text starts with s.
func (in Input) HasPrefix(s string) bool {
	return strings.HasPrefix(in.src[in.off:], s)
}

// Position is a human readable location in a source string.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate converts a byte offset in src to a 1-based line and column.
// Offsets past the end are clamped.
func Locate(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	line := 1 + strings.Count(src[:offset], "\n")
	col := offset + 1
	if i := strings.LastIndexByte(src[:offset], '\n'); i >= 0 {
		col = offset - i
	}
	return Position{Offset: offset, Line: line, Column: col}
}
