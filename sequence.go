// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// Sequencing combinators.
// All of them run strictly left to right: once the first parser has
// succeeded its consumption is kept, and a failure of the second parser
// fails the whole sequence. Backtracking across the pair is left to an
// enclosing [Alt].

// SkipParser runs F, then G, and keeps the output of F.
type SkipParser[I Input, O, S any] struct {
	F Parser[I, O]
	G Parser[I, S]
}

// Skip returns a parser that runs f, then g from where f stopped, and
// produces the output of f. It consumes a trailing delimiter.
func Skip[I Input, O, S any](f Parser[I, O], g Parser[I, S]) *SkipParser[I, O, S] {
	return &SkipParser[I, O, S]{F: f, G: g}
}

// Parse implements [Parser].
func (p *SkipParser[I, O, S]) Parse(input I) (I, O, error) {
	rest, o, err := p.F.Parse(input)
	if err != nil {
		return rest, o, err
	}
	rest, _, err = p.G.Parse(rest)
	if err != nil {
		var zero O
		return rest, zero, err
	}
	return rest, o, nil
}

// Recognize implements [Recognizer].
func (p *SkipParser[I, O, S]) Recognize(input I) (I, error) {
	rest, err := recognize(p.F, input)
	if err != nil {
		return rest, err
	}
	return recognize(p.G, rest)
}

// PrecededParser runs G, then F, and keeps the output of F.
type PrecededParser[I Input, O, S any] struct {
	F Parser[I, O]
	G Parser[I, S]
}

// PrecededBy returns a parser that runs g first, discards its output, then
// runs f and produces the output of f. It consumes a leading delimiter or
// keyword in front of the value of interest.
func PrecededBy[I Input, O, S any](f Parser[I, O], g Parser[I, S]) *PrecededParser[I, O, S] {
	return &PrecededParser[I, O, S]{F: f, G: g}
}

// Parse implements [Parser].
func (p *PrecededParser[I, O, S]) Parse(input I) (I, O, error) {
	rest, _, err := p.G.Parse(input)
	if err != nil {
		var zero O
		return rest, zero, err
	}
	return p.F.Parse(rest)
}

// Recognize implements [Recognizer].
func (p *PrecededParser[I, O, S]) Recognize(input I) (I, error) {
	rest, err := recognize(p.G, input)
	if err != nil {
		return rest, err
	}
	return recognize(p.F, rest)
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// AndParser runs P, then Q, and keeps both outputs.
type AndParser[I Input, A, B any] struct {
	P Parser[I, A]
	Q Parser[I, B]
}

// And returns a parser that runs p, then q, producing both outputs as a [Pair].
func And[I Input, A, B any](p Parser[I, A], q Parser[I, B]) *AndParser[I, A, B] {
	return &AndParser[I, A, B]{P: p, Q: q}
}

// Parse implements [Parser].
func (p *AndParser[I, A, B]) Parse(input I) (I, Pair[A, B], error) {
	rest, a, err := p.P.Parse(input)
	if err != nil {
		return rest, Pair[A, B]{}, err
	}
	rest, b, err := p.Q.Parse(rest)
	if err != nil {
		return rest, Pair[A, B]{}, err
	}
	return rest, Pair[A, B]{Fst: a, Snd: b}, nil
}

// Recognize implements [Recognizer].
func (p *AndParser[I, A, B]) Recognize(input I) (I, error) {
	rest, err := recognize(p.P, input)
	if err != nil {
		return rest, err
	}
	return recognize(p.Q, rest)
}

// Delimited returns a parser that runs open, f and end in order and
// produces the output of f.
func Delimited[I Input, L, O, R any](open Parser[I, L], f Parser[I, O], end Parser[I, R]) *SkipParser[I, O, R] {
	return Skip[I, O, R](PrecededBy(f, open), end)
}
