// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// Value transformation combinators.
//
// MapRes is the fallible form; Map, Value and Bind are derived shapes kept
// as separate types so the common cases avoid an extra closure per parse.

// MapResParser applies P, then converts its output with F.
type MapResParser[I Input, O1, O2 any] struct {
	P Parser[I, O1]
	F func(O1) (O2, error)
}

// MapRes returns a parser that runs p and converts its output with f.
//
// A conversion failure is reported as a recoverable [KindMapRes] error
// positioned where p started, not where it stopped, so an enclosing
// alternative backtracks to the right place. Failures of p propagate
// unchanged.
func MapRes[I Input, O1, O2 any](p Parser[I, O1], f func(O1) (O2, error)) *MapResParser[I, O1, O2] {
	return &MapResParser[I, O1, O2]{P: p, F: f}
}

// Parse implements [Parser].
func (m *MapResParser[I, O1, O2]) Parse(input I) (I, O2, error) {
	var zero O2
	rest, o1, err := m.P.Parse(input)
	if err != nil {
		return rest, zero, err
	}
	o2, err := m.F(o1)
	if err != nil {
		return input, zero, NewExternalError(input, KindMapRes, err)
	}
	return rest, o2, nil
}

// Recognize implements [Recognizer].
func (m *MapResParser[I, O1, O2]) Recognize(input I) (I, error) {
	rest, _, err := m.Parse(input)
	return rest, err
}

// MapParser applies P, then transforms its output with the infallible F.
type MapParser[I Input, A, B any] struct {
	P Parser[I, A]
	F func(A) B
}

// Map returns a parser that runs p and transforms its output with f.
func Map[I Input, A, B any](p Parser[I, A], f func(A) B) *MapParser[I, A, B] {
	return &MapParser[I, A, B]{P: p, F: f}
}

// Parse implements [Parser].
func (m *MapParser[I, A, B]) Parse(input I) (I, B, error) {
	rest, a, err := m.P.Parse(input)
	if err != nil {
		var zero B
		return rest, zero, err
	}
	return rest, m.F(a), nil
}

// Recognize implements [Recognizer].
func (m *MapParser[I, A, B]) Recognize(input I) (I, error) {
	return recognize(m.P, input)
}

// ValueParser runs P and replaces its output with V.
type ValueParser[I Input, A, B any] struct {
	P Parser[I, A]
	V B
}

// Value returns a parser that runs p and produces v on success.
func Value[I Input, A, B any](v B, p Parser[I, A]) *ValueParser[I, A, B] {
	return &ValueParser[I, A, B]{P: p, V: v}
}

// Parse implements [Parser].
func (p *ValueParser[I, A, B]) Parse(input I) (I, B, error) {
	rest, _, err := p.P.Parse(input)
	if err != nil {
		var zero B
		return rest, zero, err
	}
	return rest, p.V, nil
}

// Recognize implements [Recognizer].
func (p *ValueParser[I, A, B]) Recognize(input I) (I, error) {
	return recognize(p.P, input)
}

// BindParser runs P and continues with the parser F builds from its output.
type BindParser[I Input, A, B any] struct {
	P Parser[I, A]
	F func(A) Parser[I, B]
}

// Bind returns a parser that runs p, then runs f(output of p) from where p
// stopped. It is the building block for grammars whose shape depends on a
// value read earlier, such as a count followed by that many items.
func Bind[I Input, A, B any](p Parser[I, A], f func(A) Parser[I, B]) *BindParser[I, A, B] {
	return &BindParser[I, A, B]{P: p, F: f}
}

// Parse implements [Parser].
func (b *BindParser[I, A, B]) Parse(input I) (I, B, error) {
	rest, a, err := b.P.Parse(input)
	if err != nil {
		var zero B
		return rest, zero, err
	}
	return b.F(a).Parse(rest)
}

// Recognize implements [Recognizer].
func (b *BindParser[I, A, B]) Recognize(input I) (I, error) {
	rest, _, err := b.Parse(input)
	return rest, err
}

// recognize runs p and drops its output.
func recognize[I Input, O any](p Parser[I, O], input I) (I, error) {
	if r, ok := p.(Recognizer[I]); ok {
		return r.Recognize(input)
	}
	rest, _, err := p.Parse(input)
	return rest, err
}
