// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// Ext attaches the combinators of this package to any parser as chainable
// methods, so grammars read left to right as a pipeline:
//
//	px := parsex.From(text.Number[int]()).Skip(text.Tag("px"))
//	row := parsex.From(text.Number[int]()).SeparatedList1(text.Tag(","))
//
// Go methods cannot declare type parameters, so only combinators whose
// result type is determined by the receiver are methods. Methods that
// produce a slice return a plain [Parser]; wrap it with [From] again to keep
// chaining. Transformations to a new value type ([MapRes], [Map], [Bind])
// and [SeparatedArray] are package-level functions.
type Ext[I Input, O any] struct {
	p Parser[I, O]
}

// From wraps p for chaining. Wrapping an Ext returns it unchanged.
func From[I Input, O any](p Parser[I, O]) Ext[I, O] {
	if e, ok := p.(Ext[I, O]); ok {
		return e
	}
	return Ext[I, O]{p: p}
}

// Parse implements [Parser].
func (e Ext[I, O]) Parse(input I) (I, O, error) {
	return e.p.Parse(input)
}

// Recognize implements [Recognizer].
func (e Ext[I, O]) Recognize(input I) (I, error) {
	return recognize(e.p, input)
}

// Unwrap returns the wrapped parser.
func (e Ext[I, O]) Unwrap() Parser[I, O] { return e.p }

// Skip is [Skip] with g's output discarded.
func (e Ext[I, O]) Skip(g Recognizer[I]) Ext[I, O] {
	return Ext[I, O]{p: Skip(e.p, Discard(g))}
}

// PrecededBy is [PrecededBy] with g's output discarded.
func (e Ext[I, O]) PrecededBy(g Recognizer[I]) Ext[I, O] {
	return Ext[I, O]{p: PrecededBy(e.p, Discard(g))}
}

// SeparatedList1 is [SeparatedList1] with sep's output discarded.
func (e Ext[I, O]) SeparatedList1(sep Recognizer[I]) Parser[I, []O] {
	return SeparatedList1(e.p, Discard(sep))
}

// Many1 is [Many1].
func (e Ext[I, O]) Many1() Parser[I, []O] {
	return Many1(e.p)
}

// Cut is [Cut].
func (e Ext[I, O]) Cut() Ext[I, O] {
	return Ext[I, O]{p: Cut(e.p)}
}

// Verify is [Verify].
func (e Ext[I, O]) Verify(check func(O) bool) Ext[I, O] {
	return Ext[I, O]{p: Verify(e.p, check)}
}

// Or is [Alt] over the receiver followed by others.
func (e Ext[I, O]) Or(others ...Parser[I, O]) Ext[I, O] {
	choices := make([]Parser[I, O], 0, len(others)+1)
	choices = append(choices, e.p)
	choices = append(choices, others...)
	return Ext[I, O]{p: Alt(choices...)}
}

// AllConsuming is [AllConsuming].
func (e Ext[I, O]) AllConsuming() Ext[I, O] {
	return Ext[I, O]{p: AllConsuming(e.p)}
}
