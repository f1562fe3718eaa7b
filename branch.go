// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// Choice and error-classification combinators.

// AltParser tries each of Choices in order.
type AltParser[I Input, O any] struct {
	Choices []Parser[I, O]
}

// Alt returns a parser that tries each choice from the same input and
// produces the output of the first one that succeeds.
// Recoverable failures move on to the next choice; a fatal failure stops
// the search and propagates. When every choice fails recoverably the result
// is a [KindAlt] error at the input position.
func Alt[I Input, O any](choices ...Parser[I, O]) *AltParser[I, O] {
	return &AltParser[I, O]{Choices: choices}
}

// Parse implements [Parser].
func (p *AltParser[I, O]) Parse(input I) (I, O, error) {
	for _, c := range p.Choices {
		rest, o, err := c.Parse(input)
		if err == nil {
			return rest, o, nil
		}
		if IsFatal(err) {
			return rest, o, err
		}
	}
	var zero O
	return input, zero, NewError(input, KindAlt)
}

// Recognize implements [Recognizer].
func (p *AltParser[I, O]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}

// OptParser runs P and turns a recoverable failure into "absent".
type OptParser[I Input, O any] struct {
	P Parser[I, O]
}

// Opt returns a parser that produces (value, true) when p matches and
// (zero, false) without consuming input when p fails recoverably.
func Opt[I Input, O any](p Parser[I, O]) *OptParser[I, O] {
	return &OptParser[I, O]{P: p}
}

// Parse implements [Parser].
func (p *OptParser[I, O]) Parse(input I) (I, Pair[O, bool], error) {
	rest, o, err := p.P.Parse(input)
	if err == nil {
		return rest, Pair[O, bool]{Fst: o, Snd: true}, nil
	}
	if IsFatal(err) {
		return rest, Pair[O, bool]{}, err
	}
	return input, Pair[O, bool]{}, nil
}

// Recognize implements [Recognizer].
func (p *OptParser[I, O]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}

// CutParser runs P and escalates any failure to fatal.
type CutParser[I Input, O any] struct {
	P Parser[I, O]
}

// Cut returns a parser that fails fatally whenever p fails.
// Use it once a grammar has committed to a branch, so that an enclosing
// [Alt] or repetition reports the error instead of trying something else.
func Cut[I Input, O any](p Parser[I, O]) *CutParser[I, O] {
	return &CutParser[I, O]{P: p}
}

// Parse implements [Parser].
func (p *CutParser[I, O]) Parse(input I) (I, O, error) {
	rest, o, err := p.P.Parse(input)
	if err != nil {
		return rest, o, Escalate(err)
	}
	return rest, o, nil
}

// Recognize implements [Recognizer].
func (p *CutParser[I, O]) Recognize(input I) (I, error) {
	rest, err := recognize(p.P, input)
	return rest, Escalate(err)
}

// AllConsumingParser runs P and requires it to consume the whole input.
type AllConsumingParser[I Input, O any] struct {
	P Parser[I, O]
}

// AllConsuming returns a parser that fails with a recoverable [KindEof]
// error when p leaves input behind.
func AllConsuming[I Input, O any](p Parser[I, O]) *AllConsumingParser[I, O] {
	return &AllConsumingParser[I, O]{P: p}
}

// Parse implements [Parser].
func (p *AllConsumingParser[I, O]) Parse(input I) (I, O, error) {
	rest, o, err := p.P.Parse(input)
	if err != nil {
		return rest, o, err
	}
	if rest.Len() != 0 {
		var zero O
		return rest, zero, NewError(rest, KindEof)
	}
	return rest, o, nil
}

// Recognize implements [Recognizer].
func (p *AllConsumingParser[I, O]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}

// VerifyParser runs P and checks its output with Check.
type VerifyParser[I Input, O any] struct {
	P     Parser[I, O]
	Check func(O) bool
}

// Verify returns a parser that fails with a recoverable [KindVerify] error,
// positioned where p started, when check rejects the output of p.
func Verify[I Input, O any](p Parser[I, O], check func(O) bool) *VerifyParser[I, O] {
	return &VerifyParser[I, O]{P: p, Check: check}
}

// Parse implements [Parser].
func (p *VerifyParser[I, O]) Parse(input I) (I, O, error) {
	rest, o, err := p.P.Parse(input)
	if err != nil {
		return rest, o, err
	}
	if !p.Check(o) {
		var zero O
		return input, zero, NewError(input, KindVerify)
	}
	return rest, o, nil
}

// Recognize implements [Recognizer].
func (p *VerifyParser[I, O]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}
