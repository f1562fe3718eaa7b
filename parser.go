// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// Input is the cursor a parser consumes.
//
// Implementations are small values: copying an Input duplicates the cursor,
// never the underlying buffer, so a combinator can retry from an earlier
// position by keeping the old value.
type Input interface {
	// Len reports the remaining length. Repetition combinators compare it
	// before and after a cycle to detect parsers that make no progress.
	Len() int

	// Offset reports the position from the start of the original source.
	Offset() int
}

// Parser is the contract every primitive and combinator satisfies.
//
// Parse consumes a prefix of input and returns the remaining input with the
// produced value, or a non-nil error. On error the returned input carries no
// meaning; callers continue from the input they passed in.
type Parser[I Input, O any] interface {
	Parse(input I) (I, O, error)
}

// Recognizer is a parser whose output is thrown away.
// Every parser constructed by this module implements it, which lets the
// chainable methods of [Ext] accept separators of any output type.
type Recognizer[I Input] interface {
	Recognize(input I) (I, error)
}

// Func adapts a plain function to [Parser] and [Recognizer].
//
// Example:
//
//	var sign = parsex.Func[text.Input, bool](func(in text.Input) (text.Input, bool, error) {
//		if in.HasPrefix("-") {
//			return in.Advance(1), true, nil
//		}
//		return in, false, nil
//	})
type Func[I Input, O any] func(input I) (I, O, error)

// Parse calls f(input).
func (f Func[I, O]) Parse(input I) (I, O, error) {
	return f(input)
}

// Recognize calls f(input) and drops the output.
func (f Func[I, O]) Recognize(input I) (I, error) {
	rest, _, err := f(input)
	return rest, err
}

// recognizer lifts a Recognizer back into a Parser producing struct{}.
type recognizer[I Input] struct {
	r Recognizer[I]
}

func (p recognizer[I]) Parse(input I) (I, struct{}, error) {
	rest, err := p.r.Recognize(input)
	return rest, struct{}{}, err
}

func (p recognizer[I]) Recognize(input I) (I, error) {
	return p.r.Recognize(input)
}

// Discard turns a [Recognizer] into a [Parser] producing struct{}.
func Discard[I Input](r Recognizer[I]) Parser[I, struct{}] {
	return recognizer[I]{r: r}
}
