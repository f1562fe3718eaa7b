// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// ListParser parses one or more Elem separated by Sep into a slice.
type ListParser[I Input, O, S any] struct {
	Elem Parser[I, O]
	Sep  Parser[I, S]
}

// SeparatedList1 returns a parser for one or more elem interleaved with sep.
//
// The first element is mandatory and its failure is returned as is. After
// that, each cycle parses sep then elem. A recoverable failure of either
// ends the list successfully at the cursor after the last element, so a
// trailing separator is left unconsumed. Fatal failures propagate. A
// separator that succeeds without consuming input fails the parse with a
// fatal [KindSeparatedList] error instead of looping forever.
func SeparatedList1[I Input, O, S any](elem Parser[I, O], sep Parser[I, S]) *ListParser[I, O, S] {
	return &ListParser[I, O, S]{Elem: elem, Sep: sep}
}

// Parse implements [Parser].
func (p *ListParser[I, O, S]) Parse(input I) (I, []O, error) {
	rest, o, err := p.Elem.Parse(input)
	if err != nil {
		return rest, nil, err
	}
	res := []O{o}
	input = rest

	for {
		n := input.Len()
		afterSep, _, err := p.Sep.Parse(input)
		if err != nil {
			if IsFatal(err) {
				return afterSep, nil, err
			}
			return input, res, nil
		}
		// infinite loop check: the separator must consume
		if afterSep.Len() == n {
			return afterSep, nil, NewFailure(afterSep, KindSeparatedList)
		}

		rest, o, err := p.Elem.Parse(afterSep)
		if err != nil {
			if IsFatal(err) {
				return rest, nil, err
			}
			return input, res, nil
		}
		res = append(res, o)
		input = rest
	}
}

// Recognize implements [Recognizer].
func (p *ListParser[I, O, S]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}

// Many1Parser parses one or more consecutive Elem into a slice.
type Many1Parser[I Input, O any] struct {
	Elem Parser[I, O]
}

// Many1 returns a parser for an unbounded run of consecutive elem with no
// delimiter, at least one long.
//
// It behaves like [SeparatedList1] with a separator that matches nothing.
// Since such a separator never consumes, progress is checked on the element:
// an element that succeeds without consuming input fails the parse with a
// fatal [KindMany1] error.
func Many1[I Input, O any](elem Parser[I, O]) *Many1Parser[I, O] {
	return &Many1Parser[I, O]{Elem: elem}
}

// Parse implements [Parser].
func (p *Many1Parser[I, O]) Parse(input I) (I, []O, error) {
	rest, o, err := p.Elem.Parse(input)
	if err != nil {
		return rest, nil, err
	}
	if rest.Len() == input.Len() {
		return rest, nil, NewFailure(rest, KindMany1)
	}
	res := []O{o}
	input = rest

	for {
		n := input.Len()
		rest, o, err := p.Elem.Parse(input)
		if err != nil {
			if IsFatal(err) {
				return rest, nil, err
			}
			return input, res, nil
		}
		if rest.Len() == n {
			return rest, nil, NewFailure(rest, KindMany1)
		}
		res = append(res, o)
		input = rest
	}
}

// Recognize implements [Recognizer].
func (p *Many1Parser[I, O]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}
