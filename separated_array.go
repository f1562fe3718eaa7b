// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex

// Array is the set of fixed-size array types [SeparatedArray] can fill.
// The length of the array is the repetition count, so it is fixed when the
// parser is composed. [0]O is deliberately absent: an empty repetition is
// rejected by the compiler.
type Array[O any] interface {
	~[1]O | ~[2]O | ~[3]O | ~[4]O | ~[5]O | ~[6]O | ~[7]O | ~[8]O |
		~[9]O | ~[10]O | ~[11]O | ~[12]O | ~[13]O | ~[14]O | ~[15]O | ~[16]O |
		~[17]O | ~[18]O | ~[19]O | ~[20]O | ~[21]O | ~[22]O | ~[23]O | ~[24]O |
		~[25]O | ~[26]O | ~[27]O | ~[28]O | ~[29]O | ~[30]O | ~[31]O | ~[32]O
}

// ArrayParser parses exactly len(A) Elem separated by Sep into an A.
type ArrayParser[I Input, A Array[O], O, S any] struct {
	Elem Parser[I, O]
	Sep  Parser[I, S]
}

// SeparatedArray returns a parser for exactly len(A) elem interleaved with
// sep, producing the array type A.
//
// The result is accumulated in a local A, so parsing allocates nothing
// beyond what elem and sep allocate. There is no early stop: any failure of
// elem or sep, recoverable or fatal, is the failure of the whole parser and
// no partial array is returned.
//
// Example:
//
//	coords := parsex.SeparatedArray[[3]int](text.Number[int](), text.Tag(","))
func SeparatedArray[A Array[O], I Input, O, S any](elem Parser[I, O], sep Parser[I, S]) *ArrayParser[I, A, O, S] {
	return &ArrayParser[I, A, O, S]{Elem: elem, Sep: sep}
}

// Parse implements [Parser].
func (p *ArrayParser[I, A, O, S]) Parse(input I) (I, A, error) {
	var res, zero A

	rest, o, err := p.Elem.Parse(input)
	if err != nil {
		return rest, zero, err
	}
	res[0] = o
	input = rest

	for i := 1; i < len(res); i++ {
		input, _, err = p.Sep.Parse(input)
		if err != nil {
			return input, zero, err
		}
		input, res[i], err = p.Elem.Parse(input)
		if err != nil {
			return input, zero, err
		}
	}
	return input, res, nil
}

// Recognize implements [Recognizer].
func (p *ArrayParser[I, A, O, S]) Recognize(input I) (I, error) {
	rest, _, err := p.Parse(input)
	return rest, err
}
