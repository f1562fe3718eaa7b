// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex_test

import (
	"testing"

	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/text"
)

func TestSeparatedArray(t *testing.T) {
	p := parsex.SeparatedArray[[3]int](text.OneDigit(), text.Tag(","))

	rest, got, err := p.Parse(text.New("1,2,3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != [3]int{1, 2, 3} {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if rest.Len() != 0 {
		t.Fatalf("got rest %q, want empty", rest.String())
	}
}

func TestSeparatedArrayTooFew(t *testing.T) {
	p := parsex.SeparatedArray[[3]int](text.OneDigit(), text.Tag(","))

	_, got, err := p.Parse(text.New("1,2"))
	if err == nil {
		t.Fatalf("expected error, got %v", got)
	}
	if got != [3]int{} {
		t.Fatalf("got %v, want zero array", got)
	}
	var pe *parsex.Error
	if !asError(err, &pe) || pe.Kind != parsex.KindTag || pe.Offset != 3 {
		t.Fatalf("got %v, want tag at offset 3", err)
	}
}

func TestSeparatedArrayLeavesExtra(t *testing.T) {
	p := parsex.SeparatedArray[[2]int](text.OneDigit(), text.Tag(","))

	rest, got, err := p.Parse(text.New("4,5,6"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != [2]int{4, 5} {
		t.Fatalf("got %v, want [4 5]", got)
	}
	if rest.String() != ",6" {
		t.Fatalf("got rest %q, want %q", rest.String(), ",6")
	}
}

func TestSeparatedArraySingle(t *testing.T) {
	sep := parsex.Func[text.Input, string](func(in text.Input) (text.Input, string, error) {
		t.Fatal("separator must not run for a one element array")
		return in, "", nil
	})
	p := parsex.SeparatedArray[[1]int](text.OneDigit(), sep)

	_, got, err := p.Parse(text.New("9,"))
	if err != nil || got != [1]int{9} {
		t.Fatalf("got %v, %v; want [9], nil", got, err)
	}
}

func TestSeparatedArrayNoEarlyStop(t *testing.T) {
	// a recoverable element failure is not an early end, unlike SeparatedList1
	p := parsex.SeparatedArray[[3]int](text.OneDigit(), text.Tag(" "))

	_, _, err := p.Parse(text.New("1 2 x"))
	if !parsex.IsRecoverable(err) {
		t.Fatalf("expected recoverable error, got %v", err)
	}
	var pe *parsex.Error
	if !asError(err, &pe) || pe.Offset != 4 {
		t.Fatalf("got %v, want error at offset 4", err)
	}
}

func TestSeparatedArrayFatal(t *testing.T) {
	p := parsex.SeparatedArray[[3]string](text.Digit1(), fatalAt)

	_, _, err := p.Parse(text.New("1,2,3"))
	if !parsex.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
}

type board [2][3]int

func TestSeparatedArrayNested(t *testing.T) {
	row := parsex.SeparatedArray[[3]int](text.OneDigit(), text.Tag(" "))
	p := parsex.SeparatedArray[board](row, text.LineEnding())

	rest, got, err := p.Parse(text.New("1 2 3\n4 5 6\n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := board{{1, 2, 3}, {4, 5, 6}}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if rest.String() != "\n\n" {
		t.Fatalf("got rest %q, want %q", rest.String(), "\n\n")
	}
}
