// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex_test

import (
	"testing"

	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/text"
)

type direction int

const (
	forward direction = iota
	down
	up
)

func directionParser() *parsex.AltParser[text.Input, direction] {
	return parsex.Alt[text.Input, direction](
		parsex.Value[text.Input, string](forward, text.Tag("forward")),
		parsex.Value[text.Input, string](down, text.Tag("down")),
		parsex.Value[text.Input, string](up, text.Tag("up")),
	)
}

func TestAlt(t *testing.T) {
	p := directionParser()
	for _, tc := range []struct {
		in   string
		want direction
		rest string
	}{
		{"forward 5", forward, " 5"},
		{"down 5", down, " 5"},
		{"up 3", up, " 3"},
	} {
		rest, got, err := p.Parse(text.New(tc.in))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want || rest.String() != tc.rest {
			t.Fatalf("%q: got %d rest %q, want %d rest %q", tc.in, got, rest.String(), tc.want, tc.rest)
		}
	}
}

func TestAltNoMatch(t *testing.T) {
	p := directionParser()

	rest, _, err := p.Parse(text.New("x"))
	var pe *parsex.Error
	if !asError(err, &pe) || pe.Kind != parsex.KindAlt || pe.Offset != 0 {
		t.Fatalf("got %v, want alt at offset 0", err)
	}
	if !parsex.IsRecoverable(err) {
		t.Fatal("alt exhaustion is recoverable")
	}
	if rest.Offset() != 0 {
		t.Fatalf("got offset %d, want 0", rest.Offset())
	}
}

func TestAltStopsOnFatal(t *testing.T) {
	tried := false
	later := parsex.Func[text.Input, string](func(in text.Input) (text.Input, string, error) {
		tried = true
		return in, "", nil
	})
	p := parsex.Alt[text.Input, string](fatalAt, later)

	_, _, err := p.Parse(text.New("abc"))
	if !parsex.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if tried {
		t.Fatal("alternatives after a fatal failure must not run")
	}
}

func TestOpt(t *testing.T) {
	sign := parsex.Opt[text.Input, string](text.Tag("-"))

	rest, got, err := sign.Parse(text.New("-4"))
	if err != nil || !got.Snd || rest.String() != "4" {
		t.Fatalf("got %+v, %v, rest %q", got, err, rest.String())
	}

	rest, got, err = sign.Parse(text.New("4"))
	if err != nil || got.Snd || rest.Offset() != 0 {
		t.Fatalf("got %+v, %v, offset %d", got, err, rest.Offset())
	}

	_, _, err = parsex.Opt[text.Input, string](fatalAt).Parse(text.New("4"))
	if !parsex.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
}

func TestCut(t *testing.T) {
	// once "move " is seen the number is required
	move := parsex.PrecededBy[text.Input, int, string](
		parsex.Cut[text.Input, int](text.Number[int]()),
		text.Tag("move "),
	)
	other := parsex.Value[text.Input, string](0, text.Rest())
	p := parsex.Alt[text.Input, int](move, other)

	_, got, err := p.Parse(text.New("stay"))
	if err != nil || got != 0 {
		t.Fatalf("got %d, %v; want 0, nil", got, err)
	}

	_, _, err = p.Parse(text.New("move x"))
	if !parsex.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	var pe *parsex.Error
	if !asError(err, &pe) || pe.Offset != 5 || pe.Kind != parsex.KindDigit {
		t.Fatalf("got %v, want digit at offset 5", err)
	}

	if _, err := parsex.Cut[text.Input, int](text.OneDigit()).Recognize(text.New("x")); !parsex.IsFatal(err) {
		t.Fatalf("expected fatal error from Recognize, got %v", err)
	}
}

func TestAllConsuming(t *testing.T) {
	p := parsex.AllConsuming[text.Input, []int](text.Lines(text.Number[int]()))

	if _, _, err := p.Parse(text.New("1\n2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := p.Parse(text.New("1\n2\n"))
	var pe *parsex.Error
	if !asError(err, &pe) || pe.Kind != parsex.KindEof || pe.Offset != 3 {
		t.Fatalf("got %v, want eof at offset 3", err)
	}
}

func TestVerify(t *testing.T) {
	cell := parsex.Verify[text.Input, int](text.Number[int](), func(n int) bool { return n < 100 })

	if _, got, err := cell.Parse(text.New("42")); err != nil || got != 42 {
		t.Fatalf("got %d, %v; want 42, nil", got, err)
	}

	rest, _, err := cell.Parse(text.New("x100").Advance(1))
	var pe *parsex.Error
	if !asError(err, &pe) || pe.Kind != parsex.KindVerify || pe.Offset != 1 {
		t.Fatalf("got %v, want verify at offset 1", err)
	}
	if rest.Offset() != 1 {
		t.Fatalf("got offset %d, want 1", rest.Offset())
	}
}
