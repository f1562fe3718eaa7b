// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/text"
)

func kindOf(t *testing.T, err error) parsex.ErrorKind {
	t.Helper()
	var pe *parsex.Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *parsex.Error", err)
	}
	return pe.Kind
}

func TestMatchers(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    text.Matcher
		in   string
		out  string
		rest string
	}{
		{"tag", text.Tag("->"), "-> 5", "->", " 5"},
		{"char", text.Char('é'), "été", "é", "té"},
		{"take", text.Take(2), "ébc", "éb", "c"},
		{"digit1", text.Digit1(), "123abc", "123", "abc"},
		{"alpha1", text.Alpha1(), "abc123", "abc", "123"},
		{"space0 empty", text.Space0(), "x", "", "x"},
		{"space0", text.Space0(), " \t x", " \t ", "x"},
		{"space1", text.Space1(), "  7", "  ", "7"},
		{"lf", text.LineEnding(), "\nx", "\n", "x"},
		{"crlf", text.LineEnding(), "\r\nx", "\r\n", "x"},
		{"empty", text.Empty(), "abc", "", "abc"},
		{"rest", text.Rest(), "abc", "abc", ""},
		{"take while", text.TakeWhile(func(r rune) bool { return r == '#' }), "##.", "##", "."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rest, out, err := tc.m.Parse(text.New(tc.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tc.out || rest.String() != tc.rest {
				t.Fatalf("got %q rest %q, want %q rest %q", out, rest.String(), tc.out, tc.rest)
			}
		})
	}
}

func TestMatcherFailures(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    text.Matcher
		in   string
		kind parsex.ErrorKind
	}{
		{"tag", text.Tag("up"), "down", parsex.KindTag},
		{"char", text.Char(','), "", parsex.KindChar},
		{"take", text.Take(3), "ab", parsex.KindTake},
		{"digit1", text.Digit1(), "x1", parsex.KindDigit},
		{"alpha1", text.Alpha1(), "1x", parsex.KindAlpha},
		{"space1", text.Space1(), "x", parsex.KindSpace},
		{"line ending", text.LineEnding(), "\rx", parsex.KindLineEnding},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := text.New("##" + tc.in).Advance(2)
			rest, _, err := tc.m.Parse(in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !parsex.IsRecoverable(err) {
				t.Fatalf("expected recoverable error, got %v", err)
			}
			if k := kindOf(t, err); k != tc.kind {
				t.Fatalf("got kind %v, want %v", k, tc.kind)
			}
			if rest.Offset() != 2 {
				t.Fatalf("matchers must not consume on failure: got offset %d", rest.Offset())
			}
		})
	}
}

func TestOneDigit(t *testing.T) {
	rest, d, err := text.OneDigit().Parse(text.New("42"))
	if err != nil || d != 4 || rest.String() != "2" {
		t.Fatalf("got %d, %v, rest %q", d, err, rest.String())
	}
	if _, _, err := text.OneDigit().Parse(text.New("")); kindOf(t, err) != parsex.KindDigit {
		t.Fatalf("got %v, want digit error", err)
	}
}
