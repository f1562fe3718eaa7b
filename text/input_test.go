// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text_test

import (
	"testing"

	"code.hybscloud.com/parsex/text"
)

func TestInputAdvance(t *testing.T) {
	in := text.New("hello")
	next := in.Advance(2)

	if in.Offset() != 0 || in.Len() != 5 {
		t.Fatalf("Advance must not modify the receiver: got offset %d len %d", in.Offset(), in.Len())
	}
	if next.Offset() != 2 || next.Len() != 3 || next.String() != "llo" {
		t.Fatalf("got offset %d len %d rest %q", next.Offset(), next.Len(), next.String())
	}
	if next.Source() != "hello" {
		t.Fatalf("got source %q, want %q", next.Source(), "hello")
	}

	end := next.Advance(100)
	if end.Len() != 0 || end.Offset() != 5 {
		t.Fatalf("got offset %d len %d, want clamped to 5, 0", end.Offset(), end.Len())
	}
}

func TestInputHasPrefix(t *testing.T) {
	in := text.New("forward 5").Advance(8)
	if !in.HasPrefix("5") || in.HasPrefix("forward") {
		t.Fatalf("HasPrefix must look at the remaining text %q", in.String())
	}
}

func TestLocate(t *testing.T) {
	src := "ab\ncd\n\nef"
	for _, tc := range []struct {
		off       int
		line, col int
		formatted string
	}{
		{0, 1, 1, "1:1"},
		{2, 1, 3, "1:3"},
		{3, 2, 1, "2:1"},
		{6, 3, 1, "3:1"},
		{8, 4, 2, "4:2"},
		{99, 4, 3, "4:3"},
		{-1, 1, 1, "1:1"},
	} {
		pos := text.Locate(src, tc.off)
		if pos.Line != tc.line || pos.Column != tc.col {
			t.Fatalf("Locate(%d): got %d:%d, want %d:%d", tc.off, pos.Line, pos.Column, tc.line, tc.col)
		}
		if pos.String() != tc.formatted {
			t.Fatalf("Locate(%d): got %q, want %q", tc.off, pos.String(), tc.formatted)
		}
	}
}
