// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsex_test

import (
	"code.hybscloud.com/parsex"
	"code.hybscloud.com/parsex/text"
	"testing"
)

func TestSeparatedArrayAllocations(t *testing.T) {
	p := parsex.SeparatedArray[[5]int](text.OneDigit(), text.Tag(","))
	in := text.New("1,2,3,4,5")
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = p.Parse(in)
	})
	if allocs > 0 {
		t.Errorf("SeparatedArray[[5]int] allocs = %v; want 0", allocs)
	}
}

func TestSequenceAllocations(t *testing.T) {
	p := parsex.PrecededBy(
		parsex.Skip(text.OneDigit(), text.Tag("px")),
		text.Tag("w="),
	)
	in := text.New("w=5px")
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = p.Parse(in)
	})
	if allocs > 0 {
		t.Errorf("PrecededBy(Skip) allocs = %v; want 0", allocs)
	}
}
