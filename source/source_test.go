// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/maxwell2d/grid"
)

func Test01(tst *testing.T) {
	//verbose()
	chk.PrintTitle("source.Test01: SineLinFreq injects additively into Ez")

	g := grid.New(10, 10)
	s := &SineLinFreq{X: 5, Y: 5, Frequency: 1.5e6, Phase: 0, Comp: Ez}
	Inject([]Source{s}, g, 0)
	want := float32(math.Sin(0))
	if g.Ez[g.Idx(5, 5)] != want {
		tst.Fatalf("expected Ez to receive sin(0)=0, got %v", g.Ez[g.Idx(5, 5)])
	}

	Inject([]Source{s}, g, 1e-7)
	v1 := g.Ez[g.Idx(5, 5)]
	Inject([]Source{s}, g, 1e-7)
	v2 := g.Ez[g.Idx(5, 5)]
	if v2 != v1+v1-want {
		// two injections at the same t accumulate additively
		tst.Fatalf("expected two injections to accumulate to %v, got %v", v1+v1-want, v2)
	}
	if v2 == 0 {
		tst.Fatalf("expected nonzero accumulated Ez after two injections")
	}
}

func Test02(tst *testing.T) {
	//verbose()
	chk.PrintTitle("source.Test02: out-of-bounds sources are skipped, not fatal")

	g := grid.New(4, 4)
	s := &SineLinFreq{X: 100, Y: 100, Frequency: 1e6, Comp: Hx}
	Inject([]Source{s}, g, 1.0) // must not panic
	for _, v := range g.Hx {
		if v != 0 {
			tst.Fatalf("out-of-bounds source must not touch any cell")
		}
	}
}

func Test03(tst *testing.T) {
	//verbose()
	chk.PrintTitle("source.Test03: component routing")

	g := grid.New(4, 4)
	sx := &SineLinFreq{X: 1, Y: 1, Frequency: 1e6, Comp: Hx}
	sy := &SineLinFreq{X: 2, Y: 2, Frequency: 1e6, Comp: Hy}
	Inject([]Source{sx, sy}, g, 0.25e-6)
	if g.Hx[g.Idx(1, 1)] == 0 {
		tst.Fatalf("Hx source should have written to Hx plane")
	}
	if g.Hy[g.Idx(2, 2)] == 0 {
		tst.Fatalf("Hy source should have written to Hy plane")
	}
	if g.Ez[g.Idx(1, 1)] != 0 || g.Ez[g.Idx(2, 2)] != 0 {
		tst.Fatalf("sources must not leak into Ez")
	}
}
