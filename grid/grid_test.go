// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test01(tst *testing.T) {
	//verbose()
	chk.PrintTitle("grid.Test01: allocation and vacuum baseline")

	g := New(10, 8)
	if g.W != 10 || g.H != 8 {
		tst.Fatalf("dimensions not as expected")
	}
	for k := 0; k < g.W*g.H; k++ {
		if g.Epsilon[k] != VacuumEpsilon {
			tst.Fatalf("Epsilon[%d] should be vacuum permittivity", k)
		}
		if g.Mu[k] != VacuumMu {
			tst.Fatalf("Mu[%d] should be vacuum permeability", k)
		}
		if g.Sigma[k] != 0 {
			tst.Fatalf("Sigma[%d] should be zero at init", k)
		}
		if g.Ez[k] != 0 || g.Hx[k] != 0 || g.Hy[k] != 0 {
			tst.Fatalf("field planes should be zero at init")
		}
	}
}

func Test02(tst *testing.T) {
	//verbose()
	chk.PrintTitle("grid.Test02: CFL bound")

	g := New(20, 20)
	g.CheckCFL() // must not panic

	g.Dt = MaxStableDt(g.Dx, g.Dy) * 1.5
	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected CheckCFL to panic on an over-large dt")
		}
	}()
	g.CheckCFL()
}

func Test03(tst *testing.T) {
	//verbose()
	chk.PrintTitle("grid.Test03: Idx and Reset")

	g := New(5, 4)
	if g.Idx(2, 3) != 3*5+2 {
		tst.Fatalf("Idx mismatch")
	}
	g.Ez[g.Idx(1, 1)] = 42
	g.T = 123
	g.Frame = 9
	g.Reset()
	if g.T != 0 || g.Frame != 0 {
		tst.Fatalf("Reset should zero time and frame")
	}
	if g.Ez[g.Idx(1, 1)] != 0 {
		tst.Fatalf("Reset should zero field planes")
	}
}
