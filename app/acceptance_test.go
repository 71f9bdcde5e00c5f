// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func runScene(tst *testing.T, scene string, steps int) *App {
	path := writeTemp(tst, scene)
	defer os.Remove(path)
	a := New(path)
	a.Controller.Resume()
	for i := 0; i < steps; i++ {
		a.Controller.Step()
	}
	return a
}

// Test02 is the empty-grid scenario: a 100x100 Natural-boundary grid
// with no sources must stay exactly zero for 1000 steps.
func Test02(tst *testing.T) {
	//verbose()
	chk.PrintTitle("app.Test02: empty grid with no sources stays all-zero for 1000 steps")

	a := runScene(tst, `
[Simulation]
Width 100
Height 100
ComputeOn CPU
Boundary Natural
`, 1000)
	defer a.Close()

	for _, plane := range [][]float32{a.Grid.Ez, a.Grid.Hx, a.Grid.Hy} {
		for k, v := range plane {
			if v != 0 {
				tst.Fatalf("cell %d should be exactly zero with no sources, got %v", k, v)
			}
		}
	}
}

// Test03 is the PEC-corner scenario: a 200x200 PEC grid with one
// source at its center must keep the corner at zero while the source
// cell itself is excited.
func Test03(tst *testing.T) {
	//verbose()
	chk.PrintTitle("app.Test03: PEC corner stays zero while the source cell is excited")

	a := runScene(tst, `
[Simulation]
Width 200
Height 200
ComputeOn CPU
Boundary PEC

[Sources]
SineLinFreq Ez 100 100 1.5e6 0
`, 500)
	defer a.Close()

	g := a.Grid
	if v := g.Ez[g.Idx(0, 0)]; v != 0 {
		tst.Fatalf("PEC corner (0,0) should be exactly zero, got %v", v)
	}
	if v := g.Ez[g.Idx(100, 100)]; v == 0 {
		tst.Fatalf("source cell (100,100) should be excited, got %v", v)
	}
}

// Test04 is the PML absorption scenario: a point source at the center
// of a 300x300 PML-bordered grid must have its field absorbed by at
// least 20 dB (a ratio below 1e-1) before reaching the outer rows.
func Test04(tst *testing.T) {
	//verbose()
	chk.PrintTitle("app.Test04: PML absorbs the outgoing wave by at least 20 dB")

	a := runScene(tst, `
[Simulation]
Width 300
Height 300
ComputeOn CPU
Boundary PML

[Sources]
SineLinFreq Ez 150 150 1.5e6 0
`, 2000)
	defer a.Close()

	g := a.Grid
	maxAbsInRows := func(rows ...int) float32 {
		var m float32
		for _, j := range rows {
			for i := 0; i < g.W; i++ {
				v := g.Ez[g.Idx(i, j)]
				if v < 0 {
					v = -v
				}
				if v > m {
					m = v
				}
			}
		}
		return m
	}
	edgeRows := make([]int, 0, 12)
	for j := 0; j <= 5; j++ {
		edgeRows = append(edgeRows, j)
	}
	for j := 294; j <= 299; j++ {
		edgeRows = append(edgeRows, j)
	}
	centerRows := make([]int, 0, 11)
	for j := 145; j <= 155; j++ {
		centerRows = append(centerRows, j)
	}

	edge := maxAbsInRows(edgeRows...)
	center := maxAbsInRows(centerRows...)
	if center == 0 {
		tst.Fatalf("setup: center rows carry no field to absorb")
	}
	ratio := float64(edge) / float64(center)
	if ratio >= 1e-1 {
		tst.Fatalf("PML absorption ratio %.3e should be below 1e-1 (20 dB)", ratio)
	}
}

// Test05 is the two-source interference scenario: two identical
// sources placed symmetrically about y=100 under a PEC boundary must
// produce an Ez plane symmetric about that row to within 1e-4 of the
// peak amplitude.
func Test05(tst *testing.T) {
	//verbose()
	chk.PrintTitle("app.Test05: two symmetric sources produce a field symmetric about y=100")

	a := runScene(tst, `
[Simulation]
Width 200
Height 200
ComputeOn CPU
Boundary PEC

[Sources]
SineLinFreq Ez 100 95 1.5e6 0
SineLinFreq Ez 100 105 1.5e6 0
`, 1000)
	defer a.Close()

	g := a.Grid
	diff := make([]float64, 0, g.W*99)
	peak := float32(0)
	for i := 0; i < g.W; i++ {
		for d := 1; d <= 99; d++ {
			above := g.Ez[g.Idx(i, 100+d)]
			below := g.Ez[g.Idx(i, 100-d)]
			diff = append(diff, float64(above-below))
			if math.Abs(float64(above)) > float64(peak) {
				peak = float32(math.Abs(float64(above)))
			}
			if math.Abs(float64(below)) > float64(peak) {
				peak = float32(math.Abs(float64(below)))
			}
		}
	}
	if peak == 0 {
		tst.Fatalf("setup: sources produced no field to compare")
	}
	if d := la.VecLargest(diff, float64(peak)); d > 1e-4 {
		tst.Fatalf("reflection-symmetry error %.3e exceeds the 1e-4 tolerance", d)
	}
}

// Test06 is the single-triangle rasterization scenario: after load
// (zero steps), the centroid cell carries the triangle's relative
// permittivity scaled onto the vacuum baseline and the outside corner
// is untouched.
func Test06(tst *testing.T) {
	//verbose()
	chk.PrintTitle("app.Test06: triangle material scales epsilon at its centroid, leaves the corner untouched")

	a := runScene(tst, `
[Simulation]
Width 50
Height 50
ComputeOn CPU
Boundary Natural

[Materials]
Triangle 4.0 1.0 10 10 40 10 25 40
`, 0)
	defer a.Close()

	g := a.Grid
	const eps0 = 8.854e-12
	if got, want := g.Epsilon[g.Idx(25, 25)], float32(4*eps0); got != want {
		tst.Fatalf("epsilon at the centroid: got %v, want %v", got, want)
	}
	if got, want := g.Epsilon[g.Idx(0, 0)], float32(eps0); got != want {
		tst.Fatalf("epsilon at the outside corner: got %v, want %v", got, want)
	}
}

// Test07 is the overlapping-materials scenario: a circle centered on
// the same triangle multiplies its own relative permittivity onto what
// the triangle already burned in.
func Test07(tst *testing.T) {
	//verbose()
	chk.PrintTitle("app.Test07: overlapping triangle and circle materials multiply epsilon")

	a := runScene(tst, `
[Simulation]
Width 50
Height 50
ComputeOn CPU
Boundary Natural

[Materials]
Triangle 4.0 1.0 10 10 40 10 25 40
Circle 2.0 1.0 25 25 5
`, 0)
	defer a.Close()

	g := a.Grid
	const eps0 = 8.854e-12
	if got, want := g.Epsilon[g.Idx(25, 25)], float32(4*2*eps0); got != want {
		tst.Fatalf("epsilon at the centroid under both materials: got %v, want %v", got, want)
	}
}
