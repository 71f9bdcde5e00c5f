// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/maxwell2d/boundary"
	"github.com/cpmech/maxwell2d/compute"
	"github.com/cpmech/maxwell2d/grid"
	"github.com/cpmech/maxwell2d/render"
	"github.com/cpmech/maxwell2d/source"
)

func newTestController(tst *testing.T) (*Controller, *grid.Grid) {
	g := grid.New(16, 16)
	nat, err := boundary.New("Natural", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	backend := compute.NewCPU()
	srcs := []source.Source{&source.SineLinFreq{X: 8, Y: 8, Frequency: 1e6, Comp: source.Ez}}
	return New(g, backend, nat, nil, srcs), g
}

func Test01(tst *testing.T) {
	//verbose()
	chk.PrintTitle("sim.Test01: paused controller does not advance time or frame")

	c, g := newTestController(tst)
	c.Step()
	if g.T != 0 || g.Frame != 0 {
		tst.Fatalf("a paused controller must not advance t or the frame counter")
	}
}

func Test02(tst *testing.T) {
	//verbose()
	chk.PrintTitle("sim.Test02: running controller advances t and frame exactly once per Step")

	c, g := newTestController(tst)
	c.Resume()
	c.Step()
	if g.Frame != 1 {
		tst.Fatalf("expected frame 1, got %d", g.Frame)
	}
	if g.T != g.Dt {
		tst.Fatalf("expected t == dt, got %v", g.T)
	}
}

func Test03(tst *testing.T) {
	//verbose()
	chk.PrintTitle("sim.Test03: cycle-visualization advances modulo NumVisualizations")

	c, _ := newTestController(tst)
	start := c.vis
	for i := 0; i < render.NumVisualizations; i++ {
		c.PendingCycleVis = true
		c.Step()
	}
	if c.vis != start {
		tst.Fatalf("cycling NumVisualizations times should return to the start")
	}
}

func Test04(tst *testing.T) {
	//verbose()
	chk.PrintTitle("sim.Test04: reset zeroes time and frame and re-renders one frame")

	c, g := newTestController(tst)
	c.Resume()
	c.Step()
	c.Step()
	if g.Frame == 0 {
		tst.Fatalf("setup: expected some frames advanced before reset")
	}
	rendered := 0
	c.OnFrame = func(image []float32, frame int) { rendered++ }
	c.PendingReset = true
	c.Running = false
	c.Step()
	if g.T != 0 || g.Frame != 0 {
		tst.Fatalf("reset should zero t and frame, got t=%v frame=%d", g.T, g.Frame)
	}
	if rendered != 1 {
		tst.Fatalf("reset should re-render exactly one frame, got %d", rendered)
	}
}
