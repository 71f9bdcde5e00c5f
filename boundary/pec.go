// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import "github.com/cpmech/maxwell2d/grid"

// PEC is the perfect-electric-conductor boundary: after every sub-step,
// every outer-ring cell has Ez, Hx and Hy forced to zero, not just Ez.
type PEC struct{}

func (p *PEC) Name() string      { return "PEC" }
func (p *PEC) Init(g *grid.Grid) {}

func (p *PEC) ApplyE(g *grid.Grid) { zeroRing(g) }
func (p *PEC) ApplyH(g *grid.Grid) { zeroRing(g) }

func zeroRing(g *grid.Grid) {
	for i := 0; i < g.W; i++ {
		top := g.Idx(i, 0)
		bot := g.Idx(i, g.H-1)
		g.Ez[top], g.Hx[top], g.Hy[top] = 0, 0, 0
		g.Ez[bot], g.Hx[bot], g.Hy[bot] = 0, 0, 0
	}
	for j := 0; j < g.H; j++ {
		left := g.Idx(0, j)
		right := g.Idx(g.W-1, j)
		g.Ez[left], g.Hx[left], g.Hy[left] = 0, 0, 0
		g.Ez[right], g.Hx[right], g.Hy[right] = 0, 0, 0
	}
}
