// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"math"

	"github.com/cpmech/maxwell2d/grid"
)

// PML is the uniaxial absorbing-layer boundary: a graded-conductivity
// ring of configurable depth, consumed by the stepper's E-update loss
// term. It performs no per-step action of its own.
type PML struct {
	Layers           int
	PeakConductivity float64
	PolynomialOrder  float64
}

// newPML builds a PML policy from an ordered parameter tail
// (layers, peak_conductivity, polynomial_order), clamping a short or
// missing tail to grid.DefaultPML.
func newPML(params []float64) (Policy, error) {
	d := grid.DefaultPML()
	p := &PML{
		Layers:           d.Layers,
		PeakConductivity: d.PeakConductivity,
		PolynomialOrder:  d.PolynomialOrder,
	}
	if len(params) > 0 {
		p.Layers = int(params[0])
	}
	if len(params) > 1 {
		p.PeakConductivity = params[1]
	}
	if len(params) > 2 {
		p.PolynomialOrder = params[2]
	}
	return p, nil
}

func (p *PML) Name() string { return "PML" }

// Init burns the graded conductivity ramp into Sigma for every cell
// within Layers of any edge.
func (p *PML) Init(g *grid.Grid) {
	g.PML = grid.PMLParams{Layers: p.Layers, PeakConductivity: p.PeakConductivity, PolynomialOrder: p.PolynomialOrder}
	g.BoundaryPolicy = grid.PML
	if p.Layers <= 1 {
		return
	}
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			distToEdge := minInt(i, minInt(g.W-1-i, minInt(j, g.H-1-j)))
			if distToEdge >= p.Layers {
				continue
			}
			depth := p.Layers - 1 - distToEdge
			frac := float64(depth) / float64(p.Layers-1)
			sigma := p.PeakConductivity * math.Pow(frac, p.PolynomialOrder)
			g.Sigma[g.Idx(i, j)] = float32(sigma)
		}
	}
}

func (p *PML) ApplyE(g *grid.Grid) {}
func (p *PML) ApplyH(g *grid.Grid) {}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
