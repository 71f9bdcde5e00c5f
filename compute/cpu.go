// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	"github.com/cpmech/maxwell2d/grid"
	"github.com/cpmech/maxwell2d/render"
)

// CPU is the reference scalar implementation: direct nested loops over
// the grid in row-major order, one cell per iteration.
type CPU struct{}

// NewCPU returns the host-CPU backend.
func NewCPU() *CPU { return &CPU{} }

func (c *CPU) Name() string { return "cpu" }
func (c *CPU) Close()       {}

// StepE advances Ez on the interior, including the PML conductivity
// loss term (a no-op where Sigma is zero).
func (c *CPU) StepE(g *grid.Grid) {
	w, h, dt, dx, dy := g.W, g.H, g.Dt, g.Dx, g.Dy
	for j := 1; j < h-1; j++ {
		for i := 1; i < w-1; i++ {
			k := g.Idx(i, j)
			eps := float64(g.Epsilon[k])
			curl := (float64(g.Hy[k])-float64(g.Hy[g.Idx(i-1, j)]))/dx -
				(float64(g.Hx[k])-float64(g.Hx[g.Idx(i, j-1)]))/dy
			ez := float64(g.Ez[k])
			ez += (dt / eps) * curl
			ez -= (dt * float64(g.Sigma[k]) / eps) * float64(g.Ez[k])
			g.Ez[k] = float32(ez)
		}
	}
}

// StepH advances Hx and Hy using the updated Ez.
func (c *CPU) StepH(g *grid.Grid) {
	w, h, dt, dx, dy := g.W, g.H, g.Dt, g.Dx, g.Dy
	for j := 0; j < h-1; j++ {
		for i := 0; i < w-1; i++ {
			k := g.Idx(i, j)
			mu := float64(g.Mu[k])
			ezUp := float64(g.Ez[g.Idx(i, j+1)])
			ezRight := float64(g.Ez[g.Idx(i+1, j)])
			ez := float64(g.Ez[k])
			g.Hx[k] = float32(float64(g.Hx[k]) - (dt/(mu*dy))*(ezUp-ez))
			g.Hy[k] = float32(float64(g.Hy[k]) + (dt/(mu*dx))*(ezRight-ez))
		}
	}
}

// Render delegates to the shared host visualization math.
func (c *CPU) Render(g *grid.Grid, vis render.VisID, overlay bool, mask []float32) {
	render.Compute(g, vis, overlay, mask)
}
