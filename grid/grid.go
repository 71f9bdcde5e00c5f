// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid owns the staggered-grid field planes and the scalar
// simulation record for a 2-D TE-mode FDTD run.
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// physical constants (SI units)
const (
	SpeedOfLight  = 299792458.0
	VacuumEpsilon = 8.854e-12
	VacuumMu      = 1.2566e-6

	// CFLSafety is the contractual safety margin applied to the
	// Courant-Friedrichs-Lewy bound; part of the numerical contract,
	// not a tunable.
	CFLSafety = 0.9
)

// Boundary identifies the boundary-condition policy selected for a Grid.
type Boundary int

const (
	Natural Boundary = iota
	PEC
	PML
)

// PMLParams holds the three parameters accepted, in order, by a PML
// boundary declaration. A missing tail is clamped to these defaults.
type PMLParams struct {
	Layers           int     // depth of the absorbing ring, in cells
	PeakConductivity float64 // σ at the outermost PML cell (the grid edge)
	PolynomialOrder  float64 // exponent of the depth ramp
}

// DefaultPML returns the standard PML parameters: 100 layers, a peak
// conductivity of 1e-4, and a linear depth ramp.
func DefaultPML() PMLParams {
	return PMLParams{Layers: 100, PeakConductivity: 1e-4, PolynomialOrder: 1}
}

// Grid is the Simulation record: it owns every field plane, the
// derived RGB image buffer, and the aggregated material-boundary mask.
type Grid struct {
	W, H   int
	Dx, Dy float64
	Dt     float64
	T      float64
	Frame  int

	BoundaryPolicy Boundary
	PML            PMLParams

	// TE-mode field planes (updated).
	Ez, Hx, Hy []float32
	// Reserved for future TM-mode support; allocated, zero, never updated.
	Ex, Ey, Hz []float32

	// Per-cell coefficients.
	Epsilon, Mu, Sigma []float32

	// Image buffer, row-major, 3 floats per cell (RGB, each in [0,1]).
	Image []float32

	// Aggregated OR of every material's own boundary mask.
	BoundaryMask []float32

	ComputeOnCPU bool
}

// New allocates a zero-initialized grid of width w and height h with
// unit cell spacing, and computes the largest dt that satisfies the CFL
// bound for that spacing (scaled by CFLSafety). It panics (fatal, per
// the Resource/Stability error categories) if w or h is non-positive.
func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		chk.Panic("grid: width and height must be positive (got %d x %d)", w, h)
	}
	g := &Grid{
		W: w, H: h, Dx: 1.0, Dy: 1.0,
		PML: DefaultPML(),
	}
	g.Dt = MaxStableDt(g.Dx, g.Dy)
	g.alloc()
	g.InitFields()
	return g
}

// MaxStableDt returns the largest dt allowed by invariant (1):
// dt <= CFLSafety / (c * sqrt(1/dx^2 + 1/dy^2)).
func MaxStableDt(dx, dy float64) float64 {
	return CFLSafety / (SpeedOfLight * math.Sqrt(1/(dx*dx)+1/(dy*dy)))
}

// CheckCFL is the Stability-error gate: it panics if dt violates
// invariant (1). app.New calls this once, before the first step.
func (g *Grid) CheckCFL() {
	max := MaxStableDt(g.Dx, g.Dy)
	if g.Dt > max {
		chk.Panic("grid: dt=%.6e violates CFL bound %.6e for dx=%.3f dy=%.3f", g.Dt, max, g.Dx, g.Dy)
	}
}

func (g *Grid) alloc() {
	n := g.W * g.H
	g.Ez = make([]float32, n)
	g.Hx = make([]float32, n)
	g.Hy = make([]float32, n)
	g.Ex = make([]float32, n)
	g.Ey = make([]float32, n)
	g.Hz = make([]float32, n)
	g.Epsilon = make([]float32, n)
	g.Mu = make([]float32, n)
	g.Sigma = make([]float32, n)
	g.Image = make([]float32, 3*n)
	g.BoundaryMask = make([]float32, n)
}

// InitFields zeros every field plane and resets Epsilon/Mu/Sigma to their
// vacuum baseline, without touching the image buffer or boundary mask
// (materials own those and re-apply them separately).
func (g *Grid) InitFields() {
	for i := range g.Ez {
		g.Ez[i], g.Hx[i], g.Hy[i] = 0, 0, 0
		g.Ex[i], g.Ey[i], g.Hz[i] = 0, 0, 0
		g.Epsilon[i] = VacuumEpsilon
		g.Mu[i] = VacuumMu
		g.Sigma[i] = 0
	}
}

// Idx returns the linear row-major index k = j*W + i for cell (i, j).
func (g *Grid) Idx(i, j int) int { return j*g.W + i }

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.W && j >= 0 && j < g.H
}

// Reset zeros simulation time and frame count and reinitializes all
// field planes; it does not clear the boundary mask or re-run geometry
// rasterization, which is the caller's (Controller's) responsibility.
func (g *Grid) Reset() {
	g.T = 0
	g.Frame = 0
	g.InitFields()
}
