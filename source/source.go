// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source evaluates configured analytic source functions and
// additively injects them into named field components.
package source

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/maxwell2d/grid"
)

// Component names the field plane a Source injects into.
type Component int

const (
	Ez Component = iota
	Hx
	Hy
)

// Source is the contract every source variant implements: it is a
// fun.Func of time (stateless; additive) targeting one grid cell and one
// field component.
type Source interface {
	fun.Func
	Component() Component
	Cell() (x, y int)
}

// SineLinFreq is the single supported source variant: a linear-frequency
// sinusoid sin(2*pi*f*t + phase).
type SineLinFreq struct {
	X, Y      int
	Frequency float64
	Phase     float64
	Comp      Component
}

// F evaluates the source at time t. x is unused; the source has no
// spatial profile beyond the single cell it targets.
func (s *SineLinFreq) F(t float64, x []float64) float64 {
	return math.Sin(2*math.Pi*s.Frequency*t + s.Phase)
}

// G is dF/dt, included to satisfy fun.Func; the stepper only ever calls F.
func (s *SineLinFreq) G(t float64, x []float64) float64 {
	w := 2 * math.Pi * s.Frequency
	return w * math.Cos(w*t+s.Phase)
}

// H is d2F/dt2, included to satisfy fun.Func; the stepper only ever calls F.
func (s *SineLinFreq) H(t float64, x []float64) float64 {
	w := 2 * math.Pi * s.Frequency
	return -w * w * math.Sin(w*t+s.Phase)
}

// Grad is a no-op: the source has no spatial gradient, only a time profile.
func (s *SineLinFreq) Grad(v []float64, t float64, x []float64) {
	for i := range v {
		v[i] = 0
	}
}

func (s *SineLinFreq) Component() Component { return s.Comp }
func (s *SineLinFreq) Cell() (x, y int)     { return s.X, s.Y }

// Inject evaluates every source at time t and adds its value into the
// targeted field component at its grid cell. Sources outside the grid
// are silently skipped (load-time validation is the caller's job).
func Inject(sources []Source, g *grid.Grid, t float64) {
	for _, s := range sources {
		x, y := s.Cell()
		if !g.InBounds(x, y) {
			continue
		}
		k := g.Idx(x, y)
		v := float32(s.F(t, nil))
		switch s.Component() {
		case Ez:
			g.Ez[k] += v
		case Hx:
			g.Hx[k] += v
		case Hy:
			g.Hy[k] += v
		}
	}
}
