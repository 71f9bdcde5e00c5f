// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app wires a scene file to a running simulation: it loads the
// scene, builds the grid, rasterizes materials, selects the boundary
// policy and compute backend, and builds the controller whose Step the
// caller drives in a loop. This is
// the assembly a CLI entry point (or any other embedder) calls into.
package app

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/maxwell2d/boundary"
	"github.com/cpmech/maxwell2d/compute"
	"github.com/cpmech/maxwell2d/geom"
	"github.com/cpmech/maxwell2d/grid"
	"github.com/cpmech/maxwell2d/inp"
	"github.com/cpmech/maxwell2d/sim"
	"github.com/cpmech/maxwell2d/source"
)

// App holds every piece assembled from a scene file, ready to drive.
type App struct {
	Grid       *grid.Grid
	Backend    compute.Backend
	Boundary   boundary.Policy
	Materials  []*geom.Material
	Sources    []source.Source
	Controller *sim.Controller
}

// New loads the scene at path and assembles a runnable App. Every
// error here is a configuration, resource or stability error and is
// therefore fatal: New panics via chk.Panic (through the packages it
// calls) rather than returning an error, matching the propagation
// policy for load-time failures.
func New(path string) *App {
	sc := inp.ReadScene(path)

	g := grid.New(sc.Width, sc.Height)
	g.ComputeOnCPU = sc.ForceCPU

	materials := make([]*geom.Material, 0, len(sc.Materials))
	for _, mr := range sc.Materials {
		var shape geom.Shape
		switch mr.Shape {
		case "Triangle":
			shape = geom.NewTriangle(mr.X1, mr.Y1, mr.X2, mr.Y2, mr.X3, mr.Y3)
		case "Circle":
			shape = geom.NewCircle(mr.Cx, mr.Cy, mr.Radius)
		default:
			chk.Panic("app: unknown material shape %q", mr.Shape)
		}
		m := geom.NewMaterial(shape, mr.RelEps, mr.RelMu)
		m.Rasterize(g.W, g.H)
		m.Apply(g.Epsilon, g.Mu, g.W, g.H)
		materials = append(materials, m)
	}
	g.BoundaryMask = geom.AggregateMask(materials, g.W, g.H)

	bpolicy, err := boundary.New(sc.Boundary, sc.BoundaryArgs)
	if err != nil {
		chk.Panic("app: %v", err)
	}
	bpolicy.Init(g)
	g.CheckCFL()

	sources := make([]source.Source, 0, len(sc.Sources))
	for _, sr := range sc.Sources {
		comp := source.Ez
		switch sr.Component {
		case "Hx":
			comp = source.Hx
		case "Hy":
			comp = source.Hy
		}
		sources = append(sources, &source.SineLinFreq{
			X: sr.X, Y: sr.Y, Frequency: sr.Frequency, Phase: sr.Phase, Comp: comp,
		})
	}

	backend := compute.Select(sc.ForceCPU, g.W, g.H)

	a := &App{
		Grid:      g,
		Backend:   backend,
		Boundary:  bpolicy,
		Materials: materials,
		Sources:   sources,
	}
	a.Controller = sim.New(g, backend, bpolicy, materials, sources)
	return a
}

// Close releases backend-owned resources.
func (a *App) Close() {
	a.Backend.Close()
}
