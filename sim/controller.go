// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim owns the per-frame control loop: it applies pause,
// reset, cycle-visualization and report-FPS commands, and drives the
// source evaluator, the compute backend and the frame renderer in
// order on every running frame.
package sim

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/maxwell2d/boundary"
	"github.com/cpmech/maxwell2d/compute"
	"github.com/cpmech/maxwell2d/geom"
	"github.com/cpmech/maxwell2d/grid"
	"github.com/cpmech/maxwell2d/render"
	"github.com/cpmech/maxwell2d/source"
)

// FrameHandoff receives the rendered image every running frame; it
// stands in for the external presenter, which is outside this module.
type FrameHandoff func(image []float32, frame int)

// Controller is the Simulation Controller. Command flags are exported
// so the (out-of-module) event layer can set them directly; Controller
// reads them at the top of each Step call and clears each Pending flag
// once it has applied it.
type Controller struct {
	Running          bool
	PendingReset     bool
	PendingCycleVis  bool
	PendingReportFPS bool
	DrawBoundaries   bool
	justResumed      bool

	grid      *grid.Grid
	backend   compute.Backend
	boundary  boundary.Policy
	materials []*geom.Material
	sources   []source.Source

	vis render.VisID

	start          time.Time
	framesSinceRes int

	OnFrame FrameHandoff
}

// New builds a Controller over an already-initialized grid, backend,
// boundary policy, material list (for reset) and source list. The
// caller is responsible for having already rasterized materials and
// run boundary.Init once.
func New(g *grid.Grid, backend compute.Backend, bpolicy boundary.Policy, materials []*geom.Material, sources []source.Source) *Controller {
	return &Controller{
		grid:      g,
		backend:   backend,
		boundary:  bpolicy,
		materials: materials,
		sources:   sources,
		start:     time.Now(),
	}
}

// Resume transitions the controller to running, arranging for the FPS
// counters to reset on the next Step.
func (c *Controller) Resume() {
	c.Running = true
	c.justResumed = true
}

// Pause stops the per-frame advance without touching any field state.
func (c *Controller) Pause() {
	c.Running = false
}

// Step executes exactly one loop iteration: command application
// (report-FPS, cycle-visualization, reset, FPS-counter reset on
// resume) followed, if running, by inject → step → render → hand-off.
func (c *Controller) Step() {
	if c.PendingReportFPS {
		elapsed := time.Since(c.start).Seconds()
		fps := 0
		if elapsed > 0 {
			fps = int(float64(c.framesSinceRes)/elapsed + 0.5)
		}
		io.Pf("fps: %d\n", fps)
		c.PendingReportFPS = false
	}

	if c.PendingCycleVis {
		c.vis = (c.vis + 1) % render.NumVisualizations
		c.PendingCycleVis = false
	}

	if c.PendingReset {
		c.grid.Reset()
		for _, m := range c.materials {
			m.Apply(c.grid.Epsilon, c.grid.Mu, c.grid.W, c.grid.H)
		}
		c.boundary.Init(c.grid)
		c.renderFrame()
		c.PendingReset = false
	}

	if c.justResumed {
		c.start = time.Now()
		c.framesSinceRes = 0
		c.justResumed = false
	}

	if !c.Running {
		return
	}

	source.Inject(c.sources, c.grid, c.grid.T)
	c.backend.StepE(c.grid)
	c.boundary.ApplyE(c.grid)
	c.backend.StepH(c.grid)
	c.boundary.ApplyH(c.grid)

	c.grid.T += c.grid.Dt
	c.grid.Frame++
	c.framesSinceRes++

	c.renderFrame()
}

func (c *Controller) renderFrame() {
	var mask []float32
	if c.DrawBoundaries {
		mask = c.grid.BoundaryMask
	}
	c.backend.Render(c.grid, c.vis, c.DrawBoundaries, mask)
	if c.OnFrame != nil {
		c.OnFrame(c.grid.Image, c.grid.Frame)
	}
}
