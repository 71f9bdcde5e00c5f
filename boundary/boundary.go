// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package boundary implements the outer-boundary treatments: Natural
// (no-op), PEC (perfect electric conductor), and PML (uniaxial
// absorbing layer).
package boundary

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/maxwell2d/grid"
)

// Policy is the contract every boundary treatment implements, mirroring
// the Init/Update split of gofem's msolid.Model interface.
type Policy interface {
	Name() string
	// Init is called once at load, after materials are rasterized and
	// before the first step. PML uses it to burn its conductivity ramp
	// into Sigma; Natural and PEC are no-ops.
	Init(g *grid.Grid)
	// ApplyE is invoked immediately after the E sub-step.
	ApplyE(g *grid.Grid)
	// ApplyH is invoked immediately after the H sub-step.
	ApplyH(g *grid.Grid)
}

// AllocatorType builds a Policy from the parameter tail of a scene-file
// Boundary line (e.g. the three optional PML parameters).
type AllocatorType func(params []float64) (Policy, error)

var allocators = map[string]AllocatorType{
	"Natural": func(params []float64) (Policy, error) { return &Natural{}, nil },
	"PEC":     func(params []float64) (Policy, error) { return &PEC{}, nil },
	"PML":     newPML,
}

// New builds the named boundary policy, consuming the given parameter
// tail (order-significant; a short tail is clamped to defaults).
func New(name string, params []float64) (Policy, error) {
	fcn, ok := allocators[name]
	if !ok {
		return nil, chk.Err("boundary: unknown policy %q", name)
	}
	return fcn(params)
}
