// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compute dispatches the FDTD stepper and frame renderer to a
// host-CPU or data-parallel-accelerator backend with transparent
// fallback.
package compute

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/maxwell2d/grid"
	"github.com/cpmech/maxwell2d/render"
)

// Backend is the pluggable "stepper + renderer" capability set. CPU and
// accelerator implementations must be numerically equivalent up to the
// tolerance in the CPU/accelerator parity property test.
type Backend interface {
	Name() string
	StepE(g *grid.Grid)
	StepH(g *grid.Grid)
	Render(g *grid.Grid, vis render.VisID, overlay bool, mask []float32)
	// Close releases backend-owned resources (device buffers, contexts).
	Close()
}

// Select returns the CPU backend if forceCPU is set; otherwise it tries
// to bring up the accelerator backend and falls back to CPU, logging a
// warning, on any initialization failure. This never fails: the
// simulation only aborts if the CPU path itself fails, which it cannot.
func Select(forceCPU bool, w, h int) Backend {
	if forceCPU {
		return NewCPU()
	}
	accel, err := NewAccel(w, h)
	if err != nil {
		io.PfYel("warning: accelerator backend unavailable (%v), falling back to CPU\n", err)
		return NewCPU()
	}
	return accel
}
