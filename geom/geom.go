// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom rasterizes analytic geometric materials (triangles,
// circles) into per-cell permittivity/permeability coefficients and
// precomputes their boundary-outline masks.
package geom

// Shape is the analytic-geometry contract a Material rasterizes against:
// an interior test for burning coefficients, and a boundary test for the
// one-pixel outline mask.
type Shape interface {
	Inside(x, y float64) bool
	OnBoundary(x, y float64) bool
}

// Material pairs a Shape with relative coefficients and owns the
// boundary mask computed once at load time.
type Material struct {
	Shape          Shape
	RelEps, RelMu  float64
	Mask           []float32 // W*H, 1 on the outline, 0 elsewhere; read-only after Rasterize
}

// NewMaterial constructs a Material; call Rasterize once before Apply.
func NewMaterial(shape Shape, relEps, relMu float64) *Material {
	return &Material{Shape: shape, RelEps: relEps, RelMu: relMu}
}

// Rasterize computes the boundary-outline mask for a W x H grid. It must
// be called once, before the first simulation step; the mask is
// read-only thereafter (invariant: materials' masks never change after
// load).
func (m *Material) Rasterize(w, h int) {
	m.Mask = make([]float32, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if m.Shape.OnBoundary(float64(i), float64(j)) {
				m.Mask[j*w+i] = 1
			}
		}
	}
}

// Apply burns this material's relative coefficients into epsilon and mu
// for every interior cell. Overlapping materials compose multiplicatively
// in declaration order, so ε and μ only ever increase from their vacuum
// baseline.
func (m *Material) Apply(epsilon, mu []float32, w, h int) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if m.Shape.Inside(float64(i), float64(j)) {
				k := j*w + i
				epsilon[k] *= float32(m.RelEps)
				mu[k] *= float32(m.RelMu)
			}
		}
	}
}

// AggregateMask ORs every material's boundary mask into one W*H overlay
// mask. Re-aggregating is idempotent: calling it twice on the same
// material set yields the same mask.
func AggregateMask(mats []*Material, w, h int) []float32 {
	out := make([]float32, w*h)
	for _, m := range mats {
		for k, v := range m.Mask {
			if v != 0 {
				out[k] = 1
			}
		}
	}
	return out
}
