// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Triangle is the analytic geometry for a Triangle material declaration.
type Triangle struct {
	X1, Y1, X2, Y2, X3, Y3 float64

	// edge line coefficients (A, B, C) with A*x + B*y + C = 0, and each
	// edge's own axis-aligned bounding box, precomputed on first use.
	edgesReady bool
	edgeA, edgeB, edgeC [3]float64
	edgeXmin, edgeXmax, edgeYmin, edgeYmax [3]float64
}

// NewTriangle builds a Triangle from its three vertices.
func NewTriangle(x1, y1, x2, y2, x3, y3 float64) *Triangle {
	t := &Triangle{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3}
	t.prepEdges()
	return t
}

func (t *Triangle) prepEdges() {
	xs := [3][2]float64{{t.X1, t.Y1}, {t.X2, t.Y2}, {t.X3, t.Y3}}
	for e := 0; e < 3; e++ {
		a, b := xs[e], xs[(e+1)%3]
		A := b[1] - a[1]
		B := a[0] - b[0]
		C := -(A*a[0] + B*a[1])
		t.edgeA[e], t.edgeB[e], t.edgeC[e] = A, B, C
		t.edgeXmin[e], t.edgeXmax[e] = math.Min(a[0], b[0]), math.Max(a[0], b[0])
		t.edgeYmin[e], t.edgeYmax[e] = math.Min(a[1], b[1]), math.Max(a[1], b[1])
	}
	t.edgesReady = true
}

// edgeSign computes the signed edge product for vertices (xa,ya)-(xb,yb)
// evaluated at (x, y).
func edgeSign(x, y, xa, ya, xb, yb float64) float64 {
	return (x-xb)*(ya-yb) - (xa-xb)*(y-yb)
}

// Inside implements the triangle interior test: the three signed edge
// products must not be mixed in sign.
func (t *Triangle) Inside(x, y float64) bool {
	d1 := edgeSign(x, y, t.X1, t.Y1, t.X2, t.Y2)
	d2 := edgeSign(x, y, t.X2, t.Y2, t.X3, t.Y3)
	d3 := edgeSign(x, y, t.X3, t.Y3, t.X1, t.Y1)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// OnBoundary implements the triangle outline test: within one pixel of
// some edge's line, and within that edge's own bounding rectangle.
func (t *Triangle) OnBoundary(x, y float64) bool {
	if !t.edgesReady {
		t.prepEdges()
	}
	for e := 0; e < 3; e++ {
		A, B, C := t.edgeA[e], t.edgeB[e], t.edgeC[e]
		if x < t.edgeXmin[e]-1 || x > t.edgeXmax[e]+1 || y < t.edgeYmin[e]-1 || y > t.edgeYmax[e]+1 {
			continue
		}
		dist := math.Abs(A*x+B*y+C) / math.Hypot(A, B)
		if dist < 1 && x >= t.edgeXmin[e] && x <= t.edgeXmax[e] && y >= t.edgeYmin[e] && y <= t.edgeYmax[e] {
			return true
		}
	}
	return false
}

// Circle is the analytic geometry for a Circle material declaration.
type Circle struct {
	Cx, Cy, R float64
}

// NewCircle builds a Circle from its center and radius.
func NewCircle(cx, cy, r float64) *Circle {
	return &Circle{Cx: cx, Cy: cy, R: r}
}

// Inside is the strict interior test: points on the circle are boundary,
// not interior.
func (c *Circle) Inside(x, y float64) bool {
	dx, dy := x-c.Cx, y-c.Cy
	return dx*dx+dy*dy < c.R*c.R
}

// OnBoundary tests for the one-pixel-wide outline ring.
func (c *Circle) OnBoundary(x, y float64) bool {
	d := math.Hypot(x-c.Cx, y-c.Cy)
	return math.Abs(d-c.R) < 1
}
