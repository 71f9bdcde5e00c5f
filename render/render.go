// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package render normalizes field planes into a W*H*3 RGB image and
// overlays the aggregated material-boundary mask.
package render

import "github.com/cpmech/maxwell2d/grid"

// VisID selects which visualization function writes the image.
type VisID int

const (
	// TE1 is the diverging Ez colormap.
	TE1 VisID = iota
	// TE2 is the squared-magnitude tri-channel visualization.
	TE2
	// TELin is a linear grayscale rendering of Ez.
	TELin
	// TESqr2 is a two-field squared-magnitude rendering (Ez, Hx only).
	TESqr2
	// TELog is a log-magnitude Ez rendering.
	TELog
)

// NumVisualizations is the number of registered visualization functions;
// the controller's cycle command advances modulo this count.
const NumVisualizations = 5

const (
	ezMin    = -10.0
	ezMax    = 100.0
	maxField = 100.0
	minField = 0.0
)

// TE1Range returns the Ez range the diverging colormap normalizes
// against, for callers (the accelerator backend's uniform upload) that
// need it outside this package.
func TE1Range() (min, max float32) { return ezMin, ezMax }

// TE2Range returns the squared-magnitude normalization range the TE2
// (and TESqr2) colormaps use.
func TE2Range() (max, min float32) { return maxField, minField }

// Compute writes the chosen visualization into g.Image and, if overlay
// is set, blacks out every cell in mask.
func Compute(g *grid.Grid, vis VisID, overlay bool, mask []float32) {
	switch vis {
	case TE1:
		computeTE1(g)
	case TE2:
		computeTE2(g)
	case TELin:
		computeTELin(g)
	case TESqr2:
		computeTESqr2(g)
	case TELog:
		computeTELog(g)
	default:
		computeTE1(g)
	}
	if overlay {
		applyOverlay(g, mask)
	}
}

func applyOverlay(g *grid.Grid, mask []float32) {
	for k, m := range mask {
		if m != 0 {
			g.Image[3*k], g.Image[3*k+1], g.Image[3*k+2] = 0, 0, 0
		}
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func computeTE1(g *grid.Grid) {
	for k, ez := range g.Ez {
		n := (float64(ez) - ezMin) / (ezMax - ezMin)
		var b, r, gr float64
		if 2*n < 1 {
			b = 2 * n
		} else {
			b = 1
		}
		if n < 0.5 {
			r = 2 * n
		} else {
			r = 2 * (1 - n)
		}
		gr = 2 * (n - 0.5)
		if gr < 0 {
			gr = 0
		}
		g.Image[3*k] = clamp01(float32(r))
		g.Image[3*k+1] = clamp01(float32(gr))
		g.Image[3*k+2] = clamp01(float32(b))
	}
}

func computeTE2(g *grid.Grid) {
	den := maxField - minField
	for k := range g.Ez {
		ez, hx, hy := g.Ez[k], g.Hx[k], g.Hy[k]
		g.Image[3*k] = clamp01(float32(float64(ez) * float64(ez) / den))
		g.Image[3*k+1] = clamp01(float32(float64(hx) * float64(hx) / den))
		g.Image[3*k+2] = clamp01(float32(float64(hy) * float64(hy) / den))
	}
}

func computeTELin(g *grid.Grid) {
	for k, ez := range g.Ez {
		n := clamp01(float32((float64(ez) - ezMin) / (ezMax - ezMin)))
		g.Image[3*k], g.Image[3*k+1], g.Image[3*k+2] = n, n, n
	}
}

func computeTESqr2(g *grid.Grid) {
	den := maxField - minField
	for k := range g.Ez {
		ez, hx := g.Ez[k], g.Hx[k]
		g.Image[3*k] = clamp01(float32(float64(ez) * float64(ez) / den))
		g.Image[3*k+1] = clamp01(float32(float64(hx) * float64(hx) / den))
		g.Image[3*k+2] = 0
	}
}
