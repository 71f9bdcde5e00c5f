// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"

	"github.com/cpmech/maxwell2d/grid"
)

func computeTELog(g *grid.Grid) {
	denom := math.Log1p(ezMax)
	for k, ez := range g.Ez {
		n := clamp01(float32(math.Log1p(math.Abs(float64(ez))) / denom))
		g.Image[3*k], g.Image[3*k+1], g.Image[3*k+2] = n, n, n
	}
}
