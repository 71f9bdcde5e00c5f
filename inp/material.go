// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MaterialRecord is the as-read form of a [Materials] line. Shape is
// either "Triangle" or "Circle"; the unused coordinate fields for the
// other shape are left at zero.
type MaterialRecord struct {
	Shape          string
	RelEps, RelMu  float64
	X1, Y1         float64
	X2, Y2         float64
	X3, Y3         float64
	Cx, Cy, Radius float64
}

func readMaterial(sc *Scene, key string, rest []string) {
	switch key {
	case "Triangle":
		if len(rest) != 8 {
			chk.Panic("inp: Triangle requires 8 arguments (rel_eps rel_mu x1 y1 x2 y2 x3 y3), got %v", rest)
		}
		v := parseFloats(rest)
		addMaterial(sc, MaterialRecord{
			Shape: "Triangle", RelEps: v[0], RelMu: v[1],
			X1: v[2], Y1: v[3], X2: v[4], Y2: v[5], X3: v[6], Y3: v[7],
		})
	case "Circle":
		if len(rest) != 5 {
			chk.Panic("inp: Circle requires 5 arguments (rel_eps rel_mu cx cy R), got %v", rest)
		}
		v := parseFloats(rest)
		addMaterial(sc, MaterialRecord{
			Shape: "Circle", RelEps: v[0], RelMu: v[1],
			Cx: v[2], Cy: v[3], Radius: v[4],
		})
	default:
		io.PfYel("warning: unknown key %q in [Materials], ignoring\n", key)
	}
}

func addMaterial(sc *Scene, m MaterialRecord) {
	if len(sc.Materials) >= MaxItems {
		chk.Panic("inp: material count exceeds the static cap of %d", MaxItems)
	}
	sc.Materials = append(sc.Materials, m)
}
