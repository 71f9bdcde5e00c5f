// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SourceRecord is the as-read form of a [Sources] line, before it is
// turned into a source.Source by the caller (inp does not depend on
// the source package so it stays a leaf of the import graph).
type SourceRecord struct {
	Component        string
	X, Y             int
	Frequency, Phase float64
}

func readSource(sc *Scene, key string, rest []string) {
	switch key {
	case "SineLinFreq":
		if len(rest) != 5 {
			chk.Panic("inp: SineLinFreq requires 5 arguments (component x y frequency phase), got %v", rest)
		}
		comp := rest[0]
		switch comp {
		case "Ez", "Hx", "Hy":
		default:
			io.PfYel("warning: unknown source component %q, defaulting to Ez\n", comp)
			comp = "Ez"
		}
		x := mustAtoi(rest[1])
		y := mustAtoi(rest[2])
		freq := mustAtof(rest[3])
		phase := mustAtof(rest[4])
		if len(sc.Sources) >= MaxItems {
			chk.Panic("inp: source count exceeds the static cap of %d", MaxItems)
		}
		sc.Sources = append(sc.Sources, SourceRecord{
			Component: comp, X: x, Y: y, Frequency: freq, Phase: phase,
		})
	default:
		io.PfYel("warning: unknown key %q in [Sources], ignoring\n", key)
	}
}

func mustAtoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		chk.Panic("inp: expected an integer, got %q: %v", s, err)
	}
	return v
}

func mustAtof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		chk.Panic("inp: expected a number, got %q: %v", s, err)
	}
	return v
}
