// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeTemp(tst *testing.T, contents string) string {
	f, err := os.CreateTemp("", "maxwell2d_scene_*.txt")
	if err != nil {
		tst.Fatalf("CreateTemp failed: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		tst.Fatalf("WriteString failed: %v", err)
	}
	return f.Name()
}

func Test01(tst *testing.T) {
	//verbose()
	chk.PrintTitle("inp.Test01: full scene with all three sections")

	path := writeTemp(tst, `
[Simulation]
Width 64
Height 48
Boundary PML 50 0.0002 2

[Sources]
SineLinFreq Ez 10 10 2.4e9 0.0

[Materials]
Triangle 4.0 1.0 0 0 10 0 0 10
Circle 2.0 1.0 30 30 5
`)
	defer os.Remove(path)

	sc := ReadScene(path)
	if sc.Width != 64 || sc.Height != 48 {
		tst.Fatalf("dimensions not as expected")
	}
	if sc.Boundary != "PML" || len(sc.BoundaryArgs) != 3 {
		tst.Fatalf("boundary policy/args not as expected: %v %v", sc.Boundary, sc.BoundaryArgs)
	}
	if len(sc.Sources) != 1 || sc.Sources[0].Component != "Ez" {
		tst.Fatalf("source not decoded as expected: %+v", sc.Sources)
	}
	if len(sc.Materials) != 2 {
		tst.Fatalf("expected 2 materials, got %d", len(sc.Materials))
	}
}

func Test02(tst *testing.T) {
	//verbose()
	chk.PrintTitle("inp.Test02: unknown component defaults to Ez")

	path := writeTemp(tst, "[Simulation]\nWidth 10\nHeight 10\n[Sources]\nSineLinFreq Zz 1 1 1.0 0.0\n")
	defer os.Remove(path)

	sc := ReadScene(path)
	if len(sc.Sources) != 1 || sc.Sources[0].Component != "Ez" {
		tst.Fatalf("unknown component should default to Ez, got %+v", sc.Sources)
	}
}

func Test03(tst *testing.T) {
	//verbose()
	chk.PrintTitle("inp.Test03: missing Width/Height is fatal")

	path := writeTemp(tst, "[Simulation]\nWidth 10\n")
	defer os.Remove(path)

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected ReadScene to panic when Height is missing")
		}
	}()
	ReadScene(path)
}

func Test04(tst *testing.T) {
	//verbose()
	chk.PrintTitle("inp.Test04: unknown section and key are ignored with a warning")

	path := writeTemp(tst, "[Simulation]\nWidth 10\nHeight 10\nBogusKey 1\n[Bogus]\nWhatever 1\n")
	defer os.Remove(path)

	sc := ReadScene(path) // must not panic
	if sc.Width != 10 || sc.Height != 10 {
		tst.Fatalf("dimensions not as expected")
	}
}
