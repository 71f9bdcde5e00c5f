// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads the line-oriented ASCII scene-description file that
// configures a simulation: grid dimensions, the boundary policy, the
// source list and the material list.
package inp

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MaxItems bounds the number of sources and the number of materials a
// scene file may declare.
const MaxItems = 1000

// Scene holds everything read from the [Simulation], [Sources] and
// [Materials] sections of a scene file.
type Scene struct {
	Width, Height int
	ForceCPU      bool
	Boundary      string
	BoundaryArgs  []float64
	Sources       []SourceRecord
	Materials     []MaterialRecord
}

// ReadScene parses path and returns the decoded scene. Configuration
// errors (missing file, missing Width/Height, a cap exceeded) are
// fatal via chk.Panic, matching the propagation policy for this error
// class; unknown sections, unknown keys and unrecognized components
// are warnings printed with io.PfYel and otherwise ignored.
func ReadScene(path string) (sc *Scene) {
	f, err := os.Open(path)
	if err != nil {
		chk.Panic("inp: cannot open scene file %q: %v", path, err)
	}
	defer f.Close()

	sc = &Scene{Boundary: "Natural"}
	section := ""
	haveWidth, haveHeight := false, false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			switch section {
			case "Simulation", "Sources", "Materials":
			default:
				io.PfYel("warning: unknown section %q, ignoring its contents\n", section)
			}
			continue
		}
		fields := strings.Fields(line)
		key := fields[0]
		rest := fields[1:]
		switch section {
		case "Simulation":
			switch key {
			case "Width":
				sc.Width = mustInt(key, rest)
				haveWidth = true
			case "Height":
				sc.Height = mustInt(key, rest)
				haveHeight = true
			case "ComputeOn":
				if len(rest) == 1 && rest[0] == "CPU" {
					sc.ForceCPU = true
				} else {
					io.PfYel("warning: ComputeOn %v not recognized, ignoring\n", rest)
				}
			case "Boundary":
				if len(rest) == 0 {
					io.PfYel("warning: Boundary with no policy name, ignoring\n")
					continue
				}
				sc.Boundary = rest[0]
				sc.BoundaryArgs = parseFloats(rest[1:])
			default:
				io.PfYel("warning: unknown key %q in [Simulation], ignoring\n", key)
			}
		case "Sources":
			readSource(sc, key, rest)
		case "Materials":
			readMaterial(sc, key, rest)
		default:
			io.PfYel("warning: line outside any section, ignoring: %q\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		chk.Panic("inp: error reading scene file %q: %v", path, err)
	}
	if !haveWidth || !haveHeight {
		chk.Panic("inp: scene file %q is missing required Width and/or Height", path)
	}
	return sc
}

func mustInt(key string, fields []string) int {
	if len(fields) != 1 {
		chk.Panic("inp: key %q requires exactly one integer argument, got %v", key, fields)
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		chk.Panic("inp: key %q: %v", key, err)
	}
	return v
}

func parseFloats(fields []string) []float64 {
	out := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			chk.Panic("inp: expected a number, got %q: %v", s, err)
		}
		out[i] = v
	}
	return out
}
