// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/maxwell2d/app"
)

func main() {

	// catch initialization errors: fatal, diagnostic to stderr, non-zero exit
	failed := false
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			failed = true
		}
		if failed {
			os.Exit(1)
		}
	}()

	// message
	io.PfWhite("\nmaxwell2d -- 2D FDTD electromagnetic simulator\n\n")

	// scene filenamepath and optional frame count
	steps := flag.Int("steps", 600, "number of frames to advance before exiting")
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a scene filename. Ex.: waveguide.scene")
	}

	// profiling?
	defer utl.DoProf(false)()

	// assemble the simulation from the scene file; every load-time error
	// (missing file, malformed line, CFL violation, capacity exceeded)
	// panics here and is caught above
	a := app.New(fnamepath)
	defer a.Close()

	// headless run: advance the requested number of frames
	a.Controller.Resume()
	for i := 0; i < *steps; i++ {
		a.Controller.Step()
	}
	io.Pf("done: %d frames at t=%.6e\n", a.Grid.Frame, a.Grid.T)
}
