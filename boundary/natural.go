// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import "github.com/cpmech/maxwell2d/grid"

// Natural is the no-op boundary: outgoing waves reflect off the grid
// edge, which is accepted and documented behavior.
type Natural struct{}

func (n *Natural) Name() string        { return "Natural" }
func (n *Natural) Init(g *grid.Grid)   {}
func (n *Natural) ApplyE(g *grid.Grid) {}
func (n *Natural) ApplyH(g *grid.Grid) {}
