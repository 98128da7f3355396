// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// squareMesh returns a unit square split into two tri3 cells
func squareMesh() *inp.Mesh {
	m := &inp.Mesh{
		Verts: []*inp.Vert{
			{Id: 0, Tag: -100, C: []float64{0, 0}},
			{Id: 1, Tag: -100, C: []float64{1, 0}},
			{Id: 2, Tag: 0, C: []float64{1, 1}},
			{Id: 3, Tag: 0, C: []float64{0, 1}},
		},
		Cells: []*inp.Cell{
			{Id: 0, Tag: -1, Type: "tri3", Verts: []int{0, 1, 2}},
			{Id: 1, Tag: -1, Type: "tri3", Verts: []int{0, 2, 3}},
		},
	}
	if err := m.CalcDerived(); err != nil {
		chk.Panic("cannot build test mesh:\n%v", err)
	}
	return m
}
