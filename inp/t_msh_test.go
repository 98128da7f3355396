// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

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

const testMsh = `{
  "verts" : [
    {"id":0, "tag":-100, "c":[0, 0]},
    {"id":1, "tag":-100, "c":[1, 0]},
    {"id":2, "tag":0, "c":[1, 1]},
    {"id":3, "tag":0, "c":[0, 1]}
  ],
  "cells" : [
    {"id":0, "tag":-1, "type":"tri3", "verts":[0, 1, 2]},
    {"id":1, "tag":-2, "type":"tri3", "verts":[0, 2, 3]}
  ]
}`

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. reading a mesh file")

	dir := tst.TempDir()
	err := os.WriteFile(filepath.Join(dir, "1.msh"), []byte(testMsh), 0666)
	if err != nil {
		tst.Errorf("cannot write test mesh: %v", err)
		return
	}
	m, err := ReadMsh(dir, "1.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed:\n%v", err)
		return
	}

	// sizes and limits
	chk.IntAssert(m.NumVerts(), 4)
	chk.IntAssert(m.NumCells(), 2)
	chk.IntAssert(m.Ndim, 2)
	chk.Scalar(tst, "Xmin", 1e-15, m.Xmin, 0)
	chk.Scalar(tst, "Xmax", 1e-15, m.Xmax, 1)
	chk.Scalar(tst, "Ymin", 1e-15, m.Ymin, 0)
	chk.Scalar(tst, "Ymax", 1e-15, m.Ymax, 1)

	// maps
	chk.IntAssert(len(m.VertTag2verts[-100]), 2)
	chk.IntAssert(len(m.CellTag2cells[-1]), 1)
	chk.IntAssert(len(m.CellTag2cells[-2]), 1)
	chk.Ints(tst, "vert 0 cells", m.Vert2cells[0], []int{0, 1})
	chk.Ints(tst, "vert 1 cells", m.Vert2cells[1], []int{0})

	// geometry
	chk.Scalar(tst, "area cell 0", 1e-15, m.CellArea(m.Cells[0]), 0.5)
	chk.Scalar(tst, "total area", 1e-15, m.Area(), 1.0)
	chk.Scalar(tst, "edge len", 1e-15, m.EdgeLen(0, 1), 1.0)
	x, y := m.CellCentroid(m.Cells[0])
	chk.Scalar(tst, "centroid x", 1e-15, x, 2.0/3.0)
	chk.Scalar(tst, "centroid y", 1e-15, y, 1.0/3.0)
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. invalid meshes are rejected")

	m := &Mesh{
		Verts: []*Vert{
			{Id: 0, Tag: 0, C: []float64{0, 0}},
			{Id: 1, Tag: 0, C: []float64{1, 0}},
			{Id: 2, Tag: 0, C: []float64{0, 1}},
		},
		Cells: []*Cell{
			{Id: 0, Tag: -1, Type: "hex8", Verts: []int{0, 1, 2}},
		},
	}
	if err := m.CalcDerived(); err == nil {
		tst.Errorf("unknown cell type was accepted")
	}

	m.Cells[0].Type = "tri3"
	m.Cells[0].Verts = []int{0, 1, 7}
	if err := m.CalcDerived(); err == nil {
		tst.Errorf("out-of-range vertex reference was accepted")
	}

	if _, err := ReadMsh("/nonexistent", "0.msh"); err == nil {
		tst.Errorf("missing mesh file was accepted")
	}
}
