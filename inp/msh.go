// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements mesh input data read from (.msh) JSON files
package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type: "tri3" or "qua4"
	Verts []int  // vertices
}

// Mesh holds a 2D mesh for the adaptation driver
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
	Vert2cells    [][]int         // vertex id => ids of cells sharing vertex
}

// ReadMsh reads a mesh from a JSON file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file <%s>:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file <%s>:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return
}

// CalcDerived computes derived data such as limits and maps.
// Must be called whenever Verts or Cells change.
func (o *Mesh) CalcDerived() (err error) {

	// check
	if len(o.Verts) < 3 {
		return chk.Err("mesh has too few vertices (%d)", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh has no cells")
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return chk.Err("vertex ids must coincide with positions in list. %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return chk.Err("vertex %d must have 2 coordinates. %d is invalid", v.Id, len(v.C))
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.Vert2cells = make([][]int, len(o.Verts))
	for i, c := range o.Cells {

		// check id and type
		if c.Id != i {
			return chk.Err("cell ids must coincide with positions in list. %d != %d", c.Id, i)
		}
		nv := cellNverts(c.Type)
		if nv < 0 {
			return chk.Err("cell type %q is not available", c.Type)
		}
		if len(c.Verts) != nv {
			return chk.Err("cell %d (%s) must have %d vertices. %d is invalid", c.Id, c.Type, nv, len(c.Verts))
		}

		// tag => cells
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)

		// vertex => cells
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d references inexistent vertex %d", c.Id, v)
			}
			o.Vert2cells[v] = append(o.Vert2cells[v], c.Id)
		}
	}
	return
}

// NumVerts returns the number of vertices
func (o *Mesh) NumVerts() int { return len(o.Verts) }

// NumCells returns the number of cells
func (o *Mesh) NumCells() int { return len(o.Cells) }

// CellArea returns the area of cell c (shoelace formula)
func (o *Mesh) CellArea(c *Cell) (area float64) {
	n := len(c.Verts)
	for i := 0; i < n; i++ {
		a := o.Verts[c.Verts[i]].C
		b := o.Verts[c.Verts[(i+1)%n]].C
		area += a[0]*b[1] - b[0]*a[1]
	}
	return math.Abs(area) / 2.0
}

// CellCentroid returns the centroid of cell c
func (o *Mesh) CellCentroid(c *Cell) (x, y float64) {
	for _, v := range c.Verts {
		x += o.Verts[v].C[0]
		y += o.Verts[v].C[1]
	}
	n := float64(len(c.Verts))
	return x / n, y / n
}

// CellEdges returns the vertex pairs forming the edges of cell c
func (o *Mesh) CellEdges(c *Cell) (edges [][2]int) {
	n := len(c.Verts)
	edges = make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{c.Verts[i], c.Verts[(i+1)%n]}
	}
	return
}

// EdgeLen returns the length of the edge joining vertices a and b
func (o *Mesh) EdgeLen(a, b int) float64 {
	xa, xb := o.Verts[a].C, o.Verts[b].C
	return math.Hypot(xb[0]-xa[0], xb[1]-xa[1])
}

// Area returns the total area of the mesh
func (o *Mesh) Area() (area float64) {
	for _, c := range o.Cells {
		area += o.CellArea(c)
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// cellNverts returns the number of vertices of a cell type; -1 for unknown types
func cellNverts(ctype string) int {
	switch ctype {
	case "tri3":
		return 3
	case "qua4":
		return 4
	}
	return -1
}
