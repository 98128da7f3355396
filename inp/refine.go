// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Refine performs one pass of uniform (red) refinement: each tri3 cell is split into
// 4 tri3 cells and each qua4 cell into 4 qua4 cells, with new vertices placed at edge
// midpoints (and cell centroids for qua4). The input mesh is not modified.
func Refine(m *Mesh) (r *Mesh, err error) {

	// new mesh with copied vertices
	r = new(Mesh)
	r.FnamePath = m.FnamePath
	r.Verts = make([]*Vert, len(m.Verts), 2*len(m.Verts))
	for i, v := range m.Verts {
		c := make([]float64, 2)
		copy(c, v.C)
		r.Verts[i] = &Vert{Id: v.Id, Tag: v.Tag, C: c}
	}

	// edge midpoints are shared between neighbouring cells
	mids := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if id, ok := mids[key]; ok {
			return id
		}
		xa, xb := m.Verts[a].C, m.Verts[b].C
		tag := 0
		if m.Verts[a].Tag < 0 && m.Verts[a].Tag == m.Verts[b].Tag {
			tag = m.Verts[a].Tag // midpoint stays on the tagged boundary
		}
		id := len(r.Verts)
		r.Verts = append(r.Verts, &Vert{Id: id, Tag: tag, C: []float64{(xa[0] + xb[0]) / 2.0, (xa[1] + xb[1]) / 2.0}})
		mids[key] = id
		return id
	}

	// split cells
	r.Cells = make([]*Cell, 0, 4*len(m.Cells))
	addcell := func(tag int, ctype string, verts ...int) {
		r.Cells = append(r.Cells, &Cell{Id: len(r.Cells), Tag: tag, Type: ctype, Verts: verts})
	}
	for _, c := range m.Cells {
		switch c.Type {
		case "tri3":
			a, b, cc := c.Verts[0], c.Verts[1], c.Verts[2]
			mab := midpoint(a, b)
			mbc := midpoint(b, cc)
			mca := midpoint(cc, a)
			addcell(c.Tag, "tri3", a, mab, mca)
			addcell(c.Tag, "tri3", mab, b, mbc)
			addcell(c.Tag, "tri3", mca, mbc, cc)
			addcell(c.Tag, "tri3", mab, mbc, mca)
		case "qua4":
			a, b, cc, d := c.Verts[0], c.Verts[1], c.Verts[2], c.Verts[3]
			mab := midpoint(a, b)
			mbc := midpoint(b, cc)
			mcd := midpoint(cc, d)
			mda := midpoint(d, a)
			x, y := m.CellCentroid(c)
			e := len(r.Verts)
			r.Verts = append(r.Verts, &Vert{Id: e, Tag: 0, C: []float64{x, y}})
			addcell(c.Tag, "qua4", a, mab, e, mda)
			addcell(c.Tag, "qua4", mab, b, mbc, e)
			addcell(c.Tag, "qua4", e, mbc, cc, mcd)
			addcell(c.Tag, "qua4", mda, e, mcd, d)
		default:
			return nil, chk.Err("cannot refine cell type %q", c.Type)
		}
	}

	// derived data
	err = r.CalcDerived()
	if err != nil {
		return nil, err
	}
	return
}

// NewMeshHierarchy builds a hierarchy of numRefinements+1 uniformly refined meshes,
// with the given mesh as the coarsest level
func NewMeshHierarchy(m *Mesh, numRefinements int) (hierarchy []*Mesh, err error) {
	if numRefinements < 0 {
		return nil, chk.Err("number of refinements must be non-negative. %d is invalid", numRefinements)
	}
	hierarchy = make([]*Mesh, numRefinements+1)
	hierarchy[0] = m
	for i := 0; i < numRefinements; i++ {
		hierarchy[i+1], err = Refine(hierarchy[i])
		if err != nil {
			return nil, err
		}
	}
	return
}
