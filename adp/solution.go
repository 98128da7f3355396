// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adp implements the goal-oriented mesh-adaptation driver: convergence
// tracking, complexity ramping, metric processing, feature harvesting and the
// fixed-point iteration loop itself. The numerically heavy services (forward and
// adjoint solves, error estimation, mesh adaptation) are provided by registered
// backends.
package adp

import (
	"math"

	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y coordinates
	Ndiv = 20   // bins n-division for vertex searches
)

// FunSpace represents a vertex-based function space on a mesh
type FunSpace struct {
	Msh    *inp.Mesh // the mesh
	Fields []string  // field keys; e.g. {"ux", "uy", "p"}
}

// NewFunSpace returns a function space with the given field keys
func NewFunSpace(msh *inp.Mesh, fields ...string) *FunSpace {
	if len(fields) == 0 {
		chk.Panic("function space needs at least one field")
	}
	return &FunSpace{Msh: msh, Fields: fields}
}

// DofCount returns the total number of degrees of freedom
func (o *FunSpace) DofCount() int {
	return len(o.Fields) * o.Msh.NumVerts()
}

// Mixed tells whether this is a mixed (multi-field) space
func (o *FunSpace) Mixed() bool {
	return len(o.Fields) > 1
}

// Solution holds vertex dof values for each field of a function space
type Solution struct {
	Space *FunSpace            // function space
	Dofs  map[string][]float64 // field key => vertex values
}

// NewSolution allocates a zeroed solution on the given space
func NewSolution(space *FunSpace) *Solution {
	o := &Solution{Space: space, Dofs: make(map[string][]float64)}
	for _, key := range space.Fields {
		o.Dofs[key] = make([]float64, space.Msh.NumVerts())
	}
	return o
}

// CellMean returns the average of field key over the vertices of cell c
func (o *Solution) CellMean(key string, c *inp.Cell) (mean float64) {
	vals, ok := o.Dofs[key]
	if !ok {
		chk.Panic("solution has no field %q", key)
	}
	for _, v := range c.Verts {
		mean += vals[v]
	}
	return mean / float64(len(c.Verts))
}

// Project transfers sol onto newSpace to be used as an initial guess after mesh
// adaptation. A joint transfer requires both spaces to carry the same field keys;
// for mixed spaces where the field sets differ, each component present in both
// spaces is projected independently.
func Project(sol *Solution, newSpace *FunSpace) (ic *Solution) {
	ic = NewSolution(newSpace)
	if sameFields(sol.Space.Fields, newSpace.Fields) {
		for _, key := range newSpace.Fields {
			projectField(sol, ic, key)
		}
		return
	}
	if !newSpace.Mixed() {
		chk.Panic("cannot project fields %v onto space with fields %v", sol.Space.Fields, newSpace.Fields)
	}
	// component-wise fallback
	for _, key := range newSpace.Fields {
		if _, ok := sol.Dofs[key]; ok {
			projectField(sol, ic, key)
		}
	}
	return
}

// projectField transfers one field by vertex search: coinciding vertices keep their
// value exactly; new vertices take the value of the closest old vertex
func projectField(sol, ic *Solution, key string) {

	// bins with old vertices
	old := sol.Space.Msh
	δ := TolC * 2
	xi := []float64{old.Xmin - δ, old.Ymin - δ}
	xf := []float64{old.Xmax + δ, old.Ymax + δ}
	var bins gm.Bins
	err := bins.Init(xi, xf, Ndiv)
	if err != nil {
		chk.Panic("cannot initialise bins for projection: %v", err)
	}
	for _, v := range old.Verts {
		err = bins.Append(v.C, v.Id)
		if err != nil {
			chk.Panic("cannot append vertex to bins: %v", err)
		}
	}

	// transfer
	src := sol.Dofs[key]
	dst := ic.Dofs[key]
	for _, v := range ic.Space.Msh.Verts {
		id := bins.Find(v.C)
		if id < 0 {
			id = closestVert(old, v.C)
		}
		dst[v.Id] = src[id]
	}
}

// closestVert performs a linear search for the vertex closest to x
func closestVert(m *inp.Mesh, x []float64) (id int) {
	dmin := math.Inf(1)
	for _, v := range m.Verts {
		d := math.Hypot(v.C[0]-x[0], v.C[1]-x[1])
		if d < dmin {
			dmin = d
			id = v.Id
		}
	}
	return
}

// sameFields compares two field key lists
func sameFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
