// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"math"

	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// metric field locations
const (
	LocCell = "cell" // piecewise-constant, one tensor per cell (P0)
	LocVert = "vert" // piecewise-linear, one tensor per vertex (P1)
)

// EigMin is the smallest admissible metric eigenvalue after the SPD fix-up
var EigMin = 1e-12

// MetricField holds a field of symmetric 2x2 tensors prescribing the desired local
// element size, shape and orientation. Tensors are stored as {mxx, myy, mxy}.
type MetricField struct {
	Msh *inp.Mesh    // the mesh
	Loc string       // location of tensors: LocCell or LocVert
	M   [][3]float64 // [nentities] tensor components
}

// NewMetricField allocates a zeroed metric field at the given location
func NewMetricField(msh *inp.Mesh, loc string) *MetricField {
	var n int
	switch loc {
	case LocCell:
		n = msh.NumCells()
	case LocVert:
		n = msh.NumVerts()
	default:
		chk.Panic("unknown metric location %q", loc)
	}
	return &MetricField{Msh: msh, Loc: loc, M: make([][3]float64, n)}
}

// Set sets the tensor of entity i
func (o *MetricField) Set(i int, mxx, myy, mxy float64) {
	o.M[i] = [3]float64{mxx, myy, mxy}
}

// ClementInterpolant interpolates a cell-wise (P0) metric to a vertex-wise (P1) one
// by volume-weighted averaging over the cells adjacent to each vertex
func ClementInterpolant(p0 *MetricField) (p1 *MetricField) {
	if p0.Loc != LocCell {
		chk.Panic("Clement interpolation needs a cell-wise metric. %q is invalid", p0.Loc)
	}
	m := p0.Msh
	p1 = NewMetricField(m, LocVert)
	for _, v := range m.Verts {
		var wsum float64
		var t [3]float64
		for _, cid := range m.Vert2cells[v.Id] {
			c := m.Cells[cid]
			w := m.CellArea(c)
			for k := 0; k < 3; k++ {
				t[k] += w * p0.M[cid][k]
			}
			wsum += w
		}
		if wsum > 0 {
			for k := 0; k < 3; k++ {
				t[k] /= wsum
			}
		}
		p1.M[v.Id] = t
	}
	return
}

// FixSPD renders every tensor symmetric positive-definite by taking the absolute
// value of its eigenvalues, with a small floor to avoid degenerate metrics
func (o *MetricField) FixSPD() {
	o.mapEig(func(λ []float64) {
		for i := range λ {
			λ[i] = math.Max(math.Abs(λ[i]), EigMin)
		}
	})
}

// Complexity returns the metric complexity, the integral of sqrt(det(M)) over the
// mesh, which estimates the number of elements the metric asks for
func (o *MetricField) Complexity() (c float64) {
	for _, cell := range o.Msh.Cells {
		t := o.cellTensor(cell)
		d := t[0]*t[1] - t[2]*t[2]
		if d > 0 {
			c += math.Sqrt(d) * o.Msh.CellArea(cell)
		}
	}
	return
}

// SpaceNormalise scales the field so that its complexity matches the target
// (L-infinity normalization in 2D: determinants scale linearly with the factor)
func (o *MetricField) SpaceNormalise(target float64) {
	if target <= 0 {
		chk.Panic("target complexity must be positive. %g is invalid", target)
	}
	c := o.Complexity()
	if c <= 0 {
		chk.Panic("cannot normalise metric with zero complexity")
	}
	s := target / c
	for i := range o.M {
		for k := 0; k < 3; k++ {
			o.M[i][k] *= s
		}
	}
}

// EnforceConstraints clamps metric eigenvalues so that prescribed element sizes stay
// within [hmin, hmax] and the anisotropy ratio does not exceed amax
func (o *MetricField) EnforceConstraints(hmin, hmax, amax float64) {
	if hmin <= 0 || hmax < hmin {
		chk.Panic("invalid element size bounds: hmin=%g hmax=%g", hmin, hmax)
	}
	λmin := 1.0 / (hmax * hmax)
	λmax := 1.0 / (hmin * hmin)
	o.mapEig(func(λ []float64) {
		for i := range λ {
			λ[i] = math.Min(math.Max(λ[i], λmin), λmax)
		}
		if amax > 0 {
			hi := math.Max(λ[0], λ[1])
			lo := hi / (amax * amax)
			for i := range λ {
				λ[i] = math.Max(λ[i], lo)
			}
		}
	})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// cellTensor returns the tensor of a cell; for vertex-wise fields the tensor is the
// average over the cell's vertices
func (o *MetricField) cellTensor(c *inp.Cell) (t [3]float64) {
	if o.Loc == LocCell {
		return o.M[c.Id]
	}
	for _, v := range c.Verts {
		for k := 0; k < 3; k++ {
			t[k] += o.M[v][k]
		}
	}
	n := float64(len(c.Verts))
	for k := 0; k < 3; k++ {
		t[k] /= n
	}
	return
}

// mapEig applies fix to the eigenvalues of every tensor and rebuilds the field
func (o *MetricField) mapEig(fix func(λ []float64)) {
	A := la.MatAlloc(2, 2)
	Q := la.MatAlloc(2, 2)
	v := make([]float64, 2)
	for i, t := range o.M {
		A[0][0], A[1][1] = t[0], t[1]
		A[0][1], A[1][0] = t[2], t[2]
		err := la.Jacobi(Q, v, A)
		if err != nil {
			chk.Panic("Jacobi eigen-decomposition failed for tensor %d:\n%v", i, err)
		}
		fix(v)
		// M = Q diag(v) Qᵀ
		o.M[i][0] = v[0]*Q[0][0]*Q[0][0] + v[1]*Q[0][1]*Q[0][1]
		o.M[i][1] = v[0]*Q[1][0]*Q[1][0] + v[1]*Q[1][1]*Q[1][1]
		o.M[i][2] = v[0]*Q[0][0]*Q[1][0] + v[1]*Q[0][1]*Q[1][1]
	}
}
