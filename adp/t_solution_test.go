// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"math"
	"testing"

	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/cpmech/gosl/chk"
)

func Test_solution01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution01. projection onto the same mesh is exact")

	m := squareMesh()
	space := NewFunSpace(m, "ux", "uy")
	sol := NewSolution(space)
	for _, v := range m.Verts {
		sol.Dofs["ux"][v.Id] = v.C[0] + 2.0*v.C[1]
		sol.Dofs["uy"][v.Id] = v.C[0] * v.C[1]
	}

	ic := Project(sol, NewFunSpace(m, "ux", "uy"))
	chk.Vector(tst, "ux", 1e-15, ic.Dofs["ux"], sol.Dofs["ux"])
	chk.Vector(tst, "uy", 1e-15, ic.Dofs["uy"], sol.Dofs["uy"])
}

func Test_solution02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution02. projection onto a refined mesh")

	m := squareMesh()
	space := NewFunSpace(m, "u")
	sol := NewSolution(space)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range m.Verts {
		val := v.C[0] + v.C[1]
		sol.Dofs["u"][v.Id] = val
		lo = math.Min(lo, val)
		hi = math.Max(hi, val)
	}

	fine, err := inp.Refine(m)
	if err != nil {
		tst.Errorf("Refine failed:\n%v", err)
		return
	}
	ic := Project(sol, NewFunSpace(fine, "u"))

	// coinciding vertices keep their values exactly
	for i := 0; i < m.NumVerts(); i++ {
		chk.Scalar(tst, "corner value", 1e-15, ic.Dofs["u"][i], sol.Dofs["u"][i])
	}

	// new vertices take values from old vertices; nothing outside the source range
	for _, val := range ic.Dofs["u"] {
		if val < lo || val > hi {
			tst.Errorf("projected value %g outside source range [%g,%g]", val, lo, hi)
		}
	}
}

func Test_solution03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution03. component-wise fallback for differing field sets")

	m := squareMesh()
	sol := NewSolution(NewFunSpace(m, "ux"))
	for _, v := range m.Verts {
		sol.Dofs["ux"][v.Id] = 7.0
	}

	// target space carries an extra field: the shared component transfers, the
	// extra one stays zero
	ic := Project(sol, NewFunSpace(m, "ux", "p"))
	for _, v := range m.Verts {
		chk.Scalar(tst, "ux transferred", 1e-15, ic.Dofs["ux"][v.Id], 7.0)
		chk.Scalar(tst, "p zeroed", 1e-15, ic.Dofs["p"][v.Id], 0.0)
	}
}
