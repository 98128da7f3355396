// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_features01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("features01. harvested channels")

	m := squareMesh()
	space := NewFunSpace(m, "u")
	fwd := NewSolution(space)
	adj := NewSolution(space)
	for _, v := range m.Verts {
		fwd.Dofs["u"][v.Id] = 2.0
		adj.Dofs["u"][v.Id] = -1.0
	}

	features := ExtractFeatures(&testSetup{}, fwd, adj)
	for _, key := range []string{"size", "orientation", "anisotropy", "forward_u", "adjoint_u", "physics_nu"} {
		vals, ok := features[key]
		if !ok {
			tst.Errorf("missing feature %q", key)
			continue
		}
		chk.IntAssert(len(vals), m.NumCells())
	}

	// right triangles with area 1/2 and legs of length 1
	for i := range m.Cells {
		chk.Scalar(tst, "size", 1e-14, features["size"][i], math.Sqrt(0.5))
		chk.Scalar(tst, "anisotropy", 1e-14, features["anisotropy"][i], math.Sqrt2)
	}
	chk.Vector(tst, "forward_u", 1e-15, features["forward_u"], []float64{2, 2})
	chk.Vector(tst, "adjoint_u", 1e-15, features["adjoint_u"], []float64{-1, -1})
	chk.Vector(tst, "physics_nu", 1e-15, features["physics_nu"], []float64{0.5, 0.5})
}

func Test_features02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("features02. non-finite target is fatal")

	defer func() {
		if recover() == nil {
			tst.Errorf("ValidateTarget accepted a non-finite value")
		}
	}()
	ValidateTarget([]float64{1.0, math.Inf(1), 2.0})
}
