// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"testing"

	"github.com/acse-cd321/nn-adapt-fork/adp"
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

// taggedMesh returns a unit square with one cell carrying the given tag
func taggedMesh(tst *testing.T, tag int) *inp.Mesh {
	m := &inp.Mesh{
		Verts: []*inp.Vert{
			{Id: 0, Tag: 0, C: []float64{0, 0}},
			{Id: 1, Tag: 0, C: []float64{1, 0}},
			{Id: 2, Tag: 0, C: []float64{1, 1}},
			{Id: 3, Tag: 0, C: []float64{0, 1}},
		},
		Cells: []*inp.Cell{
			{Id: 0, Tag: tag, Type: "tri3", Verts: []int{0, 1, 2}},
			{Id: 1, Tag: -1, Type: "tri3", Verts: []int{0, 2, 3}},
		},
	}
	if err := m.CalcDerived(); err != nil {
		tst.Fatalf("cannot build test mesh:\n%v", err)
	}
	return m
}

func Test_mdl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl01. registry")

	if !IsRegistered("stokes") || !IsRegistered("turbine") {
		tst.Errorf("built-in models are not registered")
	}
	if IsRegistered("navier") {
		tst.Errorf("unknown model reported as registered")
	}
	names := Names()
	chk.IntAssert(len(names), 2)
	chk.StrAssert(names[0], "stokes")
	chk.StrAssert(names[1], "turbine")
}

func Test_mdl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl02. stokes configuration")

	setup := New("stokes")
	err := setup.Initialise("3")
	if err != nil {
		tst.Errorf("Initialise failed:\n%v", err)
		return
	}
	chk.StrAssert(setup.Name(), "stokes")
	chk.StrAssert(setup.Parameters().QoiUnit, "N")
	fields := setup.Fields()
	chk.IntAssert(len(fields), 3)
	for i, key := range []string{"ux", "uy", "p"} {
		chk.StrAssert(fields[i], key)
	}
	chk.StrAssert(setup.MeshPath("3"), "stokes/meshes/3.msh")

	// case 3 carries viscosity 0.5
	chk.Scalar(tst, "viscosity", 1e-15, setup.FeatureChannels()["viscosity"], 0.5)

	// out-of-range integer cases are rejected; string identifiers are kept
	if err = setup.Initialise("12"); err == nil {
		tst.Errorf("out-of-range test case was accepted")
	}
	if err = setup.Initialise("demo"); err != nil {
		tst.Errorf("string test case was rejected:\n%v", err)
	}
}

func Test_mdl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl03. stokes drag functional")

	setup := New("stokes")
	err := setup.Initialise("0") // viscosity 1
	if err != nil {
		tst.Errorf("Initialise failed:\n%v", err)
		return
	}

	// ux == 2 on the single QoI-tagged cell of area 1/2 gives J == 1
	m := taggedMesh(tst, StokesQoiTag)
	space := adp.NewFunSpace(m, setup.Fields()...)
	sol := adp.NewSolution(space)
	for i := range sol.Dofs["ux"] {
		sol.Dofs["ux"][i] = 2.0
	}
	J := setup.GetQoi(space)(sol)
	chk.Scalar(tst, "J", 1e-14, J, 1.0)
}

func Test_mdl04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl04. turbine power functional")

	setup := New("turbine")
	err := setup.Initialise("0") // thrust 0.8
	if err != nil {
		tst.Errorf("Initialise failed:\n%v", err)
		return
	}
	chk.StrAssert(setup.Parameters().QoiUnit, "MW")

	// |u| == 2 on the farm cell of area 1/2: J = Ct·ρ/2 · 1/2 · 8 / 1e6
	m := taggedMesh(tst, TurbineFarmTag)
	space := adp.NewFunSpace(m, setup.Fields()...)
	sol := adp.NewSolution(space)
	for i := range sol.Dofs["ux"] {
		sol.Dofs["ux"][i] = 2.0
	}
	J := setup.GetQoi(space)(sol)
	want := 0.8 * waterRho / 2.0 * 0.5 * math.Pow(2, 3) / 1e6
	chk.Scalar(tst, "J", 1e-14, J, want)
}
