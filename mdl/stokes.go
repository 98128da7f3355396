// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"path/filepath"
	"strconv"

	"github.com/acse-cd321/nn-adapt-fork/adp"
	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/cpmech/gosl/chk"
)

// tag of the cells over which the Stokes QoI is integrated
const StokesQoiTag = -2

// stokesCase holds the physics of one Stokes test case
type stokesCase struct {
	viscosity float64 // kinematic viscosity
	inflow    float64 // inflow speed
}

// tabulated test cases; string identifiers fall back to case 0
var stokesCases = []stokesCase{
	{1.0, 1.0},
	{1.0, 2.0},
	{1.0, 4.0},
	{0.5, 1.0},
	{0.5, 2.0},
	{0.5, 4.0},
	{0.1, 1.0},
	{0.1, 2.0},
	{0.1, 4.0},
	{0.05, 1.0},
	{0.05, 2.0},
	{0.05, 4.0},
}

// Stokes is the configuration of the Stokes flow-past-an-obstacle model
type Stokes struct {
	prms adp.Parameters
	cur  stokesCase
}

// Name returns the model name
func (o *Stokes) Name() string { return "stokes" }

// Initialise fixes the configuration for the given test case
func (o *Stokes) Initialise(testCase string) error {
	o.prms = adp.Parameters{
		QoiUnit: "N",
		HMin:    1e-5,
		HMax:    500.0,
		AMax:    1e5,
	}
	o.cur = stokesCases[0]
	if i, err := strconv.Atoi(testCase); err == nil {
		if i < 0 || i >= len(stokesCases) {
			return chk.Err("stokes test case %d out of range [0,%d)", i, len(stokesCases))
		}
		o.cur = stokesCases[i]
	}
	return nil
}

// Parameters returns the model parameters for the current test case
func (o *Stokes) Parameters() *adp.Parameters { return &o.prms }

// Fields returns the function-space field keys: velocity components and pressure
func (o *Stokes) Fields() []string { return []string{"ux", "uy", "p"} }

// MeshPath returns the conventional mesh file path for a test case
func (o *Stokes) MeshPath(testCase string) string {
	return filepath.Join("stokes", "meshes", testCase+".msh")
}

// GetQoi returns the drag functional: the viscosity-weighted integral of the
// horizontal velocity over the cells carrying the QoI tag
func (o *Stokes) GetQoi(space *adp.FunSpace) func(*adp.Solution) float64 {
	cells := qoiCells(space.Msh, StokesQoiTag)
	ν := o.cur.viscosity
	return func(sol *adp.Solution) (J float64) {
		for _, c := range cells {
			J += ν * space.Msh.CellArea(c) * sol.CellMean("ux", c)
		}
		return
	}
}

// FeatureChannels returns the physics channels harvested with the features
func (o *Stokes) FeatureChannels() map[string]float64 {
	return map[string]float64{
		"viscosity":    o.cur.viscosity,
		"inflow_speed": o.cur.inflow,
	}
}

// qoiCells returns the cells carrying the given tag; with no tagged cells the
// functional integrates over the whole mesh
func qoiCells(m *inp.Mesh, tag int) []*inp.Cell {
	if cells, ok := m.CellTag2cells[tag]; ok {
		return cells
	}
	return m.Cells
}

func init() {
	Register("stokes", func() adp.Setup { return new(Stokes) })
}
