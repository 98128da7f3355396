// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"path/filepath"
	"strconv"

	"github.com/acse-cd321/nn-adapt-fork/adp"
	"github.com/cpmech/gosl/chk"
)

// tag of the cells forming the turbine footprints
const TurbineFarmTag = -3

// turbineCase holds the physics of one tidal-turbine test case
type turbineCase struct {
	viscosity float64 // horizontal eddy viscosity
	inflow    float64 // inflow speed
	depth     float64 // water depth
	thrust    float64 // turbine thrust coefficient
}

// tabulated test cases; string identifiers fall back to case 0
var turbineCases = []turbineCase{
	{0.5, 4.0, 40.0, 0.8},
	{0.5, 4.0, 40.0, 0.6},
	{0.5, 5.0, 40.0, 0.8},
	{0.5, 5.0, 40.0, 0.6},
	{1.0, 4.0, 50.0, 0.8},
	{1.0, 4.0, 50.0, 0.6},
	{1.0, 5.0, 50.0, 0.8},
	{1.0, 5.0, 50.0, 0.6},
	{2.0, 4.0, 30.0, 0.8},
	{2.0, 4.0, 30.0, 0.6},
	{2.0, 5.0, 30.0, 0.8},
	{2.0, 5.0, 30.0, 0.6},
}

// water density [kg/m³]
const waterRho = 1030.0

// Turbine is the configuration of the tidal-turbine array model
type Turbine struct {
	prms adp.Parameters
	cur  turbineCase
}

// Name returns the model name
func (o *Turbine) Name() string { return "turbine" }

// Initialise fixes the configuration for the given test case
func (o *Turbine) Initialise(testCase string) error {
	o.prms = adp.Parameters{
		QoiUnit: "MW",
		HMin:    1e-5,
		HMax:    500.0,
		AMax:    1e5,
	}
	o.cur = turbineCases[0]
	if i, err := strconv.Atoi(testCase); err == nil {
		if i < 0 || i >= len(turbineCases) {
			return chk.Err("turbine test case %d out of range [0,%d)", i, len(turbineCases))
		}
		o.cur = turbineCases[i]
	}
	return nil
}

// Parameters returns the model parameters for the current test case
func (o *Turbine) Parameters() *adp.Parameters { return &o.prms }

// Fields returns the function-space field keys: depth-averaged velocity and
// free-surface elevation
func (o *Turbine) Fields() []string { return []string{"ux", "uy", "eta"} }

// MeshPath returns the conventional mesh file path for a test case
func (o *Turbine) MeshPath(testCase string) string {
	return filepath.Join("turbine", "meshes", testCase+".msh")
}

// GetQoi returns the power-output functional: the cubed velocity magnitude
// integrated over the turbine footprint cells, scaled to MW
func (o *Turbine) GetQoi(space *adp.FunSpace) func(*adp.Solution) float64 {
	cells := qoiCells(space.Msh, TurbineFarmTag)
	coeff := o.cur.thrust * waterRho / 2.0
	return func(sol *adp.Solution) (J float64) {
		for _, c := range cells {
			ux := sol.CellMean("ux", c)
			uy := sol.CellMean("uy", c)
			speed := math.Hypot(ux, uy)
			J += coeff * space.Msh.CellArea(c) * speed * speed * speed
		}
		return J / 1e6
	}
}

// FeatureChannels returns the physics channels harvested with the features
func (o *Turbine) FeatureChannels() map[string]float64 {
	return map[string]float64{
		"viscosity":          o.cur.viscosity,
		"inflow_speed":       o.cur.inflow,
		"depth":              o.cur.depth,
		"thrust_coefficient": o.cur.thrust,
	}
}

func init() {
	Register("turbine", func() adp.Setup { return new(Turbine) })
}
