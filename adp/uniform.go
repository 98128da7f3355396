// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/acse-cd321/nn-adapt-fork/out"
	"github.com/cpmech/gosl/io"
)

// UniformSweep runs the uniform-refinement convergence study: for each level of a
// hierarchy of numRefinements+1 uniformly refined meshes it solves the forward
// problem only, computes the quantity of interest and records (qoi, dofs, elements).
// All three series are persisted after every level, so an interrupted sweep still
// leaves the completed levels on disk.
func UniformSweep(setup Setup, solver ForwardSolver, mesh *inp.Mesh, numRefinements int, dataDir, testCase, enctype string, verbose bool) (qois, dofs, elements []float64, err error) {

	// mesh hierarchy
	hierarchy, err := inp.NewMeshHierarchy(mesh, numRefinements)
	if err != nil {
		return
	}

	// run uniform refinement
	if verbose {
		io.Pf("Test case %s\n", testCase)
	}
	for i, m := range hierarchy {
		if verbose {
			io.Pf("  Mesh %d\n", i)
			io.Pf("    Element count        = %d\n", m.NumCells())
		}

		// forward solve and QoI
		var fwd *Solution
		fwd, err = solver.Solve(m, setup, nil)
		if err != nil {
			return
		}
		J := setup.GetQoi(fwd.Space)(fwd)
		if verbose {
			io.Pf("    Quantity of Interest = %g %s\n", J, setup.Parameters().QoiUnit)
		}

		// record and persist partial series
		qois = append(qois, J)
		dofs = append(dofs, float64(fwd.Space.DofCount()))
		elements = append(elements, float64(m.NumCells()))
		for _, s := range []struct {
			kind string
			vals []float64
		}{
			{"qois", qois},
			{"dofs", dofs},
			{"elements", elements},
		} {
			err = out.SaveArray(dataDir, out.UniformKey(s.kind, testCase), enctype, s.vals, false)
			if err != nil {
				return
			}
		}
	}
	return
}
