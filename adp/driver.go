// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"time"

	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/acse-cd321/nn-adapt-fork/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Driver runs the goal-oriented adaptation fixed-point loop for one test case
type Driver struct {

	// collaborators
	Setup   Setup      // model configuration
	Solver  GoalSolver // goal-oriented solve/estimate service
	Adaptor Adaptor    // mesh adaptation service

	// loop configuration
	TrackerOpts      TrackerOpts // convergence criteria
	BaseComplexity   float64     // complexity ramp base
	TargetComplexity float64     // complexity ramp target
	Nramp            int         // iterations to fully ramp; 0 => default
	Approach         string      // approach label: "isotropic" or "anisotropic"
	TestCase         string      // test case identifier

	// output configuration
	DataDir   string // directory for feature/target arrays
	OutputDir string // directory for per-run result files
	EncType   string // "gob" or "json"

	// flags
	Optimise  bool // skip feature harvesting and file outputs
	NoOutputs bool // skip result file outputs
	Transfer  bool // carry the forward solution over as the next initial guess
	Verbose   bool // show progress messages
}

// Report summarises a terminated adaptation run
type Report struct {
	Iterations int           // number of passes performed
	Qoi        float64       // last quantity of interest
	Dofs       int           // last DoF count
	Elements   int           // last element count
	Reason     string        // terminal reason
	Elapsed    time.Duration // wall time
}

// Run performs the fixed-point iteration, replacing the mesh each cycle, until a
// stopping predicate of the tracker fires, the iteration budget is exhausted, or the
// solve/estimate service declines further refinement. The mesh is exclusively owned
// by this loop between iterations.
func (o *Driver) Run(mesh *inp.Mesh) (rep *Report, err error) {

	// check
	if o.Setup == nil || o.Solver == nil || o.Adaptor == nil {
		chk.Panic("driver needs setup, solver and adaptor collaborators")
	}
	start := time.Now()
	ct := NewTracker(o.TrackerOpts)
	noOutputs := o.NoOutputs || o.Optimise

	// result files; closed on every exit path
	var res *out.ResultSet
	if !noOutputs {
		res, err = out.NewResultSet(o.OutputDir, o.EncType)
		if err != nil {
			return nil, err
		}
		defer func() {
			cerr := res.Close()
			if err == nil {
				err = cerr
			}
		}()
		err = res.Mesh.Append(meshCoords(mesh))
		if err != nil {
			return nil, err
		}
	}

	// message
	if o.Verbose {
		io.Pf("Test case %s\n", o.TestCase)
		io.Pf("  Mesh 0\n")
		io.Pf("    Element count        = %d\n", mesh.NumCells())
	}

	// fixed-point iteration
	rep = &Report{Elements: mesh.NumCells()}
	var init *Solution
	prm := o.Setup.Parameters()
loop:
	for ct.Iteration = 0; ct.Iteration <= ct.Opts.Maxiter; ct.Iteration++ {

		// ramp up the target complexity
		targetRamp := RampComplexity(o.BaseComplexity, o.TargetComplexity, ct.Iteration, o.Nramp)

		// compute goal-oriented metric
		result, gerr := o.Solver.GoMetric(mesh, o.Setup, ct, &GoOpts{
			EnrichmentMethod: "h",
			Average:          false,
			Anisotropic:      o.Approach == "anisotropic",
			TargetComplexity: targetRamp,
			Init:             init,
		})
		if gerr != nil {
			return nil, gerr
		}
		fwd := result.Forward()
		rep.Qoi = result.Qoi()
		rep.Dofs = fwd.Space.DofCount()
		if o.Verbose {
			io.Pf("    Quantity of Interest = %g %s\n", rep.Qoi, prm.QoiUnit)
			io.Pf("    DoF count            = %d\n", rep.Dofs)
		}

		// the variant tells how far the service got; anything short of a metric is a
		// normal early termination, not an error
		var full *WithMetric
		switch r := result.(type) {
		case *QoiOnly:
			break loop
		case *WithEstimator:
			if o.Verbose {
				io.Pf("    Error estimator      = %g\n", r.Estimator)
			}
			break loop
		case *WithMetric:
			if o.Verbose {
				io.Pf("    Error estimator      = %g\n", r.Estimator)
			}
			full = r
		default:
			chk.Panic("unknown result variant %T", result)
		}

		// write result files
		if !noOutputs {
			for _, w := range []struct {
				f   *out.ResFile
				rec interface{}
			}{
				{res.Forward, fwd.Dofs},
				{res.Adjoint, full.Adjoint.Dofs},
				{res.Estimator, full.Dwr},
				{res.Metric, full.Metric.M},
			} {
				err = w.f.Append(w.rec)
				if err != nil {
					return nil, err
				}
			}
		}

		// extract features; non-finite targets abort before anything is written
		if !o.Optimise {
			features := ExtractFeatures(o.Setup, fwd, full.Adjoint)
			ValidateTarget(full.Dwr)
			for key, vals := range features {
				err = out.SaveArray(o.DataDir, out.FeatureKey(key, o.TestCase, o.Approach, ct.Iteration), o.EncType, vals, false)
				if err != nil {
					return nil, err
				}
			}
			err = out.SaveArray(o.DataDir, out.TargetKey(o.TestCase, o.Approach, ct.Iteration), o.EncType, full.Dwr, false)
			if err != nil {
				return nil, err
			}
		}

		// process metric
		metric := ClementInterpolant(full.Metric)
		metric.FixSPD()
		metric.SpaceNormalise(targetRamp)
		metric.EnforceConstraints(prm.HMin, prm.HMax, prm.AMax)

		// adapt the mesh and check for element count convergence
		mesh, err = o.Adaptor.Adapt(mesh, metric)
		if err != nil {
			return nil, err
		}
		if !noOutputs {
			err = res.Mesh.Append(meshCoords(mesh))
			if err != nil {
				return nil, err
			}
		}
		elements := mesh.NumCells()
		rep.Elements = elements
		if o.Verbose {
			io.Pf("  Mesh %d\n", ct.Iteration+1)
			io.Pf("    Element count        = %d\n", elements)
		}
		if ct.CheckElements(elements) {
			break
		}
		if ct.CheckMaxiter() {
			break
		}

		// use previous solution for initial guess
		if o.Transfer {
			init = Project(fwd, NewFunSpace(mesh, o.Setup.Fields()...))
		}
	}

	// report
	rep.Iterations = ct.Iteration + 1
	rep.Reason = ct.ConvergedReason()
	rep.Elapsed = time.Since(start)
	if o.Verbose {
		io.Pf("  Terminated after %d iterations due to %s\n", rep.Iterations, rep.Reason)
		io.Pflmag("  Total time taken: %.2f seconds\n", rep.Elapsed.Seconds())
	}
	return
}

// meshCoords returns the vertex coordinates of a mesh as one flat record
func meshCoords(m *inp.Mesh) (coords [][]float64) {
	coords = make([][]float64, m.NumVerts())
	for i, v := range m.Verts {
		coords[i] = v.C
	}
	return
}
