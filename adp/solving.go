// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/cpmech/gosl/chk"
)

// GoOpts holds options for a goal-oriented solve/estimate call
type GoOpts struct {
	EnrichmentMethod string    // enrichment method for error estimation; e.g. "h"
	Average          bool      // average the error indicator contributions
	Anisotropic      bool      // build an anisotropic metric
	TargetComplexity float64   // (ramped) target metric complexity
	Init             *Solution // initial guess for the forward solve; may be nil
}

// GoResult is the tagged result of a goal-oriented solve/estimate call. The variant
// encodes how far the service got: QoiOnly means it declined further refinement
// right after the forward solve, WithEstimator means it stopped after error
// estimation, and WithMetric carries everything the adaptation step needs.
type GoResult interface {
	Qoi() float64       // quantity of interest
	Forward() *Solution // forward solution
	goResult()          // marker; restricts implementations to this package's variants
}

// QoiOnly is the result of a service that performed the forward solve only
type QoiOnly struct {
	J   float64   // quantity of interest
	Fwd *Solution // forward solution
}

// WithEstimator additionally carries the error estimator value
type WithEstimator struct {
	QoiOnly
	Estimator float64 // error estimator
}

// WithMetric additionally carries the adjoint solution, the dual-weighted-residual
// indicator (one value per cell) and the raw cell-wise metric
type WithMetric struct {
	WithEstimator
	Adjoint *Solution    // adjoint solution
	Dwr     []float64    // dual-weighted-residual indicator, per cell
	Metric  *MetricField // raw (pre-normalization) cell-wise metric
}

func (o QoiOnly) Qoi() float64       { return o.J }
func (o QoiOnly) Forward() *Solution { return o.Fwd }
func (o QoiOnly) goResult()          {}

// GoalSolver performs the goal-oriented solve/estimate step: forward solve, adjoint
// solve, dual-weighted-residual error estimation and raw metric construction. The
// tracker travels with the call so the service may check QoI convergence and decline
// further refinement by returning an early variant.
type GoalSolver interface {
	GoMetric(msh *inp.Mesh, setup Setup, tracker *Tracker, opts *GoOpts) (GoResult, error)
}

// ForwardSolver performs the forward solve only (uniform refinement studies)
type ForwardSolver interface {
	Solve(msh *inp.Mesh, setup Setup, init *Solution) (*Solution, error)
}

// Adaptor adapts a mesh to a processed metric
type Adaptor interface {
	Adapt(msh *inp.Mesh, metric *MetricField) (*inp.Mesh, error)
}

// allocators hold all available solve/adapt backends
var (
	goalSolverAllocators = make(map[string]func() GoalSolver)
	fwdSolverAllocators  = make(map[string]func() ForwardSolver)
	adaptorAllocators    = make(map[string]func() Adaptor)
)

// RegisterGoalSolver registers a goal-oriented solver backend
func RegisterGoalSolver(name string, alloc func() GoalSolver) {
	if _, ok := goalSolverAllocators[name]; ok {
		chk.Panic("goal-oriented solver %q registered twice", name)
	}
	goalSolverAllocators[name] = alloc
}

// RegisterForwardSolver registers a forward solver backend
func RegisterForwardSolver(name string, alloc func() ForwardSolver) {
	if _, ok := fwdSolverAllocators[name]; ok {
		chk.Panic("forward solver %q registered twice", name)
	}
	fwdSolverAllocators[name] = alloc
}

// RegisterAdaptor registers a mesh adaptation backend
func RegisterAdaptor(name string, alloc func() Adaptor) {
	if _, ok := adaptorAllocators[name]; ok {
		chk.Panic("adaptor %q registered twice", name)
	}
	adaptorAllocators[name] = alloc
}

// NewGoalSolver returns a new goal-oriented solver backend
func NewGoalSolver(name string) GoalSolver {
	alloc, ok := goalSolverAllocators[name]
	if !ok {
		chk.Panic("cannot find goal-oriented solver named %q", name)
	}
	return alloc()
}

// NewForwardSolver returns a new forward solver backend
func NewForwardSolver(name string) ForwardSolver {
	alloc, ok := fwdSolverAllocators[name]
	if !ok {
		chk.Panic("cannot find forward solver named %q", name)
	}
	return alloc()
}

// NewAdaptor returns a new mesh adaptation backend
func NewAdaptor(name string) Adaptor {
	alloc, ok := adaptorAllocators[name]
	if !ok {
		chk.Panic("cannot find adaptor named %q", name)
	}
	return alloc()
}

// UniformAdaptor is a trivial adaptation backend for smoke runs: it refines the mesh
// uniformly while the metric asks for more elements than the mesh has
type UniformAdaptor struct {
	MaxPasses int // bound on refinement passes per Adapt call
}

// Adapt refines msh uniformly until its cell count reaches the metric complexity
func (o *UniformAdaptor) Adapt(msh *inp.Mesh, metric *MetricField) (newMsh *inp.Mesh, err error) {
	passes := o.MaxPasses
	if passes < 1 {
		passes = 3
	}
	target := metric.Complexity()
	newMsh = msh
	for i := 0; i < passes; i++ {
		if float64(newMsh.NumCells()) >= target {
			break
		}
		newMsh, err = inp.Refine(newMsh)
		if err != nil {
			return nil, err
		}
	}
	return
}

func init() {
	RegisterAdaptor("uniform", func() Adaptor { return new(UniformAdaptor) })
}
