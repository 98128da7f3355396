// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// converged reasons
const (
	ReasonNotConverged = "not converged"
	ReasonElements     = "element count convergence"
	ReasonQoi          = "QoI convergence"
	ReasonMaxiter      = "maximum iterations being met"
)

// TrackerOpts holds convergence criteria for the fixed-point iteration
type TrackerOpts struct {
	Miniter  int     // minimum number of iterations before convergence may fire
	Maxiter  int     // maximum number of iterations
	ElemRtol float64 // relative tolerance for element count convergence
	QoiRtol  float64 // relative tolerance for QoI convergence
}

// DefaultTrackerOpts returns the default convergence criteria
func DefaultTrackerOpts() TrackerOpts {
	return TrackerOpts{
		Miniter:  3,
		Maxiter:  35,
		ElemRtol: 0.005,
		QoiRtol:  0.001,
	}
}

// Tracker decides, after each adaptation cycle, whether the fixed-point
// iteration should stop. The iteration counter is advanced by the driver only.
type Tracker struct {
	Opts      TrackerOpts // convergence criteria
	Iteration int         // fixed-point iteration index

	// internal state
	elementsOld int     // previous element count (-1 until first observation)
	qoiOld      float64 // previous QoI value
	haveQoi     bool    // qoiOld holds an observation
	reason      string  // terminal reason; empty while running
}

// NewTracker returns a tracker with the given convergence criteria
func NewTracker(opts TrackerOpts) *Tracker {
	if opts.Maxiter < opts.Miniter {
		chk.Panic("maximum number of iterations (%d) cannot be smaller than the minimum (%d)", opts.Maxiter, opts.Miniter)
	}
	return &Tracker{Opts: opts, elementsOld: -1}
}

// CheckElements checks for convergence of the element count. The first call only
// records the baseline and never signals convergence. Subsequent calls signal
// convergence when the relative change from the previous recorded count is below
// ElemRtol (and the minimum iteration count has been reached); otherwise the new
// count is recorded. Must be called exactly once per completed adaptation cycle.
func (o *Tracker) CheckElements(elements int) bool {
	if o.elementsOld < 0 {
		o.elementsOld = elements
		return false
	}
	if o.Iteration >= o.Opts.Miniter {
		if math.Abs(float64(elements-o.elementsOld)) < o.Opts.ElemRtol*float64(o.elementsOld) {
			o.reason = ReasonElements
			return true
		}
	}
	o.elementsOld = elements
	return false
}

// CheckQoi checks for convergence of the quantity of interest. Same baseline
// semantics as CheckElements. Called by solve/estimate services, which carry the
// tracker through the call.
func (o *Tracker) CheckQoi(qoi float64) bool {
	if !o.haveQoi {
		o.qoiOld = qoi
		o.haveQoi = true
		return false
	}
	if o.Iteration >= o.Opts.Miniter {
		if math.Abs(qoi-o.qoiOld) < o.Opts.QoiRtol*math.Abs(o.qoiOld) {
			o.reason = ReasonQoi
			return true
		}
	}
	o.qoiOld = qoi
	return false
}

// CheckMaxiter signals termination exactly when the iteration index has reached the
// configured maximum. Budget exhaustion is a normal terminal state, distinguishable
// from convergence through the converged reason.
func (o *Tracker) CheckMaxiter() bool {
	if o.Iteration >= o.Opts.Maxiter {
		o.reason = ReasonMaxiter
		return true
	}
	return false
}

// Converged tells whether a stopping predicate has fired
func (o *Tracker) Converged() bool {
	return o.reason != ""
}

// ConvergedReason returns the human-readable terminal reason
func (o *Tracker) ConvergedReason() string {
	if o.reason == "" {
		return ReasonNotConverged
	}
	return o.reason
}

// ElementsOld returns the last recorded element count; -1 before any observation
func (o *Tracker) ElementsOld() int {
	return o.elementsOld
}
