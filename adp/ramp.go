// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

// NrampDefault is the default number of iterations over which the target metric
// complexity is ramped up
var NrampDefault = 3

// RampComplexity interpolates linearly between a base and a target metric complexity
// as a function of the fixed-point iteration index: base at iteration 0, target at
// iteration nramp and beyond. Monotonic for base <= target.
func RampComplexity(base, target float64, iteration, nramp int) float64 {
	if nramp < 1 {
		nramp = NrampDefault
	}
	if iteration >= nramp {
		return target
	}
	α := float64(iteration) / float64(nramp)
	return (1.0-α)*base + α*target
}
