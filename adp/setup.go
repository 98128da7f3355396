// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

// Parameters holds the per-model parameters the driver needs: the QoI reporting unit
// and the bounds handed to the metric constraint enforcement
type Parameters struct {
	QoiUnit string  // unit for reporting the quantity of interest
	HMin    float64 // minimum admissible element size
	HMax    float64 // maximum admissible element size
	AMax    float64 // maximum admissible anisotropy ratio
}

// Setup is the per-model configuration collaborator: it fixes the PDE parameters for
// a test case, locates the initial mesh, defines the quantity of interest and
// contributes physics channels to the harvested features
type Setup interface {

	// Name returns the model name; e.g. "stokes"
	Name() string

	// Initialise fixes the configuration for the given test case
	Initialise(testCase string) error

	// Parameters returns the model parameters for the current test case
	Parameters() *Parameters

	// Fields returns the function-space field keys of the model
	Fields() []string

	// MeshPath returns the conventional mesh file path for a test case
	MeshPath(testCase string) string

	// GetQoi returns the quantity-of-interest functional on the given solution space
	GetQoi(space *FunSpace) func(*Solution) float64

	// FeatureChannels returns constant physics channels harvested with the features
	FeatureChannels() map[string]float64
}
