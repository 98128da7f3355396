// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ExtractFeatures harvests per-cell feature arrays for neural-network training from
// the forward and adjoint solutions: element geometry channels, per-cell solution
// averages and constant physics channels from the setup. All arrays have one entry
// per cell of the current mesh.
func ExtractFeatures(setup Setup, fwd, adj *Solution) (features map[string][]float64) {
	m := fwd.Space.Msh
	ncells := m.NumCells()
	features = make(map[string][]float64)

	// geometry channels
	size := make([]float64, ncells)
	orientation := make([]float64, ncells)
	anisotropy := make([]float64, ncells)
	for i, c := range m.Cells {
		size[i] = math.Sqrt(m.CellArea(c))
		lmax, lmin := 0.0, math.Inf(1)
		var ex, ey float64
		for _, e := range m.CellEdges(c) {
			l := m.EdgeLen(e[0], e[1])
			if l > lmax {
				lmax = l
				ex = m.Verts[e[1]].C[0] - m.Verts[e[0]].C[0]
				ey = m.Verts[e[1]].C[1] - m.Verts[e[0]].C[1]
			}
			if l < lmin {
				lmin = l
			}
		}
		orientation[i] = math.Atan2(ey, ex)
		if lmin > 0 {
			anisotropy[i] = lmax / lmin
		}
	}
	features["size"] = size
	features["orientation"] = orientation
	features["anisotropy"] = anisotropy

	// solution channels
	for _, key := range fwd.Space.Fields {
		vals := make([]float64, ncells)
		for i, c := range m.Cells {
			vals[i] = fwd.CellMean(key, c)
		}
		features[io.Sf("forward_%s", key)] = vals
	}
	for _, key := range adj.Space.Fields {
		vals := make([]float64, ncells)
		for i, c := range m.Cells {
			vals[i] = adj.CellMean(key, c)
		}
		features[io.Sf("adjoint_%s", key)] = vals
	}

	// physics channels
	for name, value := range setup.FeatureChannels() {
		vals := make([]float64, ncells)
		for i := range vals {
			vals[i] = value
		}
		features[io.Sf("physics_%s", name)] = vals
	}
	return
}

// ValidateTarget aborts the run on any non-finite target value. Silently training on
// corrupted indicator data must be impossible, so this is fatal and fires before any
// feature or target file of the current iteration is written.
func ValidateTarget(target []float64) {
	for i, v := range target {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			chk.Panic("target array contains non-finite value %v at entry %d", v, i)
		}
	}
}
