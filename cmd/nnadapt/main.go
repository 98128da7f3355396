// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nnadapt drives goal-oriented mesh adaptation runs that harvest feature/target
// data for neural-network training, and uniform-refinement convergence studies.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nnadapt",
	Short: "goal-oriented mesh adaptation driver and training-data harvester",
	Long: `nnadapt runs a given test case of a model through goal-oriented mesh
adaptation in a fixed point iteration loop, harvesting per-iteration
feature/target data, or through a uniform-refinement convergence study.

The numerically heavy steps (forward/adjoint solves, error estimation, mesh
adaptation) are performed by solve and adapt backends registered at link time.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
