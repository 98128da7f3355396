// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strconv"

	"github.com/acse-cd321/nn-adapt-fork/adp"
	"github.com/acse-cd321/nn-adapt-fork/inp"
	"github.com/acse-cd321/nn-adapt-fork/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

var (
	// approach and backends
	approach    string
	solverName  string
	adaptorName string

	// convergence criteria
	miniter  int
	maxiter  int
	elemRtol float64
	qoiRtol  float64

	// complexity ramp
	baseComplexity   float64
	targetComplexity float64

	// flags
	optimise  bool
	noOutputs bool
	transfer  bool
	enctype   string
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <model> <test_case>",
	Short: "run a test case through the goal-oriented adaptation loop",
	Long: `Run a given test case of a model using goal-oriented mesh adaptation in a
fixed point iteration loop. This is the command where feature data is
harvested to train the neural network on.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdapt,
}

func init() {
	adaptCmd.Flags().StringVar(&approach, "approach", "anisotropic", "mesh adaptation approach: isotropic or anisotropic")
	adaptCmd.Flags().StringVar(&solverName, "solver", "goalie", "goal-oriented solve/estimate backend")
	adaptCmd.Flags().StringVar(&adaptorName, "adaptor", "uniform", "mesh adaptation backend")
	adaptCmd.Flags().IntVar(&miniter, "miniter", 3, "minimum number of iterations")
	adaptCmd.Flags().IntVar(&maxiter, "maxiter", 35, "maximum number of iterations")
	adaptCmd.Flags().Float64Var(&elemRtol, "element_rtol", 0.005, "relative tolerance for element count convergence")
	adaptCmd.Flags().Float64Var(&qoiRtol, "qoi_rtol", 0.001, "relative tolerance for QoI convergence")
	adaptCmd.Flags().Float64Var(&baseComplexity, "base_complexity", 200.0, "base metric complexity of the ramp")
	adaptCmd.Flags().Float64Var(&targetComplexity, "target_complexity", 4000.0, "target metric complexity of the ramp")
	adaptCmd.Flags().BoolVar(&optimise, "optimise", false, "skip feature harvesting and file outputs")
	adaptCmd.Flags().BoolVar(&noOutputs, "no_outputs", false, "turn off file outputs")
	adaptCmd.Flags().BoolVar(&transfer, "transfer", false, "carry the forward solution over as the next initial guess")
	adaptCmd.Flags().StringVar(&enctype, "enctype", "gob", "encoding of output files: gob or json")
	rootCmd.AddCommand(adaptCmd)
}

func runAdapt(cmd *cobra.Command, args []string) error {
	model := args[0]

	// integer test cases must be positive; anything else is kept as a string
	// identifier
	testCase := args[1]
	if i, err := strconv.Atoi(testCase); err == nil {
		if i <= 0 {
			return chk.Err("integer test case must be positive. %d is invalid", i)
		}
	}

	// setup
	if !mdl.IsRegistered(model) {
		return chk.Err("cannot find model named %q. available: %v", model, mdl.Names())
	}
	setup := mdl.New(model)
	err := setup.Initialise(testCase)
	if err != nil {
		return err
	}
	mesh, err := inp.ReadMsh(".", setup.MeshPath(testCase))
	if err != nil {
		return err
	}

	// run adaptation loop
	driver := &adp.Driver{
		Setup:   setup,
		Solver:  adp.NewGoalSolver(solverName),
		Adaptor: adp.NewAdaptor(adaptorName),
		TrackerOpts: adp.TrackerOpts{
			Miniter:  miniter,
			Maxiter:  maxiter,
			ElemRtol: elemRtol,
			QoiRtol:  qoiRtol,
		},
		BaseComplexity:   baseComplexity,
		TargetComplexity: targetComplexity,
		Approach:         approach,
		TestCase:         testCase,
		DataDir:          filepath.Join(model, "data"),
		OutputDir:        filepath.Join(model, "outputs", testCase, "GO", approach),
		EncType:          enctype,
		Optimise:         optimise,
		NoOutputs:        noOutputs,
		Transfer:         transfer,
		Verbose:          true,
	}
	_, err = driver.Run(mesh)
	return err
}
