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
	numRefinements int
	fwdSolverName  string
	uniformEnctype string
)

var uniformCmd = &cobra.Command{
	Use:   "uniform <model> <test_case>",
	Short: "run a uniform-refinement convergence study",
	Long: `Solve the forward problem of a test case on a hierarchy of uniformly
refined meshes, recording the quantity of interest, DoF count and element
count per refinement level.`,
	Args: cobra.ExactArgs(2),
	RunE: runUniform,
}

func init() {
	uniformCmd.Flags().IntVar(&numRefinements, "num_refinements", 5, "number of mesh refinements")
	uniformCmd.Flags().StringVar(&fwdSolverName, "solver", "goalie", "forward solve backend")
	uniformCmd.Flags().StringVar(&uniformEnctype, "enctype", "gob", "encoding of output files: gob or json")
	rootCmd.AddCommand(uniformCmd)
}

func runUniform(cmd *cobra.Command, args []string) error {

	// validate before any heavy computation begins
	model := args[0]
	if !mdl.IsRegistered(model) {
		return chk.Err("cannot find model named %q. available: %v", model, mdl.Names())
	}
	testCase, err := strconv.Atoi(args[1])
	if err != nil {
		return chk.Err("test case must be an integer. %q is invalid", args[1])
	}
	if testCase < 0 || testCase >= mdl.NumTestCases {
		return chk.Err("test case %d out of range [0,%d)", testCase, mdl.NumTestCases)
	}
	if numRefinements < 0 {
		return chk.Err("number of refinements must be non-negative. %d is invalid", numRefinements)
	}

	// setup
	setup := mdl.New(model)
	err = setup.Initialise(args[1])
	if err != nil {
		return err
	}
	mesh, err := inp.ReadMsh(".", setup.MeshPath(args[1]))
	if err != nil {
		return err
	}

	// run uniform refinement
	solver := adp.NewForwardSolver(fwdSolverName)
	dataDir := filepath.Join(model, "data")
	_, _, _, err = adp.UniformSweep(setup, solver, mesh, numRefinements, dataDir, args[1], uniformEnctype, true)
	return err
}
