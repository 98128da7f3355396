// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl holds the model configurations selectable by name at runtime
package mdl

import (
	"sort"

	"github.com/acse-cd321/nn-adapt-fork/adp"
	"github.com/cpmech/gosl/chk"
)

// NumTestCases is the number of tabulated test cases per model
const NumTestCases = 12

// allocators holds all available model configurations
var allocators = make(map[string]func() adp.Setup)

// Register registers a model configuration allocator
func Register(name string, alloc func() adp.Setup) {
	if _, ok := allocators[name]; ok {
		chk.Panic("model %q registered twice", name)
	}
	allocators[name] = alloc
}

// New returns a new setup for a named model
func New(name string) adp.Setup {
	alloc, ok := allocators[name]
	if !ok {
		chk.Panic("cannot find model named %q. available: %v", name, Names())
	}
	return alloc()
}

// IsRegistered tells whether a model name is available
func IsRegistered(name string) bool {
	_, ok := allocators[name]
	return ok
}

// Names returns the sorted names of all registered models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
