// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling: numeric array files for training data and
// per-run growing result files for visualization
package out

import (
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveArray saves a numeric array to <dir>/<fnkey>.<enctype>, overwriting any
// previous run's file
func SaveArray(dir, fnkey, enctype string, vals []float64, verbose bool) (err error) {
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return chk.Err("cannot create data directory <%s>:\n%v", dir, err)
	}
	fn := filepath.Join(dir, io.Sf("%s.%s", fnkey, enctype))
	fil, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create array file <%s>:\n%v", fn, err)
	}
	defer func() {
		cerr := fil.Close()
		if err == nil {
			err = cerr
		}
	}()
	err = GetEncoder(fil, enctype).Encode(vals)
	if err != nil {
		return chk.Err("cannot encode array file <%s>:\n%v", fn, err)
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// LoadArray loads a numeric array written by SaveArray
func LoadArray(dir, fnkey, enctype string) (vals []float64, err error) {
	fn := filepath.Join(dir, io.Sf("%s.%s", fnkey, enctype))
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open array file <%s>:\n%v", fn, err)
	}
	defer fil.Close()
	err = GetDecoder(fil, enctype).Decode(&vals)
	if err != nil {
		return nil, chk.Err("cannot decode array file <%s>:\n%v", fn, err)
	}
	return
}

// filename keys ///////////////////////////////////////////////////////////////////////////////////

// FeatureKey returns the filename key of a feature array
func FeatureKey(feature, testCase, approach string, iteration int) string {
	return io.Sf("feature_%s_%s_GO%s_%d", feature, testCase, approach, iteration)
}

// TargetKey returns the filename key of a target array
func TargetKey(testCase, approach string, iteration int) string {
	return io.Sf("target_%s_GO%s_%d", testCase, approach, iteration)
}

// UniformKey returns the filename key of a uniform-refinement series; kind is one of
// "qois", "dofs", "elements"
func UniformKey(kind, testCase string) string {
	return io.Sf("%s_uniform_%s", kind, testCase)
}
