// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ResFile is a growing per-run result file: one file per quantity per run, opened
// once, appended to every iteration and explicitly closed on all exit paths
type ResFile struct {
	Path string // complete filename path
	fil  *os.File
	enc  Encoder
	nrec int
}

// NewResFile creates (truncating any previous run's file) a result file at
// <dir>/<fnkey>.<enctype>
func NewResFile(dir, fnkey, enctype string) (o *ResFile, err error) {
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return nil, chk.Err("cannot create output directory <%s>:\n%v", dir, err)
	}
	o = new(ResFile)
	o.Path = filepath.Join(dir, io.Sf("%s.%s", fnkey, enctype))
	o.fil, err = os.Create(o.Path)
	if err != nil {
		return nil, chk.Err("cannot create result file <%s>:\n%v", o.Path, err)
	}
	o.enc = GetEncoder(o.fil, enctype)
	return
}

// Append encodes one record onto the file
func (o *ResFile) Append(record interface{}) (err error) {
	err = o.enc.Encode(record)
	if err != nil {
		return chk.Err("cannot append record to <%s>:\n%v", o.Path, err)
	}
	o.nrec++
	return
}

// Nrec returns the number of records appended so far
func (o *ResFile) Nrec() int { return o.nrec }

// Close flushes and closes the file
func (o *ResFile) Close() error {
	return o.fil.Close()
}

// ResultSet groups the per-quantity result files of one adaptation run
type ResultSet struct {
	Forward   *ResFile // forward solution dofs
	Adjoint   *ResFile // adjoint solution dofs
	Estimator *ResFile // dual-weighted-residual indicator
	Metric    *ResFile // raw metric tensors
	Mesh      *ResFile // mesh vertex coordinates
}

// NewResultSet opens the five per-quantity result files under dir
func NewResultSet(dir, enctype string) (o *ResultSet, err error) {
	o = new(ResultSet)
	for _, q := range []struct {
		fnkey string
		dst   **ResFile
	}{
		{"forward", &o.Forward},
		{"adjoint", &o.Adjoint},
		{"estimator", &o.Estimator},
		{"metric", &o.Metric},
		{"mesh", &o.Mesh},
	} {
		*q.dst, err = NewResFile(dir, q.fnkey, enctype)
		if err != nil {
			o.Close()
			return nil, err
		}
	}
	return
}

// Close closes all files of the set, returning the first error
func (o *ResultSet) Close() (err error) {
	for _, f := range []*ResFile{o.Forward, o.Adjoint, o.Estimator, o.Metric, o.Mesh} {
		if f == nil {
			continue
		}
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}
	return
}
