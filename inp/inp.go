// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements named model parameters and their input from JSON files
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prm holds one named model parameter
type Prm struct {
	N string  `json:"n"` // name of parameter
	V float64 `json:"v"` // value of parameter
}

// Prms holds a set of model parameters
type Prms []*Prm

// Find returns the parameter named n, or nil if the set has no such parameter
func (o Prms) Find(n string) *Prm {
	for _, p := range o {
		if p.N == n {
			return p
		}
	}
	return nil
}

// ReadPrms reads a set of parameters from a JSON file
func ReadPrms(fn string) (prms Prms, err error) {
	b := io.ReadFile(fn)
	err = json.Unmarshal(b, &prms)
	if err != nil {
		return nil, chk.Err("cannot parse parameters file %q:\n%v", fn, err)
	}
	return
}
