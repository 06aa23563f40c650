// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// StressData holds the stress element data read from a (.sim) JSON file
type StressData struct {

	// global information
	Desc   string `json:"desc"`   // description of stress element
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/rockstress

	// stress components
	Sigx  float64 `json:"sigx"`  // normal stress along x
	Sigy  float64 `json:"sigy"`  // normal stress along y
	Sigxy float64 `json:"sigxy"` // shear stress

	// plotting options
	Npts int `json:"npts"` // number of points along the circle perimeter

	// derived
	Key string // simulation key == file name without extension
}

// ReadState reads a stress state from a (.sim) JSON file
//  Note: this function panics on errors; non-numeric or missing input is a
//        caller-side concern handled here, at the input boundary
func ReadState(simfilepath string) *StressData {

	// new data
	var o StressData

	// read file
	b := io.ReadFile(simfilepath)

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadState: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// default values
	if o.Npts < 2 {
		o.Npts = 361
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/rockstress/" + o.Key
	}
	return &o
}
