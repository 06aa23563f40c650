// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"flag"
	"math"

	"github.com/kadaso/rockstress/ana"
	"github.com/kadaso/rockstress/inp"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// plots the normal and shear stresses acting on planes rotated from 0 to
// 180 degrees, for a stress element given in a sim file
func main() {

	// input data
	simfn := "rock01.sim"
	npts := 181

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		simfn = flag.Arg(0)
	}
	if len(flag.Args()) > 1 {
		npts = io.Atoi(flag.Arg(1))
	}

	// check extension
	if io.FnExt(simfn) == "" {
		simfn += ".sim"
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  simfn = %30s // simulation filename\n", simfn)
	io.Pf("  npts  = %30v // number of points\n", npts)
	io.Pf("\n")

	// load stress state
	dat := inp.ReadState(simfn)
	var sol ana.MohrCircle
	sol.Set(dat.Sigx, dat.Sigy, dat.Sigxy)
	sol.PrintStressState()

	// compute stresses on rotated planes
	Θ := utl.LinSpace(0, math.Pi, npts)
	D := make([]float64, npts)
	Sn := make([]float64, npts)
	Tt := make([]float64, npts)
	for i := 0; i < npts; i++ {
		D[i] = Θ[i] * 180.0 / math.Pi
		Sn[i], Tt[i] = sol.Transform(Θ[i])
	}

	// plot
	plt.Reset(true, &plt.A{Prop: 0.75, WidthPt: 450, Dpi: 150})
	plt.Plot(D, Sn, &plt.A{C: "b", L: "$\\sigma_n$", NoClip: true})
	plt.Plot(D, Tt, &plt.A{C: "r", L: "$\\tau$", NoClip: true})
	plt.PlotOne(sol.Thetap*180.0/math.Pi, sol.S1, &plt.A{C: "k", M: "o", NoClip: true})
	plt.Cross(0, 0, nil)
	plt.Gll("$\\theta$ [deg]", "stresses", nil)
	plt.Save(dat.DirOut, dat.Key+"_transform")
	plt.Show()
}
