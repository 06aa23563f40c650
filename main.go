// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/kadaso/rockstress/ana"
	"github.com/kadaso/rockstress/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	sigx := io.ArgToFloat(0, 90.0)
	sigy := io.ArgToFloat(1, -60.0)
	sigxy := io.ArgToFloat(2, 20.0)
	npts := io.ArgToInt(3, 361)
	savefig := io.ArgToBool(4, false)
	show := io.ArgToBool(5, true)
	simfn := io.ArgToString(6, "")

	// message
	io.PfWhite("\nRockStress -- Analysis of rock stresses with the 2D Mohr circle\n\n")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"normal stress along x", "sigx", sigx,
		"normal stress along y", "sigy", sigy,
		"shear stress", "sigxy", sigxy,
		"number of circle points", "npts", npts,
		"save figure", "savefig", savefig,
		"show figure", "show", show,
		"sim file overriding stresses", "simfn", simfn,
	))

	// sim file
	dirout := "/tmp/rockstress"
	fnkey := "mohr_circle"
	if simfn != "" {
		if io.FnExt(simfn) == "" {
			simfn += ".sim"
		}
		dat := inp.ReadState(simfn)
		sigx, sigy, sigxy = dat.Sigx, dat.Sigy, dat.Sigxy
		npts = dat.Npts
		dirout = dat.DirOut
		fnkey = dat.Key
		if dat.Desc != "" {
			io.Pf("%s\n", dat.Desc)
		}
	}

	// stress state
	var sol ana.MohrCircle
	sol.Set(sigx, sigy, sigxy)
	sol.PrintStressState()

	// plot Mohr circle
	if npts < 2 {
		chk.Panic("number of circle points must be at least 2. npts=%d is invalid", npts)
	}
	plt.Reset(true, &plt.A{Prop: 0.9, WidthPt: 500, Dpi: 150})
	sol.PlotCircle(npts)
	if savefig {
		plt.Save(dirout, fnkey)
	}
	if show {
		plt.Show()
	}
}
