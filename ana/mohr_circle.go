// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// MohrCircle implements the 2D Mohr stress circle for a plane-stress state
//
//                τ ^
//                  |     , - ~ - ,
//              , ' |               ' ,
//            ,     |                   ,
//           ,      |                    ,
//      ----,-------+------o-------------,----> σ
//       σ2 ,       |      C             , σ1
//           ,      |                   ,
//            ,     |                  ,
//              ,   |   _         , '
//                  ' - , _ ,  '
type MohrCircle struct {

	// input
	σx  float64 // normal stress along x
	σy  float64 // normal stress along y
	τxy float64 // shear stress

	// derived data
	C      float64 // centre of circle on the σ axis
	R      float64 // radius of circle
	S1     float64 // major (maximum) principal normal stress
	S2     float64 // minor (minimum) principal normal stress
	Tmax   float64 // maximum shear stress == R
	Thetap float64 // orientation of major principal plane [rad]
}

// Init initialises this structure
func (o *MohrCircle) Init(prms dbf.Params) {

	// default values
	o.σx = 90.0  // [MPa]
	o.σy = -60.0 // [MPa]
	o.τxy = 20.0 // [MPa]

	// parameters
	for _, p := range prms {
		switch p.N {
		case "sigx":
			o.σx = p.V
		case "sigy":
			o.σy = p.V
		case "sigxy":
			o.τxy = p.V
		}
	}

	// derived
	o.derive()
}

// Set (re)sets the stress components directly and computes derived values
func (o *MohrCircle) Set(σx, σy, τxy float64) {
	o.σx, o.σy, o.τxy = σx, σy, τxy
	o.derive()
}

// derive computes the centre and radius of the circle, the principal
// normal stresses and the maximum shear stress
func (o *MohrCircle) derive() {
	d := (o.σx - o.σy) / 2.0
	o.C = (o.σx + o.σy) / 2.0
	o.R = math.Sqrt(d*d + o.τxy*o.τxy)
	o.S1 = o.C + o.R
	o.S2 = o.C - o.R
	o.Tmax = o.R
	o.Thetap = math.Atan2(2.0*o.τxy, o.σx-o.σy) / 2.0
}

// Transform computes the normal and shear stresses acting on a plane
// rotated by θ [rad] w.r.t the x-y axes
func (o MohrCircle) Transform(θ float64) (σn, τ float64) {
	σn, _, τ = TransformStresses(θ, o.σx, o.σy, o.τxy)
	return
}

// CalcCirclePoints computes npts equispaced points along the circle
// perimeter, from 0 to 360 degrees inclusive; i.e. the curve is closed
func (o MohrCircle) CalcCirclePoints(npts int) (Sp, Tp []float64) {
	if npts < 2 {
		npts = 361
	}
	Θ := utl.LinSpace(0, 2.0*math.Pi, npts)
	Sp = make([]float64, npts)
	Tp = make([]float64, npts)
	for i := 0; i < npts; i++ {
		Sp[i] = o.C + o.R*math.Cos(Θ[i])
		Tp[i] = o.R * math.Sin(Θ[i])
	}
	return
}

// PrintStressState prints the initial and derived stress state values
func (o MohrCircle) PrintStressState() {
	io.Pf("\nInitial stress state of a point\n")
	io.Pf("===============================\n")
	io.Pf("  sigx   = %13.2f // normal stress along x\n", o.σx)
	io.Pf("  sigy   = %13.2f // normal stress along y\n", o.σy)
	io.Pf("  sigxy  = %13.2f // shear stress\n", o.τxy)
	io.Pf("\nStress values for the given stress element\n")
	io.Pf("==========================================\n")
	io.Pf("  centre = (%.2f, 0.00)\n", o.C)
	io.Pf("  radius = %13.2f\n", o.R)
	io.Pf("  sig1   = %13.2f // maximum normal stress\n", o.S1)
	io.Pf("  sig2   = %13.2f // minimum normal stress\n", o.S2)
	io.Pf("  taumax = %13.2f // maximum shear stress\n", o.Tmax)
	io.Pf("  thetap = %13.2f // major principal plane [deg]\n", o.Thetap*180.0/math.Pi)
}

// PlotCircle plots the Mohr stress circle with the line connecting the
// stress element points and annotations for σ1, σ2, τmax and the centre
func (o MohrCircle) PlotCircle(npts int) {

	// circle perimeter and three-point line of the stress element
	Sp, Tp := o.CalcCirclePoints(npts)
	plt.Plot(Sp, Tp, &plt.A{C: "#497DD1", NoClip: true})
	plt.Plot([]float64{o.σx, o.C, o.σy}, []float64{o.τxy, 0, -o.τxy}, &plt.A{C: "red", M: ".", NoClip: true})

	// annotations
	ofs := 0.02 * o.R
	if ofs < 1e-10 {
		ofs = 1.0
	}
	plt.Text(o.S1+ofs, 0, io.Sf("$\\sigma_1$ = %.2f", o.S1), nil)
	plt.Text(o.S2+ofs, 0, io.Sf("$\\sigma_2$ = %.2f", o.S2), nil)
	plt.Text(o.C, o.Tmax+ofs, io.Sf("$\\tau_{max}$ = %.2f", o.Tmax), nil)
	plt.Text(o.C, ofs, io.Sf("C(%.2f, 0)", o.C), &plt.A{Ha: "center"})

	// settings
	plt.Equal()
	plt.Cross(0, 0, nil)
	plt.Title("Mohr stress circle", &plt.A{Fsz: 12})
	plt.Gll("$\\sigma$", "$\\tau$", nil)
}
