// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "math"

// TransformStresses computes plane-stress components w.r.t a system rotated
// by θ [rad] from given Cartesian components
func TransformStresses(θ, sx, sy, sxy float64) (sn, st, snt float64) {
	si, co := math.Sin(θ), math.Cos(θ)
	ss, cc, cs := si*si, co*co, co*si
	sn = cc*sx + ss*sy + 2.0*cs*sxy
	st = ss*sx + cc*sy - 2.0*cs*sxy
	snt = -cs*sx + cs*sy + (cc-ss)*sxy
	return
}
