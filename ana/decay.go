// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the solver
package ana

import "math"

// RKDecay returns the one-step amplification factor of a pure decay mode
// under the low-storage Runge-Kutta recursion of order ord:
//
//   du
//   ── = -λ u      =>      u(t+dt) = fac・u(t)
//   dt
//
//   fac = Σ (-λ dt)ᵐ / m!       m = 0, ..., ord
//
func RKDecay(lam, dt float64, ord int) (fac float64) {
	fac = 1.0
	term := 1.0
	for m := 1; m <= ord; m++ {
		term *= -lam * dt / float64(m)
		fac += term
	}
	return
}

// RKDecayN returns the amplification factor after nsteps steps
func RKDecayN(lam, dt float64, ord, nsteps int) float64 {
	return math.Pow(RKDecay(lam, dt, ord), float64(nsteps))
}
