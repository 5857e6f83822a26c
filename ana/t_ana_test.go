// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_decay01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decay01. Runge-Kutta decay factors")

	lam, dt := 2.0, 0.1
	x := lam * dt
	chk.Float64(tst, "ord=1", 1e-15, RKDecay(lam, dt, 1), 1.0-x)
	chk.Float64(tst, "ord=2", 1e-15, RKDecay(lam, dt, 2), 1.0-x+x*x/2.0)
	chk.Float64(tst, "ord=3", 1e-15, RKDecay(lam, dt, 3), 1.0-x+x*x/2.0-x*x*x/6.0)
	chk.Float64(tst, "ord=4", 1e-15, RKDecay(lam, dt, 4), 1.0-x+x*x/2.0-x*x*x/6.0+x*x*x*x/24.0)

	// the factor approaches the exponential as the order grows
	e := math.Exp(-x)
	d4 := math.Abs(RKDecay(lam, dt, 4) - e)
	d2 := math.Abs(RKDecay(lam, dt, 2) - e)
	if d4 >= d2 {
		tst.Errorf("ord=4 must be closer to exp than ord=2: %g >= %g", d4, d2)
		return
	}

	chk.Float64(tst, "three steps", 1e-15, RKDecayN(lam, dt, 2, 3), math.Pow(RKDecay(lam, dt, 2), 3))
}

func Test_alfven01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("alfven01. travelling wave along a uniform field")

	w := AlfvenWave{B0: 2.0, Kx: 3, Psi0: complex(0.7, -0.2)}
	chk.Float64(tst, "omega", 1e-15, w.Omega(), 6.0)

	// initial state
	if w.Psi(0) != w.Psi0 {
		tst.Errorf("psi(0) must be psi0")
		return
	}
	if w.Az(0) != 0 {
		tst.Errorf("az(0) must be zero")
		return
	}

	// the pair exchanges energy but conserves the total
	p0 := cmplx.Abs(w.Psi0)
	for _, t := range []float64{0.1, 0.25, 1.0, 3.7} {
		tot := math.Sqrt(math.Pow(cmplx.Abs(w.Psi(t)), 2) + math.Pow(cmplx.Abs(w.Az(t)), 2))
		chk.Float64(tst, "energy", 1e-14, tot, p0)
	}

	// a quarter period moves everything to the flux function
	tq := math.Pi / 2.0 / w.Omega()
	chk.Float64(tst, "psi at quarter period", 1e-14, cmplx.Abs(w.Psi(tq)), 0)
	chk.Float64(tst, "az at quarter period", 1e-14, cmplx.Abs(w.Az(tq)), p0)
}
