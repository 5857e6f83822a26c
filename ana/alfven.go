// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// AlfvenWave gives the linear evolution of a single mode riding a uniform
// magnetic field b0 along the first axis. Without dissipation and with
// a(0) = 0, the coupled pair
//
//   dψ                        da
//   ── = -i b0 kx a           ── = -i b0 kx ψ
//   dt                        dt
//
// oscillates as
//
//   ψ(t) = ψ0 cos(Ω t)        a(t) = -i ψ0 sin(Ω t)        Ω = b0 kx
//
type AlfvenWave struct {
	B0   float64    // uniform field
	Kx   int        // wavenumber along the first axis
	Psi0 complex128 // streamfunction coefficient at t = 0
}

// Omega returns the oscillation frequency
func (o *AlfvenWave) Omega() float64 {
	return o.B0 * float64(o.Kx)
}

// Psi returns the streamfunction coefficient at time t
func (o *AlfvenWave) Psi(t float64) complex128 {
	return o.Psi0 * complex(math.Cos(o.Omega()*t), 0)
}

// Az returns the flux function coefficient at time t
func (o *AlfvenWave) Az(t float64) complex128 {
	return o.Psi0 * complex(0, -math.Sin(o.Omega()*t))
}
