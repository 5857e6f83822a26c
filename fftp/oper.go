// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fftp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/AlexJamesWright/GHOST/field"
)

// Derivk writes the spectral derivative of s along dir into res: each mode is
// multiplied by i·k, with k the wavenumber along the first (dir=0) or second
// (dir=1) axis. Purely local, no communication.
func (o *Plan) Derivk(s *field.Spectral, dir int, res *field.Spectral) {
	n := o.Dec.N
	switch dir {
	case 0:
		field.ForRows(o.Dec.Ni(), o.Nw, func(lo, hi int) {
			for ci := lo; ci < hi; ci++ {
				kx := o.G.Ka[o.Dec.Ista+ci]
				for j := 0; j < n; j++ {
					v := s.C[ci][j]
					res.C[ci][j] = complex(-kx*imag(v), kx*real(v))
				}
			}
		})
	case 1:
		field.ForRows(o.Dec.Ni(), o.Nw, func(lo, hi int) {
			for ci := lo; ci < hi; ci++ {
				for j := 0; j < n; j++ {
					ky := o.G.Ka[j]
					v := s.C[ci][j]
					res.C[ci][j] = complex(-ky*imag(v), ky*real(v))
				}
			}
		})
	default:
		chk.Panic("direction must be 0 or 1. dir=%d is invalid", dir)
	}
}

// Laplak writes the spectral Laplacian of s into res: each mode is multiplied
// by -k²
func (o *Plan) Laplak(s *field.Spectral, res *field.Spectral) {
	n := o.Dec.N
	field.ForRows(o.Dec.Ni(), o.Nw, func(lo, hi int) {
		for ci := lo; ci < hi; ci++ {
			for j := 0; j < n; j++ {
				res.C[ci][j] = -complex(o.G.Ka2[ci][j], 0) * s.C[ci][j]
			}
		}
	})
}
