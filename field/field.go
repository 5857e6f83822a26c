// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the distributed containers holding spectral and
// physical representations of the evolved quantities
package field

import (
	"github.com/cpmech/gosl/la"

	"github.com/AlexJamesWright/GHOST/grid"
)

// Spectral holds the Fourier coefficients owned by one rank: the contiguous
// block of columns of the half wavenumber axis assigned by the decomposition.
// C[ci][j] is the mode at global column Ista+ci and second-axis index j. The
// fields represent real quantities, so the boundary column kx=0 carries the
// Hermitian pairing C[0][n-j] = conj(C[0][j]) whenever it is mutated.
type Spectral struct {
	Dec *grid.Decomp   // owership ranges
	C   [][]complex128 // [ni][n] owned columns
}

// Physical holds the real-space rows owned by one rank. R[rj][i] is the value
// at global row Jsta+rj and first-axis index i.
type Physical struct {
	Dec *grid.Decomp // ownership ranges
	R   [][]float64  // [nj][n] owned rows
}

// NewSpectral allocates a zeroed spectral slab for the given decomposition
func NewSpectral(dec *grid.Decomp) (o *Spectral) {
	o = new(Spectral)
	o.Dec = dec
	o.C = make([][]complex128, dec.Ni())
	for ci := range o.C {
		o.C[ci] = make([]complex128, dec.N)
	}
	return
}

// NewPhysical allocates a zeroed physical slab for the given decomposition
func NewPhysical(dec *grid.Decomp) (o *Physical) {
	o = new(Physical)
	o.Dec = dec
	o.R = la.MatAlloc(dec.Nj(), dec.N)
	return
}

// Zero resets all owned modes
func (o *Spectral) Zero() {
	for ci := range o.C {
		for j := range o.C[ci] {
			o.C[ci][j] = 0
		}
	}
}

// Clone allocates a deep copy
func (o *Spectral) Clone() (b *Spectral) {
	b = NewSpectral(o.Dec)
	o.CopyInto(b)
	return
}

// CopyInto copies all owned modes into b, which must share the decomposition
func (o *Spectral) CopyInto(b *Spectral) {
	for ci := range o.C {
		copy(b.C[ci], o.C[ci])
	}
}

// Equal tells whether b holds exactly the same modes
func (o *Spectral) Equal(b *Spectral) bool {
	for ci := range o.C {
		for j := range o.C[ci] {
			if o.C[ci][j] != b.C[ci][j] {
				return false
			}
		}
	}
	return true
}

// SetMode plants the mode (kx,ky) if this rank owns its column. kx must lie
// in [0,n/2]; negative ky wraps to the upper half of the second axis. On the
// boundary column kx=0 the Hermitian partner at -ky receives the conjugate,
// keeping the represented field real.
func (o *Spectral) SetMode(kx, ky int, v complex128) {
	n := o.Dec.N
	if kx < o.Dec.Ista || kx > o.Dec.Iend {
		return
	}
	j := ky
	if j < 0 {
		j += n
	}
	ci := kx - o.Dec.Ista
	o.C[ci][j] = v
	if kx == 0 && j != 0 && n-j != j {
		o.C[ci][n-j] = complex(real(v), -imag(v))
	}
}

// Mode reads the mode (kx,ky); owned reports whether this rank holds it
func (o *Spectral) Mode(kx, ky int) (v complex128, owned bool) {
	n := o.Dec.N
	if kx < o.Dec.Ista || kx > o.Dec.Iend {
		return 0, false
	}
	j := ky
	if j < 0 {
		j += n
	}
	return o.C[kx-o.Dec.Ista][j], true
}

// Zero resets all owned points
func (o *Physical) Zero() {
	for rj := range o.R {
		la.VecFill(o.R[rj], 0)
	}
}
