// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// MpiGroup implements Group on top of the MPI world communicator. The
// broadcast and reduction roots are fixed at rank 0, which is the only root
// the engine uses.
type MpiGroup struct {
	rank int
	size int
}

// NewMpiGroup wraps the MPI world. mpi.Start must have been called.
func NewMpiGroup() (o *MpiGroup) {
	if !mpi.IsOn() {
		chk.Panic("MPI is not on. the in-process group must be used instead")
	}
	return &MpiGroup{rank: mpi.Rank(), size: mpi.Size()}
}

// Rank returns this rank
func (o *MpiGroup) Rank() int { return o.rank }

// Size returns the number of ranks
func (o *MpiGroup) Size() int { return o.size }

// Barrier blocks until every rank arrives
func (o *MpiGroup) Barrier() { mpi.Barrier() }

// BcastFloats broadcasts x from rank 0
func (o *MpiGroup) BcastFloats(x []float64, root int) {
	if root != 0 {
		chk.Panic("the MPI group broadcasts from rank 0 only. root=%d is invalid", root)
	}
	mpi.BcastFromRoot(x)
}

// SumFloats sums src across ranks into dst on rank 0
func (o *MpiGroup) SumFloats(dst, src []float64, root int) {
	if root != 0 {
		chk.Panic("the MPI group reduces to rank 0 only. root=%d is invalid", root)
	}
	mpi.SumToRoot(dst, src)
}

// AllSumFloats sums src across ranks into dst on every rank
func (o *MpiGroup) AllSumFloats(dst, src []float64) {
	mpi.AllReduceSum(dst, src)
}

// Exchange delivers send[r] to rank r and fills recv[r] from rank r. The
// schedule pairs ranks symmetrically round by round; within a pair the lower
// rank sends first, so the blocking point-to-point calls cannot deadlock.
func (o *MpiGroup) Exchange(send, recv [][]float64) {
	copy(recv[o.rank], send[o.rank])
	for round := 0; round < o.size; round++ {
		p := (round - o.rank + o.size) % o.size
		if p == o.rank {
			continue
		}
		if o.rank < p {
			if len(send[p]) > 0 {
				mpi.DblSend(send[p], p)
			}
			if len(recv[p]) > 0 {
				mpi.DblRecv(recv[p], p)
			}
		} else {
			if len(recv[p]) > 0 {
				mpi.DblRecv(recv[p], p)
			}
			if len(send[p]) > 0 {
				mpi.DblSend(send[p], p)
			}
		}
	}
}
