// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package comm implements the collective operations connecting the ranks of a
// run. Two interchangeable backends exist: an MPI-backed group for multi
// process runs and an in-process group whose ranks are goroutines, used by
// single process runs and by tests.
package comm

// Group is the set of collective operations the engine needs from a rank
// group. All methods are synchronization points: every rank of the group must
// call them in the same order with compatible arguments.
type Group interface {

	// identity
	Rank() int // this rank, from 0
	Size() int // number of ranks

	// synchronization
	Barrier()

	// BcastFloats broadcasts x from the root rank; on the other ranks x is
	// overwritten. All ranks must pass slices of equal length.
	BcastFloats(x []float64, root int)

	// SumFloats sums src element-wise across all ranks into dst on the root
	// rank. dst and src must be distinct slices of equal length.
	SumFloats(dst, src []float64, root int)

	// AllSumFloats sums src element-wise across all ranks into dst on every
	// rank. dst and src must be distinct slices of equal length.
	AllSumFloats(dst, src []float64)

	// Exchange delivers send[r] to rank r, filling recv[r] with the block
	// sent by rank r. Both boards must have one entry per rank and the
	// lengths of matching blocks must agree pairwise. Empty blocks are
	// allowed and exchanged as no-ops.
	Exchange(send, recv [][]float64)
}
