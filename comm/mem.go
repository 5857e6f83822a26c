// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// memHub is the state shared by the ranks of one in-process group
type memHub struct {
	size   int
	mu     sync.Mutex
	cond   *sync.Cond
	count  int             // ranks arrived at the current barrier
	phase  int             // barrier generation
	views  [][]float64     // per-rank posted slice views
	boards [][][]float64   // per-rank posted exchange boards
}

// MemGroup is one rank of an in-process group. The ranks are goroutines
// sharing a hub; collectives move data through posted slice views between two
// barriers.
type MemGroup struct {
	hub  *memHub
	rank int
}

// NewMemGroups creates the rank handles of an in-process group of the given
// size. The caller runs one goroutine per handle.
func NewMemGroups(size int) (grps []*MemGroup) {
	if size < 1 {
		chk.Panic("group size must be positive. size=%d is invalid", size)
	}
	hub := &memHub{
		size:   size,
		views:  make([][]float64, size),
		boards: make([][][]float64, size),
	}
	hub.cond = sync.NewCond(&hub.mu)
	grps = make([]*MemGroup, size)
	for rank := 0; rank < size; rank++ {
		grps[rank] = &MemGroup{hub: hub, rank: rank}
	}
	return
}

// Run executes fn on np in-process ranks and waits for all of them. The first
// error (or recovered panic) among the ranks is returned.
func Run(np int, fn func(grp *MemGroup) error) (err error) {
	grps := NewMemGroups(np)
	errs := make([]error, np)
	var wg sync.WaitGroup
	for i := range grps {
		wg.Add(1)
		go func(grp *MemGroup) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[grp.rank] = chk.Err("rank %d failed: %v", grp.rank, r)
				}
			}()
			errs[grp.rank] = fn(grp)
		}(grps[i])
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return
}

// Rank returns this rank
func (o *MemGroup) Rank() int { return o.rank }

// Size returns the number of ranks in the group
func (o *MemGroup) Size() int { return o.hub.size }

// Barrier blocks until every rank of the group arrives
func (o *MemGroup) Barrier() {
	h := o.hub
	h.mu.Lock()
	ph := h.phase
	h.count++
	if h.count == h.size {
		h.count = 0
		h.phase++
		h.cond.Broadcast()
	} else {
		for ph == h.phase {
			h.cond.Wait()
		}
	}
	h.mu.Unlock()
}

// BcastFloats broadcasts x from root; the other ranks copy into their x
func (o *MemGroup) BcastFloats(x []float64, root int) {
	h := o.hub
	h.views[o.rank] = x
	o.Barrier()
	if o.rank != root {
		copy(x, h.views[root])
	}
	o.Barrier()
}

// SumFloats sums src across ranks into dst on root
func (o *MemGroup) SumFloats(dst, src []float64, root int) {
	h := o.hub
	h.views[o.rank] = src
	o.Barrier()
	if o.rank == root {
		for i := range dst {
			dst[i] = 0
		}
		for r := 0; r < h.size; r++ {
			for i, v := range h.views[r] {
				dst[i] += v
			}
		}
	}
	o.Barrier()
}

// AllSumFloats sums src across ranks into dst on every rank
func (o *MemGroup) AllSumFloats(dst, src []float64) {
	h := o.hub
	h.views[o.rank] = src
	o.Barrier()
	for i := range dst {
		dst[i] = 0
	}
	for r := 0; r < h.size; r++ {
		for i, v := range h.views[r] {
			dst[i] += v
		}
	}
	o.Barrier()
}

// Exchange delivers send[r] to rank r and fills recv[r] from rank r
func (o *MemGroup) Exchange(send, recv [][]float64) {
	h := o.hub
	h.boards[o.rank] = send
	o.Barrier()
	for r := 0; r < h.size; r++ {
		copy(recv[r], h.boards[r][o.rank])
	}
	o.Barrier()
}
