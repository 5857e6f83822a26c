// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "sync"

// ForRows runs fn over the index chunks of [0,n) using nw worker goroutines.
// With one worker, or when the range is too small to be worth splitting, fn
// runs inline over the whole range. fn must be safe for concurrent calls on
// disjoint chunks.
func ForRows(n, nw int, fn func(lo, hi int)) {
	if nw <= 1 || n < 2*nw {
		fn(0, n)
		return
	}
	chunk := (n + nw - 1) / nw
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
