/*
Package zone implements finite regions of an integer 2D grid.

A zone is a finite, possibly-empty set of grid cells. The package defines a
small capability contract (the Zone interface) that every storage
representation supplies natively, a library of geometry algorithms derived
purely from that contract (containment, intersection, bounding box,
centroid, border, dilation, translation), and three representations with
different memory and mutability tradeoffs:

  - ListZone: an ordered cell slice, the O(n) correctness baseline
  - CompressedZone: immutable run-length encoded rows, compact for large
    mostly-contiguous areas
  - BitmapZone: a mutable bit-per-cell window for high-throughput in-place
    set algebra

All three answer every contract and derived operation identically for the
same cell set; they differ only in cost. Derived metrics (width, height,
center) are computed lazily and memoized; the mutable bitmap representation
invalidates its cache on every mutation.
*/
package zone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'zone'
func tracer() tracing.Trace {
	return tracing.Select("zone")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
