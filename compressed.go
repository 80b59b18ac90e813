package zone

import (
	"fmt"
	"sort"

	"github.com/smelc/zone/grid"
)

// Run is one horizontal span of cells: row Y, columns X0 through X1
// inclusive. A sorted sequence of non-overlapping runs is the run-length
// encoding a CompressedZone is built from.
type Run struct {
	Y, X0, X1 int
}

// CompressedZone is the immutable run-length encoded representation. Cells
// are stored as sorted row-major runs, which makes it the most compact
// choice for large, mostly-contiguous regions (rooms, corridors). No
// operation mutates the encoding in place; Translate re-targets the runs
// into a new value without decoding.
type CompressedZone struct {
	runs []Run
	size int
	minX int
	maxX int
	m    metrics
}

// Compress encodes cells into a compressed zone. The cells are sorted into
// row-major order and merged into maximal runs; duplicates collapse
// naturally during the merge.
func Compress(cells []Cell) *CompressedZone {
	sorted := make([]Cell, len(cells))
	copy(sorted, cells)
	grid.Sort(sorted)
	var runs []Run
	for _, c := range sorted {
		if n := len(runs); n > 0 && runs[n-1].Y == c.Y && c.X <= runs[n-1].X1+1 {
			if c.X > runs[n-1].X1 {
				runs[n-1].X1 = c.X
			}
			continue
		}
		runs = append(runs, Run{Y: c.Y, X0: c.X, X1: c.X})
	}
	return newCompressed(runs)
}

// FromRuns builds a compressed zone from pre-encoded ranges. The runs need
// not be sorted; overlapping or adjacent runs on the same row are merged
// into canonical form. A run with X1 < X0 is a contract violation and
// yields an error.
func FromRuns(runs []Run) (*CompressedZone, error) {
	for _, r := range runs {
		if r.X1 < r.X0 {
			return nil, fmt.Errorf("inverted run on row %d: x %d..%d", r.Y, r.X0, r.X1)
		}
	}
	sorted := make([]Run, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y ||
			(sorted[i].Y == sorted[j].Y && sorted[i].X0 < sorted[j].X0)
	})
	var merged []Run
	for _, r := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Y == r.Y && r.X0 <= merged[n-1].X1+1 {
			if r.X1 > merged[n-1].X1 {
				merged[n-1].X1 = r.X1
			}
			continue
		}
		merged = append(merged, r)
	}
	return newCompressed(merged), nil
}

// NewRect returns the compressed zone covering the w×h rectangle whose
// top-left cell is (x,y): one run per row. A non-positive dimension yields
// the empty zone.
func NewRect(x, y, w, h int) *CompressedZone {
	if w <= 0 || h <= 0 {
		return newCompressed(nil)
	}
	runs := make([]Run, h)
	for i := range runs {
		runs[i] = Run{Y: y + i, X0: x, X1: x + w - 1}
	}
	return newCompressed(runs)
}

// newCompressed finalizes canonical runs: it precomputes size and the X
// extrema, which would otherwise cost a full run scan per query.
func newCompressed(runs []Run) *CompressedZone {
	z := &CompressedZone{runs: runs, minX: None, maxX: None}
	for i, r := range runs {
		assert(r.X0 <= r.X1, "inverted run")
		z.size += r.X1 - r.X0 + 1
		if i == 0 || r.X0 < z.minX {
			z.minX = r.X0
		}
		if i == 0 || r.X1 > z.maxX {
			z.maxX = r.X1
		}
	}
	if z.size > 0 {
		tracer().Debugf("compressed zone: %d cells in %d runs (%.2f cells/run)",
			z.size, len(z.runs), float64(z.size)/float64(len(z.runs)))
	}
	return z
}

func (z *CompressedZone) Empty() bool {
	return z.size == 0
}

func (z *CompressedZone) Size() int {
	return z.size
}

// Contains binary-searches the run boundaries; it never decodes the runs.
func (z *CompressedZone) Contains(x, y int) bool {
	i := sort.Search(len(z.runs), func(i int) bool {
		r := z.runs[i]
		return r.Y > y || (r.Y == y && r.X1 >= x)
	})
	if i == len(z.runs) {
		return false
	}
	r := z.runs[i]
	return r.Y == y && r.X0 <= x
}

// All decodes the runs into an explicit cell sequence, in row-major order.
// The result is rebuilt on every call; the encoding itself stays compact.
func (z *CompressedZone) All() []Cell {
	cells := make([]Cell, 0, z.size)
	for _, r := range z.runs {
		for x := r.X0; x <= r.X1; x++ {
			cells = append(cells, Cell{X: x, Y: r.Y})
		}
	}
	return cells
}

func (z *CompressedZone) MinX() int {
	return z.minX
}

func (z *CompressedZone) MaxX() int {
	return z.maxX
}

func (z *CompressedZone) MinY() int {
	if len(z.runs) == 0 {
		return None
	}
	return z.runs[0].Y
}

func (z *CompressedZone) MaxY() int {
	if len(z.runs) == 0 {
		return None
	}
	return z.runs[len(z.runs)-1].Y
}

// Width returns the memoized bounding-box width, None when empty.
func (z *CompressedZone) Width() int {
	w, _ := z.m.extents(z)
	return w
}

// Height returns the memoized bounding-box height, None when empty.
func (z *CompressedZone) Height() int {
	_, h := z.m.extents(z)
	return h
}

// Center returns the memoized centroid; false when empty.
func (z *CompressedZone) Center() (Cell, bool) {
	return z.m.centroid(z)
}

// Translate shifts every run by (dx,dy) into a new, still-compressed zone.
// Shifting preserves run order and merging, so no re-encoding is needed.
func (z *CompressedZone) Translate(dx, dy int) Zone {
	runs := make([]Run, len(z.runs))
	for i, r := range z.runs {
		runs[i] = Run{Y: r.Y + dy, X0: r.X0 + dx, X1: r.X1 + dx}
	}
	out := &CompressedZone{runs: runs, size: z.size, minX: None, maxX: None}
	if z.size > 0 {
		out.minX = z.minX + dx
		out.maxX = z.maxX + dx
	}
	return out
}

// CompressionStats reports the encoding density of a compressed zone.
type CompressionStats struct {
	Runs  int
	Cells int
}

// CellsPerRun is the mean run length; higher means better compression.
func (s CompressionStats) CellsPerRun() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Cells) / float64(s.Runs)
}

// Stats returns the encoding density of z.
func (z *CompressedZone) Stats() CompressionStats {
	return CompressionStats{Runs: len(z.runs), Cells: z.size}
}
