package zone

import "github.com/smelc/zone/grid"

// Cell is the grid coordinate type, re-exported from package grid so that
// callers of this package rarely need to import both.
type Cell = grid.Cell

// None is the sentinel returned by axis-extremum, width and height queries
// on an empty zone. It deliberately sits below any coordinate a non-empty
// answer would produce for these queries, so emptiness is distinguishable
// from a single-cell zone (whose width and height are zero).
const None = -1

// Zone is the capability contract of a region: the operations every
// storage representation must supply natively. Everything else (width,
// height, center, containment of another zone, intersection, border,
// dilation, translation) is derived from these by the package-level
// functions and may be overridden per representation for efficiency.
//
// All operations are total, including on the empty zone; none of them
// can fail.
type Zone interface {
	// Empty reports whether the zone contains no cells.
	Empty() bool

	// Size returns the number of cells. It always equals len(All()).
	Size() int

	// Contains reports whether the cell (x,y) is a member.
	Contains(x, y int) bool

	// All returns every cell of the zone. The order is not canonical
	// across representations but is stable across repeated calls on an
	// immutable value. Callers must not modify the returned slice.
	All() []Cell

	// MinX, MaxX, MinY and MaxY return the axis extrema of the cell
	// set, or None for an empty zone.
	MinX() int
	MaxX() int
	MinY() int
	MaxY() int
}

// Optional upgrade interfaces. The derived-operation functions in geom.go
// probe for these and prefer a representation's own (typically memoized or
// structure-preserving) answer over the generic computation.

type measured interface {
	Width() int
	Height() int
}

type centered interface {
	Center() (Cell, bool)
}

type translator interface {
	Translate(dx, dy int) Zone
}

// metrics caches the derived bounding-box extents and centroid of a zone.
// The immutable representations fill it at most once per lifetime; the
// bitmap representation calls invalidate on every mutation.
type metrics struct {
	hasExtents bool
	width      int
	height     int
	hasCenter  bool
	center     Cell
	centerOK   bool
}

func (m *metrics) invalidate() {
	m.hasExtents = false
	m.hasCenter = false
}

func (m *metrics) extents(z Zone) (width, height int) {
	if !m.hasExtents {
		m.width = widthOf(z)
		m.height = heightOf(z)
		m.hasExtents = true
	}
	return m.width, m.height
}

func (m *metrics) centroid(z Zone) (Cell, bool) {
	if !m.hasCenter {
		m.center, m.centerOK = centerOf(z)
		m.hasCenter = true
	}
	return m.center, m.centerOK
}
