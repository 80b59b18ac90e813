package zone

import (
	"math"

	"github.com/smelc/zone/grid"
)

// ContainsCell reports whether c is a member of z.
func ContainsCell(z Zone, c Cell) bool {
	return z.Contains(c.X, c.Y)
}

// ContainsZone reports whether every cell of inner is a member of outer.
// It stops at the first cell of inner that is not. An empty inner zone is
// contained in everything.
func ContainsZone(outer, inner Zone) bool {
	for _, c := range inner.All() {
		if !outer.Contains(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Intersects reports whether a and b share at least one cell. It
// enumerates the smaller of the two zones and probes the larger, bounding
// the cost by min(|a|,|b|) membership tests. Two empty zones, or one empty
// and one non-empty, never intersect.
func Intersects(a, b Zone) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if b.Size() < a.Size() {
		a, b = b, a
	}
	for _, c := range a.All() {
		if b.Contains(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b contain exactly the same cells, regardless
// of representation.
func Equal(a, b Zone) bool {
	if a.Size() != b.Size() {
		return false
	}
	return ContainsZone(a, b)
}

// Width returns MaxX-MinX, or None for an empty zone. A single-cell zone
// has width 0.
func Width(z Zone) int {
	if m, ok := z.(measured); ok {
		return m.Width()
	}
	return widthOf(z)
}

// Height returns MaxY-MinY, or None for an empty zone.
func Height(z Zone) int {
	if m, ok := z.(measured); ok {
		return m.Height()
	}
	return heightOf(z)
}

func widthOf(z Zone) int {
	if z.Empty() {
		return None
	}
	return z.MaxX() - z.MinX()
}

func heightOf(z Zone) int {
	if z.Empty() {
		return None
	}
	return z.MaxY() - z.MinY()
}

// Diagonal returns the Euclidean norm of (width, height). It is derived
// from the (possibly cached) width and height on every call and never
// cached itself. For an empty zone it returns None, mirroring the
// width/height sentinel.
func Diagonal(z Zone) float64 {
	w, h := Width(z), Height(z)
	if w < 0 || h < 0 {
		return float64(None)
	}
	return math.Hypot(float64(w), float64(h))
}

// Center returns the arithmetic mean of all cell coordinates, each axis
// rounded to the nearest integer (halves away from zero). The center is
// not necessarily a member of the zone. The second result is false for an
// empty zone.
func Center(z Zone) (Cell, bool) {
	if c, ok := z.(centered); ok {
		return c.Center()
	}
	return centerOf(z)
}

func centerOf(z Zone) (Cell, bool) {
	all := z.All()
	if len(all) == 0 {
		return Cell{}, false
	}
	var sx, sy int
	for _, c := range all {
		sx += c.X
		sy += c.Y
	}
	n := float64(len(all))
	return Cell{
		X: int(math.Round(float64(sx) / n)),
		Y: int(math.Round(float64(sy) / n)),
	}, true
}

// Translate returns a new zone holding every cell of z shifted by (dx,dy).
// The default strategy materializes a ListZone; the compressed and bitmap
// representations override it and keep their own encoding.
func Translate(z Zone, dx, dy int) Zone {
	if t, ok := z.(translator); ok {
		return t.Translate(dx, dy)
	}
	return translated(z, dx, dy)
}

// TranslateBy is Translate with the offset given as a cell.
func TranslateBy(z Zone, offset Cell) Zone {
	return Translate(z, offset.X, offset.Y)
}

func translated(z Zone, dx, dy int) *ListZone {
	cells := z.All()
	shifted := make([]Cell, len(cells))
	for i, c := range cells {
		shifted[i] = c.Translate(dx, dy)
	}
	// Shifting a duplicate-free set cannot introduce duplicates.
	return newListTrusted(shifted)
}

// ExternalBorder returns the cells 8-adjacent to z but not in z, without
// duplicates. Adjacency follows grid.Outward.
func ExternalBorder(z Zone) []Cell {
	return grid.Border(z.All(), nil)
}

// Extend returns a new zone holding z plus its external border: z dilated
// by one cell.
func Extend(z Zone) Zone {
	cells := z.All()
	border := grid.Border(cells, nil)
	out := make([]Cell, 0, len(cells)+len(border))
	out = append(out, cells...)
	out = append(out, border...)
	return newListTrusted(out)
}

// Union returns a list zone holding every cell of a or b.
func Union(a, b Zone) Zone {
	cells := a.All()
	out := make([]Cell, 0, len(cells)+b.Size())
	out = append(out, cells...)
	for _, c := range b.All() {
		if !a.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return newListTrusted(out)
}

// Intersection returns a list zone holding the cells present in both a
// and b. Like Intersects it enumerates the smaller operand.
func Intersection(a, b Zone) Zone {
	if b.Size() < a.Size() {
		a, b = b, a
	}
	var out []Cell
	for _, c := range a.All() {
		if b.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return newListTrusted(out)
}

// Difference returns a list zone holding the cells of a that are not in b.
func Difference(a, b Zone) Zone {
	var out []Cell
	for _, c := range a.All() {
		if !b.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return newListTrusted(out)
}
