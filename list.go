package zone

// ListZone is the baseline representation: an ordered slice of cells. All
// contract operations are linear scans, which is fine for the small or
// incrementally built regions this representation is meant for. It is the
// target type of the default Translate strategy.
//
// A ListZone is never mutated after construction.
type ListZone struct {
	cells []Cell
	m     metrics
}

// NewList builds a list zone from cells. Duplicates are dropped
// explicitly, keeping the first occurrence, so that the no-duplicates
// invariant holds no matter what the caller passes in; the slice backing
// the zone is always freshly allocated.
func NewList(cells ...Cell) *ListZone {
	out := make([]Cell, 0, len(cells))
	seen := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return &ListZone{cells: out}
}

// newListTrusted wraps cells without copying or de-duplicating. Callers
// guarantee the slice is duplicate-free and not shared.
func newListTrusted(cells []Cell) *ListZone {
	return &ListZone{cells: cells}
}

func (z *ListZone) Empty() bool {
	return len(z.cells) == 0
}

func (z *ListZone) Size() int {
	return len(z.cells)
}

func (z *ListZone) Contains(x, y int) bool {
	for _, c := range z.cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// All returns the cells in insertion order. Callers must not modify the
// returned slice.
func (z *ListZone) All() []Cell {
	return z.cells
}

func (z *ListZone) MinX() int {
	if len(z.cells) == 0 {
		return None
	}
	min := z.cells[0].X
	for _, c := range z.cells[1:] {
		if c.X < min {
			min = c.X
		}
	}
	return min
}

func (z *ListZone) MaxX() int {
	if len(z.cells) == 0 {
		return None
	}
	max := z.cells[0].X
	for _, c := range z.cells[1:] {
		if c.X > max {
			max = c.X
		}
	}
	return max
}

func (z *ListZone) MinY() int {
	if len(z.cells) == 0 {
		return None
	}
	min := z.cells[0].Y
	for _, c := range z.cells[1:] {
		if c.Y < min {
			min = c.Y
		}
	}
	return min
}

func (z *ListZone) MaxY() int {
	if len(z.cells) == 0 {
		return None
	}
	max := z.cells[0].Y
	for _, c := range z.cells[1:] {
		if c.Y > max {
			max = c.Y
		}
	}
	return max
}

// Width returns the memoized bounding-box width, None when empty.
func (z *ListZone) Width() int {
	w, _ := z.m.extents(z)
	return w
}

// Height returns the memoized bounding-box height, None when empty.
func (z *ListZone) Height() int {
	_, h := z.m.extents(z)
	return h
}

// Center returns the memoized centroid; false when empty.
func (z *ListZone) Center() (Cell, bool) {
	return z.m.centroid(z)
}
