package zone

import (
	"math/bits"
	"slices"
)

// BitmapZone is the mutable dense representation: one bit per cell over a
// fixed rectangular window, packed into 64-bit words row by row. It is the
// right choice for hot loops doing many region mutations, where
// allocating a new zone per operation would dominate: union, intersection,
// difference and translation all work in place.
//
// Coordinates outside the window are simply not contained and setting them
// is a no-op, never an error. A BitmapZone must be confined to one owner
// at a time; it provides no internal synchronization.
type BitmapZone struct {
	x, y int // window origin (top-left cell)
	w, h int
	wpr  int // words per row
	bits []uint64
	size int // cached population count, maintained on every mutation
	m    metrics
}

// NewBitmap allocates an empty bitmap zone over the w×h window whose
// top-left cell is (x,y). Non-positive dimensions yield a zero-area
// window.
func NewBitmap(x, y, w, h int) *BitmapZone {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	wpr := (w + 63) / 64
	b := &BitmapZone{x: x, y: y, w: w, h: h, wpr: wpr, bits: make([]uint64, wpr*h)}
	tracer().Debugf("bitmap zone: %dx%d window at (%d,%d), %d words", w, h, x, y, len(b.bits))
	return b
}

// BitmapFromCells allocates a bitmap zone over the bounding window of
// cells and sets each of them. Duplicates collapse naturally.
func BitmapFromCells(cells []Cell) *BitmapZone {
	if len(cells) == 0 {
		return NewBitmap(0, 0, 0, 0)
	}
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	b := NewBitmap(minX, minY, maxX-minX+1, maxY-minY+1)
	for _, c := range cells {
		b.Set(c.X, c.Y)
	}
	return b
}

// index resolves (x,y) to a word index and bit mask; ok is false outside
// the window.
func (b *BitmapZone) index(x, y int) (word int, mask uint64, ok bool) {
	if x < b.x || y < b.y || x >= b.x+b.w || y >= b.y+b.h {
		return 0, 0, false
	}
	cx, cy := x-b.x, y-b.y
	return cy*b.wpr + cx>>6, 1 << (cx & 63), true
}

// Set marks cell (x,y) as a member. Out-of-window cells are ignored.
func (b *BitmapZone) Set(x, y int) {
	i, mask, ok := b.index(x, y)
	if !ok || b.bits[i]&mask != 0 {
		return
	}
	b.bits[i] |= mask
	b.size++
	b.m.invalidate()
}

// Unset removes cell (x,y). Out-of-window cells are ignored.
func (b *BitmapZone) Unset(x, y int) {
	i, mask, ok := b.index(x, y)
	if !ok || b.bits[i]&mask == 0 {
		return
	}
	b.bits[i] &^= mask
	b.size--
	b.m.invalidate()
}

// Clear removes every cell, keeping the window and its allocation.
func (b *BitmapZone) Clear() {
	for i := range b.bits {
		b.bits[i] = 0
	}
	b.size = 0
	b.m.invalidate()
}

func (b *BitmapZone) Empty() bool {
	return b.size == 0
}

func (b *BitmapZone) Size() int {
	return b.size
}

func (b *BitmapZone) Contains(x, y int) bool {
	i, mask, ok := b.index(x, y)
	return ok && b.bits[i]&mask != 0
}

// All scans the window row by row; within a row, set bits are extracted
// word-wise, so the result is in row-major order.
func (b *BitmapZone) All() []Cell {
	cells := make([]Cell, 0, b.size)
	for cy := 0; cy < b.h; cy++ {
		for wi := 0; wi < b.wpr; wi++ {
			word := b.bits[cy*b.wpr+wi]
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				word &= word - 1
				cells = append(cells, Cell{X: b.x + wi<<6 + bit, Y: b.y + cy})
			}
		}
	}
	return cells
}

func (b *BitmapZone) MinX() int {
	if b.size == 0 {
		return None
	}
	minC := b.w
	for cy := 0; cy < b.h; cy++ {
		for wi := 0; wi < b.wpr; wi++ {
			if word := b.bits[cy*b.wpr+wi]; word != 0 {
				if cx := wi<<6 + bits.TrailingZeros64(word); cx < minC {
					minC = cx
				}
				break
			}
		}
	}
	return b.x + minC
}

func (b *BitmapZone) MaxX() int {
	if b.size == 0 {
		return None
	}
	maxC := -1
	for cy := 0; cy < b.h; cy++ {
		for wi := b.wpr - 1; wi >= 0; wi-- {
			if word := b.bits[cy*b.wpr+wi]; word != 0 {
				if cx := wi<<6 + 63 - bits.LeadingZeros64(word); cx > maxC {
					maxC = cx
				}
				break
			}
		}
	}
	return b.x + maxC
}

func (b *BitmapZone) MinY() int {
	if b.size == 0 {
		return None
	}
	for cy := 0; cy < b.h; cy++ {
		if b.rowOccupied(cy) {
			return b.y + cy
		}
	}
	return None
}

func (b *BitmapZone) MaxY() int {
	if b.size == 0 {
		return None
	}
	for cy := b.h - 1; cy >= 0; cy-- {
		if b.rowOccupied(cy) {
			return b.y + cy
		}
	}
	return None
}

func (b *BitmapZone) rowOccupied(cy int) bool {
	row := b.bits[cy*b.wpr : (cy+1)*b.wpr]
	for _, word := range row {
		if word != 0 {
			return true
		}
	}
	return false
}

// Width returns the cached bounding-box width, None when empty. The cache
// is dropped on every mutation and rebuilt on the next read.
func (b *BitmapZone) Width() int {
	w, _ := b.m.extents(b)
	return w
}

// Height returns the cached bounding-box height, None when empty.
func (b *BitmapZone) Height() int {
	_, h := b.m.extents(b)
	return h
}

// Center returns the cached centroid; false when empty.
func (b *BitmapZone) Center() (Cell, bool) {
	return b.m.centroid(b)
}

// sameWindow reports whether o covers exactly the same window, the
// precondition for the word-parallel set-algebra paths.
func (b *BitmapZone) sameWindow(o *BitmapZone) bool {
	return b.x == o.x && b.y == o.y && b.w == o.w && b.h == o.h
}

// UnionWith adds every cell of o that falls inside the window. Another
// bitmap over the same window is merged word by word; any other zone falls
// back to per-cell sets.
func (b *BitmapZone) UnionWith(o Zone) {
	if ob, ok := o.(*BitmapZone); ok && b.sameWindow(ob) {
		assert(len(b.bits) == len(ob.bits), "same window, different word count")
		size := 0
		for i := range b.bits {
			b.bits[i] |= ob.bits[i]
			size += bits.OnesCount64(b.bits[i])
		}
		b.size = size
		b.m.invalidate()
		return
	}
	for _, c := range o.All() {
		b.Set(c.X, c.Y)
	}
}

// IntersectWith removes every cell not also in o.
func (b *BitmapZone) IntersectWith(o Zone) {
	if ob, ok := o.(*BitmapZone); ok && b.sameWindow(ob) {
		size := 0
		for i := range b.bits {
			b.bits[i] &= ob.bits[i]
			size += bits.OnesCount64(b.bits[i])
		}
		b.size = size
		b.m.invalidate()
		return
	}
	for _, c := range b.All() {
		if !o.Contains(c.X, c.Y) {
			b.Unset(c.X, c.Y)
		}
	}
}

// DifferenceWith removes every cell of o.
func (b *BitmapZone) DifferenceWith(o Zone) {
	if ob, ok := o.(*BitmapZone); ok && b.sameWindow(ob) {
		size := 0
		for i := range b.bits {
			b.bits[i] &^= ob.bits[i]
			size += bits.OnesCount64(b.bits[i])
		}
		b.size = size
		b.m.invalidate()
		return
	}
	for _, c := range o.All() {
		b.Unset(c.X, c.Y)
	}
}

// Shift translates the zone in place by (dx,dy). The whole window moves
// with its cells, so no bits change and no cell is clipped.
func (b *BitmapZone) Shift(dx, dy int) {
	b.x += dx
	b.y += dy
	b.m.invalidate()
}

// Translate returns a shifted copy that shares nothing with b, so the
// original may keep mutating.
func (b *BitmapZone) Translate(dx, dy int) Zone {
	return &BitmapZone{
		x: b.x + dx, y: b.y + dy,
		w: b.w, h: b.h, wpr: b.wpr,
		bits: slices.Clone(b.bits),
		size: b.size,
	}
}
