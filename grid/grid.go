// Package grid provides the elementary building blocks for integer-grid
// geometry: the Cell coordinate type, adjacency offsets, canonical cell
// ordering, and the border utility used to compute the externally-adjacent
// cells of an arbitrary cell collection.
package grid

import (
	"fmt"
	"sort"
)

// Cell is an integer (x,y) grid coordinate, the atomic unit of a region.
// Cells are plain comparable values: two cells with equal coordinates are
// interchangeable everywhere.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Translate returns the cell shifted by (dx,dy).
func (c Cell) Translate(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Less reports whether a precedes b in row-major order (by Y, then by X).
// This is the canonical traversal order used by run-length encodings.
func Less(a, b Cell) bool {
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

// Sort orders cells in place into row-major order.
func Sort(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		return Less(cells[i], cells[j])
	})
}

// Outward holds the 8 neighbor offsets of a cell (Moore neighborhood).
// Border adjacency is 8-connected throughout this module: a diagonal
// neighbor counts as adjacent.
var Outward = [8]Cell{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Border returns the cells that are 8-neighbors of some cell in cells but
// are not themselves members. The result contains no duplicates. When
// within is non-nil it acts as a bounding filter: candidate border cells
// for which within returns false are dropped.
//
// The order of the returned cells follows the order of cells and, per
// cell, the order of Outward; callers needing a canonical order should
// Sort the result.
func Border(cells []Cell, within func(Cell) bool) []Cell {
	if len(cells) == 0 {
		return nil
	}
	members := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		members[c] = struct{}{}
	}
	seen := make(map[Cell]struct{})
	border := make([]Cell, 0, len(cells))
	for _, c := range cells {
		for _, d := range Outward {
			n := c.Add(d)
			if _, ok := members[n]; ok {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			if within != nil && !within(n) {
				continue
			}
			seen[n] = struct{}{}
			border = append(border, n)
		}
	}
	return border
}
