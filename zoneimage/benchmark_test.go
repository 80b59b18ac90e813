package zoneimage

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"github.com/smelc/zone"
)

// discCells enumerates the cells of a filled disc centered in a size×size
// window.
func discCells(size int) []zone.Cell {
	c := float64(size) / 2
	r := float64(size) * 0.45
	var cells []zone.Cell
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if dx*dx+dy*dy <= r*r {
				cells = append(cells, zone.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// BenchmarkMaskDisc renders a disc-shaped bitmap zone into an alpha mask.
func BenchmarkMaskDisc(b *testing.B) {
	sizes := []int{20, 200}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := zone.BitmapFromCells(discCells(size))
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				Mask(z)
			}
		})
	}
}

// BenchmarkVectorDisc rasterises a comparable disc with x/image/vector,
// as a baseline for the cell-grid mask above.
func BenchmarkVectorDisc(b *testing.B) {
	sizes := []int{20, 200}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			c := float32(size) / 2
			radius := float32(size) * 0.45
			src := image.NewUniform(color.Alpha{A: 0xFF})

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircle(r, c, c, radius)
				dst := image.NewAlpha(image.Rect(0, 0, size, size))
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addCircle approximates a circle with four cubic Bézier segments.
func addCircle(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius
	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
