// Package zoneimage converts zones to and from image masks. It is a thin
// adapter: the zone core knows nothing about images, and image handling
// stays out of the geometry algorithms.
//
// One grid cell maps to one pixel, with cell (x,y) at pixel (x,y); Mask
// and FromAlpha round-trip the exact cell set. DrawScaled renders cells as
// square pixel blocks for visualization.
package zoneimage

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/smelc/zone"
)

// Opaque is the alpha value Mask assigns to member cells.
const Opaque = 0xFF

// Mask renders z into an alpha mask covering its bounding box: member
// cells are fully opaque, everything else fully transparent. The empty
// zone yields an empty image.
func Mask(z zone.Zone) *image.Alpha {
	if z.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}
	img := image.NewAlpha(image.Rect(z.MinX(), z.MinY(), z.MaxX()+1, z.MaxY()+1))
	for _, c := range z.All() {
		img.SetAlpha(c.X, c.Y, color.Alpha{A: Opaque})
	}
	return img
}

// FromAlpha builds a zone from every pixel of img whose alpha is at least
// threshold. A threshold of 0 selects every pixel of the bounds.
func FromAlpha(img *image.Alpha, threshold uint8) zone.Zone {
	bounds := img.Bounds()
	var cells []zone.Cell
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.AlphaAt(x, y).A >= threshold {
				cells = append(cells, zone.Cell{X: x, Y: y})
			}
		}
	}
	return zone.NewList(cells...)
}

// DrawScaled paints z onto dst in the given color, rendering each cell as
// a scale×scale pixel block; cell (x,y) covers the block whose top-left
// pixel is (x*scale, y*scale). A non-positive scale draws nothing.
func DrawScaled(dst draw.Image, z zone.Zone, scale int, c color.Color) {
	if z.Empty() || scale <= 0 {
		return
	}
	mask := Mask(z)
	mb := mask.Bounds()
	target := image.Rect(mb.Min.X*scale, mb.Min.Y*scale, mb.Max.X*scale, mb.Max.Y*scale)
	scaled := image.NewAlpha(target)
	xdraw.NearestNeighbor.Scale(scaled, target, mask, mb, xdraw.Src, nil)
	draw.DrawMask(dst, target, image.NewUniform(c), image.Point{}, scaled, target.Min, draw.Over)
}
