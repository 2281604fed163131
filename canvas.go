// seehuhn.de/go/shapetex - placeholder shape textures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapetex

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/shapetex/internal/raster"
)

// canvas draws outlines into an image.
type canvas struct {
	img *image.RGBA
	ras *raster.Rasterizer
}

// newCanvas allocates a transparent image of the given size.  The
// rasterizer is reset and owned by the canvas until drawing is done.
func newCanvas(ras *raster.Rasterizer, width, height int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	ras.Reset(rect.Rect{URx: float64(width), URy: float64(height)})
	return &canvas{img: img, ras: ras}
}

// fill paints the inside of p.
func (c *canvas) fill(p *path.Data, col color.Color) {
	c.ras.Fill(p, paint(c.img, col))
}

// stroke paints a band of the given width centred on the outline of p.
// Nothing is drawn for widths which are not positive.
func (c *canvas) stroke(p *path.Data, col color.Color, width float64, join graphics.LineJoinStyle) {
	if !(width > 0) {
		return
	}
	c.ras.Width = width
	c.ras.Join = join
	c.ras.Stroke(p.Iter(), paint(c.img, col))
}

// paint returns a callback which blends col into img, weighted by
// coverage.  Fully covered pixels are replaced by col, so that a shape
// painted over another one hides it completely even if col is translucent.
func paint(img *image.RGBA, col color.Color) raster.EmitFunc {
	src := color.RGBAModel.Convert(col).(color.RGBA)
	s := [4]float32{float32(src.R), float32(src.G), float32(src.B), float32(src.A)}

	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, a := range coverage {
			px := row[4*i : 4*i+4 : 4*i+4]
			if a >= 1 {
				px[0], px[1], px[2], px[3] = src.R, src.G, src.B, src.A
				continue
			}
			for k := range px {
				d := float32(px[k])
				px[k] = uint8(d + (s[k]-d)*a + 0.5)
			}
		}
	}
}
