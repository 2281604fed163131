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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var benchmarkSizes = []int{32, 256, 2048}

// BenchmarkFillRing fills a ring made of two circles with opposite
// orientation.
func BenchmarkFillRing(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := &path.Data{}
			addCircle(p, c, c, float64(size)*0.45, false)
			addCircle(p, c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(p, alphaEmitter(dst))
			}
		})
	}
}

// BenchmarkStrokeCircle draws the same ring as BenchmarkFillRing, as a
// stroke of a single circle.
func BenchmarkStrokeCircle(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := &path.Data{}
			addCircle(p, c, c, float64(size)*0.375, false)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = float64(size) * 0.15
				r.Join = graphics.LineJoinRound
				r.Stroke(p.Iter(), alphaEmitter(dst))
			}
		})
	}
}

// BenchmarkVectorRing fills the ring using golang.org/x/image/vector, for
// comparison.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float32(size) / 2
			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				addCircleToVector(z, c, c, float32(size)*0.45, false)
				addCircleToVector(z, c, c, float32(size)*0.30, true)
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func alphaEmitter(dst *image.Alpha) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	}
}

// addCircle appends a circle made of four cubic Bézier curves to p.
func addCircle(p *path.Data, cx, cy, radius float64, clockwise bool) {
	k := radius * 0.5522847498307936
	sy := 1.0
	if clockwise {
		sy = -1
	}
	pt := func(dx, dy float64) vec.Vec2 { return vec.Vec2{X: cx + dx, Y: cy + sy*dy} }

	p.MoveTo(pt(radius, 0)).
		CubeTo(pt(radius, k), pt(k, radius), pt(0, radius)).
		CubeTo(pt(-k, radius), pt(-radius, k), pt(-radius, 0)).
		CubeTo(pt(-radius, -k), pt(-k, -radius), pt(0, -radius)).
		CubeTo(pt(k, -radius), pt(radius, -k), pt(radius, 0)).
		Close()
}

func addCircleToVector(z *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	k := radius * 0.5522847498307936
	sy := float32(1)
	if clockwise {
		sy = -1
	}
	pt := func(dx, dy float32) (float32, float32) { return cx + dx, cy + sy*dy }

	z.MoveTo(pt(radius, 0))
	x1, y1 := pt(radius, k)
	x2, y2 := pt(k, radius)
	x3, y3 := pt(0, radius)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(-k, radius)
	x2, y2 = pt(-radius, k)
	x3, y3 = pt(-radius, 0)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(-radius, -k)
	x2, y2 = pt(-k, -radius)
	x3, y3 = pt(0, -radius)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(k, -radius)
	x2, y2 = pt(radius, -k)
	x3, y3 = pt(radius, 0)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
	z.ClosePath()
}
