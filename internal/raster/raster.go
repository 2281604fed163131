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

// Package raster converts filled and stroked outlines into per-pixel
// coverage values.
//
// Coordinates are canvas coordinates with y pointing down; pixel (x, y)
// covers the square [x, x+1) × [y, y+1).
package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline, starting at pixel xMin.
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in canvas coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer turns outlines into coverage values between 0 (outside) and
// 1 (inside). Buffers are kept between calls, so one Rasterizer should be
// reused for all outlines of an image.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip limits the output to this rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve and
	// the line segments replacing it.
	Flatness float64

	// Width is the stroke width.
	Width float64

	// Join selects the corner style for strokes.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width/2.
	// Longer miters are drawn as bevels.
	MiterLimit float64

	edges []edge
	bbox  rect.Rect // bounding box of edges, valid if len(edges) > 0

	cover  []float32
	area   []float32
	active []int

	segs    []segment
	offsets []int
	outline []vec.Vec2
	loops   []int
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// default values for the other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.segs = r.segs[:0]
	r.offsets = r.offsets[:0]
	r.outline = r.outline[:0]
	r.loops = r.loops[:0]
}

// Fill paints the inside of p, using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.scan(emit)
}

// addEdge appends the segment a→b to the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		// horizontal edges contribute no cover
		return
	}

	lo := rect.Rect{
		LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X), URy: max(a.Y, b.Y),
	}
	if len(r.edges) == 0 {
		r.bbox = lo
	} else {
		r.bbox.LLx = min(r.bbox.LLx, lo.LLx)
		r.bbox.LLy = min(r.bbox.LLy, lo.LLy)
		r.bbox.URx = max(r.bbox.URx, lo.URx)
		r.bbox.URy = max(r.bbox.URy, lo.URy)
	}

	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments and passes them to emit.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, p1, p2, p3 by line
// segments and passes them to emit.  The number of segments follows
// Wang's bound.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript: joins sharper than about
	// 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
