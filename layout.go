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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier arc approximating a
// quarter circle.
const kappa = 0.5522847498307936 // 4*(sqrt(2)-1)/3

// CenteredHeight returns the height of a centred triangle texture of the
// given width.  The canvas always has the aspect ratio of an equilateral
// triangle; the requested height is ignored.
func CenteredHeight(width int) int {
	return int(math.Round(float64(width) * math.Sqrt(3) / 2))
}

// centeredTriangle returns the vertices (apex, bottom-left, bottom-right) of
// the equilateral triangle for a width × CenteredHeight(width) canvas.  A
// margin of thickness/2 keeps the border inside the canvas.
func centeredTriangle(width int, thickness float64) []vec.Vec2 {
	w := float64(width)
	h := float64(CenteredHeight(width))

	base := w - thickness
	height := base * math.Sqrt(3) / 2
	if avail := h - thickness; height > avail {
		height = avail
		base = height * 2 / math.Sqrt(3)
	}

	cx, cy := w/2, h/2
	return []vec.Vec2{
		{X: cx, Y: cy - height/2},
		{X: cx - base/2, Y: cy + height/2},
		{X: cx + base/2, Y: cy + height/2},
	}
}

// edgeTriangle returns the vertices (apex, bottom-left, bottom-right) of the
// triangle touching the top, left, right and bottom canvas edges.
func edgeTriangle(width, height int) []vec.Vec2 {
	w, h := float64(width), float64(height)
	return []vec.Vec2{
		{X: w / 2, Y: 0},
		{X: 0, Y: h},
		{X: w, Y: h},
	}
}

// insetBox returns the canvas rectangle shrunk by inset on every side.
func insetBox(width, height int, inset float64) rect.Rect {
	return rect.Rect{
		LLx: inset,
		LLy: inset,
		URx: float64(width) - inset,
		URy: float64(height) - inset,
	}
}

// polygonPath returns the closed outline through the given vertices.
func polygonPath(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}

// rectPath returns the outline of r.
func rectPath(r rect.Rect) *path.Data {
	return polygonPath([]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	})
}

// ellipsePath returns the ellipse inscribed in r, built from four cubic
// Bézier arcs.
func ellipsePath(r rect.Rect) *path.Data {
	cx, cy := (r.LLx+r.URx)/2, (r.LLy+r.URy)/2
	rx, ry := (r.URx-r.LLx)/2, (r.URy-r.LLy)/2
	kx, ky := rx*kappa, ry*kappa

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}
