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

// Package polygon implements the inward offset of convex polygons.
//
// A polygon is a slice of vertices; the last vertex connects back to the
// first.  The offset moves every edge a fixed distance towards the inside
// and takes the intersections of neighbouring offset edges as the new
// vertices.
package polygon

import (
	"seehuhn.de/go/geom/vec"
)

// Line is the infinite line through two points.
type Line struct {
	A, B vec.Vec2
}

// Intersect returns the intersection point of two lines.
// If the lines are parallel, or one of them is degenerate, ok is false.
func Intersect(l1, l2 Line) (p vec.Vec2, ok bool) {
	x1, y1 := l1.A.X, l1.A.Y
	x2, y2 := l1.B.X, l1.B.Y
	x3, y3 := l2.A.X, l2.A.Y
	x4, y4 := l2.B.X, l2.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return vec.Vec2{}, false
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return vec.Vec2{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}, true
}

// Centroid returns the arithmetic mean of the vertices.
func Centroid(poly []vec.Vec2) vec.Vec2 {
	var sum vec.Vec2
	if len(poly) == 0 {
		return sum
	}
	for _, p := range poly {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(poly)))
}

// InwardNormal returns the unit normal of the edge a→b which points
// towards inside.  Of the two perpendiculars, the one with the larger
// projection onto the vector from the edge midpoint to inside wins.
// A zero-length edge has no normal; the zero vector is returned.
func InwardNormal(a, b, inside vec.Vec2) vec.Vec2 {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return vec.Vec2{}
	}
	n1 := vec.Vec2{X: -d.Y / length, Y: d.X / length}
	n2 := vec.Vec2{X: d.Y / length, Y: -d.X / length}

	mid := a.Add(b).Mul(0.5)
	toInside := inside.Sub(mid)
	if toInside.Dot(n1) > toInside.Dot(n2) {
		return n1
	}
	return n2
}

// OffsetEdges returns the edges of poly, each moved by d along its inward
// normal.  Edge i runs from poly[i] to poly[(i+1)%n].
func OffsetEdges(poly []vec.Vec2, d float64) []Line {
	c := Centroid(poly)
	n := len(poly)
	lines := make([]Line, n)
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%n]
		shift := InwardNormal(a, b, c).Mul(d)
		lines[i] = Line{A: a.Add(shift), B: b.Add(shift)}
	}
	return lines
}

// Inset shrinks the convex polygon poly by moving every edge the distance
// d towards the inside.  Vertex i of the result is the meeting point of
// the two offset edges next to poly[i].
//
// Where two neighbouring offset edges are parallel, which only happens for
// degenerate input, the vertex is set to (0, 0) and ok is false.  Inset
// never panics.
func Inset(poly []vec.Vec2, d float64) (inner []vec.Vec2, ok bool) {
	lines := OffsetEdges(poly, d)
	n := len(lines)
	inner = make([]vec.Vec2, n)
	ok = true
	for i := range lines {
		p, found := Intersect(lines[(i+n-1)%n], lines[i])
		if !found {
			ok = false
		}
		inner[i] = p
	}
	return inner, ok
}
