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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a subpath.
type segment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// Stroke paints a band of the given Width centred on the outline of p.
// Every subpath is treated as closed, so there are joins but no caps.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flatten(p)

	r.outline = r.outline[:0]
	r.loops = r.loops[:0]
	d := r.Width / 2
	for i, start := range r.offsets {
		end := len(r.segs)
		if i+1 < len(r.offsets) {
			end = r.offsets[i+1]
		}
		segs := r.segs[start:end]
		if len(segs) < 2 {
			continue
		}

		// The band between the two offset loops has winding number ±1,
		// since the -N loop is reversed.
		r.addLoop(segs, d)
		k := len(r.outline)
		r.addLoop(segs, -d)
		slices.Reverse(r.outline[k:])
	}

	r.edges = r.edges[:0]
	for i, start := range r.loops {
		end := len(r.outline)
		if i+1 < len(r.loops) {
			end = r.loops[i+1]
		}
		loop := r.outline[start:end]
		for j := range loop {
			r.addEdge(loop[j], loop[(j+1)%len(loop)])
		}
	}
	r.scan(emit)
}

// flatten splits p into line segments.  Segment i of subpath k is
// r.segs[r.offsets[k]+i].
func (r *Rasterizer) flatten(p path.Path) {
	r.segs = r.segs[:0]
	r.offsets = r.offsets[:0]

	var current, start vec.Vec2
	open := false
	closeSubpath := func() {
		if !open {
			return
		}
		r.addSegment(current, start)
		current = start
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = pts[0]
			start = current
			r.offsets = append(r.offsets, len(r.segs))
			open = true
		case path.CmdLineTo:
			r.addSegment(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addSegment)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addSegment)
			current = pts[2]
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// addSegment appends a→b to r.segs, skipping zero-length segments.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// addLoop appends the outline offset by d along the segment normals to
// r.outline, walking the segments forward.  A positive d gives the +N
// side, a negative d the -N side.
func (r *Rasterizer) addLoop(segs []segment, d float64) {
	start := len(r.outline)
	prev := &segs[len(segs)-1]
	for i := range segs {
		seg := &segs[i]
		r.addCorner(seg.A, prev, seg, d)
		prev = seg
	}
	if len(r.outline)-start >= 3 {
		r.loops = append(r.loops, start)
	} else {
		r.outline = r.outline[:start]
	}
}

// addCorner appends the offset geometry where segment in meets segment
// out at P.
func (r *Rasterizer) addCorner(P vec.Vec2, in, out *segment, d float64) {
	sinTheta := in.T.X*out.T.Y - in.T.Y*out.T.X
	if math.Abs(sinTheta) < collinearityThreshold && in.T.Dot(out.T) > 0 {
		r.outline = append(r.outline, P.Add(out.N.Mul(d)))
		return
	}

	// For sinTheta > 0 the path turns towards +N, so the +N side
	// (d > 0) is the inner side of the corner.
	if sinTheta*d > 0 {
		if q, ok := offsetIntersection(P, in, out, d); ok {
			r.outline = append(r.outline, q)
			return
		}
		r.outline = append(r.outline, P.Add(in.N.Mul(d)), P.Add(out.N.Mul(d)))
		return
	}

	r.outline = append(r.outline, P.Add(in.N.Mul(d)))
	r.addJoin(P, in, out, d)
	r.outline = append(r.outline, P.Add(out.N.Mul(d)))
}

// offsetIntersection returns the point where the lines parallel to in and
// out at distance d meet.  It fails for nearly collinear and for nearly
// reversing segments.
func offsetIntersection(P vec.Vec2, in, out *segment, d float64) (vec.Vec2, bool) {
	cosTheta := in.T.Dot(out.T)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfCos := math.Sqrt((1 + cosTheta) / 2)
	if halfCos < 1e-9 {
		return vec.Vec2{}, false
	}
	dir := in.N.Add(out.N)
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * halfCos))), true
}

// addJoin adds the join points on the outer side of a corner, between the
// two offset points which the caller adds.
func (r *Rasterizer) addJoin(P vec.Vec2, in, out *segment, d float64) {
	switch r.Join {
	case graphics.LineJoinMiter:
		cosTheta := in.T.Dot(out.T)
		halfCos := math.Sqrt((1 + cosTheta) / 2)
		const eps = 1e-10
		if halfCos > 0 && 1/halfCos <= r.MiterLimit+eps {
			if q, ok := offsetIntersection(P, in, out, d); ok {
				r.outline = append(r.outline, q)
			}
		}
		// miters over the limit are bevelled

	case graphics.LineJoinRound:
		sinTheta := in.T.X*out.T.Y - in.T.Y*out.T.X
		theta := math.Atan2(sinTheta, in.T.Dot(out.T))
		start := in.N.Mul(math.Copysign(1, d))
		r.addArc(P, math.Abs(d), start, theta)
	}
}

// addArc appends the inner points of an arc around center, starting in
// direction from and turning by sweep radians.  The end points are left to
// the caller.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, from vec.Vec2, sweep float64) {
	if radius < r.Flatness {
		return
	}
	step := 2 * math.Acos(1-r.Flatness/radius)
	if step <= 0 || math.IsNaN(step) {
		step = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	for i := 1; i < n; i++ {
		phi := sweep * float64(i) / float64(n)
		c, s := math.Cos(phi), math.Sin(phi)
		dir := vec.Vec2{X: from.X*c - from.Y*s, Y: from.X*s + from.Y*c}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
