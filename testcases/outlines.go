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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var fillOutlines = []Outline{
	{
		Name:   "triangle",
		Path:   triangle(32, 4, 4, 60, 60, 60),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "triangle_reversed",
		Path:   triangle(60, 60, 4, 60, 32, 4),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle_subpixel",
		Path:   rectangle(10.25, 10.5, 53.75, 41.3),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle",
		Path:   ellipse(32, 32, 25, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "ellipse_clipped",
		Path:   ellipse(32, 20, 40, 18),
		Width:  64,
		Height: 48,
		Op:     Fill{},
	},
	{
		Name:   "large_circle",
		Path:   ellipse(300, 300, 290, 290),
		Width:  600,
		Height: 600,
		Op:     Fill{},
	},
}

var strokeOutlines = []Outline{
	{
		Name:   "square_miter",
		Path:   rectangle(8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Join: graphics.LineJoinMiter},
	},
	{
		Name:   "triangle_bevel",
		Path:   triangle(32, 8, 6, 56, 58, 56),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 5, Join: graphics.LineJoinBevel},
	},
	{
		Name:   "triangle_round",
		Path:   triangle(32, 8, 6, 56, 58, 56),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 5, Join: graphics.LineJoinRound},
	},
	{
		Name:   "circle",
		Path:   ellipse(32, 32, 24, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinRound},
	},
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a closed axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}
