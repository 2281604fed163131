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

import "image/color"

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	gray  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	smoke = color.NRGBA{R: 64, G: 64, B: 64, A: 64}
	red   = color.NRGBA{R: 255, A: 255}
	navy  = color.NRGBA{B: 128, A: 255}
)

var centeredTextures = []Texture{
	// the defaults of the command line tool
	{Name: "triangle_256", Shape: "triangle", Layout: "centered", Width: 256, Height: 256, Border: white, Fill: smoke, Thickness: 5},
	{Name: "square_256", Shape: "square", Layout: "centered", Width: 256, Height: 256, Border: white, Fill: smoke, Thickness: 5},
	{Name: "circle_256", Shape: "circle", Layout: "centered", Width: 256, Height: 256, Border: white, Fill: smoke, Thickness: 5},

	{Name: "triangle_small", Shape: "triangle", Layout: "centered", Width: 32, Height: 32, Border: red, Fill: gray, Thickness: 2},
	{Name: "triangle_tall", Shape: "triangle", Layout: "centered", Width: 64, Height: 500, Border: navy, Fill: white, Thickness: 3},
	{Name: "square_odd", Shape: "square", Layout: "centered", Width: 63, Height: 63, Border: red, Fill: gray, Thickness: 3},
	{Name: "rectangle", Shape: "square", Layout: "centered", Width: 96, Height: 48, Border: navy, Fill: white, Thickness: 4},
	{Name: "circle_thin", Shape: "circle", Layout: "centered", Width: 64, Height: 64, Border: red, Fill: gray, Thickness: 1},
	{Name: "ellipse", Shape: "circle", Layout: "centered", Width: 96, Height: 48, Border: navy, Fill: white, Thickness: 4},
}

var edgeTextures = []Texture{
	// the defaults of the command line tool
	{Name: "triangle_100", Shape: "triangle", Layout: "edge", Width: 100, Height: 100, Border: white, Fill: gray, Thickness: 2},
	{Name: "square_100", Shape: "square", Layout: "edge", Width: 100, Height: 100, Border: white, Fill: gray, Thickness: 2},
	{Name: "circle_100", Shape: "circle", Layout: "edge", Width: 100, Height: 100, Border: white, Fill: gray, Thickness: 2},

	{Name: "triangle_thick", Shape: "triangle", Layout: "edge", Width: 64, Height: 64, Border: red, Fill: gray, Thickness: 6},
	{Name: "triangle_wide", Shape: "triangle", Layout: "edge", Width: 128, Height: 48, Border: navy, Fill: white, Thickness: 3},
	{Name: "square_thick", Shape: "square", Layout: "edge", Width: 64, Height: 64, Border: red, Fill: gray, Thickness: 8},
	{Name: "circle_thick", Shape: "circle", Layout: "edge", Width: 64, Height: 64, Border: navy, Fill: white, Thickness: 8},
}
