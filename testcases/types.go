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

// Package testcases holds the example outlines and textures which are
// shared by the tests and the export tool.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Outline is a single rasterizer test.
type Outline struct {
	Name   string     // lowercase a-z and _ only
	Path   *path.Data // the geometry to render
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels
	Op     Operation  // fill or stroke
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill paints the inside of the path, using the nonzero winding rule.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke paints a band centred on the (closed) path.
type Stroke struct {
	Width float64
	Join  graphics.LineJoinStyle
}

func (Stroke) isOperation() {}

// Texture is a complete texture request.  Shape and Layout are given by
// name, as understood by shapetex.ParseShape and shapetex.ParseLayout.
type Texture struct {
	Name      string
	Shape     string
	Layout    string
	Width     int
	Height    int
	Border    color.NRGBA
	Fill      color.NRGBA
	Thickness float64
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
