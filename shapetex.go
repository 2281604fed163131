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

// Package shapetex generates placeholder textures: a triangle, square or
// circle with a filled interior and a border, on a transparent background.
//
// Two layouts are available.  [Centered] keeps a margin of half the border
// thickness around the shape, so that the border is centred on the outline
// and just touches the canvas edges.  [EdgeToEdge] lets the outline itself
// touch the canvas edges; triangles then get their border by painting a
// smaller triangle, inset by the border thickness, over the outer one.
package shapetex

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/shapetex/internal/raster"
	"seehuhn.de/go/shapetex/polygon"
)

// ErrInvalidRequest is returned for requests which cannot be rendered.
var ErrInvalidRequest = errors.New("invalid request")

// Shape selects the geometric shape of a texture.
type Shape int

// These are the supported shapes.
const (
	Triangle Shape = iota
	Square
	Circle
)

var shapeNames = []string{"triangle", "square", "circle"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape returns the shape with the given name.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidRequest, name)
}

// Layout selects how a shape is placed on the canvas.
type Layout int

const (
	// Centered insets the shape by half the border thickness.  Triangles
	// are equilateral, and their canvas height is always
	// CenteredHeight(width).
	Centered Layout = iota

	// EdgeToEdge makes the outline of the shape touch the canvas edges.
	EdgeToEdge
)

func (l Layout) String() string {
	switch l {
	case Centered:
		return "centered"
	case EdgeToEdge:
		return "edge"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout returns the layout with the given name.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case "centered", "centred", "center":
		return Centered, nil
	case "edge", "edge-to-edge", "edgetoedge":
		return EdgeToEdge, nil
	}
	return 0, fmt.Errorf("%w: unknown layout %q", ErrInvalidRequest, name)
}

// Request describes one texture.
type Request struct {
	Shape  Shape
	Layout Layout

	// Width and Height give the canvas size in pixels.  Height is ignored
	// for centred triangles.
	Width, Height int

	Border color.Color
	Fill   color.Color

	// Thickness is the border width in pixels.
	Thickness float64
}

// ParseRequest returns a request for the shape and layout with the given
// names.  The request is not validated.
func ParseRequest(shape, layout string, width, height int, border, fill color.Color, thickness float64) (Request, error) {
	s, err := ParseShape(shape)
	if err != nil {
		return Request{}, err
	}
	l, err := ParseLayout(layout)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Shape:     s,
		Layout:    l,
		Width:     width,
		Height:    height,
		Border:    border,
		Fill:      fill,
		Thickness: thickness,
	}, nil
}

// Size returns the size of the image generated for the request.
func (req *Request) Size() (width, height int) {
	if req.Shape == Triangle && req.Layout == Centered {
		return req.Width, CenteredHeight(req.Width)
	}
	return req.Width, req.Height
}

// Validate checks whether the request can be rendered.  Geometry which does
// not fit the canvas, for example a border thicker than the shape, is not
// an error.
func (req *Request) Validate() error {
	if req.Shape < Triangle || req.Shape > Circle {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, req.Shape)
	}
	if req.Layout != Centered && req.Layout != EdgeToEdge {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, req.Layout)
	}
	w, h := req.Size()
	if w <= 0 || h <= 0 || w > math.MaxInt/4/h {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidRequest, w, h)
	}
	if math.IsNaN(req.Thickness) || math.IsInf(req.Thickness, 0) || req.Thickness < 0 {
		return fmt.Errorf("%w: border thickness %g", ErrInvalidRequest, req.Thickness)
	}
	if req.Border == nil || req.Fill == nil {
		return fmt.Errorf("%w: missing colour", ErrInvalidRequest)
	}
	return nil
}

// Render draws the texture described by req.  It is safe for concurrent
// use.
func Render(req Request) (*image.RGBA, error) {
	return NewRenderer(req.Layout).Render(req)
}

// Renderer draws textures, reusing its internal buffers between calls.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Layout is used by the Triangle, Square and Circle methods.
	Layout Layout

	ras *raster.Rasterizer
}

// NewRenderer returns a Renderer for the given layout.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{
		Layout: layout,
		ras:    raster.NewRasterizer(rect.Rect{}),
	}
}

// Triangle draws a triangle texture in the renderer's layout.
func (r *Renderer) Triangle(width, height int, border, fill color.Color, thickness float64) (*image.RGBA, error) {
	return r.Render(r.request(Triangle, width, height, border, fill, thickness))
}

// Square draws a square texture in the renderer's layout.
func (r *Renderer) Square(width, height int, border, fill color.Color, thickness float64) (*image.RGBA, error) {
	return r.Render(r.request(Square, width, height, border, fill, thickness))
}

// Circle draws a circle texture in the renderer's layout.
func (r *Renderer) Circle(width, height int, border, fill color.Color, thickness float64) (*image.RGBA, error) {
	return r.Render(r.request(Circle, width, height, border, fill, thickness))
}

func (r *Renderer) request(s Shape, width, height int, border, fill color.Color, thickness float64) Request {
	return Request{
		Shape:     s,
		Layout:    r.Layout,
		Width:     width,
		Height:    height,
		Border:    border,
		Fill:      fill,
		Thickness: thickness,
	}
}

// Render draws the texture described by req.  The Layout field of req takes
// precedence over the renderer's layout.
func (r *Renderer) Render(req Request) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if r.ras == nil {
		r.ras = raster.NewRasterizer(rect.Rect{})
	}

	w, h := req.Size()
	c := newCanvas(r.ras, w, h)
	t := req.Thickness

	switch req.Layout {
	case Centered:
		switch req.Shape {
		case Triangle:
			outline := polygonPath(centeredTriangle(w, t))
			c.fill(outline, req.Fill)
			// bevel joins keep the corners inside the margin
			c.stroke(outline, req.Border, t, graphics.LineJoinBevel)
		case Square:
			outline := rectPath(insetBox(w, h, t/2))
			c.fill(outline, req.Fill)
			c.stroke(outline, req.Border, t, graphics.LineJoinMiter)
		case Circle:
			outline := ellipsePath(insetBox(w, h, t/2))
			c.fill(outline, req.Fill)
			c.stroke(outline, req.Border, t, graphics.LineJoinRound)
		}

	case EdgeToEdge:
		switch req.Shape {
		case Triangle:
			outer := edgeTriangle(w, h)
			inner, ok := polygon.Inset(outer, t)
			if !ok {
				Logger().Warn("degenerate inset triangle",
					"outer", outer, "inner", inner, "thickness", t)
			} else if inner[1].Sub(inner[0]).Dot(outer[1].Sub(outer[0])) < 0 {
				// the offset edges crossed over, the inner triangle is
				// the outer one scaled by a negative factor
				Logger().Warn("border thicker than triangle",
					"width", w, "height", h, "thickness", t)
			}
			c.fill(polygonPath(outer), req.Border)
			c.fill(polygonPath(inner), req.Fill)
		case Square:
			outline := rectPath(insetBox(w, h, 0))
			c.fill(outline, req.Fill)
			c.stroke(outline, req.Border, t, graphics.LineJoinMiter)
		case Circle:
			outline := ellipsePath(insetBox(w, h, 0))
			c.fill(outline, req.Fill)
			c.stroke(outline, req.Border, t, graphics.LineJoinRound)
		}
	}

	Logger().Debug("texture rendered",
		"shape", req.Shape, "layout", req.Layout,
		"width", w, "height", h, "thickness", t)
	return c.img, nil
}
