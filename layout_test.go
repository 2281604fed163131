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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/shapetex/internal/raster"
)

// translate returns a copy of p, moved by (dx, dy).
func translate(p *path.Data, dx, dy float64) *path.Data {
	q := &path.Data{Cmds: p.Cmds}
	for _, c := range p.Coords {
		q.Coords = append(q.Coords, vec.Vec2{X: c.X + dx, Y: c.Y + dy})
	}
	return q
}

// TestCenteredBorderInside strokes the centred outlines on a padded canvas
// and checks that no coverage ends up outside the real canvas.
func TestCenteredBorderInside(t *testing.T) {
	const pad = 40
	const threshold = 1e-4

	r := raster.NewRasterizer(rect.Rect{})
	thicknesses := []float64{0.5, 1, 1.5, 2, 3, 5, 8, 13}
	for w := 4; w <= 200; w++ {
		for _, thickness := range thicknesses {
			if thickness > float64(w)/4 {
				continue
			}

			h := w * 3 / 4
			box := insetBox(w, h, thickness/2)
			cases := []struct {
				name    string
				height  int
				outline *path.Data
				join    graphics.LineJoinStyle
			}{
				{"triangle", CenteredHeight(w), polygonPath(centeredTriangle(w, thickness)), graphics.LineJoinBevel},
				{"square", h, rectPath(box), graphics.LineJoinMiter},
				{"circle", h, ellipsePath(box), graphics.LineJoinRound},
			}
			for _, c := range cases {
				r.Reset(rect.Rect{URx: float64(w + 2*pad), URy: float64(c.height + 2*pad)})
				r.Width = thickness
				r.Join = c.join

				outside := 0
				r.Stroke(translate(c.outline, pad, pad).Iter(), func(y, xMin int, coverage []float32) {
					for i, a := range coverage {
						x := xMin + i
						in := x >= pad && x < pad+w && y >= pad && y < pad+c.height
						if !in && a > threshold {
							outside++
						}
					}
				})
				if outside > 0 {
					t.Errorf("%s %dx%d, thickness %g: %d pixels outside the canvas",
						c.name, w, c.height, thickness, outside)
				}
			}
		}
	}
}
