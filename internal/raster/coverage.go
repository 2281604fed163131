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
	"cmp"
	"math"
	"slices"
)

// Coverage model:
//
// For every pixel of a scanline two values are accumulated:
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  the same, weighted by the part of the pixel right of the crossing
//
// Scanning from left to right, the coverage of pixel i is the sum of cover
// over all pixels left of i plus area[i].  For the nonzero rule this signed
// area is clamped to [0, 1].

// scan converts r.edges into coverage, one scanline at a time, using an
// active edge list.
func (r *Rasterizer) scan(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= yTop {
				// the edge is finished, swap-remove it
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to cover and area.
// Both slices are indexed by x - xMin.  Contributions left of xMin are
// folded into the first pixel, contributions right of xMax are dropped.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixLeft := int(math.Floor(xa))
	pixRight := int(math.Floor(xb))

	switch {
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= xMax:
		return
	case pixLeft == pixRight:
		addPiece(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addPiece(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// addPiece adds the part of e between yTop and yBot, which lies inside
// pixel column pix.
func addPiece(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		cover[pix-xMin] += c
		area[pix-xMin] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover and area into coverage values,
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or nil if
// all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
