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
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a textual colour description into a colour.
// The following forms are understood:
//
//   - SVG 1.1 colour names, for example "gray" or "white" (case-insensitive)
//   - "transparent"
//   - "#rgb", "#rrggbb" and "#rrggbbaa"
//   - decimal tuples "r,g,b" and "r,g,b,a", each component in 0–255
//
// Alpha is not premultiplied; missing alpha means opaque.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)

	switch {
	case key == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(key, "#"):
		return parseHex(s, key[1:])
	case strings.Contains(key, ","):
		return parseTuple(s)
	}

	if c, ok := colornames.Map[key]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
}

func parseHex(orig, hex string) (color.NRGBA, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: expected #rgb, #rrggbb or #rrggbbaa", orig)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", orig, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func parseTuple(orig string) (color.NRGBA, error) {
	fields := strings.Split(orig, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: expected 3 or 4 components", orig)
	}

	c := [4]uint8{3: 255}
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", orig, err)
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
