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
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"gray", color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{"White", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{" navy ", color.NRGBA{B: 128, A: 255}},
		{"transparent", color.NRGBA{}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"#10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{"#ABCDEF", color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 255}},
		{"255,255,255,255", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"64,64,64,64", color.NRGBA{R: 64, G: 64, B: 64, A: 64}},
		{"1, 2, 3", color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"grey-ish",
		"#12345",
		"#ggg",
		"1,2",
		"1,2,3,4,5",
		"300,0,0",
		"-1,0,0",
		"a,b,c",
	} {
		if c, err := ParseColor(in); err == nil {
			t.Errorf("%q: expected an error, got %v", in, c)
		}
	}
}
