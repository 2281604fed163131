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

package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/shapetex"
)

func imageSize(t *testing.T, fname string) (int, int) {
	t.Helper()
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	return cfg.Width, cfg.Height
}

func TestRunDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := run([]string{"-dir", dir}); err != nil {
		t.Fatal(err)
	}

	want := map[string][2]int{
		"triangle_texture.png": {256, 222},
		"square_texture.png":   {256, 256},
		"circle_texture.png":   {256, 256},
	}
	for name, size := range want {
		w, h := imageSize(t, filepath.Join(dir, name))
		if w != size[0] || h != size[1] {
			t.Errorf("%s: got %dx%d, want %dx%d", name, w, h, size[0], size[1])
		}
	}
}

func TestRunEdge(t *testing.T) {
	dir := t.TempDir()
	if err := run([]string{"-layout", "edge", "-dir", dir}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"triangle.png", "square.png", "circle.png"} {
		w, h := imageSize(t, filepath.Join(dir, name))
		if w != 100 || h != 100 {
			t.Errorf("%s: got %dx%d, want 100x100", name, w, h)
		}
	}
}

func TestRunSingle(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	args := []string{"-shape", "circle", "-width", "40", "-height", "30", "-o", fname}
	if err := run(args); err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, fname); w != 40 || h != 30 {
		t.Errorf("got %dx%d, want 40x30", w, h)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string][]string{
		"output for all shapes": {"-o", filepath.Join(dir, "x.png")},
		"unknown shape":         {"-shape", "hexagon", "-dir", dir},
		"unknown layout":        {"-layout", "tiled", "-dir", dir},
		"bad border":            {"-border", "#12", "-dir", dir},
		"bad fill":              {"-fill", "1,2", "-dir", dir},
		"negative width":        {"-width", "-3", "-dir", dir},
		"extra argument":        {"-dir", dir, "square"},
		"unknown flag":          {"-colour", "red"},
	}
	for name, args := range cases {
		if err := run(args); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

// TestRunExplicitValues checks that values given on the command line are
// validated instead of being replaced by the defaults.
func TestRunExplicitValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string][]string{
		"negative thickness": {"-thickness", "-1", "-dir", dir},
		"zero width":         {"-width", "0", "-dir", dir},
		"zero height":        {"-height", "0", "-shape", "square", "-dir", dir},
	}
	for name, args := range cases {
		if err := run(args); !errors.Is(err, shapetex.ErrInvalidRequest) {
			t.Errorf("%s: got %v, want ErrInvalidRequest", name, err)
		}
	}

	// an explicit zero thickness is allowed and means no border
	fname := filepath.Join(dir, "plain.png")
	if err := run([]string{"-shape", "square", "-thickness", "0", "-o", fname}); err != nil {
		t.Fatal(err)
	}
}

