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

// Command export renders every texture of the test catalogue to a PNG file,
// for visual inspection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/shapetex"
	"seehuhn.de/go/shapetex/testcases"
)

func main() {
	dir := flag.String("dir", "debug", "output directory")
	flag.Parse()

	shapetex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := export(*dir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func export(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Textures)) {
		for _, tc := range testcases.Textures[category] {
			name := category + "_" + tc.Name
			req, err := shapetex.ParseRequest(tc.Shape, tc.Layout,
				tc.Width, tc.Height, tc.Border, tc.Fill, tc.Thickness)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			img, err := shapetex.Render(req)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := shapetex.SavePNG(filepath.Join(dir, name+".png"), img); err != nil {
				return err
			}
		}
	}
	return nil
}
