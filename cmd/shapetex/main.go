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

// Command shapetex writes placeholder shape textures as PNG files.
//
// Usage:
//
//	shapetex [-shape all|triangle|square|circle] [-layout centered|edge]
//	         [-width n] [-height n] [-border colour] [-fill colour]
//	         [-thickness t] [-o file] [-dir directory] [-v]
//
// Without arguments, all three shapes are written to the current
// directory.  Colours are SVG colour names, "#rrggbb[aa]" or "r,g,b[,a]".
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/shapetex"
)

// defaults holds the settings used for flags which are not given.
type defaults struct {
	size      int
	border    string
	fill      string
	thickness float64
	suffix    string // appended to the shape name to form the file name
}

var layoutDefaults = map[shapetex.Layout]defaults{
	shapetex.Centered: {
		size:      256,
		border:    "255,255,255,255",
		fill:      "64,64,64,64",
		thickness: 5,
		suffix:    "_texture.png",
	},
	shapetex.EdgeToEdge: {
		size:      100,
		border:    "white",
		fill:      "gray",
		thickness: 2,
		suffix:    ".png",
	},
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "shapetex:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("shapetex", flag.ContinueOnError)

	var (
		shapeName  string
		layoutName string
		width      int
		height     int
		border     string
		fill       string
		thickness  float64
		output     string
		dir        string
		verbose    bool
	)
	fs.StringVar(&shapeName, "shape", "all", "shape to draw: triangle, square, circle or all")
	fs.StringVar(&layoutName, "layout", "centered", "layout: centered or edge")
	fs.IntVar(&width, "width", 0, "image width in pixels (default depends on layout)")
	fs.IntVar(&height, "height", 0, "image height in pixels (default: same as width)")
	fs.StringVar(&border, "border", "", "border colour (default depends on layout)")
	fs.StringVar(&fill, "fill", "", "fill colour (default depends on layout)")
	fs.Float64Var(&thickness, "thickness", 0, "border thickness in pixels (default depends on layout)")
	fs.StringVar(&output, "o", "", "output file, for a single shape")
	fs.StringVar(&dir, "dir", ".", "output directory")
	fs.BoolVar(&verbose, "v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return err
	}
	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	shapetex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	layout, err := shapetex.ParseLayout(layoutName)
	if err != nil {
		return err
	}
	def := layoutDefaults[layout]

	if !given["width"] {
		width = def.size
	}
	if !given["height"] {
		height = width
	}
	if !given["border"] {
		border = def.border
	}
	if !given["fill"] {
		fill = def.fill
	}
	if !given["thickness"] {
		thickness = def.thickness
	}

	borderColor, err := shapetex.ParseColor(border)
	if err != nil {
		return fmt.Errorf("-border: %w", err)
	}
	fillColor, err := shapetex.ParseColor(fill)
	if err != nil {
		return fmt.Errorf("-fill: %w", err)
	}

	var shapes []shapetex.Shape
	if shapeName == "all" {
		shapes = []shapetex.Shape{shapetex.Triangle, shapetex.Square, shapetex.Circle}
	} else {
		s, err := shapetex.ParseShape(shapeName)
		if err != nil {
			return err
		}
		shapes = []shapetex.Shape{s}
	}
	if output != "" && len(shapes) > 1 {
		return errors.New("-o needs a single -shape")
	}

	r := shapetex.NewRenderer(layout)
	for _, s := range shapes {
		img, err := r.Render(shapetex.Request{
			Shape:     s,
			Layout:    layout,
			Width:     width,
			Height:    height,
			Border:    borderColor,
			Fill:      fillColor,
			Thickness: thickness,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}

		fname := output
		if fname == "" {
			fname = filepath.Join(dir, s.String()+def.suffix)
		}
		if err := shapetex.SavePNG(fname, img); err != nil {
			return err
		}
		shapetex.Logger().Info("wrote texture", "file", fname, "shape", s)
	}
	return nil
}
