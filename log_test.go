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
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("the default logger is not silent")
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Render(Request{
		Shape: Circle, Layout: Centered,
		Width: 16, Height: 16,
		Border: white, Fill: gray, Thickness: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "texture rendered") || !strings.Contains(out, "shape=circle") {
		t.Errorf("unexpected log output: %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestThickBorderWarning(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer SetLogger(nil)

	_, err := Render(Request{
		Shape: Triangle, Layout: EdgeToEdge,
		Width: 20, Height: 20,
		Border: white, Fill: gray, Thickness: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "border thicker than triangle") {
		t.Errorf("missing warning, got %q", buf.String())
	}
}
