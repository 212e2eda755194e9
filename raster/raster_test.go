// seehuhn.de/go/lagoon - exact cell counts for rectilinear paths
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
	"errors"
	"fmt"
	"image"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/testcases"
)

// smallCases returns the test cases whose bounding box fits into maxCells.
func smallCases(t testing.TB, maxCells int64) map[string]*lagoon.Path {
	res := make(map[string]*lagoon.Path)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			p, err := lagoon.BuildPath(tc.Moves)
			if err != nil {
				t.Fatal(err)
			}
			lo, hi := p.Bounds()
			if (hi.Row-lo.Row+1)*(hi.Col-lo.Col+1) > maxCells {
				continue
			}
			res[category+"_"+tc.Name] = p
		}
	}
	return res
}

// collect returns the coverage of every cell in the clip rectangle.
func collect(clip rect.Rect) (map[image.Point]float32, func(y, xMin int, coverage []float32)) {
	res := make(map[image.Point]float32)
	emit := func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c != 0 {
				res[image.Pt(xMin+i, y)] = c
			}
		}
	}
	return res, emit
}

// TestUnitSquareCoverage checks that an outline through the centres of four
// cells covers a quarter of each.
func TestUnitSquareCoverage(t *testing.T) {
	outline := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0.5, Y: 0.5}).
		LineTo(vec.Vec2{X: 1.5, Y: 0.5}).
		LineTo(vec.Vec2{X: 1.5, Y: 1.5}).
		LineTo(vec.Vec2{X: 0.5, Y: 1.5}).
		Close()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}
	r := NewRasteriser(clip)
	cov, emit := collect(clip)
	if err := r.FillNonZero(outline, emit); err != nil {
		t.Fatal(err)
	}
	if len(cov) != 4 {
		t.Fatalf("%d cells covered, want 4", len(cov))
	}
	for p, c := range cov {
		if c != 0.25 {
			t.Errorf("cell %v: coverage %g, want 0.25", p, c)
		}
	}

	// reversing the outline must not change the nonzero fill
	reversed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0.5, Y: 0.5}).
		LineTo(vec.Vec2{X: 0.5, Y: 1.5}).
		LineTo(vec.Vec2{X: 1.5, Y: 1.5}).
		LineTo(vec.Vec2{X: 1.5, Y: 0.5}).
		Close()
	n, err := r.CountCovered(reversed, clip)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("reversed outline covers %d cells", n)
	}
}

func TestCountCovered(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	for name, p := range smallCases(t, 1<<20) {
		t.Run(name, func(t *testing.T) {
			want, err := p.Area()
			if err != nil {
				t.Fatal(err)
			}
			got, err := r.CountCovered(p.Outline(), p.CellBox())
			if err != nil {
				t.Fatal(err)
			}
			if uint64(got) != want {
				t.Errorf("rasteriser covers %d cells, sweep counts %d", got, want)
			}
		})
	}
}

// TestApproachesAgree compares the 2D buffers with the active edge list.
func TestApproachesAgree(t *testing.T) {
	for name, p := range smallCases(t, 1<<18) {
		t.Run(name, func(t *testing.T) {
			clip := p.CellBox()

			rA := NewRasteriser(clip)
			rA.smallPathThreshold = math.MaxInt
			covA, emitA := collect(clip)
			if err := rA.FillNonZero(p.Outline(), emitA); err != nil {
				t.Fatal(err)
			}

			rB := NewRasteriser(clip)
			rB.smallPathThreshold = 0
			covB, emitB := collect(clip)
			if err := rB.FillNonZero(p.Outline(), emitB); err != nil {
				t.Fatal(err)
			}

			if !maps.Equal(covA, covB) {
				t.Errorf("coverage differs: %d cells vs %d cells", len(covA), len(covB))
			}
		})
	}
}

// TestEvenOddSimple checks that both fill rules agree for simple outlines.
func TestEvenOddSimple(t *testing.T) {
	for name, p := range smallCases(t, 1<<12) {
		clip := p.CellBox()
		r := NewRasteriser(clip)
		nz, emit := collect(clip)
		if err := r.FillNonZero(p.Outline(), emit); err != nil {
			t.Fatal(err)
		}
		eo, emit := collect(clip)
		if err := r.FillEvenOdd(p.Outline(), emit); err != nil {
			t.Fatal(err)
		}
		if !maps.Equal(nz, eo) {
			t.Errorf("%s: fill rules disagree", name)
		}
	}
}

// TestStrokeTrench checks that a stroke of width one covers exactly the
// cells on the path, each of them completely.
func TestStrokeTrench(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	for name, p := range smallCases(t, 1<<16) {
		t.Run(name, func(t *testing.T) {
			want, err := p.Perimeter()
			if err != nil {
				t.Fatal(err)
			}
			r.Reset(p.CellBox())
			cov, emit := collect(p.CellBox())
			if err := r.Stroke(p.Outline(), emit); err != nil {
				t.Fatal(err)
			}
			if uint64(len(cov)) != want {
				t.Errorf("stroke covers %d cells, perimeter is %d", len(cov), want)
			}
			for pt, c := range cov {
				if c != 1 {
					t.Errorf("cell %v: coverage %g", pt, c)
					break
				}
			}
		})
	}
}

func TestScaledCTM(t *testing.T) {
	p, err := lagoon.BuildPath(testcases.All["basic"][1].Moves) // 3x2 rectangle
	if err != nil {
		t.Fatal(err)
	}
	box := p.CellBox()
	r := NewRasteriser(rect.Rect{})
	r.CTM = matrix.Scale(4, 4)
	got, err := r.CountCovered(p.Outline(), rect.Rect{URx: 4 * box.URx, URy: 4 * box.URy})
	if err != nil {
		t.Fatal(err)
	}
	// the outline encloses a 3x2 region of device cells scaled by 4
	if got != 12*8 {
		t.Errorf("got %d device cells, want %d", got, 12*8)
	}
}

func TestRejectedOutlines(t *testing.T) {
	sloped := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()
	curved := &path.Data{
		Cmds:   []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdClose},
		Coords: []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}},
	}

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	r := NewRasteriser(clip)
	noop := func(int, int, []float32) {}

	if err := r.FillNonZero(sloped, noop); !errors.Is(err, ErrNotRectilinear) {
		t.Errorf("sloped fill: got %v", err)
	}
	if err := r.FillNonZero(curved, noop); !errors.Is(err, ErrCurve) {
		t.Errorf("curved fill: got %v", err)
	}
	if err := r.Stroke(curved, noop); !errors.Is(err, ErrCurve) {
		t.Errorf("curved stroke: got %v", err)
	}

	r.CTM = matrix.RotateDeg(30)
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 2, Y: 1}).
		LineTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 1, Y: 2}).
		Close()
	if err := r.Stroke(square, noop); !errors.Is(err, ErrNotRectilinear) {
		t.Errorf("rotated stroke: got %v", err)
	}
}

func TestPreview(t *testing.T) {
	p, err := lagoon.BuildPath(testcases.All["concave"][0].Moves) // l_shape
	if err != nil {
		t.Fatal(err)
	}
	r := NewRasteriser(rect.Rect{})
	img, err := r.Preview(p.Outline(), p.CellBox())
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[uint8]int)
	for _, y := range img.Pix {
		counts[y]++
	}
	trench, _ := p.Perimeter()
	area, _ := p.Area()
	if uint64(counts[ShadeTrench.Y]) != trench {
		t.Errorf("%d trench pixels, want %d", counts[ShadeTrench.Y], trench)
	}
	if uint64(counts[ShadeTrench.Y]+counts[ShadeInterior.Y]) != area {
		t.Errorf("%d coloured pixels, want %d", counts[ShadeTrench.Y]+counts[ShadeInterior.Y], area)
	}

	if t.Failed() {
		if err := writePreview("l_shape", img); err != nil {
			t.Log(err)
		}
	}
}

// writePreview saves a failing preview for inspection.
func writePreview(name string, img image.Image) (err error) {
	dir := filepath.Join("testdata", "failures")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return nil
}

// BenchmarkCountCovered measures steady-state performance by reusing a
// single Rasteriser across all small test cases.
func BenchmarkCountCovered(b *testing.B) {
	paths := smallCases(b, 1<<18)
	outlines := make([]*path.Data, 0, len(paths))
	boxes := make([]rect.Rect, 0, len(paths))
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		outlines = append(outlines, paths[name].Outline())
		boxes = append(boxes, paths[name].CellBox())
	}

	r := NewRasteriser(rect.Rect{})
	b.ResetTimer()
	for b.Loop() {
		for i := range outlines {
			if _, err := r.CountCovered(outlines[i], boxes[i]); err != nil {
				b.Fatal(err)
			}
		}
	}
}
