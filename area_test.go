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

package lagoon_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/internal/floodfill"
	"seehuhn.de/go/lagoon/raster"
	"seehuhn.de/go/lagoon/testcases"
)

func mv(d lagoon.Direction, n int64) lagoon.Move {
	return lagoon.Move{Dir: d, Dist: n}
}

func TestAreaKnown(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				got, err := lagoon.Area(tc.Moves)
				if err != nil {
					t.Fatal(err)
				}
				if got != tc.Area {
					t.Errorf("got %d cells, want %d", got, tc.Area)
				}
			})
		}
	}
}

// TestAreaSymmetries checks that the count does not depend on the starting
// move, the direction of travel, or swapping rows and columns.
func TestAreaSymmetries(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				variants := map[string][]lagoon.Move{
					"reversed":   lagoon.Reverse(tc.Moves),
					"transposed": lagoon.Transpose(tc.Moves),
					"both":       lagoon.Reverse(lagoon.Transpose(tc.Moves)),
				}
				for k := 1; k < len(tc.Moves); k++ {
					variants["rotated"+strings.Repeat("'", k)] = lagoon.Rotate(tc.Moves, k)
				}
				for name, moves := range variants {
					got, err := lagoon.Area(moves)
					if err != nil {
						t.Errorf("%s: %v", name, err)
						continue
					}
					if got != tc.Area {
						t.Errorf("%s: got %d cells, want %d", name, got, tc.Area)
					}
				}
			})
		}
	}
}

func TestAreaIdempotent(t *testing.T) {
	p, err := lagoon.BuildPath(testcases.All["concave"][0].Moves)
	if err != nil {
		t.Fatal(err)
	}
	a, err := p.Area()
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Area()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("second call returned %d, first %d", b, a)
	}
}

func corners(p *lagoon.Path) []image.Point {
	var res []image.Point
	for _, v := range p.Vertices() {
		res = append(res, image.Pt(int(v.Col), int(v.Row)))
	}
	return res
}

// TestAgainstOracles compares the sweep with a flood fill of the grid and
// with the coverage computed by the rasteriser.
func TestAgainstOracles(t *testing.T) {
	r := raster.NewRasteriser(rect.Rect{})
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			p, err := lagoon.BuildPath(tc.Moves)
			if err != nil {
				t.Fatal(err)
			}

			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				want, err := floodfill.Count(corners(p))
				if errors.Is(err, floodfill.ErrTooLarge) {
					t.Skip("bounding box too large for the flood fill")
				} else if err != nil {
					t.Fatal(err)
				}
				if uint64(want) != tc.Area {
					t.Errorf("flood fill: %d cells, test case says %d", want, tc.Area)
				}

				got, err := r.CountCovered(p.Outline(), p.CellBox())
				if err != nil {
					t.Fatal(err)
				}
				if got != want {
					t.Errorf("rasteriser: %d cells, flood fill %d", got, want)
				}
			})
		}
	}
}

func TestRandomMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 300 {
		slabs := 1 + rng.IntN(10)
		moves := testcases.RandomMonotone(rng, slabs, int64(slabs)+rng.Int64N(40))

		p, err := lagoon.BuildPath(moves)
		if err != nil {
			t.Fatalf("case %d: %v (%v)", i, err, moves)
		}
		want, err := floodfill.Count(corners(p))
		if err != nil {
			t.Fatal(err)
		}

		for name, m := range map[string][]lagoon.Move{
			"":            moves,
			" reversed":   lagoon.Reverse(moves),
			" transposed": lagoon.Transpose(moves),
		} {
			got, err := lagoon.Area(m)
			if err != nil {
				t.Fatalf("case %d%s: %v (%v)", i, name, err, m)
			}
			if got != uint64(want) {
				t.Errorf("case %d%s: got %d, want %d (%v)", i, name, got, want, m)
			}
		}
	}
}

// TestRandomBlob checks general concave paths, including outside pockets
// with an entrance only one cell wide.
func TestRandomBlob(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := range 500 {
		w, h := 2+rng.IntN(9), 2+rng.IntN(9)
		moves := testcases.RandomBlob(rng, w, h, rng.IntN(80))

		p, err := lagoon.BuildPath(moves)
		if err != nil {
			t.Fatalf("case %d: %v (%v)", i, err, moves)
		}
		want, err := floodfill.Count(corners(p))
		if err != nil {
			t.Fatal(err)
		}

		k := rng.IntN(len(moves))
		for name, m := range map[string][]lagoon.Move{
			"":                        moves,
			" reversed":               lagoon.Reverse(moves),
			" transposed":             lagoon.Transpose(moves),
			" rotated":                lagoon.Rotate(moves, k),
			" reversed and rotated":   lagoon.Rotate(lagoon.Reverse(moves), k),
			" transposed and rotated": lagoon.Rotate(lagoon.Transpose(moves), k),
		} {
			got, err := lagoon.Area(m)
			if err != nil {
				t.Fatalf("case %d%s: %v (%v)", i, name, err, m)
			}
			if got != uint64(want) {
				t.Errorf("case %d%s: got %d, want %d (%v)", i, name, got, want, m)
			}
		}
	}
}

func TestAreaErrors(t *testing.T) {
	const (
		U = lagoon.Up
		R = lagoon.Right
		D = lagoon.Down
		L = lagoon.Left
	)
	tests := []struct {
		name  string
		moves []lagoon.Move
		want  error
	}{
		{"empty", nil, lagoon.ErrMalformedPath},
		{"zero distance", []lagoon.Move{mv(R, 1), mv(D, 0), mv(L, 1), mv(U, 0)}, lagoon.ErrDegenerateSegment},
		{"negative distance", []lagoon.Move{mv(R, 1), mv(D, -1), mv(L, 1), mv(U, 1)}, lagoon.ErrMalformedPath},
		{"invalid direction", []lagoon.Move{mv(R, 1), mv(7, 1), mv(L, 1), mv(U, 1)}, lagoon.ErrMalformedPath},
		{"same axis", []lagoon.Move{mv(R, 1), mv(R, 1), mv(D, 1), mv(L, 2), mv(U, 1)}, lagoon.ErrMalformedPath},
		{"same axis wrapping", []lagoon.Move{mv(R, 2), mv(D, 1), mv(L, 1), mv(U, 1), mv(L, 1)}, lagoon.ErrMalformedPath},
		{"back and forth", []lagoon.Move{mv(R, 1), mv(L, 1)}, lagoon.ErrMalformedPath},
		{"not closed", []lagoon.Move{mv(R, 1), mv(D, 1), mv(L, 2), mv(U, 1)}, lagoon.ErrMalformedPath},
		{"coordinate overflow", []lagoon.Move{mv(R, math.MaxInt64), mv(D, 1), mv(R, 1), mv(U, 1)}, lagoon.ErrCoordinateOverflow},
		{"count overflow", []lagoon.Move{mv(R, 1<<32), mv(D, 1<<32), mv(L, 1<<32), mv(U, 1<<32)}, lagoon.ErrCoordinateOverflow},
		{"self-intersecting", []lagoon.Move{
			mv(D, 3), mv(R, 2), mv(U, 2), mv(L, 2), mv(D, 1), mv(R, 1), mv(U, 2), mv(L, 1),
		}, lagoon.ErrUnclosedSweepState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lagoon.Area(tt.moves)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAreaLargest(t *testing.T) {
	const side = 1<<32 - 2
	moves := []lagoon.Move{
		mv(lagoon.Right, side), mv(lagoon.Down, side), mv(lagoon.Left, side), mv(lagoon.Up, side),
	}
	got, err := lagoon.Area(moves)
	if err != nil {
		t.Fatal(err)
	}
	if got != 18446744065119617025 {
		t.Errorf("got %d", got)
	}
}

func TestOverflowMagnitude(t *testing.T) {
	moves := []lagoon.Move{
		mv(lagoon.Right, math.MaxInt64), mv(lagoon.Down, 1), mv(lagoon.Right, 1), mv(lagoon.Up, 1),
	}
	_, err := lagoon.Area(moves)
	var ovf *lagoon.OverflowError
	if !errors.As(err, &ovf) {
		t.Fatalf("expected *OverflowError, got %v", err)
	}
	if ovf.Magnitude.String() != "9223372036854775808" {
		t.Errorf("magnitude %s", ovf.Magnitude)
	}
}

func TestTrench(t *testing.T) {
	for _, tc := range testcases.All["basic"] {
		p, err := lagoon.BuildPath(tc.Moves)
		if err != nil {
			t.Fatal(err)
		}
		var want uint64
		for _, m := range tc.Moves {
			want += uint64(m.Dist)
		}
		got, err := lagoon.Trench(tc.Moves)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: trench %d, want %d", tc.Name, got, want)
		}
		if got2, _ := p.Perimeter(); got2 != got {
			t.Errorf("%s: Perimeter %d, Trench %d", tc.Name, got2, got)
		}
	}
}

func TestOrientation(t *testing.T) {
	for _, tc := range testcases.All["concave"] {
		p, err := lagoon.BuildPath(tc.Moves)
		if err != nil {
			t.Fatal(err)
		}
		q, err := lagoon.BuildPath(lagoon.Reverse(tc.Moves))
		if err != nil {
			t.Fatal(err)
		}
		if p.Orientation() == q.Orientation() {
			t.Errorf("%s: reversal keeps orientation %s", tc.Name, p.Orientation())
		}
	}

	sq := testcases.All["basic"][0].Moves // clockwise on screen
	p, _ := lagoon.BuildPath(sq)
	if p.Orientation() != lagoon.Clockwise {
		t.Errorf("unit square is %s", p.Orientation())
	}
}

func TestBounds(t *testing.T) {
	p, err := lagoon.BuildPath([]lagoon.Move{
		mv(lagoon.Left, 2), mv(lagoon.Up, 3), mv(lagoon.Right, 2), mv(lagoon.Down, 3),
	})
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := p.Bounds()
	if lo != (lagoon.Vertex{Row: -3, Col: -2}) || hi != (lagoon.Vertex{}) {
		t.Errorf("bounds %v, %v", lo, hi)
	}
	if p.Len() != 4 {
		t.Errorf("%d segments", p.Len())
	}
}

func TestAreaAll(t *testing.T) {
	var paths [][]lagoon.Move
	var want []uint64
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			paths = append(paths, tc.Moves)
			want = append(want, tc.Area)
		}
	}
	paths = append(paths, []lagoon.Move{mv(lagoon.Right, 1)})
	want = append(want, 0)

	got, err := lagoon.AreaAll(context.Background(), paths)
	if !errors.Is(err, lagoon.ErrMalformedPath) {
		t.Errorf("expected ErrMalformedPath, got %v", err)
	}
	var pathErr *lagoon.PathError
	if !errors.As(err, &pathErr) || pathErr.Index != len(paths)-1 {
		t.Errorf("expected a PathError for path %d, got %v", len(paths)-1, err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err = lagoon.AreaAll(ctx, paths[:2])
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("cancelled run returned %v", got)
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	lagoon.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer lagoon.SetLogger(nil)

	if _, err := lagoon.Area(testcases.All["basic"][1].Moves); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "sweep complete") || !strings.Contains(out, "cells=12") {
		t.Errorf("unexpected log output %q", out)
	}
}
