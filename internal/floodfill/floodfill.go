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

// Package floodfill counts enclosed cells by materialising the grid.
// It exists as a reference for testing the sweep in the lagoon package.
package floodfill

import (
	"errors"
	"fmt"
	"image"
)

// MaxCells limits the size of the padded, doubled grid.
const MaxCells = 4_000_000

// ErrTooLarge is returned when the grid exceeds MaxCells.
var ErrTooLarge = errors.New("floodfill: bounding box too large")

// Count returns the number of cells on or inside the closed polygon with
// the given corners.  Consecutive corners (cyclically) must share a row
// or a column.  Points use X for the column and Y for the row.
//
// The fill runs on a grid of twice the resolution: cell (x, y) becomes
// grid point (2x+1, 2y+1) relative to the bounding box, and the points
// in between represent the gaps between neighbouring cells.  This lets
// the outside reach pockets whose entrance lies between two adjacent
// walls.  The grid is padded by one point on every side.
func Count(corners []image.Point) (int, error) {
	if len(corners) == 0 {
		return 0, nil
	}

	box := image.Rectangle{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		box.Min.X = min(box.Min.X, c.X)
		box.Min.Y = min(box.Min.Y, c.Y)
		box.Max.X = max(box.Max.X, c.X)
		box.Max.Y = max(box.Max.Y, c.Y)
	}
	w, h := 2*box.Dx()+3, 2*box.Dy()+3
	if w*h > MaxCells {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, box.Dx()+1, box.Dy()+1)
	}

	const (
		unknown = iota
		wall
		outside
	)
	grid := make([]byte, w*h)
	at := func(p image.Point) *byte {
		return &grid[p.Y*w+p.X]
	}
	toGrid := func(c image.Point) image.Point {
		return image.Pt(2*(c.X-box.Min.X)+1, 2*(c.Y-box.Min.Y)+1)
	}

	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		if a.X != b.X && a.Y != b.Y {
			return 0, fmt.Errorf("floodfill: edge %d from %v to %v is not axis-aligned", i, a, b)
		}
		ga, gb := toGrid(a), toGrid(b)
		d := image.Pt(sign(gb.X-ga.X), sign(gb.Y-ga.Y))
		for p := ga; p != gb; p = p.Add(d) {
			*at(p) = wall
		}
		*at(gb) = wall
	}

	bounds := image.Rect(0, 0, w, h)
	queue := []image.Point{{}}
	*at(image.Point{}) = outside
	steps := []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, d := range steps {
			q := p.Add(d)
			if !q.In(bounds) || *at(q) != unknown {
				continue
			}
			*at(q) = outside
			queue = append(queue, q)
		}
	}

	count := 0
	for y := 1; y < h; y += 2 {
		for x := 1; x < w; x += 2 {
			if grid[y*w+x] != outside {
				count++
			}
		}
	}
	return count, nil
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
