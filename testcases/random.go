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

package testcases

import (
	"image"
	"math/rand/v2"
	"slices"

	"seehuhn.de/go/lagoon"
)

// RandomMonotone returns a random simple closed path which is monotone in
// the column direction.  The path is built from up to slabs vertical
// slabs, each spanning a random row interval; neighbouring slabs share at
// least one interior row.  All corners lie in [0, size]x[0, size].
// The path runs clockwise and starts at the top left corner.
//
// RandomMonotone panics if slabs < 1 or size < slabs.
func RandomMonotone(rng *rand.Rand, slabs int, size int64) []lagoon.Move {
	if slabs < 1 || size < int64(slabs) {
		panic("testcases: invalid RandomMonotone parameters")
	}

	// slab i covers the columns xs[i]..xs[i+1]
	xs := make([]int64, 0, slabs+1)
	seen := make(map[int64]bool)
	for len(xs) < slabs+1 {
		x := rng.Int64N(size + 1)
		if !seen[x] {
			seen[x] = true
			xs = append(xs, x)
		}
	}
	slices.Sort(xs)

	top := make([]int64, slabs)
	bot := make([]int64, slabs)
	top[0] = rng.Int64N(size)
	bot[0] = top[0] + 1 + rng.Int64N(size-top[0])
	for i := 1; i < slabs; i++ {
		top[i] = rng.Int64N(bot[i-1])
		lo := max(top[i-1], top[i]) + 1
		bot[i] = lo + rng.Int64N(size-lo+1)
	}

	var corners []lagoon.Vertex
	corners = append(corners, lagoon.Vertex{Row: top[0], Col: xs[0]})
	for i := range slabs {
		corners = append(corners, lagoon.Vertex{Row: top[i], Col: xs[i+1]})
		if i+1 < slabs {
			corners = append(corners, lagoon.Vertex{Row: top[i+1], Col: xs[i+1]})
		}
	}
	for i := slabs - 1; i >= 0; i-- {
		corners = append(corners, lagoon.Vertex{Row: bot[i], Col: xs[i+1]})
		corners = append(corners, lagoon.Vertex{Row: bot[i], Col: xs[i]})
	}

	return cornersToMoves(dropCollinear(corners))
}

// dropCollinear removes repeated corners and corners in the middle of a
// straight run, treating the list as cyclic.
func dropCollinear(corners []lagoon.Vertex) []lagoon.Vertex {
	collinear := func(a, b, c lagoon.Vertex) bool {
		return (a.Row == b.Row && b.Row == c.Row) || (a.Col == b.Col && b.Col == c.Col)
	}
	for {
		n := len(corners)
		changed := false
		for i := 0; i < n; i++ {
			a := corners[(i+n-1)%n]
			b := corners[i]
			c := corners[(i+1)%n]
			if a == b || collinear(a, b, c) {
				corners = slices.Delete(corners, i, i+1)
				changed = true
				break
			}
		}
		if !changed {
			return corners
		}
	}
}

func cornersToMoves(corners []lagoon.Vertex) []lagoon.Move {
	n := len(corners)
	res := make([]lagoon.Move, 0, n)
	for i, a := range corners {
		b := corners[(i+1)%n]
		var m lagoon.Move
		switch {
		case b.Col > a.Col:
			m = lagoon.Move{Dir: lagoon.Right, Dist: b.Col - a.Col}
		case b.Col < a.Col:
			m = lagoon.Move{Dir: lagoon.Left, Dist: a.Col - b.Col}
		case b.Row > a.Row:
			m = lagoon.Move{Dir: lagoon.Down, Dist: b.Row - a.Row}
		default:
			m = lagoon.Move{Dir: lagoon.Up, Dist: a.Row - b.Row}
		}
		res = append(res, m)
	}
	return res
}

// RandomBlob returns the boundary of a random connected set of cells in
// a width×height grid, grown from the centre by the given number of
// random steps.  Holes are filled, and cells which meet only at a corner
// are joined, so that the boundary is a simple closed path.
//
// The grid lines of the blob are then spread apart by random gaps of one
// to three cells.  Walls in neighbouring grid lines thus often enclose
// outside pockets with an entrance only one cell wide.  The path runs
// clockwise.
//
// RandomBlob panics if width or height is less than 1.
func RandomBlob(rng *rand.Rand, width, height, steps int) []lagoon.Move {
	if width < 1 || height < 1 {
		panic("testcases: invalid RandomBlob parameters")
	}

	b := newBlob(width, height)
	cells := []image.Point{{width / 2, height / 2}}
	b.set(cells[0])
	for range steps {
		p := cells[rng.IntN(len(cells))].Add(neighbours[rng.IntN(4)])
		if p.In(b.bounds) && !b.at(p) {
			b.set(p)
			cells = append(cells, p)
		}
	}
	for b.fillHoles() || b.joinCorners(rng) {
	}

	xs := spread(rng, width)
	ys := spread(rng, height)
	var corners []lagoon.Vertex
	for _, p := range b.trace() {
		corners = append(corners, lagoon.Vertex{Row: ys[p.Y], Col: xs[p.X]})
	}
	return cornersToMoves(dropCollinear(corners))
}

var neighbours = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// blob is a set of cells in a rectangular grid.
type blob struct {
	bounds image.Rectangle
	filled []bool
}

func newBlob(width, height int) *blob {
	return &blob{
		bounds: image.Rect(0, 0, width, height),
		filled: make([]bool, width*height),
	}
}

// at reports whether p is in the blob.  Points outside the grid are not.
func (b *blob) at(p image.Point) bool {
	return p.In(b.bounds) && b.filled[p.Y*b.bounds.Dx()+p.X]
}

func (b *blob) set(p image.Point) {
	b.filled[p.Y*b.bounds.Dx()+p.X] = true
}

// fillHoles adds all cells which cannot be reached from outside the grid.
func (b *blob) fillHoles() bool {
	outer := b.bounds.Inset(-1)
	seen := make(map[image.Point]bool)
	queue := []image.Point{outer.Min}
	seen[outer.Min] = true
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, d := range neighbours {
			q := p.Add(d)
			if q.In(outer) && !seen[q] && !b.at(q) {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}

	changed := false
	for y := range b.bounds.Dy() {
		for x := range b.bounds.Dx() {
			p := image.Pt(x, y)
			if !b.at(p) && !seen[p] {
				b.set(p)
				changed = true
			}
		}
	}
	return changed
}

// joinCorners fills one of the two empty cells of every 2×2 window in
// which two cells meet only at a corner.
func (b *blob) joinCorners(rng *rand.Rand) bool {
	changed := false
	for y := range b.bounds.Dy() - 1 {
		for x := range b.bounds.Dx() - 1 {
			nw, ne := image.Pt(x, y), image.Pt(x+1, y)
			sw, se := image.Pt(x, y+1), image.Pt(x+1, y+1)
			var gap [2]image.Point
			switch {
			case b.at(nw) && b.at(se) && !b.at(ne) && !b.at(sw):
				gap = [2]image.Point{ne, sw}
			case b.at(ne) && b.at(sw) && !b.at(nw) && !b.at(se):
				gap = [2]image.Point{nw, se}
			default:
				continue
			}
			b.set(gap[rng.IntN(2)])
			changed = true
		}
	}
	return changed
}

// trace returns the grid points along the boundary of the blob, in
// clockwise order.  Grid point (x, y) is the top-left corner of cell
// (x, y).
func (b *blob) trace() []image.Point {
	next := make(map[image.Point]image.Point)
	start := image.Pt(b.bounds.Max.X, b.bounds.Max.Y)
	for y := range b.bounds.Dy() {
		for x := range b.bounds.Dx() {
			p := image.Pt(x, y)
			if !b.at(p) {
				continue
			}
			if !b.at(p.Add(image.Pt(0, -1))) {
				next[p] = image.Pt(x+1, y)
				if y < start.Y || (y == start.Y && x < start.X) {
					start = p
				}
			}
			if !b.at(p.Add(image.Pt(1, 0))) {
				next[image.Pt(x+1, y)] = image.Pt(x+1, y+1)
			}
			if !b.at(p.Add(image.Pt(0, 1))) {
				next[image.Pt(x+1, y+1)] = image.Pt(x, y+1)
			}
			if !b.at(p.Add(image.Pt(-1, 0))) {
				next[image.Pt(x, y+1)] = p
			}
		}
	}

	res := []image.Point{start}
	for p := next[start]; p != start; p = next[p] {
		res = append(res, p)
	}
	return res
}

// spread maps the grid lines 0..n to increasing coordinates with random
// gaps of one to three.
func spread(rng *rand.Rand, n int) []int64 {
	res := make([]int64, n+1)
	for i := 1; i <= n; i++ {
		res[i] = res[i-1] + 1 + rng.Int64N(3)
	}
	return res
}
