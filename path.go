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

package lagoon

import (
	"fmt"
	"math"
	"math/big"
)

// Vertex is a grid cell, given by row and column.
type Vertex struct {
	Row, Col int64
}

// Path is a closed rectilinear path.
// A Path is immutable and safe for concurrent use.
type Path struct {
	vertices []Vertex  // vertices[i] is the start of segments[i]
	segments []Segment // horizontal and vertical segments alternate
}

// BuildPath replays the moves, starting at the origin, and returns the
// resulting closed path.
//
// The moves must alternate between horizontal and vertical directions,
// including the pair formed by the last and the first move, and must
// return to the origin.
func BuildPath(moves []Move) (*Path, error) {
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: no moves", ErrMalformedPath)
	}

	vertices := make([]Vertex, 0, len(moves))
	var cur Vertex
	for i, m := range moves {
		if !m.Dir.IsValid() {
			return nil, fmt.Errorf("%w: move %d: invalid direction %d", ErrMalformedPath, i, int(m.Dir))
		}
		if m.Dist < 0 {
			return nil, fmt.Errorf("%w: move %d: negative distance %d", ErrMalformedPath, i, m.Dist)
		} else if m.Dist == 0 {
			return nil, fmt.Errorf("%w: move %d has length zero", ErrDegenerateSegment, i)
		}
		prev := moves[(i+len(moves)-1)%len(moves)]
		if prev.Dir.vertical() == m.Dir.vertical() {
			return nil, fmt.Errorf("%w: moves %d and %d are on the same axis (%s, %s)",
				ErrMalformedPath, (i+len(moves)-1)%len(moves), i, prev.Dir, m.Dir)
		}

		vertices = append(vertices, cur)
		next, err := step(cur, m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		cur = next
	}
	if cur != (Vertex{}) {
		return nil, fmt.Errorf("%w: path ends at (%d, %d) instead of the origin",
			ErrMalformedPath, cur.Row, cur.Col)
	}

	segments, err := classify(vertices)
	if err != nil {
		return nil, err
	}
	return &Path{vertices: vertices, segments: segments}, nil
}

// step applies a single move to v, checking for int64 overflow.
func step(v Vertex, m Move) (Vertex, error) {
	dRow, dCol := m.Dir.delta()
	row, err := addScaled(v.Row, dRow, m.Dist)
	if err != nil {
		return Vertex{}, err
	}
	col, err := addScaled(v.Col, dCol, m.Dist)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{Row: row, Col: col}, nil
}

// addScaled returns x + sign*dist, where sign is -1, 0 or 1 and dist >= 0.
func addScaled(x, sign, dist int64) (int64, error) {
	switch {
	case sign > 0 && x > math.MaxInt64-dist,
		sign < 0 && x < math.MinInt64+dist:
		exact := big.NewInt(dist)
		exact.Mul(exact, big.NewInt(sign))
		exact.Add(exact, big.NewInt(x))
		return 0, &OverflowError{Op: "coordinate", Magnitude: exact}
	}
	return x + sign*dist, nil
}

// Len returns the number of segments (and vertices) of the path.
func (p *Path) Len() int {
	return len(p.segments)
}

// Vertices returns a copy of the path's corner vertices, in path order.
func (p *Path) Vertices() []Vertex {
	return append([]Vertex(nil), p.vertices...)
}

// Segments returns a copy of the path's segments, in path order.
func (p *Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Bounds returns the top-left and bottom-right corners of the smallest
// rectangle of cells which contains the path.
func (p *Path) Bounds() (lo, hi Vertex) {
	lo, hi = p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		lo.Row = min(lo.Row, v.Row)
		lo.Col = min(lo.Col, v.Col)
		hi.Row = max(hi.Row, v.Row)
		hi.Col = max(hi.Col, v.Col)
	}
	return lo, hi
}

// Perimeter returns the number of cells on the path itself.
func (p *Path) Perimeter() (uint64, error) {
	var acc accumulator
	for _, s := range p.segments {
		if err := acc.add(s.length()); err != nil {
			return 0, err
		}
	}
	return acc.total, nil
}

// Orientation returns the direction in which the path is traversed,
// as seen on a screen with rows growing downwards.
func (p *Path) Orientation() Turn {
	var balance int
	for _, s := range p.segments {
		if s.EndTurn == Clockwise {
			balance++
		} else {
			balance--
		}
	}
	if balance > 0 {
		return Clockwise
	}
	return CounterClockwise
}
