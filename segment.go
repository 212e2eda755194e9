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

import "fmt"

// Orientation distinguishes horizontal from vertical segments.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Turn is the direction in which the path turns at a corner.
// Rows grow downwards, so a turn from Right to Down is clockwise.
type Turn int

const (
	Clockwise Turn = iota
	CounterClockwise
)

func (t Turn) String() string {
	if t == Clockwise {
		return "cw"
	}
	return "ccw"
}

// Segment is a straight part of a path between two consecutive corners.
type Segment struct {
	Orientation Orientation

	// Fixed is the row of a horizontal segment, or the column of a
	// vertical segment.
	Fixed int64

	// Lo and Hi give the inclusive range of columns (horizontal) or rows
	// (vertical) covered by the segment.  Lo < Hi.
	Lo, Hi int64

	// StartTurn and EndTurn are the turns the path makes at the first and
	// last vertex of the segment, in path order.
	StartTurn, EndTurn Turn
}

// Contains reports whether the segment covers the given position along
// its varying axis.
func (s Segment) Contains(pos int64) bool {
	return s.Lo <= pos && pos <= s.Hi
}

// length returns the number of cells of the segment, not counting the
// final vertex.
func (s Segment) length() uint64 {
	return uint64(s.Hi) - uint64(s.Lo)
}

// classify converts a closed cycle of corner vertices into segments.
// Segment i runs from vertices[i] to vertices[i+1] (cyclically).
func classify(vertices []Vertex) ([]Segment, error) {
	n := len(vertices)
	if n < 4 {
		return nil, fmt.Errorf("%w: %d corners, need at least 4", ErrMalformedPath, n)
	}

	segments := make([]Segment, n)
	dirs := make([][2]int64, n) // unit travel direction (dCol, dRow) of each segment
	for i, a := range vertices {
		b := vertices[(i+1)%n]
		var s Segment
		switch {
		case a == b:
			return nil, fmt.Errorf("%w: segment %d at (%d, %d) has zero length",
				ErrDegenerateSegment, i, a.Row, a.Col)
		case a.Row == b.Row:
			s = Segment{Orientation: Horizontal, Fixed: a.Row, Lo: min(a.Col, b.Col), Hi: max(a.Col, b.Col)}
		case a.Col == b.Col:
			s = Segment{Orientation: Vertical, Fixed: a.Col, Lo: min(a.Row, b.Row), Hi: max(a.Row, b.Row)}
		default:
			return nil, fmt.Errorf("%w: segment %d from (%d, %d) to (%d, %d) is not axis-aligned",
				ErrMalformedPath, i, a.Row, a.Col, b.Row, b.Col)
		}
		segments[i] = s
		dirs[i] = [2]int64{sign(b.Col - a.Col), sign(b.Row - a.Row)}
	}

	turns := make([]Turn, n) // turns[i] is the turn at vertices[i]
	for i := range segments {
		prev := (i + n - 1) % n
		if segments[prev].Orientation == segments[i].Orientation {
			return nil, fmt.Errorf("%w: segments %d and %d are both %s",
				ErrMalformedPath, prev, i, segments[i].Orientation)
		}
		in, out := dirs[prev], dirs[i]
		if in[0]*out[1]-in[1]*out[0] > 0 {
			turns[i] = Clockwise
		} else {
			turns[i] = CounterClockwise
		}
	}
	for i := range segments {
		segments[i].StartTurn = turns[i]
		segments[i].EndTurn = turns[(i+1)%n]
	}

	return segments, nil
}

// sign returns -1, 0 or 1.
func sign(x int64) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
