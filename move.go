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
	"slices"
)

// Direction is the direction of a single move on the grid.
// Rows grow downwards and columns grow to the right.
type Direction int

// These are the four possible move directions.
const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// IsValid reports whether d is one of the four defined directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Transpose swaps the roles of rows and columns.
func (d Direction) Transpose() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Up
	case Down:
		return Right
	case Right:
		return Down
	}
	return d
}

// vertical reports whether the direction changes the row.
func (d Direction) vertical() bool {
	return d == Up || d == Down
}

// delta returns the unit step (dRow, dCol) for the direction.
func (d Direction) delta() (int64, int64) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Move is a straight run of Dist cells in direction Dir.
type Move struct {
	Dir  Direction
	Dist int64
}

func (m Move) String() string {
	return fmt.Sprintf("%s %d", m.Dir, m.Dist)
}

// Reverse returns the moves that trace the same closed path in the
// opposite direction, starting from the same vertex.
func Reverse(moves []Move) []Move {
	res := make([]Move, len(moves))
	for i, m := range moves {
		res[len(moves)-1-i] = Move{Dir: m.Dir.Opposite(), Dist: m.Dist}
	}
	return res
}

// Rotate returns the moves of the same cycle, starting with moves[k].
// The result traces the same shape, shifted so that the new starting
// vertex is at the origin.
func Rotate(moves []Move, k int) []Move {
	n := len(moves)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n
	return slices.Concat(moves[k:], moves[:k])
}

// Transpose mirrors the moves along the main diagonal.
// The enclosed cell count is unchanged.
func Transpose(moves []Move) []Move {
	res := make([]Move, len(moves))
	for i, m := range moves {
		res[i] = Move{Dir: m.Dir.Transpose(), Dist: m.Dist}
	}
	return res
}
