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

// Package testcases collects closed paths with known cell counts.
package testcases

import "seehuhn.de/go/lagoon"

// TestCase is a closed path together with its expected cell count.
type TestCase struct {
	Name  string        // lowercase a-z, 0-9 and _ only
	Moves []lagoon.Move // the path, starting at the origin
	Area  uint64        // number of cells on or inside the path
}

// moves builds a move list from alternating direction letters and
// distances, e.g. moves("R", 3, "D", 2).
func moves(args ...any) []lagoon.Move {
	res := make([]lagoon.Move, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		var dir lagoon.Direction
		switch args[i].(string) {
		case "U":
			dir = lagoon.Up
		case "D":
			dir = lagoon.Down
		case "L":
			dir = lagoon.Left
		case "R":
			dir = lagoon.Right
		default:
			panic("invalid direction " + args[i].(string))
		}
		var dist int64
		switch d := args[i+1].(type) {
		case int:
			dist = int64(d)
		case int64:
			dist = d
		default:
			panic("invalid distance")
		}
		res = append(res, lagoon.Move{Dir: dir, Dist: dist})
	}
	return res
}
