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

// concaveCases exercise boundary touches which only reach up from the
// top row of a band.
var concaveCases = []TestCase{
	// 6x3 block on top of a 4x2 block: the right flank jogs inwards
	{
		Name:  "l_shape",
		Moves: moves("R", 5, "D", 2, "L", 2, "D", 2, "L", 3, "U", 4),
		Area:  26,
	},
	// 5x5 block with a two-cell notch cut in from the top
	{
		Name:  "notch_top",
		Moves: moves("R", 1, "D", 2, "R", 2, "U", 2, "R", 1, "D", 4, "L", 4, "U", 4),
		Area:  23,
	},
	// the same notch, cut in from the bottom
	{
		Name:  "notch_bottom",
		Moves: moves("R", 4, "D", 4, "L", 1, "U", 2, "L", 2, "D", 2, "L", 1, "U", 4),
		Area:  23,
	},
	// a deeper notch ending one row above the bottom edge
	{
		Name:  "u_shape",
		Moves: moves("R", 1, "D", 3, "R", 2, "U", 3, "R", 1, "D", 4, "L", 4, "U", 4),
		Area:  22,
	},
	// a notch of height one: column 3 carries two segments on adjacent rows
	{
		Name:  "adjacent_notch",
		Moves: moves("R", 3, "D", 2, "L", 1, "D", 1, "R", 1, "D", 2, "L", 3, "U", 5),
		Area:  24,
	},
	{
		Name:  "plus",
		Moves: moves("R", 2, "D", 2, "R", 2, "D", 2, "L", 2, "D", 2, "L", 2, "U", 2, "L", 2, "U", 2, "R", 2, "U", 2),
		Area:  33,
	},
	{
		Name:  "staircase",
		Moves: moves("R", 2, "D", 1, "R", 2, "D", 1, "R", 2, "D", 1, "L", 6, "U", 3),
		Area:  22,
	},
	{
		Name:  "c_shape",
		Moves: moves("R", 6, "D", 2, "L", 4, "D", 2, "R", 4, "D", 2, "L", 6, "U", 6),
		Area:  45,
	},
	// an outside pocket whose entrance lies between two walls in
	// adjacent columns
	{
		Name: "pocket",
		Moves: moves("R", 1, "D", 3, "R", 3, "D", 10, "L", 5, "U", 3, "L", 4, "D", 3, "L", 1,
			"U", 6, "R", 2, "U", 4, "R", 3, "D", 4, "R", 2, "U", 3, "L", 1, "U", 4),
		Area: 108,
	},
}
