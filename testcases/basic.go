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

var basicCases = []TestCase{
	{
		Name:  "unit_square",
		Moves: moves("R", 1, "D", 1, "L", 1, "U", 1),
		Area:  4,
	},
	{
		Name:  "rectangle",
		Moves: moves("R", 3, "D", 2, "L", 3, "U", 2),
		Area:  12,
	},
	{
		Name:  "tall_rectangle",
		Moves: moves("D", 5, "R", 1, "U", 5, "L", 1),
		Area:  12,
	},
	{
		Name:  "square_ccw",
		Moves: moves("D", 4, "R", 4, "U", 4, "L", 4),
		Area:  25,
	},
	{
		Name:  "negative_quadrant",
		Moves: moves("L", 2, "U", 3, "R", 2, "D", 3),
		Area:  12,
	},
}
