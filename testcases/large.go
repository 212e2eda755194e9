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

// largeCases contains paths whose bounding box exceeds 65536 cells, so that
// the rasteriser switches to its active edge list.  The last entries are far
// too large to materialise and can only be checked with the sweep.
var largeCases = []TestCase{
	{
		Name:  "big_square",
		Moves: moves("R", 299, "D", 299, "L", 299, "U", 299),
		Area:  90000,
	},
	{
		Name:  "big_notch",
		Moves: moves("R", 100, "D", 200, "R", 100, "U", 200, "R", 100, "D", 300, "L", 300, "U", 300),
		Area:  70801,
	},
	{
		Name:  "wide_band",
		Moves: moves("R", 3_000_000_000, "D", 1, "L", 3_000_000_000, "U", 1),
		Area:  6_000_000_002,
	},
	{
		Name:  "huge_square",
		Moves: moves("R", 1_000_000_000, "D", 1_000_000_000, "L", 1_000_000_000, "U", 1_000_000_000),
		Area:  1_000_000_002_000_000_001,
	},
}
