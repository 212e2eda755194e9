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

// ExamplePlan is the sample dig plan.  Read with plain directions it
// encloses 62 cells; decoded from the colour field it encloses
// 952408144115 cells.
const ExamplePlan = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`

var puzzleCases = []TestCase{
	{
		Name: "example",
		Moves: moves("R", 6, "D", 5, "L", 2, "D", 2, "R", 2, "D", 2, "L", 5,
			"U", 2, "L", 1, "U", 2, "R", 2, "U", 3, "L", 2, "U", 2),
		Area: 62,
	},
	{
		Name: "example_hex",
		Moves: moves("R", 461937, "D", 56407, "R", 356671, "D", 863240,
			"R", 367720, "D", 266681, "L", 577262, "U", 829975, "L", 112010,
			"D", 829975, "L", 491645, "U", 686074, "L", 5411, "U", 500254),
		Area: 952408144115,
	},
}
