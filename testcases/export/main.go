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

// Command export writes the test cases to JSON, for checking other
// implementations against the same data.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Moves  []jsonMove `json:"moves"`
	Area   uint64     `json:"area"`
	Trench uint64     `json:"trench"`
	Bounds [4]int64   `json:"bounds"` // min row, min col, max row, max col
}

type jsonMove struct {
	Dir  string `json:"dir"`
	Dist int64  `json:"dist"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	p, err := lagoon.BuildPath(tc.Moves)
	if err != nil {
		return jsonTestCase{}, err
	}
	trench, err := p.Perimeter()
	if err != nil {
		return jsonTestCase{}, err
	}
	lo, hi := p.Bounds()

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Area:   tc.Area,
		Trench: trench,
		Bounds: [4]int64{lo.Row, lo.Col, hi.Row, hi.Col},
	}
	for _, m := range tc.Moves {
		jtc.Moves = append(jtc.Moves, jsonMove{Dir: m.Dir.String(), Dist: m.Dist})
	}
	return jtc, nil
}
