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

// Command genpdf draws every test case into a PDF file, with the enclosed
// region in grey and the trench in black, for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/testcases"
)

const (
	outDir = "testdata/pdf"

	// pageSize is the length of the longer page side, in points.
	pageSize = 400.0
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			p, err := lagoon.BuildPath(tc.Moves)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(p, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(p *lagoon.Path, pdfPath string) error {
	// one unit per cell, with the outline through the cell centres
	lo, hi := p.Bounds()
	w := float64(hi.Col-lo.Col) + 1
	h := float64(hi.Row-lo.Row) + 1
	scale := pageSize / max(w, h)

	paper := &pdf.Rectangle{
		URx: w * scale,
		URy: h * scale,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; rows grow downwards.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h * scale})

	drawOutline := func() {
		for i, v := range p.Vertices() {
			x := float64(v.Col-lo.Col) + 0.5
			y := float64(v.Row-lo.Row) + 0.5
			if i == 0 {
				page.MoveTo(x, y)
			} else {
				page.LineTo(x, y)
			}
		}
		page.ClosePath()
	}

	page.SetFillColor(color.DeviceGray(0.5))
	drawOutline()
	page.Fill()

	// Cells are tiny for the large cases; keep the trench visible.
	lineWidth := max(1, 1/scale)
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lineWidth)
	page.SetLineJoin(graphics.LineJoinMiter)
	drawOutline()
	page.Stroke()

	return page.Close()
}
