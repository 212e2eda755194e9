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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Shades used by [Preview].
var (
	ShadeInterior = color.Gray{Y: 0x80}
	ShadeTrench   = color.Gray{Y: 0xFF}
)

// CountCovered fills the outline with the nonzero rule and returns the
// number of cells in box with non-zero coverage.  When the outline has
// its vertices at cell centres, these are the cells on or inside the
// outline.
func (r *Rasteriser) CountCovered(outline *path.Data, box rect.Rect) (int, error) {
	r.Clip = box
	count := 0
	err := r.FillNonZero(outline, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			if c > 0 {
				count++
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Preview draws the region enclosed by the outline in [ShadeInterior] and
// the trench along the outline in [ShadeTrench], on a black background.
// Each cell of box becomes one pixel.
func (r *Rasteriser) Preview(outline *path.Data, box rect.Rect) (*image.Gray, error) {
	r.Clip = box
	x0, y0 := int(box.LLx), int(box.LLy)
	img := image.NewGray(image.Rect(0, 0, int(box.URx)-x0, int(box.URy)-y0))

	err := r.FillNonZero(outline, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c > 0 {
				img.SetGray(xMin+i-x0, y-y0, ShadeInterior)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	err = r.Stroke(outline, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c >= 0.5 {
				img.SetGray(xMin+i-x0, y-y0, ShadeTrench)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}
