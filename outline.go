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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the path as vector geometry, with x to the right and
// y downwards.  Cell (row, col) is the unit square with top-left corner
// (col, row), so that each vertex of the path becomes the centre of its
// cell.
//
// Coordinates are converted to float64; beyond 2^53 the outline is only
// approximate.  The cell count is always computed on the exact integer
// path.
func (p *Path) Outline() *path.Data {
	res := &path.Data{}
	for i, v := range p.vertices {
		pt := vec.Vec2{X: float64(v.Col) + 0.5, Y: float64(v.Row) + 0.5}
		if i == 0 {
			res = res.MoveTo(pt)
		} else {
			res = res.LineTo(pt)
		}
	}
	return res.Close()
}

// CellBox returns the rectangle covered by the cells in the bounding box
// of the path, in the coordinates used by [Path.Outline].
func (p *Path) CellBox() rect.Rect {
	lo, hi := p.Bounds()
	return rect.Rect{
		LLx: float64(lo.Col),
		LLy: float64(lo.Row),
		URx: float64(hi.Col) + 1,
		URy: float64(hi.Row) + 1,
	}
}
