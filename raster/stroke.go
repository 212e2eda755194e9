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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroke renders the outline as a trench of thickness Width, using square
// caps.  For axis-aligned outlines square caps and miter joins coincide,
// so every edge is drawn as a rectangle extending Width/2 beyond the edge
// on all sides.  Overlapping rectangles are combined with the nonzero
// rule.
//
// With Width 1 and vertices at cell centres, exactly the cells on the
// outline are covered.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) error {
	if r.CTM[1] != 0 || r.CTM[2] != 0 {
		return ErrNotRectilinear
	}

	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			if err := r.addTrenchSegment(current, p.Coords[coordIdx]); err != nil {
				return err
			}
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return ErrCurve

		case path.CmdClose:
			if current != subpath {
				if err := r.addTrenchSegment(current, subpath); err != nil {
					return err
				}
			}
			current = subpath
		}
	}

	r.rasterise(fillNonZero, emit)
	return nil
}

// addTrenchSegment adds the rectangle around the segment from a to b.
func (r *Rasteriser) addTrenchSegment(a, b vec.Vec2) error {
	dx, dy := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
	if dx >= degenerateThreshold && dy >= degenerateThreshold {
		return ErrNotRectilinear
	}

	d := r.Width / 2
	c0 := r.toDevice(vec.Vec2{X: min(a.X, b.X) - d, Y: min(a.Y, b.Y) - d})
	c1 := r.toDevice(vec.Vec2{X: max(a.X, b.X) + d, Y: max(a.Y, b.Y) + d})
	x0, x1 := min(c0.X, c1.X), max(c0.X, c1.X)
	y0, y1 := min(c0.Y, c1.Y), max(c0.Y, c1.Y)
	if x1-x0 < degenerateThreshold || y1-y0 < degenerateThreshold {
		return nil
	}

	// left side downwards, right side upwards
	r.appendEdge(edge{x: x0, y0: y0, y1: y1})
	r.appendEdge(edge{x: x1, y0: y1, y1: y0})
	return nil
}
