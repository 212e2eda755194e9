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

// Package raster computes per-cell coverage of axis-aligned outlines.
//
// The rasteriser materialises one float per cell of the bounding box, so
// it is only suitable for small regions.  It is used to cross-check the
// cell counts computed by the lagoon package and to draw previews.
package raster

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNotRectilinear is returned for outlines with sloped edges.
	ErrNotRectilinear = errors.New("raster: edge is not axis-aligned")

	// ErrCurve is returned for outlines containing Bézier segments.
	ErrCurve = errors.New("raster: curves are not supported")
)

// edge is a vertical line segment in device coordinates.
type edge struct {
	x      float64 // device x coordinate
	y0, y1 float64 // start and end, in path direction
}

// Rasteriser converts axis-aligned outlines to cell coverage values, the
// fraction of each unit cell covered by the region, ranging from 0
// (outside) to 1 (inside).  Internal buffers grow as needed but never
// shrink, so one instance should be reused for many outlines.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space.  It must not rotate
	// or shear, so that axis-aligned edges stay axis-aligned.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Width sets the trench width for [Rasteriser.Stroke], in user-space
	// units.  Must be positive.
	Width float64

	// smallPathThreshold is the maximum bounding box area (in cells) for
	// using 2D buffers (Approach A).  Larger outlines use the active edge
	// list (Approach B).
	smallPathThreshold int

	cover       []float32 // cover change per cell; reused as output
	area        []float32 // area within cell
	edges       []edge
	activeIdx   []int  // indices of active edges (Approach B)
	rowHasEdges []bool // per-row flag (Approach A)

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, the
// identity transformation and a trench width of one cell.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,

		smallPathThreshold: smallPathThreshold,
	}
}

// Reset prepares the rasteriser for a new clip rectangle, keeping the
// internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
}

// FillNonZero fills the outline using the nonzero winding rule.  The emit
// callback receives coverage row by row; its slice argument is valid only
// during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) error {
	return r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the outline using the even-odd rule.  The emit
// callback receives coverage row by row; its slice argument is valid only
// during the call.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) error {
	return r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) error {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	if err := r.collectPathEdges(p); err != nil {
		return err
	}
	r.rasterise(rule, emit)
	return nil
}

// rasterise fills the collected edges.
func (r *Rasteriser) rasterise(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectPathEdges walks the path and appends its vertical edges, in
// device coordinates, to r.edges.
func (r *Rasteriser) collectPathEdges(p *path.Data) error {
	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			if err := r.addEdge(current, p.Coords[coordIdx]); err != nil {
				return err
			}
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return ErrCurve

		case path.CmdClose:
			if current != subpath {
				if err := r.addEdge(current, subpath); err != nil {
					return err
				}
			}
			current = subpath
		}
	}
	return nil
}

// addEdge transforms an edge to device space and records it.
// Horizontal edges do not change coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) error {
	d0 := r.toDevice(p0)
	d1 := r.toDevice(p1)

	dy := d1.Y - d0.Y
	if math.Abs(dy) < degenerateThreshold {
		return nil
	}
	if math.Abs(d1.X-d0.X) >= degenerateThreshold {
		return ErrNotRectilinear
	}

	r.appendEdge(edge{x: d0.X, y0: d0.Y, y1: d1.Y})
	return nil
}

func (r *Rasteriser) appendEdge(e edge) {
	r.edges = append(r.edges, e)

	yLo, yHi := min(e.y0, e.y1), max(e.y0, e.y1)
	if r.edgeBBoxFirst {
		r.edgeDevXMin, r.edgeDevXMax = e.x, e.x
		r.edgeDevYMin, r.edgeDevYMax = yLo, yHi
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, e.x)
		r.edgeDevXMax = max(r.edgeDevXMax, e.x)
		r.edgeDevYMin = min(r.edgeDevYMin, yLo)
		r.edgeDevYMax = max(r.edgeDevYMax, yHi)
	}
}

func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// edgeBounds returns the bounding box of all edges, in whole cells and
// clamped to the clip rectangle.
func (r *Rasteriser) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation model:
//
// An edge crossing row y at device x contributes
//
//	cover = sign * dy           (sign is +1 for downward edges)
//	area  = cover * (1 - xFrac) (xFrac is the position of x within its cell)
//
// to the cell containing x.  Integrating from the left, a cell's coverage
// is the carried cover of all cells to its left plus its own area.

// accumulateEdge adds a single edge's contribution to row y.
// The buffers are indexed by x - bboxXMin.
func accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	coverVal := float32(yBot - yTop)
	if e.y1 < e.y0 {
		coverVal = -coverVal
	}

	pix := int(math.Floor(e.x))
	switch {
	case pix < bboxXMin:
		// left of the clip region: the whole row is affected
		cover[0] += coverVal
		area[0] += coverVal
	case pix < bboxXMax:
		idx := pix - bboxXMin
		cover[idx] += coverVal
		area[idx] += coverVal * float32(1-(e.x-float64(pix)))
	}
}

// integrateNonZero converts accumulated cover/area to coverage values
// using the nonzero winding rule, in place.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd converts accumulated cover/area to coverage values
// using the even-odd rule, in place.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero portion of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

func integrate(rule fillRule, cover, area []float32) {
	if rule == fillNonZero {
		integrateNonZero(cover, area)
	} else {
		integrateEvenOdd(cover, area)
	}
}

// fillSmallPath rasterises using 2D buffers (Approach A).
func (r *Rasteriser) fillSmallPath(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		last := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * width
			accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(rule, coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLargePath rasterises using 1D buffers and an active edge list
// (Approach B).
func (r *Rasteriser) fillLargePath(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for nextEdge < len(r.edges) && min(r.edges[nextEdge].y0, r.edges[nextEdge].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// swap-remove finished edges
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(rule, r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// degenerateThreshold is the minimum device-space extent for an edge
	// to count as vertical (or as sloped).
	degenerateThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in cells) for
	// using 2D buffers (Approach A).
	smallPathThreshold = 65536
)
