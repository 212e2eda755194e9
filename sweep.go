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
	"fmt"
	"log/slog"
)

// InsideState tracks, while scanning the top row of a band from left to
// right, whether the rows below are inside the region.
//
// EnteredTop and ExitedTop record that an odd number of vertical segments
// which only reach up from the top row have been crossed since the last
// segment reaching down into the band.
type InsideState int

const (
	Outside InsideState = iota
	Inside
	EnteredTop
	ExitedTop
)

func (s InsideState) String() string {
	switch s {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case EnteredTop:
		return "entered-top"
	case ExitedTop:
		return "exited-top"
	default:
		return fmt.Sprintf("InsideState(%d)", int(s))
	}
}

// Next returns the state after crossing a vertical segment.
// touchesMiddle tells whether the segment reaches down into the band.
func (s InsideState) Next(touchesMiddle bool) InsideState {
	switch s {
	case Outside:
		if touchesMiddle {
			return Inside
		}
		return EnteredTop
	case Inside:
		if touchesMiddle {
			return Outside
		}
		return ExitedTop
	case EnteredTop:
		if touchesMiddle {
			return Inside
		}
		return Outside
	case ExitedTop:
		if touchesMiddle {
			return Outside
		}
		return Inside
	}
	return s
}

// Interior reports whether the rows below the scan position are inside
// the region.
func (s InsideState) Interior() bool {
	return s == Inside || s == ExitedTop
}

// Area returns the number of cells on or inside the path.
//
// The rows containing horizontal segments split the plane into bands.
// The band starting at row r owns row r and all rows before the next
// horizontal row; the last horizontal row forms a band of height one.
// Each band is evaluated by scanning the columns crossing its top row
// from left to right, so the cost depends on the number of segments and
// not on the area.
func (p *Path) Area() (uint64, error) {
	sw := &sweep{
		vert:  newIntervalIndex(p.segments, Vertical),
		horiz: newIntervalIndex(p.segments, Horizontal),
	}
	sw.active = newActiveColumns(sw.vert)

	rows := sw.horiz.coords
	for i, rowStart := range rows {
		var interior uint64
		if i+1 < len(rows) {
			interior = uint64(rows[i+1]) - uint64(rowStart) - 1
		}
		if err := sw.band(rowStart, interior); err != nil {
			return 0, err
		}
	}

	Logger().Debug("sweep complete",
		slog.Int("segments", len(p.segments)),
		slog.Int("bands", len(rows)),
		slog.Int("columns", sw.vert.Len()),
		slog.Uint64("cells", sw.acc.total))
	return sw.acc.total, nil
}

// sweep holds the state of a single area computation.
type sweep struct {
	vert   *intervalIndex // vertical segments, by column
	horiz  *intervalIndex // horizontal segments, by row
	active *activeColumns // columns of vert crossing the current row
	acc    accumulator
}

// band adds the cells of the band starting at rowStart.  The band
// consists of the top row rowStart and the given number of interior rows
// below it, which are not touched by horizontal segments.
func (sw *sweep) band(rowStart int64, interior uint64) error {
	events := sw.active.advance(rowStart)
	if len(events) == 0 {
		return fmt.Errorf("%w: no vertical segment reaches row %d",
			ErrUnclosedSweepState, rowStart)
	}

	cols := sw.vert.coords
	state := Outside
	up := 0 // number of crossings which reach above rowStart
	for k, e := range events {
		col := cols[e]
		lo, hi, ok := sw.vert.sets[e].rangeAt(rowStart)
		if !ok {
			return fmt.Errorf("%w: overlapping vertical segments in column %d",
				ErrUnclosedSweepState, col)
		}
		if lo < rowStart {
			up++
		}

		next := state.Next(hi > rowStart)
		if state.Interior() && !next.Interior() {
			// the closing column of an interior run
			if err := sw.acc.add(interior); err != nil {
				return err
			}
		}
		state = next

		// the event column on the top row is always on the boundary
		if err := sw.acc.add(1); err != nil {
			return err
		}
		if k == len(events)-1 {
			break
		}

		// the cells in [col, nextCol) of the interior rows and the cells
		// strictly between col and nextCol on the top row
		width := uint64(cols[events[k+1]]) - uint64(col)
		if state.Interior() {
			if err := sw.acc.addProduct(interior, width); err != nil {
				return err
			}
		}
		if width > 1 && (state.Interior() || sw.horiz.contains(rowStart, col+1)) {
			if err := sw.acc.add(width - 1); err != nil {
				return err
			}
		}
	}

	if state.Interior() || up%2 != 0 {
		return fmt.Errorf("%w: row %d ends %s with %d upward crossings",
			ErrUnclosedSweepState, rowStart, state, up)
	}
	return nil
}
