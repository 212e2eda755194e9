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
	"cmp"
	"slices"
)

// rangeSet answers point containment queries for a set of closed ranges.
// Ranges may overlap.
type rangeSet struct {
	lo    []int64 // range starts, sorted
	hi    []int64 // range ends, in the order of lo
	maxHi []int64 // maxHi[i] is the largest range end among ranges 0..i
}

// containsPoint reports whether some range includes pos.
// This takes O(log n) time.
func (rs *rangeSet) containsPoint(pos int64) bool {
	// i is the number of ranges which start before pos
	i, found := slices.BinarySearch(rs.lo, pos)
	if found {
		return true
	}
	return i > 0 && rs.maxHi[i-1] >= pos
}

// rangeAt returns the last range which starts at or before pos, provided
// that this range includes pos.  For non-overlapping ranges this is the
// unique range containing pos.
func (rs *rangeSet) rangeAt(pos int64) (lo, hi int64, ok bool) {
	i, _ := slices.BinarySearchFunc(rs.lo, pos, func(start, target int64) int {
		if start <= target {
			return -1
		}
		return 1
	})
	if i == 0 || rs.hi[i-1] < pos {
		return 0, 0, false
	}
	return rs.lo[i-1], rs.hi[i-1], true
}

// intervalIndex groups the segments of one orientation by their fixed
// coordinate.  The distinct coordinates are kept in a sorted arena;
// sets[i] holds the ranges of all segments at coords[i].
type intervalIndex struct {
	coords []int64
	sets   []rangeSet
}

// newIntervalIndex indexes all segments with the given orientation.
// Vertical segments are indexed by column, horizontal ones by row.
func newIntervalIndex(segments []Segment, o Orientation) *intervalIndex {
	var sel []Segment
	for _, s := range segments {
		if s.Orientation == o {
			sel = append(sel, s)
		}
	}
	slices.SortFunc(sel, func(a, b Segment) int {
		if c := cmp.Compare(a.Fixed, b.Fixed); c != 0 {
			return c
		}
		return cmp.Compare(a.Lo, b.Lo)
	})

	idx := &intervalIndex{}
	for i := 0; i < len(sel); {
		j := i + 1
		for j < len(sel) && sel[j].Fixed == sel[i].Fixed {
			j++
		}
		group := sel[i:j]
		rs := rangeSet{
			lo:    make([]int64, len(group)),
			hi:    make([]int64, len(group)),
			maxHi: make([]int64, len(group)),
		}
		for k, s := range group {
			rs.lo[k] = s.Lo
			rs.hi[k] = s.Hi
			rs.maxHi[k] = s.Hi
			if k > 0 {
				rs.maxHi[k] = max(rs.maxHi[k], rs.maxHi[k-1])
			}
		}
		idx.coords = append(idx.coords, sel[i].Fixed)
		idx.sets = append(idx.sets, rs)
		i = j
	}
	return idx
}

// Len returns the number of distinct fixed coordinates.
func (idx *intervalIndex) Len() int {
	return len(idx.coords)
}

// lookup returns the arena position of coord.
func (idx *intervalIndex) lookup(coord int64) (int, bool) {
	return slices.BinarySearch(idx.coords, coord)
}

// contains reports whether a segment at the fixed coordinate coord
// includes pos.
func (idx *intervalIndex) contains(coord, pos int64) bool {
	i, ok := idx.lookup(coord)
	return ok && idx.sets[i].containsPoint(pos)
}

// activeColumns tracks the columns with a vertical segment containing
// the current row, as the row advances.
type activeColumns struct {
	byLo   []columnRange // sorted by lo
	byHi   []columnRange // sorted by hi
	nextLo int           // byLo[:nextLo] have been added
	nextHi int           // byHi[:nextHi] have been removed

	count []int // number of active ranges per arena position
	cols  []int // arena positions with count > 0, sorted
}

type columnRange struct {
	col    int // arena position
	lo, hi int64
}

func newActiveColumns(idx *intervalIndex) *activeColumns {
	var ranges []columnRange
	for i := range idx.sets {
		rs := &idx.sets[i]
		for k := range rs.lo {
			ranges = append(ranges, columnRange{col: i, lo: rs.lo[k], hi: rs.hi[k]})
		}
	}
	byLo := slices.Clone(ranges)
	slices.SortFunc(byLo, func(a, b columnRange) int {
		return cmp.Compare(a.lo, b.lo)
	})
	byHi := ranges
	slices.SortFunc(byHi, func(a, b columnRange) int {
		return cmp.Compare(a.hi, b.hi)
	})
	return &activeColumns{
		byLo:  byLo,
		byHi:  byHi,
		count: make([]int, idx.Len()),
	}
}

// advance moves to row pos and returns the arena positions of all
// columns which have a range including pos, in increasing order.
// Successive calls must not decrease pos.  The result is only valid
// until the next call.
func (ac *activeColumns) advance(pos int64) []int {
	for ac.nextLo < len(ac.byLo) && ac.byLo[ac.nextLo].lo <= pos {
		col := ac.byLo[ac.nextLo].col
		ac.count[col]++
		if ac.count[col] == 1 {
			i, _ := slices.BinarySearch(ac.cols, col)
			ac.cols = slices.Insert(ac.cols, i, col)
		}
		ac.nextLo++
	}
	for ac.nextHi < len(ac.byHi) && ac.byHi[ac.nextHi].hi < pos {
		col := ac.byHi[ac.nextHi].col
		ac.count[col]--
		if ac.count[col] == 0 {
			i, _ := slices.BinarySearch(ac.cols, col)
			ac.cols = slices.Delete(ac.cols, i, i+1)
		}
		ac.nextHi++
	}
	return ac.cols
}
