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
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrMalformedPath indicates that the moves do not describe a closed
	// path with alternating horizontal and vertical runs.
	ErrMalformedPath = errors.New("malformed path")

	// ErrDegenerateSegment indicates a move or segment of length zero.
	ErrDegenerateSegment = errors.New("degenerate segment")

	// ErrUnclosedSweepState indicates that a row band did not end outside
	// the region. This happens for self-intersecting paths.
	ErrUnclosedSweepState = errors.New("unclosed sweep state")

	// ErrCoordinateOverflow indicates that a coordinate or the cell count
	// does not fit into 64 bits.
	ErrCoordinateOverflow = errors.New("coordinate overflow")
)

// OverflowError reports the exact value which did not fit.
// It matches ErrCoordinateOverflow under errors.Is.
type OverflowError struct {
	Op        string   // the operation which overflowed
	Magnitude *big.Int // the exact result of the operation
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s does not fit into 64 bits", err.Op, err.Magnitude)
}

func (err *OverflowError) Unwrap() error {
	return ErrCoordinateOverflow
}

// PathError records the failure of one path in a batch.
type PathError struct {
	Index int // position of the path in the batch
	Err   error
}

func (err *PathError) Error() string {
	return fmt.Sprintf("path %d: %s", err.Index, err.Err)
}

func (err *PathError) Unwrap() error {
	return err.Err
}
