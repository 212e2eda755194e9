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

// Package lagoon counts the grid cells enclosed by a closed rectilinear
// path, including the cells on the path itself.
//
// Paths are given as a sequence of moves on a grid whose rows grow
// downwards.  Coordinates may be in the billions: the cost of [Area]
// depends on the number of moves, not on the size of the enclosed region.
package lagoon

//go:generate go run ./testcases/export

import (
	"context"
	"errors"
	"sync"
)

// Area returns the number of cells on or inside the closed path described
// by moves.
func Area(moves []Move) (uint64, error) {
	p, err := BuildPath(moves)
	if err != nil {
		return 0, err
	}
	return p.Area()
}

// Trench returns the number of cells on the closed path described by
// moves.
func Trench(moves []Move) (uint64, error) {
	p, err := BuildPath(moves)
	if err != nil {
		return 0, err
	}
	return p.Perimeter()
}

// AreaAll computes the areas of several independent paths concurrently.
// The result has one entry per path.  If some paths fail, the returned
// error joins one [*PathError] per failed path and the corresponding
// entries are 0.
//
// Cancelling ctx stops paths which have not been started yet.
func AreaAll(ctx context.Context, paths [][]Move) ([]uint64, error) {
	res := make([]uint64, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, moves := range paths {
		if err := ctx.Err(); err != nil {
			errs[i] = &PathError{Index: i, Err: err}
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			area, err := Area(moves)
			if err != nil {
				errs[i] = &PathError{Index: i, Err: err}
				return
			}
			res[i] = area
		}()
	}
	wg.Wait()

	return res, errors.Join(errs...)
}
