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
	"math/big"
	"math/bits"
)

// accumulator sums cell counts, failing instead of wrapping around.
// The zero value is an empty sum.
type accumulator struct {
	total uint64
}

// add adds n cells.
func (acc *accumulator) add(n uint64) error {
	sum, carry := bits.Add64(acc.total, n, 0)
	if carry != 0 {
		exact := new(big.Int).SetUint64(acc.total)
		exact.Add(exact, new(big.Int).SetUint64(n))
		return &OverflowError{Op: "cell count", Magnitude: exact}
	}
	acc.total = sum
	return nil
}

// addProduct adds a rectangle of height×width cells.
func (acc *accumulator) addProduct(height, width uint64) error {
	hi, lo := bits.Mul64(height, width)
	if hi != 0 {
		exact := new(big.Int).SetUint64(height)
		exact.Mul(exact, new(big.Int).SetUint64(width))
		exact.Add(exact, new(big.Int).SetUint64(acc.total))
		return &OverflowError{Op: "cell count", Magnitude: exact}
	}
	return acc.add(lo)
}
