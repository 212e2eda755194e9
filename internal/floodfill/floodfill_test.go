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

package floodfill

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/testcases"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name    string
		corners []image.Point
		want    int
	}{
		{
			name:    "unit square",
			corners: []image.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			want:    4,
		},
		{
			name:    "rectangle",
			corners: []image.Point{{0, 0}, {3, 0}, {3, 2}, {0, 2}},
			want:    12,
		},
		{
			name:    "negative coordinates",
			corners: []image.Point{{-5, -5}, {-3, -5}, {-3, -2}, {-5, -2}},
			want:    12,
		},
		{
			// interior row 3, columns 3..6 is outside
			name: "c shape",
			corners: []image.Point{
				{0, 0}, {6, 0}, {6, 2}, {2, 2}, {2, 4}, {6, 4}, {6, 6}, {0, 6},
			},
			want: 45,
		},
		{
			// an outside pocket whose entrance lies between walls in
			// adjacent columns
			name: "narrow pocket",
			corners: []image.Point{
				{0, 0}, {1, 0}, {1, 3}, {4, 3}, {4, 13}, {-1, 13}, {-1, 10}, {-5, 10},
				{-5, 13}, {-6, 13}, {-6, 7}, {-4, 7}, {-4, 3}, {-1, 3}, {-1, 7}, {1, 7},
				{1, 4}, {0, 4},
			},
			want: 108,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(tt.corners)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountEmpty(t *testing.T) {
	got, err := Count(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCountDiagonal(t *testing.T) {
	_, err := Count([]image.Point{{0, 0}, {2, 2}, {0, 2}})
	assert.Error(t, err)
}

func TestCountTooLarge(t *testing.T) {
	corners := []image.Point{{0, 0}, {5000, 0}, {5000, 5000}, {0, 5000}}
	_, err := Count(corners)
	assert.ErrorIs(t, err, ErrTooLarge)
}

// exactCount counts the cells on or inside a polygon with a ray cast from
// every cell centre.
func exactCount(corners []image.Point) int {
	box := image.Rectangle{Min: corners[0], Max: corners[0]}
	for _, c := range corners {
		box.Min.X = min(box.Min.X, c.X)
		box.Min.Y = min(box.Min.Y, c.Y)
		box.Max.X = max(box.Max.X, c.X)
		box.Max.Y = max(box.Max.Y, c.Y)
	}

	count := 0
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			onPath, inside := false, false
			for i, a := range corners {
				b := corners[(i+1)%len(corners)]
				if min(a.X, b.X) <= x && x <= max(a.X, b.X) && min(a.Y, b.Y) <= y && y <= max(a.Y, b.Y) {
					onPath = true
				}
				// vertical edges to the right, half-open in y
				if a.X == b.X && a.X > x && min(a.Y, b.Y) <= y && y < max(a.Y, b.Y) {
					inside = !inside
				}
			}
			if onPath || inside {
				count++
			}
		}
	}
	return count
}

func TestCountExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := range 300 {
		moves := testcases.RandomBlob(rng, 2+rng.IntN(8), 2+rng.IntN(8), rng.IntN(60))
		p, err := lagoon.BuildPath(moves)
		require.NoError(t, err)

		var corners []image.Point
		for _, v := range p.Vertices() {
			corners = append(corners, image.Pt(int(v.Col), int(v.Row)))
		}
		got, err := Count(corners)
		require.NoError(t, err)
		assert.Equal(t, exactCount(corners), got, "case %d: %v", i, moves)
	}
}
