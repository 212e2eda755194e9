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

package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/raster"
)

var errTooLarge = errors.New("bounding box too large to render")

func newRenderCmd(opts *options) *cobra.Command {
	var (
		decode string
		output string
		scale  int
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the trench and the enclosed region as a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := opts.readPlan(cmd, args, decode)
			if err != nil {
				return err
			}
			p, err := lagoon.BuildPath(moves)
			if err != nil {
				return err
			}
			if scale == 0 {
				scale = opts.cfg.Render.Scale
			}
			img, err := preview(p, scale, opts.cfg.Render.MaxCells)
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := png.Encode(out, img); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().StringVar(&decode, "decode", "", "how to read the plan: plain or hex (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "lagoon.png", "output file")
	cmd.Flags().IntVar(&scale, "scale", 0, "pixels per cell (default from config)")
	return cmd
}

// preview draws p with one grey level per cell and scales the result.
func preview(p *lagoon.Path, scale int, maxCells int64) (image.Image, error) {
	lo, hi := p.Bounds()
	w, h := hi.Col-lo.Col+1, hi.Row-lo.Row+1
	if w > maxCells || h > maxCells || w*h > maxCells {
		return nil, fmt.Errorf("%w: %dx%d cells, limit %d", errTooLarge, w, h, maxCells)
	}

	r := raster.NewRasteriser(rect.Rect{})
	cells, err := r.Preview(p.Outline(), p.CellBox())
	if err != nil {
		return nil, err
	}
	if scale <= 1 {
		return cells, nil
	}

	dst := image.NewGray(image.Rect(0, 0, int(w)*scale, int(h)*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), cells, cells.Bounds(), xdraw.Src, nil)
	return dst, nil
}
