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
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"seehuhn.de/go/lagoon"
)

func newAreaCmd(opts *options) *cobra.Command {
	var (
		decode string
		human  bool
		trench bool
	)
	cmd := &cobra.Command{
		Use:   "area [file]",
		Short: "Print the number of cells on or inside the path",
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
			area, err := p.Area()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !trench {
				fmt.Fprintln(out, formatCount(area, human))
				return nil
			}
			length, err := p.Perimeter()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", formatCount(area, human), formatCount(length, human))
			return nil
		},
	}
	cmd.Flags().StringVar(&decode, "decode", "", "how to read the plan: plain or hex (default from config)")
	cmd.Flags().BoolVar(&human, "human", false, "group digits with commas")
	cmd.Flags().BoolVar(&trench, "trench", false, "also print the number of cells on the path")
	return cmd
}

func formatCount(n uint64, human bool) string {
	if !human {
		return fmt.Sprint(n)
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}
