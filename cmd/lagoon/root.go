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
	"io"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/digplan"
	"seehuhn.de/go/lagoon/internal/config"
	"seehuhn.de/go/lagoon/internal/log"
)

// options holds the state shared by all subcommands.
type options struct {
	configPath string
	cfg        *config.Config
}

// newRootCmd returns the lagoon command with all subcommands attached.
func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "lagoon",
		Short: "Count the cells enclosed by a dig plan",
		Long: `lagoon reads a dig plan, one move such as "R 6 (#70c710)" per line,
and counts the grid cells on or inside the closed path it describes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "configuration file (YAML)")

	rootCmd.AddCommand(newAreaCmd(opts), newRenderCmd(opts), newServeCmd(opts))
	return rootCmd
}

// load reads the configuration and sets up logging.
func (opts *options) load() error {
	if opts.configPath == "" {
		opts.cfg = config.Default()
	} else {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		opts.cfg = cfg
	}
	_, err := log.Init(opts.cfg.Logging.Path, opts.cfg.Logging.Level)
	return err
}

// readPlan reads the dig plan from the file named in args, or from stdin.
// The decode flag, if set, overrides the configured mode.
func (opts *options) readPlan(cmd *cobra.Command, args []string, decode string) ([]lagoon.Move, error) {
	if decode == "" {
		decode = opts.cfg.Decode
	}
	mode, err := digplan.ParseMode(decode)
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	name := "<stdin>"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	moves, err := digplan.Parse(r, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return moves, nil
}
