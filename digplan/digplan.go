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

// Package digplan reads dig plans, one move per line:
//
//	R 6 (#70c710)
//
// Each line gives a direction letter, a decimal distance and a colour.
// In [Hex] mode the colour field is decoded instead: its first five hex
// digits give the distance and the last digit the direction
// (0=R, 1=D, 2=L, 3=U).
package digplan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/lagoon"
)

// Mode selects how a line is turned into a move.
type Mode int

const (
	// Plain uses the direction letter and the decimal distance.
	Plain Mode = iota

	// Hex decodes the colour field.
	Hex
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "plain" or "hex" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return Plain, nil
	case "hex":
		return Hex, nil
	}
	return 0, fmt.Errorf("digplan: unknown decoding mode %q", s)
}

// ErrSyntax is returned for lines which cannot be parsed.
var ErrSyntax = errors.New("digplan: syntax error")

// LineError records the line on which parsing failed.
type LineError struct {
	Line int
	Err  error
}

func (err *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", err.Line, err.Err)
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// Parse reads a dig plan.  Empty lines are ignored.
func Parse(r io.Reader, mode Mode) ([]lagoon.Move, error) {
	var moves []lagoon.Move
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m, err := parseLine(line, mode)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

func parseLine(line string, mode Mode) (lagoon.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return lagoon.Move{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrSyntax, len(fields))
	}

	switch mode {
	case Plain:
		dir, ok := letters[fields[0]]
		if !ok {
			return lagoon.Move{}, fmt.Errorf("%w: invalid direction %q", ErrSyntax, fields[0])
		}
		dist, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return lagoon.Move{}, fmt.Errorf("%w: distance: %w", ErrSyntax, err)
		}
		return lagoon.Move{Dir: dir, Dist: dist}, nil

	case Hex:
		if len(fields) < 3 {
			return lagoon.Move{}, fmt.Errorf("%w: missing colour", ErrSyntax)
		}
		return decodeColour(fields[2])
	}
	return lagoon.Move{}, fmt.Errorf("digplan: invalid mode %d", int(mode))
}

var letters = map[string]lagoon.Direction{
	"U": lagoon.Up,
	"D": lagoon.Down,
	"L": lagoon.Left,
	"R": lagoon.Right,
}

// hexDirs maps the last digit of the colour to a direction.
var hexDirs = [4]lagoon.Direction{lagoon.Right, lagoon.Down, lagoon.Left, lagoon.Up}

// decodeColour decodes a field of the form "(#rrrrrd)".
func decodeColour(field string) (lagoon.Move, error) {
	s, ok := strings.CutPrefix(field, "(#")
	if ok {
		s, ok = strings.CutSuffix(s, ")")
	}
	if !ok || len(s) != 6 {
		return lagoon.Move{}, fmt.Errorf("%w: invalid colour %q", ErrSyntax, field)
	}

	dist, err := strconv.ParseUint(s[:5], 16, 64)
	if err != nil {
		return lagoon.Move{}, fmt.Errorf("%w: colour %q: %w", ErrSyntax, field, err)
	}
	d := s[5] - '0'
	if d >= 4 {
		return lagoon.Move{}, fmt.Errorf("%w: colour %q: invalid direction digit", ErrSyntax, field)
	}
	return lagoon.Move{Dir: hexDirs[d], Dist: int64(dist)}, nil
}

// Format writes moves in plain dig plan format, without colours.
func Format(w io.Writer, moves []lagoon.Move) error {
	bw := bufio.NewWriter(w)
	for _, m := range moves {
		if _, err := fmt.Fprintf(bw, "%s %d\n", m.Dir, m.Dist); err != nil {
			return err
		}
	}
	return bw.Flush()
}
