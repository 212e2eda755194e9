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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"seehuhn.de/go/lagoon"
	"seehuhn.de/go/lagoon/digplan"
)

// pathRequest is one path, either as moves or as a dig plan.
type pathRequest struct {
	Moves  []moveJSON `json:"moves,omitempty"`
	Plan   string     `json:"plan,omitempty"`
	Decode string     `json:"decode,omitempty"`
}

type moveJSON struct {
	Dir  string `json:"dir"`
	Dist int64  `json:"dist"`
}

type batchRequest struct {
	Paths []pathRequest `json:"paths"`
}

// pathResult is the answer for one path.
type pathResult struct {
	Area   uint64 `json:"area"`
	Trench uint64 `json:"trench"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

type areaResponse struct {
	ID string `json:"id"`
	pathResult
}

type batchResponse struct {
	ID      string       `json:"id"`
	Results []pathResult `json:"results"`
}

var directions = map[string]lagoon.Direction{
	"U": lagoon.Up,
	"D": lagoon.Down,
	"L": lagoon.Left,
	"R": lagoon.Right,
}

// moves converts the request into lagoon moves.
func (req *pathRequest) moves() ([]lagoon.Move, error) {
	if req.Plan != "" {
		mode, err := digplan.ParseMode(req.Decode)
		if err != nil {
			return nil, err
		}
		return digplan.Parse(strings.NewReader(req.Plan), mode)
	}
	res := make([]lagoon.Move, len(req.Moves))
	for i, m := range req.Moves {
		res[i] = lagoon.Move{Dir: directions[m.Dir], Dist: m.Dist}
	}
	return res, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleArea(w http.ResponseWriter, r *http.Request) {
	id := requestIDFrom(r.Context())

	var req pathRequest
	if status, err := s.readBody(w, r, s.single, &req); err != nil {
		s.writeError(w, status, id, err)
		return
	}
	moves, err := req.moves()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, id, err)
		return
	}

	res := measure(moves)
	status := http.StatusOK
	if res.Error != "" {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, areaResponse{ID: id, pathResult: res})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	id := requestIDFrom(r.Context())

	var req batchRequest
	if status, err := s.readBody(w, r, s.batch, &req); err != nil {
		s.writeError(w, status, id, err)
		return
	}
	if len(req.Paths) > s.cfg.MaxBatch {
		err := fmt.Errorf("%w: %d paths, at most %d allowed", errInvalidRequest, len(req.Paths), s.cfg.MaxBatch)
		s.writeError(w, http.StatusRequestEntityTooLarge, id, err)
		return
	}

	results := make([]pathResult, len(req.Paths))
	var paths [][]lagoon.Move
	var index []int // index[k] is the request position of paths[k]
	for i := range req.Paths {
		moves, err := req.Paths[i].moves()
		if err != nil {
			results[i] = failed(err)
			continue
		}
		paths = append(paths, moves)
		index = append(index, i)
	}

	areas, err := lagoon.AreaAll(r.Context(), paths)
	for k, area := range areas {
		results[index[k]].Area = area
	}
	if err != nil {
		for _, e := range unjoin(err) {
			var pathErr *lagoon.PathError
			if errors.As(e, &pathErr) {
				results[index[pathErr.Index]] = failed(pathErr.Err)
			}
		}
	}
	for k, moves := range paths {
		res := &results[index[k]]
		if res.Error == "" {
			res.Trench, _ = lagoon.Trench(moves)
		}
	}

	s.writeJSON(w, http.StatusOK, batchResponse{ID: id, Results: results})
}

// measure computes area and trench length for one path.
func measure(moves []lagoon.Move) pathResult {
	p, err := lagoon.BuildPath(moves)
	if err != nil {
		return failed(err)
	}
	area, err := p.Area()
	if err != nil {
		return failed(err)
	}
	trench, err := p.Perimeter()
	if err != nil {
		return failed(err)
	}
	return pathResult{Area: area, Trench: trench}
}

func failed(err error) pathResult {
	return pathResult{Error: err.Error(), Kind: errorKind(err)}
}

// errorKind classifies err for clients.
func errorKind(err error) string {
	switch {
	case errors.Is(err, lagoon.ErrDegenerateSegment):
		return "degenerate_segment"
	case errors.Is(err, lagoon.ErrMalformedPath):
		return "malformed_path"
	case errors.Is(err, lagoon.ErrUnclosedSweepState):
		return "unclosed_sweep_state"
	case errors.Is(err, lagoon.ErrCoordinateOverflow):
		return "coordinate_overflow"
	case errors.Is(err, digplan.ErrSyntax):
		return "syntax"
	case errors.Is(err, errInvalidRequest):
		return "invalid_request"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	}
	return "internal"
}

// unjoin returns the errors combined by errors.Join.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// readBody reads and validates a request body of limited size.  On
// failure it returns the HTTP status to report.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request, val *validator, v any) (int, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("%w: body exceeds %d bytes", errInvalidRequest, tooLarge.Limit)
		}
		return http.StatusBadRequest, err
	}
	if err := val.decode(body, v); err != nil {
		return http.StatusBadRequest, err
	}
	return http.StatusOK, nil
}

func (s *Server) writeError(w http.ResponseWriter, status int, id string, err error) {
	s.logger.Warn("request failed", "id", id, "status", status, "error", err)
	s.writeJSON(w, status, areaResponse{ID: id, pathResult: failed(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}
