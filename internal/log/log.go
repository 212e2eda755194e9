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

// Package log sets up structured logging for the lagoon command.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seehuhn.de/go/lagoon"
)

var (
	mu sync.Mutex
)

// Init initializes the global logger and installs it for the lagoon
// package.  Logs go to the file at path, or to stderr if path is empty.
// The level is one of "debug", "info", "warn", "error"; it defaults to
// "info".
func Init(path string, level string) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w = f
	}

	logger := New(w, level)
	slog.SetDefault(logger)
	lagoon.SetLogger(logger)
	return logger, nil
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel converts a level name into a slog.Level.  Unknown names map
// to slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
