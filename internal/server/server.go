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

// Package server exposes the cell counts over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"seehuhn.de/go/lagoon/internal/config"
)

// Server is the HTTP front end.
type Server struct {
	cfg    config.ServerConfig
	logger *slog.Logger
	router *mux.Router

	single *validator
	batch  *validator
}

// New creates a server for the given configuration.  A nil logger
// uses slog.Default().
func New(cfg config.ServerConfig, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	single, err := newValidator(pathSchema)
	if err != nil {
		return nil, err
	}
	batch, err := newValidator(batchSchema)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: mux.NewRouter(),
		single: single,
		batch:  batch,
	}
	s.router.Use(s.requestID)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/area", s.handleArea).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/area/batch", s.handleBatch).Methods(http.MethodPost)
	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves requests until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	read, write, err := s.cfg.Timeouts()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags each request with an ID, taken from the X-Request-ID
// header if it holds a UUID, and logs the request.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		if err != nil {
			id = uuid.New()
		}
		w.Header().Set("X-Request-ID", id.String())
		ctx := context.WithValue(r.Context(), requestIDKey, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(uuid.UUID)
	return id.String()
}
