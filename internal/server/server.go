/*
 * Copyright (c) 2026 shenjunzheng@gmail.com
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package server implements the HTTP facade over the legacy GeoIP reader:
// a single JSON lookup endpoint plus a health check, for environments that
// want geolocation as a service instead of a one-shot CLI call.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
	"github.com/wiseaidev/ipcap-go/internal/geoipfmt/legacy"
	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

// Server wraps a gin engine over a single opened Reader. The reader is
// called concurrently by every request goroutine; legacy.Reader's
// io.ReaderAt-backed design (spec §5) makes that safe without a mutex.
type Server struct {
	engine *gin.Engine
	reader *legacy.Reader
	log    *logrus.Logger
}

// New builds a Server over an already-opened reader.
func New(reader *legacy.Reader, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	s := &Server{reader: reader, log: log}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/v1/lookup/:address", s.handleLookup)

	s.engine = engine
	return s
}

// Run starts the HTTP server on addr, blocking until it stops or errors.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLookup(c *gin.Context) {
	address := c.Param("address")

	record, err := s.reader.LookupRecord(address)
	if err != nil {
		status := statusCodeFor(err)
		s.log.WithError(err).WithField("address", address).Warn("lookup failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, geo.Fields(record))
}

// statusCodeFor maps a geoipfmt/errors sentinel to an HTTP status code.
// There is exactly one place in the HTTP facade that knows this mapping.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, gerrors.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, gerrors.ErrMissingRecord):
		return http.StatusNotFound
	case errors.Is(err, gerrors.ErrCorruptDatabase), errors.Is(err, gerrors.ErrOpenFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
