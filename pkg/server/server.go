/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dburkart/calc/pkg/calc"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

// Requests larger than this are rejected
const maxRequestBytes = 1 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	calc *calc.Calculator
	port int
}

func New(log zerolog.Logger, c *calc.Calculator, port int) Server {
	metrics := NewMetricsStore()
	metrics.RegisterCollector(collectors.NewBuildInfoCollector())

	return Server{
		log,
		metrics,
		c,
		port,
	}
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Handler returns the routes served by the calculator: POST /eval and
// GET /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/eval", s.handleEval)
	mux.Handle("/metrics", s.metrics.Handler())
	return mux
}

func (s *Server) Serve() error {
	s.log.Info().Int("port", s.port).Bool("strict", s.calc.Strict()).Msg("listening for evaluation requests")

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	log := s.log.With().Str("id", id).Logger()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(log, w, http.StatusMethodNotAllowed, ErrResponse{ID: id, Error: "method not allowed"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes+1))
	if err != nil {
		log.Error().Err(err).Msg("unable to read request body")
		s.writeJSON(log, w, http.StatusBadRequest, ErrResponse{ID: id, Error: err.Error()})
		return
	}
	if len(body) > maxRequestBytes {
		s.metrics.IncEvaluations("rejected")
		s.writeJSON(log, w, http.StatusRequestEntityTooLarge, ErrResponse{
			ID:    id,
			Error: fmt.Sprintf("request larger than %s", humanize.IBytes(maxRequestBytes)),
		})
		return
	}
	log.Trace().Str("size", humanize.Bytes(uint64(len(body)))).Msg("read request")

	var req EvalRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.metrics.IncEvaluations("rejected")
		s.writeJSON(log, w, http.StatusBadRequest, ErrResponse{ID: id, Error: err.Error()})
		return
	}

	start := time.Now()
	result, err := s.calc.Evaluate(req.fragments())
	s.metrics.ObserveEvaluationNS(time.Since(start).Nanoseconds())

	counts := map[string]int{}
	for _, t := range result.Tokens {
		counts[t.Type.ToString()]++
	}
	for k, n := range counts {
		s.metrics.AddTokens(k, n)
	}

	if err != nil {
		s.metrics.IncEvaluations("error")
		log.Debug().Err(err).Strs("fragments", result.Fragments).Msg("evaluation failed")
		s.writeJSON(log, w, http.StatusUnprocessableEntity, ErrResponse{ID: id, Error: err.Error()})
		return
	}

	s.metrics.IncEvaluations("ok")
	log.Debug().Str("postfix", calc.Join(result.Postfix)).Float64("value", result.Value).Msg("evaluated")
	s.writeJSON(log, w, http.StatusOK, NewEvalResponse(id, result))
}

func (s *Server) writeJSON(log zerolog.Logger, w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}
