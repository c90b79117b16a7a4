// Package routes exposes the workout summaries API
package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/ftracker/internal/batch"
	appmw "github.com/briangreenhill/ftracker/internal/http/middleware"
	"github.com/briangreenhill/ftracker/workout"
)

// maxBodyBytes bounds a summaries request body
const maxBodyBytes = 1 << 20

type Server struct {
	Router   *chi.Mux
	Proc     *batch.Processor
	Logger   zerolog.Logger
	MaxBatch int
}

type ServerOptions struct {
	Proc     *batch.Processor
	Logger   zerolog.Logger
	MaxBatch int
}

// SummaryResult is the API view of one processed record
type SummaryResult struct {
	ID      string           `json:"id"`
	Type    string           `json:"type"`
	Summary *workout.Summary `json:"summary,omitempty"`
	Message string           `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Proc: opts.Proc, Logger: opts.Logger, MaxBatch: opts.MaxBatch}
	if s.MaxBatch <= 0 {
		s.MaxBatch = 100
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("write health check response")
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/workout-types", s.handleWorkoutTypes)
		v1.With(appmw.RequireJSON).Post("/summaries", s.handleSummaries)
	})

	return s
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	registry := workout.DefaultRegistry()
	type workoutType struct {
		Code  workout.Code `json:"code"`
		Arity int          `json:"arity"`
	}
	codes := registry.Codes()
	out := make([]workoutType, 0, len(codes))
	for _, code := range codes {
		arity, _ := registry.Arity(code)
		out = append(out, workoutType{Code: code, Arity: arity})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleSummaries accepts either one record object or an array of records
func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "unexpected data after JSON body")
		return
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []batch.Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			writeError(w, http.StatusBadRequest, "unable to parse records")
			return
		}
		if len(records) > s.MaxBatch {
			writeError(w, http.StatusRequestEntityTooLarge, "too many records")
			return
		}
		results, err := s.Proc.Process(r.Context(), records)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "request cancelled")
			return
		}
		out := make([]SummaryResult, 0, len(results))
		for _, res := range results {
			out = append(out, toSummaryResult(res))
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	var rec batch.Record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse record")
		return
	}
	res := s.Proc.ProcessRecord(0, rec)
	status := http.StatusOK
	if res.Err != nil {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, toSummaryResult(res))
}

func toSummaryResult(res batch.Result) SummaryResult {
	out := SummaryResult{ID: uuid.NewString(), Type: res.Record.Type}
	if res.Err != nil {
		out.Error = res.Err.Error()
		if errors.Is(res.Err, workout.ErrUnknownWorkoutType) {
			out.Message = batch.UnknownTypeMessage
		}
		return out
	}
	out.Summary = res.Summary
	out.Message = res.Summary.Message()
	return out
}

// writeJSON encodes v before writing the header so an encode failure can
// still answer 500
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"unable to encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
