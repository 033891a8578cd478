// Package http exposes stored risk registers over a small read-only API
// used to browse generation runs and download exports.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/service/export"
	"github.com/chent01/riskreg/pkg/service/register"
	"github.com/chent01/riskreg/pkg/utils/errutil"
	"github.com/chent01/riskreg/pkg/utils/logging"
	"github.com/chent01/riskreg/pkg/utils/safe"
)

type Server struct {
	router   *chi.Mux
	repo     interfaces.Repository
	exporter *export.Exporter
}

type Options func(*Server)

// WithExporter overrides the exporter used for CSV and report downloads
func WithExporter(exporter *export.Exporter) Options {
	return func(s *Server) {
		s.exporter = exporter
	}
}

func New(repo interfaces.Repository, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:   r,
		repo:     repo,
		exporter: export.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api/registers", func(r chi.Router) {
		r.Get("/", s.listRegisters)
		r.Route("/{runID}", func(r chi.Router) {
			r.Get("/", s.getRegister)
			r.Get("/csv", s.getRegisterCSV)
			r.Get("/report", s.getRegisterReport)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
}

// registerSummary is the list-view shape of a stored register
type registerSummary struct {
	RunID                string               `json:"runId"`
	ProjectName          string               `json:"projectName"`
	GeneratedAt          time.Time            `json:"generatedAt"`
	IdentificationMethod string               `json:"identificationMethod"`
	SkippedCandidates    int                  `json:"skippedCandidates"`
	Stats                *model.RegisterStats `json:"stats"`
}

func summarize(reg *model.Register) registerSummary {
	return registerSummary{
		RunID:                reg.RunID,
		ProjectName:          reg.ProjectName,
		GeneratedAt:          reg.GeneratedAt,
		IdentificationMethod: reg.IdentificationMethod,
		SkippedCandidates:    reg.SkippedCandidates,
		Stats:                register.Statistics(reg.Items),
	}
}

func (s *Server) listRegisters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	registers, err := s.repo.Register().List(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	summaries := make([]registerSummary, 0, len(registers))
	for _, reg := range registers {
		summaries = append(summaries, summarize(reg))
	}

	writeJSON(w, r, summaries)
}

func (s *Server) getRegister(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.loadRegister(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, summarize(reg))
}

func (s *Server) getRegisterCSV(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.loadRegister(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="risk_register.csv"`)
	if err := s.exporter.WriteCSV(w, reg.Items); err != nil {
		errutil.Handle(r.Context(), err, "failed to stream CSV export")
	}
}

func (s *Server) getRegisterReport(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.loadRegister(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if err := s.exporter.WriteReport(w, reg); err != nil {
		errutil.Handle(r.Context(), err, "failed to stream report export")
	}
}

func (s *Server) loadRegister(w http.ResponseWriter, r *http.Request) (*model.Register, bool) {
	ctx := r.Context()
	runID := chi.URLParam(r, "runID")

	reg, err := s.repo.Register().Get(ctx, runID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
		} else {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		}
		return nil, false
	}
	return reg, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		errutil.Handle(r.Context(), err, "failed to encode JSON response")
	}
}

func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
