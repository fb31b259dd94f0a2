// Package api exposes the HTTP surface: a synchronous document processing
// endpoint, asynchronous file ingestion with job polling, dataset export,
// record review, and document management backed by the curation backend.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qaforge/qaforge/internal/config"
	"github.com/qaforge/qaforge/internal/dataset"
	"github.com/qaforge/qaforge/internal/generate"
	"github.com/qaforge/qaforge/internal/jobs"
	"github.com/qaforge/qaforge/internal/store"
)

// DocumentProcessor runs the chunk -> Q&A pipeline for one document.
type DocumentProcessor interface {
	Process(ctx context.Context, documentID, documentName, documentText string) (*dataset.Result, error)
}

// Server is the HTTP API server.
type Server struct {
	router       chi.Router
	orchestrator *jobs.Orchestrator
	processor    DocumentProcessor
	store        *store.Client
	gen          *generate.OpenAIGenerator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *jobs.Orchestrator, proc DocumentProcessor, st *store.Client, gen *generate.OpenAIGenerator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		processor:    proc,
		store:        st,
		gen:          gen,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/process", s.handleProcess)

		r.Post("/api/ingest", s.handleIngest)
		r.Get("/api/ingest/{jobID}/status", s.handleIngestStatus)

		r.Get("/api/export/{docID}", s.handleExport)
		r.Patch("/api/records/{recordID}", s.handleUpdateRecord)

		r.Get("/api/documents", s.handleListDocuments)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)

		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
