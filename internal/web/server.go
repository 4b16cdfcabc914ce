package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/ports"
	sharedmw "github.com/emiliopalmerini/typouniverse/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router          chi.Router
	addr            string
	shutdownTimeout time.Duration
	log             *zap.Logger
	kb              *knowledge.Base
	generator       *domain.Generator
	guides          ports.GuideStore
	metrics         ports.MetricsExporter
	msgs            *messages.Catalog
}

func NewServer(
	addr string,
	shutdownTimeout time.Duration,
	log *zap.Logger,
	kb *knowledge.Base,
	gs ports.GuideStore,
	me ports.MetricsExporter,
	msgs *messages.Catalog,
) *Server {
	s := &Server{
		router:          chi.NewRouter(),
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		log:             log,
		kb:              kb,
		generator:       domain.NewGenerator(kb),
		guides:          gs,
		metrics:         me,
		msgs:            msgs,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(sharedmw.HTMX)
	r.Use(sharedmw.Localize(s.msgs))
	r.Use(sharedmw.RequestLogger(s.log))
	r.Use(middleware.Recoverer)

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	r.Get("/", s.handleWizardPage)
	r.Post("/wizard", s.handleWizard)
	r.Post("/guide", s.handleGenerateGuide)
	r.Get("/lab", s.handleLabPage)
	r.Post("/lab", s.handleLab)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/contrast", s.handleAPIContrast)
		r.Get("/simulate", s.handleAPISimulate)
		r.Get("/palette", s.handleAPIPalette)
		r.Get("/units", s.handleAPIUnits)
		r.Get("/knowledge", s.handleAPIKnowledge)
		r.Get("/guides/{id}", s.handleAPIGuide)
		r.Get("/guides/{id}/export", s.handleAPIExportGuide)
	})
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("starting server", zap.String("addr", s.addr))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
