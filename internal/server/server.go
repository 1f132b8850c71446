package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hddy2000/steam-reviews/internal/analyzer"
	"github.com/hddy2000/steam-reviews/internal/config"
	"github.com/hddy2000/steam-reviews/internal/logger"
	"github.com/hddy2000/steam-reviews/internal/report"
	"github.com/hddy2000/steam-reviews/internal/steam"
	"github.com/hddy2000/steam-reviews/internal/store"
)

// Server wires the HTTP API around the analysis core.
type Server struct {
	cfg        config.Config
	store      *store.Store
	steam      *steam.Client
	classifier *analyzer.Classifier
	assembler  *report.Assembler
	log        *logger.Logger
}

func New(
	cfg config.Config,
	st *store.Store,
	sc *steam.Client,
	classifier *analyzer.Classifier,
	assembler *report.Assembler,
	log *logger.Logger,
) *Server {
	return &Server{
		cfg:        cfg,
		store:      st,
		steam:      sc,
		classifier: classifier,
		assembler:  assembler,
		log:        log.WithComponent("server"),
	}
}

// Router builds the chi router with CORS for the dashboard frontend.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.Post("/games", s.handleAddGame)
		r.Delete("/games", s.handleDeleteGame)
		r.Get("/reviews", s.handleReviews)
		r.Get("/report", s.handleReport)
		r.Get("/report/export", s.handleReportExport)
	})
	return r
}
