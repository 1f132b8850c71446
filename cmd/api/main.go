package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hddy2000/steam-reviews/internal/ai"
	"github.com/hddy2000/steam-reviews/internal/analyzer"
	"github.com/hddy2000/steam-reviews/internal/config"
	"github.com/hddy2000/steam-reviews/internal/logger"
	"github.com/hddy2000/steam-reviews/internal/report"
	"github.com/hddy2000/steam-reviews/internal/server"
	"github.com/hddy2000/steam-reviews/internal/steam"
	"github.com/hddy2000/steam-reviews/internal/store"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "steam-reviews").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	st, err := store.New(ctx, cfg.Mongo, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.WithError(err).Warn("mongodb disconnect failed")
		}
	}()

	classifier := analyzer.NewClassifier(analyzer.DefaultLexicon())
	augmenter := ai.NewClient(cfg.AI, log)
	if cfg.AI.APIKey == "" {
		log.Info("no AI credential configured, reports will be rule-based only")
	}
	assembler := report.NewAssembler(classifier, augmenter, log)
	steamClient := steam.NewClient(cfg.Steam, log)

	srv := server.New(cfg, st, steamClient, classifier, assembler, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server terminated")
		}
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
	}
}
