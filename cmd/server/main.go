package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nshetty/panchangd/internal/api"
	"github.com/nshetty/panchangd/internal/config"
	"github.com/nshetty/panchangd/internal/drik"
	"github.com/nshetty/panchangd/internal/panchang"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Wire the pipeline: fetch collaborator -> range scraper -> HTTP API.
	fetcher := drik.NewClient(cfg.PanchangBaseURL, cfg.GeonameID, cfg.FetchTimeout)
	scraper := panchang.NewScraper(fetcher, log)
	srv := api.NewServer(scraper, log, cfg)

	// A range request runs its days sequentially, so the write timeout must
	// cover the worst case: the per-fetch timeout times the day cap.
	writeTimeout := cfg.FetchTimeout*time.Duration(cfg.MaxRangeDays) + 30*time.Second

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting panchangd", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
