package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pactum/api/internal/app"
	"pactum/api/internal/autosave"
	"pactum/api/internal/config"
	"pactum/api/internal/export"
	"pactum/api/internal/revision"
	"pactum/api/internal/search"
	"pactum/api/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := os.MkdirAll(cfg.ReposDir, 0o755); err != nil {
		log.Fatalf("failed to create repos dir: %v", err)
	}

	dataStore := store.NewPostgresStore(db)
	archive := revision.New(cfg.ReposDir)

	pgfts := search.NewPgFTS(db)
	var meiliClient *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meiliClient = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
	}
	searchService := search.NewService(meiliClient, pgfts)
	if meiliClient != nil {
		defer meiliClient.Close()
	}

	var drafts *autosave.DraftStore
	if strings.TrimSpace(cfg.RedisURL) != "" {
		drafts, err = autosave.NewDraftStore(cfg.RedisURL, cfg.DraftTTL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer drafts.Close()
		log.Printf("Using Redis for draft storage")
	} else {
		log.Printf("Draft storage disabled (no Redis configured)")
	}

	var artifacts *export.ArtifactStore
	if strings.TrimSpace(cfg.S3Endpoint) != "" {
		artifacts, err = export.NewArtifactStore(ctx, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
		if err != nil {
			log.Fatalf("object storage connection failed: %v", err)
		}
		log.Printf("Export artifacts stored in bucket %s", cfg.S3Bucket)
	}
	exportService := export.NewService(artifacts)

	service := app.New(cfg, dataStore, archive, exportService, drafts, searchService)
	if err := service.Bootstrap(ctx); err != nil {
		log.Printf("WARNING: bootstrap error (will retry on next restart): %v", err)
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Pactum API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	service.FlushSavers(shutdownCtx)
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
