// Package main is the entry point for the UL.CO site server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ulco/internal/cache"
	"ulco/internal/config"
	"ulco/internal/handlers"
	"ulco/internal/render"
	"ulco/internal/router"
	"ulco/internal/session"
	"ulco/internal/storage"
	"ulco/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"content_file", cfg.ContentFile,
	)

	// Connect to Valkey (Redis-compatible session store + page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Content stores share one document file.
	contentStore := store.NewContentStore(cfg.ContentFile)
	collectionStore := store.NewCollectionStore(contentStore)
	productStore := store.NewProductStore(contentStore)

	// Connect to S3-compatible object storage (optional; uploads fall
	// back to local disk without it).
	var storageClient *storage.Client
	if cfg.S3Enabled() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Info("s3 storage not configured, uploads stored locally", "dir", cfg.UploadDir)
	}

	// Full-page HTML cache in Valkey for the public storefront.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(renderer, contentStore, collectionStore, productStore, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, cfg)
	apiHandlers := handlers.NewAPI(contentStore, collectionStore, productStore, pageCache)
	publicHandlers := handlers.NewPublic(renderer, contentStore, pageCache)
	uploadHandler := handlers.NewUpload(cfg.UploadDir, cfg.UploadURL, storageClient)

	r := router.New(router.Deps{
		Sessions:  sessionStore,
		Admin:     adminHandlers,
		Auth:      authHandlers,
		API:       apiHandlers,
		Public:    publicHandlers,
		Upload:    uploadHandler,
		UploadDir: cfg.UploadDir,
		UploadURL: cfg.UploadURL,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
