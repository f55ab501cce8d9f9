package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ElvisGalvez/bill-app/internal/auth"
	"github.com/ElvisGalvez/bill-app/internal/config"
	"github.com/ElvisGalvez/bill-app/internal/files"
	"github.com/ElvisGalvez/bill-app/internal/server"
	"github.com/ElvisGalvez/bill-app/internal/service"
	"github.com/ElvisGalvez/bill-app/internal/storage"
	"github.com/ElvisGalvez/bill-app/internal/storage/postgres"
	"github.com/ElvisGalvez/bill-app/internal/storage/sqlite"
	"github.com/ElvisGalvez/bill-app/pkg/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger := logging.Setup(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Driver)

	if err := os.MkdirAll(cfg.Uploads.Dir, 0755); err != nil {
		slog.Error("Failed to create uploads directory", "path", cfg.Uploads.Dir, "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	uploads := files.Dir{Root: cfg.Uploads.Dir, BaseURL: cfg.Uploads.BaseURL}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := server.NewRouter(server.Deps{
		Auth:           service.NewAuthService(authenticator, jwtManager, logger),
		Bills:          service.NewBillService(store, uploads, logger),
		JWTManager:     jwtManager,
		Users:          store,
		UploadsDir:     cfg.Uploads.Dir,
		AllowedOrigins: cfg.AllowedOrigins,
		Registry:       registry,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr: cfg.Address,
		// h2c for HTTP/2 without TLS (Connect streaming and gRPC clients)
		Handler:      h2c.NewHandler(router, &http2.Server{}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		slog.Info("Connect server starting", "address", cfg.Address, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func openStore(ctx context.Context, db config.Database) (storage.Store, error) {
	if db.Driver == "postgres" {
		store, err := postgres.New(ctx, db.URL)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := sqlite.New(db.Path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
