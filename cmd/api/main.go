package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortipass/fortipass-go/internal/breach"
	"github.com/fortipass/fortipass-go/internal/config"
	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/fortipass/fortipass-go/internal/handler"
	"github.com/fortipass/fortipass-go/internal/middleware"
	"github.com/fortipass/fortipass-go/internal/repository"
	"github.com/fortipass/fortipass-go/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const memoryActivityCapacity = 1000

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The activity log holds no secrets, so it is the only MySQL-backed store.
	var activityRepo service.ActivityRepository
	db, err := openDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, keeping activity log in memory", "error", err)
		activityRepo = repository.NewMemoryActivityRepository(memoryActivityCapacity)
	} else {
		defer db.Close()
		activityRepo = repository.NewMySQLActivityRepository(db)
	}

	passphraseHash, err := crypto.HashPassphrase(cfg.OperatorPassphrase)
	if err != nil {
		slog.Error("hashing operator passphrase", "error", err)
		os.Exit(1)
	}
	sealer, err := crypto.NewSealer(cfg.OperatorPassphrase)
	if err != nil {
		slog.Error("deriving vault key", "error", err)
		os.Exit(1)
	}

	checker := breach.NewChecker()
	activityService := service.NewActivityService(activityRepo)
	genService := service.NewGeneratorService(activityService)
	breachService := service.NewBreachService(checker, activityService)
	sessionService := service.NewSessionService(passphraseHash, cfg.JWTSecret, cfg.JWTExpiry, activityService)
	vaultService := service.NewVaultService(repository.NewMemoryVaultStore(), sealer, checker, activityService)

	if cfg.SeedDemoData {
		n, err := vaultService.SeedDemo(ctx)
		if err != nil {
			slog.Error("seeding demo data", "error", err)
			os.Exit(1)
		}
		slog.Info("demo vault seeded", "entries", n)
	}

	genHandler := handler.NewGeneratorHandler(genService, breachService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	vaultHandler := handler.NewVaultHandler(vaultService)
	activityHandler := handler.NewActivityHandler(activityService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/analyze", genHandler.HandleAnalyze)
	r.Post("/api/v1/breach-check", genHandler.HandleBreachCheck)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/session", sessionHandler.HandleOpen)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/api/v1/vault", vaultHandler.HandleListEntries)
		r.Post("/api/v1/vault", vaultHandler.HandleAddEntry)
		r.Get("/api/v1/vault/metrics", vaultHandler.HandleMetrics)
		r.Get("/api/v1/vault/{id}/password", vaultHandler.HandleRevealPassword)
		r.Delete("/api/v1/vault/{id}", vaultHandler.HandleRemoveEntry)

		r.Get("/api/v1/activity", activityHandler.HandleRecent)
		r.Get("/api/v1/activity/stats", activityHandler.HandleStats)
		r.Get("/api/v1/activity/achievements", activityHandler.HandleAchievements)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
