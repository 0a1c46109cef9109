package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"nearby-fitness-service/internal/adapters/mockdata"
	"nearby-fitness-service/internal/adapters/repositories"
	"nearby-fitness-service/internal/api"
	"nearby-fitness-service/internal/config"
	"nearby-fitness-service/internal/platform/db"
	"nearby-fitness-service/internal/platform/obs"
	"nearby-fitness-service/internal/ports"
	"nearby-fitness-service/internal/services"
)

// main is the application composition root.
// It builds the snapshot once, injects it into the proximity service and starts the HTTP server.
func main() {
	os.Exit(serve())
}

// serve returns the process exit code so that deferred cleanup (signal
// handler, logger flush) runs before main exits.
func serve() int {
	if err := config.LoadDotEnv(); err != nil {
		log.Print(err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		log.Print(err)
		return 1
	}

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config) error {
	source, closeSource, err := newSnapshotSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	snapshot, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("run: load snapshot: %w", err)
	}
	zap.L().Info("snapshot ready",
		zap.String("source", cfg.DataSource),
		zap.Int("marathons", len(snapshot.Marathons)),
		zap.Int("gyms", len(snapshot.Gyms)),
		zap.Int("gym_buddies", len(snapshot.GymBuddies)),
	)

	svc, err := services.NewProximityService(snapshot, services.WithDefaultRadius(cfg.DefaultRadiusKm))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("run: listen: %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("run: shutdown: %w", err)
	}
	return nil
}

// newSnapshotSource picks the configured source. The returned close func
// releases whatever the source holds once the snapshot is loaded.
func newSnapshotSource(ctx context.Context, cfg *config.Config) (ports.SnapshotSource, func(), error) {
	switch cfg.DataSource {
	case config.SourcePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("new snapshot source: %w", err)
		}
		return repositories.NewPostgresSnapshotSource(conn), func() { _ = conn.Close() }, nil
	default:
		gen, err := mockdata.NewGenerator(mockdata.Config{
			Seed:       cfg.MockSeed,
			Marathons:  cfg.MarathonCount,
			Gyms:       cfg.GymCount,
			GymBuddies: cfg.GymBuddyCount,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("new snapshot source: %w", err)
		}
		return gen, func() {}, nil
	}
}
