package main

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"go.uber.org/zap"

	"nearby-fitness-service/internal/adapters/mockdata"
	"nearby-fitness-service/internal/adapters/repositories"
	"nearby-fitness-service/internal/config"
	"nearby-fitness-service/internal/platform/db"
	"nearby-fitness-service/internal/platform/obs"
)

// dbtool creates the geo_entities table and fills it with a generated
// snapshot, so the server can run with DATA_SOURCE=postgres on fixed data.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	gen, err := mockdata.NewGenerator(mockdata.Config{
		Seed:       cfg.MockSeed,
		Marathons:  cfg.MarathonCount,
		Gyms:       cfg.GymCount,
		GymBuddies: cfg.GymBuddyCount,
	})
	if err != nil {
		logger.Fatal("new generator", zap.Error(err))
	}

	if err := initAndSeed(ctx, conn, gen); err != nil {
		logger.Fatal("init and seed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, gen *mockdata.Generator) error {
	zap.L().Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	zap.L().Info("Schema ready.")

	snapshot, err := gen.Load(ctx)
	if err != nil {
		return err
	}

	zap.L().Info("Seeding database...",
		zap.Int("marathons", len(snapshot.Marathons)),
		zap.Int("gyms", len(snapshot.Gyms)),
		zap.Int("gym_buddies", len(snapshot.GymBuddies)),
	)
	if err := repositories.SeedSnapshot(ctx, conn, snapshot); err != nil {
		return err
	}
	zap.L().Info("Seeding complete.")

	return nil
}
