package main

import (
	"context"
	"log"
	"os"
	"time"

	"skillmapper/internal/config"
	"skillmapper/internal/database/migration"
	dbpostgres "skillmapper/internal/database/postgres"
	"skillmapper/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	r := seeder.Runner{Seeders: seeder.Defaults()}
	if err := r.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	logger.Printf("seeding complete | seeders=%d", len(seeder.Defaults()))
}
