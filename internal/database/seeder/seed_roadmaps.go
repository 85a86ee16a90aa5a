package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"skillmapper/internal/catalog"
	"skillmapper/internal/database"
)

// RoadmapsSeeder loads every bundled role roadmap into static_roadmaps.
// Already-seeded ids are left untouched so the seeder is safe to rerun.
type RoadmapsSeeder struct{}

func (RoadmapsSeeder) Name() string { return "static_roadmaps" }

func (RoadmapsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "static_roadmaps", "roadmap_id", "doc", "created_at"); err != nil {
		return err
	}

	docs, err := catalog.RoleDetails()
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, doc := range docs {
		payload, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal roadmap %d: %w", doc.RoadmapID, err)
		}
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO static_roadmaps (roadmap_id, doc) VALUES ($1, $2) ON CONFLICT (roadmap_id) DO NOTHING`,
			doc.RoadmapID,
			payload,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
