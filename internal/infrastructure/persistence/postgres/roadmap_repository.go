package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"skillmapper/internal/database"
	"skillmapper/internal/domain/roadmap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StaticRoadmapRepository stores catalog entries as JSONB documents keyed by
// their numeric roadmap id.
type StaticRoadmapRepository struct {
	db database.DB
}

func NewStaticRoadmapRepository(db database.DB) *StaticRoadmapRepository {
	return &StaticRoadmapRepository{db: db}
}

func (r *StaticRoadmapRepository) Insert(ctx context.Context, doc roadmap.StaticRoadmap) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(
		ctx,
		`INSERT INTO static_roadmaps (roadmap_id, doc) VALUES ($1, $2)
		 ON CONFLICT (roadmap_id) DO NOTHING`,
		doc.RoadmapID, b,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return roadmap.ErrAlreadySeeded
	}
	return nil
}

func (r *StaticRoadmapRepository) GetByID(ctx context.Context, roadmapID int) (roadmap.StaticRoadmap, error) {
	var b []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM static_roadmaps WHERE roadmap_id = $1`, roadmapID).Scan(&b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roadmap.StaticRoadmap{}, roadmap.ErrNotFound
		}
		return roadmap.StaticRoadmap{}, err
	}

	var doc roadmap.StaticRoadmap
	if err := json.Unmarshal(b, &doc); err != nil {
		return roadmap.StaticRoadmap{}, err
	}
	return doc, nil
}

func (r *StaticRoadmapRepository) Exists(ctx context.Context, roadmapID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM static_roadmaps WHERE roadmap_id = $1)`, roadmapID).Scan(&exists)
	return exists, err
}

// PersonalRoadmapRepository stores one generated roadmap document per user.
// The upsert makes concurrent generations converge on a single row.
type PersonalRoadmapRepository struct {
	db database.DB
}

func NewPersonalRoadmapRepository(db database.DB) *PersonalRoadmapRepository {
	return &PersonalRoadmapRepository{db: db}
}

func (r *PersonalRoadmapRepository) Get(ctx context.Context, userID uuid.UUID) (roadmap.PersonalRoadmap, error) {
	var b []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM personal_roadmaps WHERE user_id = $1`, userID).Scan(&b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roadmap.PersonalRoadmap{}, roadmap.ErrNotFound
		}
		return roadmap.PersonalRoadmap{}, err
	}

	var doc roadmap.PersonalRoadmap
	if err := json.Unmarshal(b, &doc); err != nil {
		return roadmap.PersonalRoadmap{}, err
	}
	return doc, nil
}

func (r *PersonalRoadmapRepository) Upsert(ctx context.Context, userID uuid.UUID, doc roadmap.PersonalRoadmap) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO personal_roadmaps (user_id, doc) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		userID, b,
	)
	return err
}
