package postgres

import (
	"context"

	"skillmapper/internal/database"
	"skillmapper/internal/domain/progress"

	"github.com/google/uuid"
)

// StaticProgressRepository keeps completion marks as one row per (user,
// roadmap, phase, item). The composite primary key makes adds idempotent and
// removes no-ops when the row is absent.
type StaticProgressRepository struct {
	db database.DB
}

func NewStaticProgressRepository(db database.DB) *StaticProgressRepository {
	return &StaticProgressRepository{db: db}
}

func (r *StaticProgressRepository) AddTopic(ctx context.Context, userID uuid.UUID, roadmapID int, ref progress.TopicRef) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO roadmap_topic_progress (user_id, roadmap_id, phase_id, topic_id)
		 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		userID, roadmapID, ref.PhaseID, ref.TopicID,
	)
	return err
}

func (r *StaticProgressRepository) RemoveTopic(ctx context.Context, userID uuid.UUID, roadmapID int, ref progress.TopicRef) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM roadmap_topic_progress
		 WHERE user_id = $1 AND roadmap_id = $2 AND phase_id = $3 AND topic_id = $4`,
		userID, roadmapID, ref.PhaseID, ref.TopicID,
	)
	return err
}

func (r *StaticProgressRepository) AddProject(ctx context.Context, userID uuid.UUID, roadmapID int, ref progress.ProjectRef) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO roadmap_project_progress (user_id, roadmap_id, phase_id, project_id)
		 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		userID, roadmapID, ref.PhaseID, ref.ProjectID,
	)
	return err
}

func (r *StaticProgressRepository) RemoveProject(ctx context.Context, userID uuid.UUID, roadmapID int, ref progress.ProjectRef) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM roadmap_project_progress
		 WHERE user_id = $1 AND roadmap_id = $2 AND phase_id = $3 AND project_id = $4`,
		userID, roadmapID, ref.PhaseID, ref.ProjectID,
	)
	return err
}

func (r *StaticProgressRepository) Get(ctx context.Context, userID uuid.UUID, roadmapID int) (progress.StaticRecord, error) {
	rec := progress.StaticRecord{
		RoadmapID:         roadmapID,
		CompletedTopics:   make([]progress.TopicRef, 0),
		CompletedProjects: make([]progress.ProjectRef, 0),
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT phase_id, topic_id FROM roadmap_topic_progress
		 WHERE user_id = $1 AND roadmap_id = $2 ORDER BY phase_id, topic_id`,
		userID, roadmapID,
	)
	if err != nil {
		return progress.StaticRecord{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var t progress.TopicRef
		if err := rows.Scan(&t.PhaseID, &t.TopicID); err != nil {
			return progress.StaticRecord{}, err
		}
		rec.CompletedTopics = append(rec.CompletedTopics, t)
	}
	if err := rows.Err(); err != nil {
		return progress.StaticRecord{}, err
	}

	prows, err := r.db.Query(
		ctx,
		`SELECT phase_id, project_id FROM roadmap_project_progress
		 WHERE user_id = $1 AND roadmap_id = $2 ORDER BY phase_id, project_id`,
		userID, roadmapID,
	)
	if err != nil {
		return progress.StaticRecord{}, err
	}
	defer prows.Close()
	for prows.Next() {
		var p progress.ProjectRef
		if err := prows.Scan(&p.PhaseID, &p.ProjectID); err != nil {
			return progress.StaticRecord{}, err
		}
		rec.CompletedProjects = append(rec.CompletedProjects, p)
	}
	if err := prows.Err(); err != nil {
		return progress.StaticRecord{}, err
	}

	return rec, nil
}

// PersonalProgressRepository is the same row-per-mark scheme for the
// generated roadmap and its capstone.
type PersonalProgressRepository struct {
	db database.DB
}

func NewPersonalProgressRepository(db database.DB) *PersonalProgressRepository {
	return &PersonalProgressRepository{db: db}
}

func (r *PersonalProgressRepository) AddTopic(ctx context.Context, userID uuid.UUID, ref progress.TopicRef) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO personal_topic_progress (user_id, phase_id, topic_id)
		 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		userID, ref.PhaseID, ref.TopicID,
	)
	return err
}

func (r *PersonalProgressRepository) RemoveTopic(ctx context.Context, userID uuid.UUID, ref progress.TopicRef) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM personal_topic_progress
		 WHERE user_id = $1 AND phase_id = $2 AND topic_id = $3`,
		userID, ref.PhaseID, ref.TopicID,
	)
	return err
}

func (r *PersonalProgressRepository) AddCapstoneTopic(ctx context.Context, userID uuid.UUID, ref progress.CapstoneRef) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO capstone_topic_progress (user_id, topic_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, ref.TopicID,
	)
	return err
}

func (r *PersonalProgressRepository) RemoveCapstoneTopic(ctx context.Context, userID uuid.UUID, ref progress.CapstoneRef) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM capstone_topic_progress WHERE user_id = $1 AND topic_id = $2`,
		userID, ref.TopicID,
	)
	return err
}

func (r *PersonalProgressRepository) Get(ctx context.Context, userID uuid.UUID) (progress.PersonalRecord, error) {
	rec := progress.PersonalRecord{
		CompletedTopics:         make([]progress.TopicRef, 0),
		CompletedCapstoneTopics: make([]progress.CapstoneRef, 0),
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT phase_id, topic_id FROM personal_topic_progress
		 WHERE user_id = $1 ORDER BY phase_id, topic_id`,
		userID,
	)
	if err != nil {
		return progress.PersonalRecord{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var t progress.TopicRef
		if err := rows.Scan(&t.PhaseID, &t.TopicID); err != nil {
			return progress.PersonalRecord{}, err
		}
		rec.CompletedTopics = append(rec.CompletedTopics, t)
	}
	if err := rows.Err(); err != nil {
		return progress.PersonalRecord{}, err
	}

	crows, err := r.db.Query(
		ctx,
		`SELECT topic_id FROM capstone_topic_progress WHERE user_id = $1 ORDER BY topic_id`,
		userID,
	)
	if err != nil {
		return progress.PersonalRecord{}, err
	}
	defer crows.Close()
	for crows.Next() {
		var c progress.CapstoneRef
		if err := crows.Scan(&c.TopicID); err != nil {
			return progress.PersonalRecord{}, err
		}
		rec.CompletedCapstoneTopics = append(rec.CompletedCapstoneTopics, c)
	}
	if err := crows.Err(); err != nil {
		return progress.PersonalRecord{}, err
	}

	return rec, nil
}
