package progress

import (
	"context"

	"github.com/google/uuid"
)

// StaticRepository persists static-roadmap completion sets. Adds are
// idempotent and removes of absent pairs are no-ops.
type StaticRepository interface {
	AddTopic(ctx context.Context, userID uuid.UUID, roadmapID int, ref TopicRef) error
	RemoveTopic(ctx context.Context, userID uuid.UUID, roadmapID int, ref TopicRef) error
	AddProject(ctx context.Context, userID uuid.UUID, roadmapID int, ref ProjectRef) error
	RemoveProject(ctx context.Context, userID uuid.UUID, roadmapID int, ref ProjectRef) error
	Get(ctx context.Context, userID uuid.UUID, roadmapID int) (StaticRecord, error)
}

// PersonalRepository persists completion sets for the generated roadmap and
// its capstone, with the same idempotence contract.
type PersonalRepository interface {
	AddTopic(ctx context.Context, userID uuid.UUID, ref TopicRef) error
	RemoveTopic(ctx context.Context, userID uuid.UUID, ref TopicRef) error
	AddCapstoneTopic(ctx context.Context, userID uuid.UUID, ref CapstoneRef) error
	RemoveCapstoneTopic(ctx context.Context, userID uuid.UUID, ref CapstoneRef) error
	Get(ctx context.Context, userID uuid.UUID) (PersonalRecord, error)
}
