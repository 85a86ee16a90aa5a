package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skillmapper/internal/domain/progress"
)

var ErrInvalidToggle = errors.New("invalid progress toggle")

// StaticProgressUsecase toggles and reads completion marks for static
// roadmaps. Validation happens before any store mutation.
type StaticProgressUsecase struct {
	repo progress.StaticRepository
}

func NewStaticProgressUsecase(repo progress.StaticRepository) *StaticProgressUsecase {
	return &StaticProgressUsecase{repo: repo}
}

func (u *StaticProgressUsecase) ToggleTopic(ctx context.Context, userID uuid.UUID, roadmapID int, ref progress.TopicRef, action string) (progress.StaticRecord, error) {
	act, err := progress.ParseAction(action)
	if err != nil {
		return progress.StaticRecord{}, ErrInvalidToggle
	}
	if roadmapID <= 0 || ref.PhaseID <= 0 || ref.TopicID <= 0 {
		return progress.StaticRecord{}, ErrInvalidToggle
	}

	if act == progress.ActionAdd {
		err = u.repo.AddTopic(ctx, userID, roadmapID, ref)
	} else {
		err = u.repo.RemoveTopic(ctx, userID, roadmapID, ref)
	}
	if err != nil {
		return progress.StaticRecord{}, ErrInternal
	}

	return u.Get(ctx, userID, roadmapID)
}

func (u *StaticProgressUsecase) ToggleProject(ctx context.Context, userID uuid.UUID, roadmapID int, ref progress.ProjectRef, action string) (progress.StaticRecord, error) {
	act, err := progress.ParseAction(action)
	if err != nil {
		return progress.StaticRecord{}, ErrInvalidToggle
	}
	if roadmapID <= 0 || ref.PhaseID <= 0 || ref.ProjectID <= 0 {
		return progress.StaticRecord{}, ErrInvalidToggle
	}

	if act == progress.ActionAdd {
		err = u.repo.AddProject(ctx, userID, roadmapID, ref)
	} else {
		err = u.repo.RemoveProject(ctx, userID, roadmapID, ref)
	}
	if err != nil {
		return progress.StaticRecord{}, ErrInternal
	}

	return u.Get(ctx, userID, roadmapID)
}

// Get returns empty completion sets, not an error, for users who have never
// toggled anything.
func (u *StaticProgressUsecase) Get(ctx context.Context, userID uuid.UUID, roadmapID int) (progress.StaticRecord, error) {
	rec, err := u.repo.Get(ctx, userID, roadmapID)
	if err != nil {
		return progress.StaticRecord{}, ErrInternal
	}
	return rec, nil
}

// PersonalProgressUsecase is the same contract scoped to the generated
// roadmap and its capstone.
type PersonalProgressUsecase struct {
	repo progress.PersonalRepository
}

func NewPersonalProgressUsecase(repo progress.PersonalRepository) *PersonalProgressUsecase {
	return &PersonalProgressUsecase{repo: repo}
}

func (u *PersonalProgressUsecase) ToggleTopic(ctx context.Context, userID uuid.UUID, ref progress.TopicRef, action string) (progress.PersonalRecord, error) {
	act, err := progress.ParseAction(action)
	if err != nil {
		return progress.PersonalRecord{}, ErrInvalidToggle
	}
	if ref.PhaseID <= 0 || ref.TopicID <= 0 {
		return progress.PersonalRecord{}, ErrInvalidToggle
	}

	if act == progress.ActionAdd {
		err = u.repo.AddTopic(ctx, userID, ref)
	} else {
		err = u.repo.RemoveTopic(ctx, userID, ref)
	}
	if err != nil {
		return progress.PersonalRecord{}, ErrInternal
	}

	return u.Get(ctx, userID)
}

func (u *PersonalProgressUsecase) ToggleCapstoneTopic(ctx context.Context, userID uuid.UUID, ref progress.CapstoneRef, action string) (progress.PersonalRecord, error) {
	act, err := progress.ParseAction(action)
	if err != nil {
		return progress.PersonalRecord{}, ErrInvalidToggle
	}
	if ref.TopicID <= 0 {
		return progress.PersonalRecord{}, ErrInvalidToggle
	}

	if act == progress.ActionAdd {
		err = u.repo.AddCapstoneTopic(ctx, userID, ref)
	} else {
		err = u.repo.RemoveCapstoneTopic(ctx, userID, ref)
	}
	if err != nil {
		return progress.PersonalRecord{}, ErrInternal
	}

	return u.Get(ctx, userID)
}

func (u *PersonalProgressUsecase) Get(ctx context.Context, userID uuid.UUID) (progress.PersonalRecord, error) {
	rec, err := u.repo.Get(ctx, userID)
	if err != nil {
		return progress.PersonalRecord{}, ErrInternal
	}
	return rec, nil
}
