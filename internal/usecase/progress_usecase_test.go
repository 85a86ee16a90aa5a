package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skillmapper/internal/domain/progress"
)

type mockStaticProgressRepo struct {
	topics   map[progress.TopicRef]struct{}
	projects map[progress.ProjectRef]struct{}
	err      error
}

func newMockStaticProgressRepo() *mockStaticProgressRepo {
	return &mockStaticProgressRepo{
		topics:   map[progress.TopicRef]struct{}{},
		projects: map[progress.ProjectRef]struct{}{},
	}
}

func (m *mockStaticProgressRepo) AddTopic(_ context.Context, _ uuid.UUID, _ int, ref progress.TopicRef) error {
	if m.err != nil {
		return m.err
	}
	m.topics[ref] = struct{}{}
	return nil
}

func (m *mockStaticProgressRepo) RemoveTopic(_ context.Context, _ uuid.UUID, _ int, ref progress.TopicRef) error {
	if m.err != nil {
		return m.err
	}
	delete(m.topics, ref)
	return nil
}

func (m *mockStaticProgressRepo) AddProject(_ context.Context, _ uuid.UUID, _ int, ref progress.ProjectRef) error {
	if m.err != nil {
		return m.err
	}
	m.projects[ref] = struct{}{}
	return nil
}

func (m *mockStaticProgressRepo) RemoveProject(_ context.Context, _ uuid.UUID, _ int, ref progress.ProjectRef) error {
	if m.err != nil {
		return m.err
	}
	delete(m.projects, ref)
	return nil
}

func (m *mockStaticProgressRepo) Get(_ context.Context, _ uuid.UUID, roadmapID int) (progress.StaticRecord, error) {
	if m.err != nil {
		return progress.StaticRecord{}, m.err
	}
	rec := progress.StaticRecord{
		RoadmapID:         roadmapID,
		CompletedTopics:   make([]progress.TopicRef, 0, len(m.topics)),
		CompletedProjects: make([]progress.ProjectRef, 0, len(m.projects)),
	}
	for ref := range m.topics {
		rec.CompletedTopics = append(rec.CompletedTopics, ref)
	}
	for ref := range m.projects {
		rec.CompletedProjects = append(rec.CompletedProjects, ref)
	}
	return rec, nil
}

func TestStaticProgressUsecase_ToggleTopic_AddThenRemove(t *testing.T) {
	repo := newMockStaticProgressRepo()
	uc := NewStaticProgressUsecase(repo)
	userID := uuid.New()
	ref := progress.TopicRef{PhaseID: 1, TopicID: 2}

	rec, err := uc.ToggleTopic(context.Background(), userID, 1, ref, "add")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.CompletedTopics) != 1 {
		t.Fatalf("expected 1 completed topic, got %d", len(rec.CompletedTopics))
	}

	// Adding the same pair again must not duplicate.
	rec, err = uc.ToggleTopic(context.Background(), userID, 1, ref, "add")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.CompletedTopics) != 1 {
		t.Fatalf("expected add to be idempotent, got %d topics", len(rec.CompletedTopics))
	}

	rec, err = uc.ToggleTopic(context.Background(), userID, 1, ref, "remove")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.CompletedTopics) != 0 {
		t.Fatalf("expected empty set after remove, got %d", len(rec.CompletedTopics))
	}

	// Removing an absent pair is a no-op, not an error.
	if _, err := uc.ToggleTopic(context.Background(), userID, 1, ref, "remove"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestStaticProgressUsecase_ToggleTopic_InvalidInput(t *testing.T) {
	repo := newMockStaticProgressRepo()
	uc := NewStaticProgressUsecase(repo)
	userID := uuid.New()

	cases := []struct {
		roadmapID int
		ref       progress.TopicRef
		action    string
	}{
		{1, progress.TopicRef{PhaseID: 1, TopicID: 1}, "toggle"},
		{1, progress.TopicRef{PhaseID: 0, TopicID: 1}, "add"},
		{1, progress.TopicRef{PhaseID: 1, TopicID: 0}, "add"},
		{0, progress.TopicRef{PhaseID: 1, TopicID: 1}, "add"},
	}
	for _, c := range cases {
		if _, err := uc.ToggleTopic(context.Background(), userID, c.roadmapID, c.ref, c.action); !errors.Is(err, ErrInvalidToggle) {
			t.Fatalf("case %+v: expected ErrInvalidToggle, got %v", c, err)
		}
	}

	// Validation failures must not touch the store.
	if len(repo.topics) != 0 {
		t.Fatalf("expected no writes, got %d", len(repo.topics))
	}
}

func TestStaticProgressUsecase_ToggleProject(t *testing.T) {
	repo := newMockStaticProgressRepo()
	uc := NewStaticProgressUsecase(repo)
	userID := uuid.New()
	ref := progress.ProjectRef{PhaseID: 2, ProjectID: 3}

	rec, err := uc.ToggleProject(context.Background(), userID, 1, ref, "add")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.CompletedProjects) != 1 {
		t.Fatalf("expected 1 completed project, got %d", len(rec.CompletedProjects))
	}
}

func TestStaticProgressUsecase_Get_Empty(t *testing.T) {
	uc := NewStaticProgressUsecase(newMockStaticProgressRepo())

	rec, err := uc.Get(context.Background(), uuid.New(), 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.RoadmapID != 7 {
		t.Fatalf("expected roadmap id 7, got %d", rec.RoadmapID)
	}
	if rec.CompletedTopics == nil || rec.CompletedProjects == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}

type mockPersonalProgressRepo struct {
	topics   map[progress.TopicRef]struct{}
	capstone map[progress.CapstoneRef]struct{}
}

func newMockPersonalProgressRepo() *mockPersonalProgressRepo {
	return &mockPersonalProgressRepo{
		topics:   map[progress.TopicRef]struct{}{},
		capstone: map[progress.CapstoneRef]struct{}{},
	}
}

func (m *mockPersonalProgressRepo) AddTopic(_ context.Context, _ uuid.UUID, ref progress.TopicRef) error {
	m.topics[ref] = struct{}{}
	return nil
}

func (m *mockPersonalProgressRepo) RemoveTopic(_ context.Context, _ uuid.UUID, ref progress.TopicRef) error {
	delete(m.topics, ref)
	return nil
}

func (m *mockPersonalProgressRepo) AddCapstoneTopic(_ context.Context, _ uuid.UUID, ref progress.CapstoneRef) error {
	m.capstone[ref] = struct{}{}
	return nil
}

func (m *mockPersonalProgressRepo) RemoveCapstoneTopic(_ context.Context, _ uuid.UUID, ref progress.CapstoneRef) error {
	delete(m.capstone, ref)
	return nil
}

func (m *mockPersonalProgressRepo) Get(context.Context, uuid.UUID) (progress.PersonalRecord, error) {
	rec := progress.PersonalRecord{
		CompletedTopics:         make([]progress.TopicRef, 0, len(m.topics)),
		CompletedCapstoneTopics: make([]progress.CapstoneRef, 0, len(m.capstone)),
	}
	for ref := range m.topics {
		rec.CompletedTopics = append(rec.CompletedTopics, ref)
	}
	for ref := range m.capstone {
		rec.CompletedCapstoneTopics = append(rec.CompletedCapstoneTopics, ref)
	}
	return rec, nil
}

func TestPersonalProgressUsecase_ToggleCapstoneTopic(t *testing.T) {
	repo := newMockPersonalProgressRepo()
	uc := NewPersonalProgressUsecase(repo)
	userID := uuid.New()

	rec, err := uc.ToggleCapstoneTopic(context.Background(), userID, progress.CapstoneRef{TopicID: 1}, "add")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.CompletedCapstoneTopics) != 1 {
		t.Fatalf("expected 1 capstone topic, got %d", len(rec.CompletedCapstoneTopics))
	}

	rec, err = uc.ToggleCapstoneTopic(context.Background(), userID, progress.CapstoneRef{TopicID: 1}, "remove")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.CompletedCapstoneTopics) != 0 {
		t.Fatalf("expected empty capstone set, got %d", len(rec.CompletedCapstoneTopics))
	}
}

func TestPersonalProgressUsecase_ToggleTopic_InvalidAction(t *testing.T) {
	uc := NewPersonalProgressUsecase(newMockPersonalProgressRepo())

	_, err := uc.ToggleTopic(context.Background(), uuid.New(), progress.TopicRef{PhaseID: 1, TopicID: 1}, "flip")
	if !errors.Is(err, ErrInvalidToggle) {
		t.Fatalf("expected ErrInvalidToggle, got %v", err)
	}
}
