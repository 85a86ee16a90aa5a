package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/domain/progress"
	"skillmapper/internal/usecase"
)

type memPersonalProgressRepo struct {
	topics   map[progress.TopicRef]bool
	capstone map[progress.CapstoneRef]bool
}

func newMemPersonalProgressRepo() *memPersonalProgressRepo {
	return &memPersonalProgressRepo{
		topics:   map[progress.TopicRef]bool{},
		capstone: map[progress.CapstoneRef]bool{},
	}
}

func (m *memPersonalProgressRepo) AddTopic(_ context.Context, _ uuid.UUID, ref progress.TopicRef) error {
	m.topics[ref] = true
	return nil
}

func (m *memPersonalProgressRepo) RemoveTopic(_ context.Context, _ uuid.UUID, ref progress.TopicRef) error {
	delete(m.topics, ref)
	return nil
}

func (m *memPersonalProgressRepo) AddCapstoneTopic(_ context.Context, _ uuid.UUID, ref progress.CapstoneRef) error {
	m.capstone[ref] = true
	return nil
}

func (m *memPersonalProgressRepo) RemoveCapstoneTopic(_ context.Context, _ uuid.UUID, ref progress.CapstoneRef) error {
	delete(m.capstone, ref)
	return nil
}

func (m *memPersonalProgressRepo) Get(context.Context, uuid.UUID) (progress.PersonalRecord, error) {
	rec := progress.PersonalRecord{
		CompletedTopics:         []progress.TopicRef{},
		CompletedCapstoneTopics: []progress.CapstoneRef{},
	}
	for ref := range m.topics {
		rec.CompletedTopics = append(rec.CompletedTopics, ref)
	}
	for ref := range m.capstone {
		rec.CompletedCapstoneTopics = append(rec.CompletedCapstoneTopics, ref)
	}
	return rec, nil
}

func TestPersonalRoadmapHandler_UpdateTopic_ReturnsBareRecord(t *testing.T) {
	h := NewPersonalRoadmapHandler(nil, usecase.NewPersonalProgressUsecase(newMemPersonalProgressRepo()))

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, uuid.New())
		return c.Next()
	})
	app.Patch("/progress/updateTopic", h.UpdateTopic)
	app.Patch("/progress/updateProject", h.UpdateCapstoneTopic)

	body := []byte(`{"phaseId":1,"topicId":4,"action":"add"}`)
	req := httptest.NewRequest("PATCH", "/progress/updateTopic", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, wrapped := raw["progress"]; wrapped {
		t.Fatalf("expected the record at the top level, got a wrapped body: %v", raw)
	}

	var rec progress.PersonalRecord
	reencoded, _ := json.Marshal(raw)
	if err := json.Unmarshal(reencoded, &rec); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if len(rec.CompletedTopics) != 1 || rec.CompletedTopics[0] != (progress.TopicRef{PhaseID: 1, TopicID: 4}) {
		t.Fatalf("unexpected completedTopics: %v", rec.CompletedTopics)
	}

	capBody := []byte(`{"topicId":2,"action":"add"}`)
	capReq := httptest.NewRequest("PATCH", "/progress/updateProject", bytes.NewReader(capBody))
	capReq.Header.Set("Content-Type", "application/json")

	capRes, err := app.Test(capReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer capRes.Body.Close()

	if err := json.NewDecoder(capRes.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if len(rec.CompletedCapstoneTopics) != 1 || rec.CompletedCapstoneTopics[0] != (progress.CapstoneRef{TopicID: 2}) {
		t.Fatalf("unexpected completedCapstoneTopics: %v", rec.CompletedCapstoneTopics)
	}
}
