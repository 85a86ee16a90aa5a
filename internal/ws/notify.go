package ws

import (
	"sync/atomic"
	"time"
)

type RoadmapGeneratedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyRoadmapGenerated announces a finished generation. A nil default hub
// makes this a no-op so callers never need to care whether the websocket
// surface is enabled.
func NotifyRoadmapGenerated(userID string, role string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	h.Publish(RoadmapGeneratedEvent{
		Type:      "roadmap_generated",
		UserID:    userID,
		Role:      role,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
