package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestClient() *Client {
	return &Client{send: make(chan []byte, 8)}
}

func TestHub_RegisterPublishUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	c1 := newTestClient()
	c2 := newTestClient()
	hub.Register(c1)
	hub.Register(c2)

	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Publish(RoadmapGeneratedEvent{
		Type:   "roadmap_generated",
		UserID: "user-1",
		Role:   "Backend Developer",
	})

	for _, c := range []*Client{c1, c2} {
		select {
		case msg := <-c.send:
			var evt RoadmapGeneratedEvent
			if err := json.Unmarshal(msg, &evt); err != nil {
				t.Fatalf("unexpected payload: %v", err)
			}
			if evt.UserID != "user-1" || evt.Role != "Backend Developer" {
				t.Fatalf("unexpected event %+v", evt)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event")
		}
	}

	hub.Unregister(c1)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })
}

func TestNotifyRoadmapGenerated_EventShape(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	SetDefaultHub(hub)
	defer SetDefaultHub(nil)

	c := newTestClient()
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	NotifyRoadmapGenerated("user-123", "Backend Developer")

	select {
	case msg := <-c.send:
		var evt RoadmapGeneratedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("unexpected payload: %v", err)
		}
		if evt.Type != "roadmap_generated" {
			t.Fatalf("unexpected type %q", evt.Type)
		}
		if evt.UserID != "user-123" || evt.Role != "Backend Developer" {
			t.Fatalf("unexpected event %+v", evt)
		}
		if evt.Timestamp == "" {
			t.Fatalf("expected timestamp")
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestNotifyRoadmapGenerated_NoHub(t *testing.T) {
	SetDefaultHub(nil)
	// Must not panic with no hub installed.
	NotifyRoadmapGenerated("user-123", "Backend Developer")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}
