package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub fans generation events out to every connected client. Events enter
// typed through Publish and are encoded once per event, not per client.
type Hub struct {
	clients    map[*Client]bool
	events     chan RoadmapGeneratedEvent
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		events:     make(chan RoadmapGeneratedEvent, 256),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | total_clients=%d", total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | total_clients=%d", total)
			}

		case evt := <-h.events:
			message, err := json.Marshal(evt)
			if err != nil {
				if h.logger != nil {
					h.logger.Printf("WS event dropped | reason=encode_failed err=%v", err)
				}
				continue
			}

			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- message:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish queues a generation event for delivery. Never blocks; a full
// buffer drops the event.
func (h *Hub) Publish(evt RoadmapGeneratedEvent) {
	if h == nil {
		return
	}
	select {
	case h.events <- evt:
	default:
		if h.logger != nil {
			h.logger.Printf("WS event dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
