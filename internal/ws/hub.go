package ws

import (
	"log"
	"sync"
)

// Hub fans snapshot-refresh events out to every connected dashboard.
type Hub struct {
	subscribers map[*Client]struct{}
	broadcast   chan []byte
	register    chan *Client
	unregister  chan *Client
	mu          sync.RWMutex
	logger      *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Client]struct{}),
		broadcast:   make(chan []byte, 256),
		register:    make(chan *Client, 64),
		unregister:  make(chan *Client, 64),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mu.Lock()
			h.subscribers[client] = struct{}{}
			total := len(h.subscribers)
			h.mu.Unlock()
			h.logf("WS subscriber connected | total=%d", total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mu.Lock()
			if _, ok := h.subscribers[client]; ok {
				delete(h.subscribers, client)
				close(client.send)
			}
			total := len(h.subscribers)
			h.mu.Unlock()
			h.logf("WS subscriber disconnected | total=%d", total)

		case message := <-h.broadcast:
			h.mu.RLock()
			targets := make([]*Client, 0, len(h.subscribers))
			for c := range h.subscribers {
				targets = append(targets, c)
			}
			h.mu.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop the connection rather than the hub.
					h.unregister <- client
				}
			}
			h.logf("WS broadcast | subscribers=%d", len(targets))
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

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.logf("WS broadcast dropped | reason=buffer_full")
	}
}

func (h *Hub) SubscriberCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
