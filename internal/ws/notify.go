package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// SnapshotRefreshedEvent tells connected dashboards that a cached
// collection was re-pulled from the upstream API and views should reload.
type SnapshotRefreshedEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifySnapshotRefreshed(collection string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if collection == "" {
		return
	}

	evt := SnapshotRefreshedEvent{
		Type:       "snapshot_refreshed",
		Collection: collection,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
