package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type AssessmentsUpdatedEvent struct {
	Type        string `json:"type"`
	EventID     string `json:"event_id"`
	RootSkillID int64  `json:"root_skill_id"`
	Created     int    `json:"created"`
	Updated     int    `json:"updated"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyAssessmentsUpdated broadcasts that an import or recompute changed
// the assessments under a root skill. No-op when no hub is running or
// nothing was written.
func NotifyAssessmentsUpdated(rootSkillID int64, created, updated int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if rootSkillID <= 0 || created+updated == 0 {
		return
	}

	evt := AssessmentsUpdatedEvent{
		Type:        "assessments_updated",
		EventID:     uuid.NewString(),
		RootSkillID: rootSkillID,
		Created:     created,
		Updated:     updated,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
