package ws

import (
	"encoding/json"
	"testing"
)

func TestNotifyAssessmentsUpdated_QueuesEvent(t *testing.T) {
	h := NewHub(nil)
	SetDefaultHub(h)
	defer SetDefaultHub(nil)

	NotifyAssessmentsUpdated(7, 1, 2)

	select {
	case raw := <-h.broadcast:
		var evt AssessmentsUpdatedEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if evt.Type != "assessments_updated" {
			t.Fatalf("unexpected type %q", evt.Type)
		}
		if evt.RootSkillID != 7 || evt.Created != 1 || evt.Updated != 2 {
			t.Fatalf("unexpected event: %+v", evt)
		}
		if evt.EventID == "" || evt.Timestamp == "" {
			t.Fatalf("event id and timestamp must be set: %+v", evt)
		}
	default:
		t.Fatal("no event queued")
	}
}

func TestNotifyAssessmentsUpdated_SkipsEmptyWrites(t *testing.T) {
	h := NewHub(nil)
	SetDefaultHub(h)
	defer SetDefaultHub(nil)

	NotifyAssessmentsUpdated(7, 0, 0)
	NotifyAssessmentsUpdated(0, 1, 1)

	select {
	case raw := <-h.broadcast:
		t.Fatalf("unexpected event: %s", raw)
	default:
	}
}

func TestNotifyAssessmentsUpdated_NoHub(t *testing.T) {
	SetDefaultHub(nil)
	// Must not panic when no hub is running.
	NotifyAssessmentsUpdated(7, 1, 0)
}
