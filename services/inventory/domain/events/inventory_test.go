package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/inventory/services/inventory/domain/events"
)

func TestInventoryChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.InventoryChangedEvent{
		EventID:    uuid.New(),
		Version:    events.InventoryChangedEventVersion,
		Entity:     "part",
		Op:         "added",
		EntityID:   1,
		Name:       "Saddle Bags",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "entity", "op", "entity_id", "name", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicFor(t *testing.T) {
	tests := []struct {
		entity string
		want   string
	}{
		{"part", "inventory.part.changed"},
		{"product", "inventory.product.changed"},
		{"widget", ""},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			if got := events.TopicFor(tt.entity); got != tt.want {
				t.Errorf("TopicFor(%q) = %q, want %q", tt.entity, got, tt.want)
			}
		})
	}
}
