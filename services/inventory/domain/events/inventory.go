package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published after the inventory registries change.
const (
	TopicPartChanged    = "inventory.part.changed"
	TopicProductChanged = "inventory.product.changed"
)

// InventoryChangedEventVersion is the current payload schema version.
const InventoryChangedEventVersion = 1

// InventoryChangedEvent is published after a part or product is added,
// replaced, or deleted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicPartChanged).
type InventoryChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	Entity     string    `json:"entity"`
	Op         string    `json:"op"`
	EntityID   int       `json:"entity_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TopicFor returns the topic for an entity name, or "" if unknown.
func TopicFor(entity string) string {
	switch entity {
	case "part":
		return TopicPartChanged
	case "product":
		return TopicProductChanged
	default:
		return ""
	}
}
