package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/events"
	"github.com/ghuser/inventory/pkg/logger"
	domainevents "github.com/ghuser/inventory/services/inventory/domain/events"
	"github.com/ghuser/inventory/services/inventory/domain/repositories"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Part    *PartService
	Product *ProductService

	unsubscribe func()
}

// New wires the inventory services to the repository in the Application
// container. When an EventBus is present, every registry change is
// republished as an InventoryChangedEvent.
func New(a *app.Application) *Services {
	s := &Services{
		Part:        NewPartService(a.Inventory, a.Logger),
		Product:     NewProductService(a.Inventory, a.Logger),
		unsubscribe: func() {},
	}
	if a.EventBus != nil {
		s.unsubscribe = a.Inventory.Subscribe(NewChangePublisher(a.EventBus, a.Logger))
	}
	return s
}

// Close stops republishing registry changes.
func (s *Services) Close() {
	s.unsubscribe()
}

// NewChangePublisher returns a repository subscriber that forwards each
// change to the bus under the mutating call's trace. Publish failures are
// logged and never reach the caller that mutated the registry.
func NewChangePublisher(bus *events.EventBus, log logger.Logger) func(context.Context, repositories.Change) {
	return func(ctx context.Context, c repositories.Change) {
		topic := domainevents.TopicFor(string(c.Entity))
		if topic == "" {
			log.WarnContext(ctx, "inventory: change for unknown entity", "entity", c.Entity)
			return
		}
		evt := domainevents.InventoryChangedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.InventoryChangedEventVersion,
			Entity:     string(c.Entity),
			Op:         string(c.Op),
			EntityID:   c.ID,
			Name:       c.Name,
			OccurredAt: time.Now().UTC(),
		}
		if err := bus.PublishJSON(ctx, topic, evt); err != nil {
			log.ErrorContext(ctx, "inventory: publish change failed", "topic", topic, "entity_id", c.ID, "error", err)
		}
	}
}
