// Package subscribers consumes inventory change events from the EventBus.
package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/pkg/telemetry"
	domainevents "github.com/ghuser/inventory/services/inventory/domain/events"
)

// Topics lists every topic the activity subscriber listens on.
var Topics = []string{domainevents.TopicPartChanged, domainevents.TopicProductChanged}

// Activity records every registry change: one log line, one counter
// increment, and registry-size gauges read from the repository on collection.
type Activity struct {
	log     logger.Logger
	changes metric.Int64Counter
	reg     metric.Registration

	handled atomic.Int64
	failed  atomic.Int64
}

// Register subscribes the activity recorder to all inventory topics.
// Subscriptions end when ctx is cancelled or the bus is closed.
func Register(ctx context.Context, a *app.Application) (*Activity, error) {
	if a.EventBus == nil {
		return nil, errors.New("subscribers: event bus is required")
	}

	meter := telemetry.Meter()
	changes, err := meter.Int64Counter("inventory.changes",
		metric.WithDescription("Registry changes observed on the event bus"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, fmt.Errorf("subscribers: changes counter: %w", err)
	}
	parts, err := meter.Int64ObservableGauge("inventory.parts",
		metric.WithDescription("Parts currently registered"),
	)
	if err != nil {
		return nil, fmt.Errorf("subscribers: parts gauge: %w", err)
	}
	products, err := meter.Int64ObservableGauge("inventory.products",
		metric.WithDescription("Products currently registered"),
	)
	if err != nil {
		return nil, fmt.Errorf("subscribers: products gauge: %w", err)
	}
	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(parts, int64(a.Inventory.PartCount()))
		o.ObserveInt64(products, int64(a.Inventory.ProductCount()))
		return nil
	}, parts, products)
	if err != nil {
		return nil, fmt.Errorf("subscribers: register gauges: %w", err)
	}

	act := &Activity{log: a.Logger, changes: changes, reg: reg}
	for _, topic := range Topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, act.handle)
		if err != nil {
			_ = reg.Unregister()
			return nil, err
		}
		go act.drain(ctx, topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", Topics)
	return act, nil
}

// Handled returns the number of change events recorded so far.
func (s *Activity) Handled() int64 { return s.handled.Load() }

// Failed returns the number of events that could not be recorded.
func (s *Activity) Failed() int64 { return s.failed.Load() }

// Close stops the registry-size gauges.
func (s *Activity) Close() error {
	return s.reg.Unregister()
}

func (s *Activity) handle(ctx context.Context, msg *message.Message) error {
	var evt domainevents.InventoryChangedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		// Retrying cannot fix a malformed payload.
		s.failed.Add(1)
		s.log.ErrorContext(ctx, "inventory: malformed change event", "message_uuid", msg.UUID, "error", err)
		telemetry.CaptureError(ctx, fmt.Errorf("decode change event %s: %w", msg.UUID, err))
		return nil
	}
	if evt.Version > domainevents.InventoryChangedEventVersion {
		s.log.WarnContext(ctx, "inventory: change event from a newer schema", "version", evt.Version)
	}

	s.changes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", evt.Entity),
		attribute.String("op", evt.Op),
	))
	s.handled.Add(1)
	s.log.InfoContext(ctx, "inventory changed",
		"event_id", evt.EventID,
		"entity", evt.Entity,
		"op", evt.Op,
		"entity_id", evt.EntityID,
		"name", evt.Name,
	)
	return nil
}

// drain keeps the subscriber error channel from blocking.
func (s *Activity) drain(ctx context.Context, topic string, errCh <-chan error) {
	for err := range errCh {
		s.failed.Add(1)
		s.log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		telemetry.CaptureError(ctx, err)
	}
}
