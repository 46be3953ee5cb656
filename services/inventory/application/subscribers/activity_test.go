package subscribers

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/events"
	"github.com/ghuser/inventory/pkg/logger"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
	domainevents "github.com/ghuser/inventory/services/inventory/domain/events"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/inventory/services/inventory/domain/services"
	"github.com/ghuser/inventory/services/inventory/infrastructure/persistence/memory"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func newApp(t *testing.T) *app.Application {
	t.Helper()
	bus := events.NewEventBus(logger.Nop())
	t.Cleanup(func() { _ = bus.Close() })
	return &app.Application{Logger: logger.Nop(), EventBus: bus, Inventory: memory.NewStore()}
}

func TestRegister_RecordsRegistryChanges(t *testing.T) {
	a := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	act, err := Register(ctx, a)
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	defer act.Close() //nolint:errcheck

	svcs := appsvcs.New(a)
	defer svcs.Close()

	if _, err := svcs.Part.Create(ctx, domainsvcs.PartForm{
		Source: models.SourceInHouse, Name: "Bell", Price: "4.5", Stock: "3", Min: "1", Max: "5", MachineID: "2",
	}); err != nil {
		t.Fatalf("Part.Create() error: %v", err)
	}
	if _, err := svcs.Product.Create(ctx, domainsvcs.ProductForm{
		Name: "Road Bike", Price: "999.99", Stock: "3", Min: "1", Max: "5",
	}, nil); err != nil {
		t.Fatalf("Product.Create() error: %v", err)
	}

	waitFor(t, func() bool { return act.Handled() == 2 })
	if act.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", act.Failed())
	}
}

func TestRegister_MalformedPayloadIsNotRetried(t *testing.T) {
	a := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	act, err := Register(ctx, a)
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	defer act.Close() //nolint:errcheck

	msg := message.NewMessage(uuid.NewString(), []byte("not json"))
	if err := a.EventBus.Publish(ctx, domainevents.TopicPartChanged, msg); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	waitFor(t, func() bool { return act.Failed() == 1 })
	if act.Handled() != 0 {
		t.Fatalf("malformed event must not be recorded, got %d", act.Handled())
	}
}

func TestRegister_RequiresEventBus(t *testing.T) {
	_, err := Register(context.Background(), &app.Application{Logger: logger.Nop(), Inventory: memory.NewStore()})
	if err == nil {
		t.Fatal("expected error without an event bus")
	}
}

func TestRegister_ClosedBus(t *testing.T) {
	a := newApp(t)
	_ = a.EventBus.Close()

	if _, err := Register(context.Background(), a); err == nil {
		t.Fatal("expected error when the bus is closed")
	}
}
