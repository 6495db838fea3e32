package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/domain/shared"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	fail     bool
	panics   bool
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("boom")
	}
	h.received = append(h.received, event)
	if h.fail {
		return errors.New("handler failed")
	}
	return nil
}

func (h *recordingHandler) EventTypes() []string { return h.types }

func newTenantEvent(t *testing.T) shared.DomainEvent {
	t.Helper()
	tenant, err := identity.NewTenant("Acme", "acme-store")
	require.NoError(t, err)
	events := tenant.GetDomainEvents()
	require.NotEmpty(t, events)
	return events[0]
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	t.Run("delivers to subscribed handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{identity.EventTypeTenantCreated}}
		bus.Subscribe(handler)

		event := newTenantEvent(t)
		require.NoError(t, bus.Publish(context.Background(), event))

		require.Len(t, handler.received, 1)
		assert.Equal(t, event.EventID(), handler.received[0].EventID())
	})

	t.Run("no subscribers is not an error", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		assert.NoError(t, bus.Publish(context.Background(), newTenantEvent(t)))
	})

	t.Run("catch-all handler receives everything", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		all := &recordingHandler{}
		bus.Subscribe(all)

		require.NoError(t, bus.Publish(context.Background(), newTenantEvent(t)))
		assert.Len(t, all.received, 1)
	})

	t.Run("panicking handler does not block the rest", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		bad := &recordingHandler{types: []string{identity.EventTypeTenantCreated}, panics: true}
		good := &recordingHandler{types: []string{identity.EventTypeTenantCreated}}
		bus.Subscribe(bad)
		bus.Subscribe(good)

		require.NoError(t, bus.Publish(context.Background(), newTenantEvent(t)))
		assert.Len(t, good.received, 1)
	})

	t.Run("unsubscribed handler stops receiving", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{identity.EventTypeTenantCreated}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		require.NoError(t, bus.Publish(context.Background(), newTenantEvent(t)))
		assert.Empty(t, handler.received)
	})
}

func TestHandlerRegistry(t *testing.T) {
	registry := NewHandlerRegistry()
	h1 := &recordingHandler{}
	h2 := &recordingHandler{}

	registry.Register(h1, "A")
	registry.Register(h2)

	assert.Len(t, registry.GetHandlers("A"), 2, "specific plus catch-all")
	assert.Len(t, registry.GetHandlers("B"), 1, "catch-all only")

	registry.Unregister(h2)
	assert.Len(t, registry.GetHandlers("B"), 0)
}
