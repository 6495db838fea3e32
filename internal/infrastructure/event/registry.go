package event

import (
	"sync"

	"github.com/storekit/backend/internal/domain/shared"
)

// HandlerRegistry tracks which handlers receive which event types.
// The empty event type key holds handlers subscribed to everything.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[string][]shared.EventHandler),
	}
}

// Register subscribes a handler to the given event types. With no
// types, the handler receives all events.
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		r.handlers[""] = append(r.handlers[""], handler)
		return
	}
	for _, eventType := range eventTypes {
		r.handlers[eventType] = append(r.handlers[eventType], handler)
	}
}

// Unregister removes a handler from every subscription list
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for eventType, handlers := range r.handlers {
		kept := handlers[:0]
		for _, h := range handlers {
			if h != handler {
				kept = append(kept, h)
			}
		}
		if len(kept) == 0 {
			delete(r.handlers, eventType)
		} else {
			r.handlers[eventType] = kept
		}
	}
}

// GetHandlers returns the handlers for an event type, including
// catch-all subscribers
func (r *HandlerRegistry) GetHandlers(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specific := r.handlers[eventType]
	catchAll := r.handlers[""]
	if len(catchAll) == 0 {
		return specific
	}

	combined := make([]shared.EventHandler, 0, len(specific)+len(catchAll))
	combined = append(combined, specific...)
	combined = append(combined, catchAll...)
	return combined
}
