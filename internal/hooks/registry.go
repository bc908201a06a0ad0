// Package hooks provides a priority-ordered hook registry compatible with the
// Amplifier runtime's handler model.
//
// The runtime owns the real registry; this implementation mirrors its
// contract so the notification module can be mounted and exercised without a
// running Amplifier instance. Handlers registered for an event type run in
// ascending priority order (lower runs first), with registration order
// breaking ties. Registration is keyed by handler name: registering the same
// name again replaces the previous handler instead of adding a duplicate.
package hooks

import (
	"sort"
	"sync"

	"github.com/amplifier-oss/hooks-notifications/internal/event"
)

// Handler processes one event. Implementations must return promptly; any
// long-running work belongs on a background goroutine.
type Handler func(ev event.Event)

// Registration describes one registered handler.
type Registration struct {
	Name     string
	Priority int
	Handler  Handler
}

// Registry maintains per-event-type ordered handler lists.
type Registry struct {
	mu       sync.RWMutex
	handlers map[event.Type][]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[event.Type][]Registration),
	}
}

// Register adds a handler for the given event type and returns an unregister
// function. A handler with the same name already registered for that event
// type is replaced in place, keeping its slot in the order.
func (r *Registry) Register(t event.Type, name string, priority int, h Handler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.handlers[t]
	replaced := false
	for i, reg := range regs {
		if reg.Name == name {
			regs[i] = Registration{Name: name, Priority: priority, Handler: h}
			replaced = true
			break
		}
	}
	if !replaced {
		regs = append(regs, Registration{Name: name, Priority: priority, Handler: h})
	}
	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].Priority < regs[j].Priority
	})
	r.handlers[t] = regs

	return func() { r.Unregister(t, name) }
}

// Unregister removes the named handler for the given event type.
// It reports whether a handler was removed.
func (r *Registry) Unregister(t event.Type, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.handlers[t]
	for i, reg := range regs {
		if reg.Name == name {
			r.handlers[t] = append(regs[:i], regs[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch delivers ev to every handler registered for its type, in priority
// order. A panicking handler is contained and does not prevent delivery to
// the handlers after it.
func (r *Registry) Dispatch(ev event.Event) {
	r.mu.RLock()
	regs := make([]Registration, len(r.handlers[ev.Type]))
	copy(regs, r.handlers[ev.Type])
	r.mu.RUnlock()

	for _, reg := range regs {
		deliver(reg.Handler, ev)
	}
}

func deliver(h Handler, ev event.Event) {
	defer func() { _ = recover() }()
	h(ev)
}

// Count returns the number of handlers registered for the given event type.
func (r *Registry) Count(t event.Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}

// Names returns the handler names for the given event type in delivery order.
func (r *Registry) Names(t event.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.handlers[t]))
	for i, reg := range r.handlers[t] {
		names[i] = reg.Name
	}
	return names
}
