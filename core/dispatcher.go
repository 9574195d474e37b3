package vector

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/codaris/vector-core/core/events"
)

// HandlerError reports a subscriber callback that panicked during delivery.
// Failures are isolated per handler: the remaining handlers for the same
// event still run.
type HandlerError struct {
	// Kind is the kind of the event being delivered when the handler failed.
	Kind events.Kind
	// SubscriptionID identifies the failing subscription.
	SubscriptionID string
	// Err is the recovered panic value wrapped as an error.
	Err error
}

func (e HandlerError) Error() string {
	return fmt.Sprintf("handler %s failed on %s: %v", e.SubscriptionID, e.Kind, e.Err)
}

func (e HandlerError) Unwrap() error { return e.Err }

// Subscription is a registered handler's cancellation handle.
type Subscription struct {
	id         string
	dispatcher *Dispatcher
}

// ID is the subscription's unique identifier, stable for its lifetime.
func (s Subscription) ID() string { return s.id }

// Cancel removes the subscription. Safe to call more than once; a zero
// Subscription cancels nothing.
func (s Subscription) Cancel() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.cancel(s.id)
}

type registeredHandler struct {
	id      string
	handler func(events.Event)
}

// Dispatcher delivers typed events to registered subscribers. Delivery is
// synchronous and ordered: every handler registered for a kind runs in
// registration order, on the publishing goroutine, before Publish returns.
// The runtime publishes from its single event loop, so no two events from
// the same stream are ever delivered concurrently.
type Dispatcher struct {
	mu       sync.Mutex
	byKind   map[events.Kind][]registeredHandler
	catchAll []registeredHandler

	errs chan error
}

const dispatcherErrorBuffer = 16

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		byKind: map[events.Kind][]registeredHandler{},
		errs:   make(chan error, dispatcherErrorBuffer),
	}
}

// Subscribe registers a handler for one event kind. A nil handler registers
// nothing and returns a zero subscription.
func (d *Dispatcher) Subscribe(kind events.Kind, handler func(events.Event)) Subscription {
	if d == nil || handler == nil {
		return Subscription{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.NewString()
	d.byKind[kind] = append(d.byKind[kind], registeredHandler{id: id, handler: handler})
	return Subscription{id: id, dispatcher: d}
}

// SubscribeAll registers a handler for every event kind, including ones
// added by future protocol revisions. Catch-all handlers run after the
// kind-specific handlers for each event.
func (d *Dispatcher) SubscribeAll(handler func(events.Event)) Subscription {
	if d == nil || handler == nil {
		return Subscription{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.NewString()
	d.catchAll = append(d.catchAll, registeredHandler{id: id, handler: handler})
	return Subscription{id: id, dispatcher: d}
}

// Publish delivers an event to its kind's subscribers and then to the
// catch-all subscribers. A panicking handler is recovered and reported on
// Errors; delivery continues with the next handler.
func (d *Dispatcher) Publish(event events.Event) {
	if d == nil || event == nil {
		return
	}

	d.mu.Lock()
	handlers := make([]registeredHandler, 0, len(d.byKind[event.Kind()])+len(d.catchAll))
	handlers = append(handlers, d.byKind[event.Kind()]...)
	handlers = append(handlers, d.catchAll...)
	d.mu.Unlock()

	for _, registered := range handlers {
		d.deliver(registered, event)
	}
}

func (d *Dispatcher) deliver(registered registeredHandler, event events.Event) {
	defer func() {
		if recovered := recover(); recovered != nil {
			d.reportError(HandlerError{
				Kind:           event.Kind(),
				SubscriptionID: registered.id,
				Err:            fmt.Errorf("handler panic: %v", recovered),
			})
		}
	}()

	registered.handler(event)
}

// Errors is the side channel for decode failures and handler panics. The
// channel is buffered; when no one drains it, further errors are logged and
// dropped rather than blocking dispatch.
func (d *Dispatcher) Errors() <-chan error {
	if d == nil {
		return nil
	}
	return d.errs
}

func (d *Dispatcher) reportError(err error) {
	if d == nil || err == nil {
		return
	}

	select {
	case d.errs <- err:
	default:
		logger.Warn("error channel full, dropping error", "error", err.Error())
	}
}

func (d *Dispatcher) cancel(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for kind, handlers := range d.byKind {
		d.byKind[kind] = removeHandler(handlers, id)
	}
	d.catchAll = removeHandler(d.catchAll, id)
}

func removeHandler(handlers []registeredHandler, id string) []registeredHandler {
	for i, registered := range handlers {
		if registered.id == id {
			return append(handlers[:i:i], handlers[i+1:]...)
		}
	}
	return handlers
}
