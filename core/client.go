// Package vector is the client-side event runtime for a Vector robot. It
// turns the robot's streamed event envelopes into typed events, delivers
// them to subscribers, tracks the robot's world (cubes, charger, custom
// objects, faces), and correlates long-running action completion from the
// streamed status flags.
package vector

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/codaris/vector-core/core/events"
	"github.com/codaris/vector-core/core/objects"
)

// EnvelopeSource is the streaming transport the runtime reads from. Open
// must deliver envelopes through onEnvelope until the stream ends or Close
// is called; onEnvelope may be called from any goroutine.
type EnvelopeSource interface {
	Open(ctx context.Context, onEnvelope func(events.Envelope)) error
	Close() error
}

const eventQueueCapacity = 256

type queueItem struct {
	envelope *events.Envelope
	callback func()
	queuedAt time.Time
}

// Client is the event runtime. One goroutine owns the event loop and does
// all decode, dispatch, and world mutation work sequentially; envelopes
// from the stream and timer callbacks are funneled through the same queue,
// so registry state never needs locking.
type Client struct {
	source         EnvelopeSource
	disappearDelay time.Duration
	quietInterval  time.Duration

	dispatcher *Dispatcher
	world      *objects.Registry
	actions    *actionCorrelator
	animations *animationCache

	emitCallbacks eventEmitter

	queue   chan queueItem
	closeCh chan struct{}
	done    chan struct{}

	startOnce sync.Once
	endOnce   sync.Once
	closeOnce sync.Once

	started atomic.Bool
}

// NewClient creates a client. The runtime does nothing until Run starts
// the event loop.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		dispatcher: NewDispatcher(),

		emitCallbacks: noopEventEmitter,

		queue:   make(chan queueItem, eventQueueCapacity),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.world = objects.NewRegistry(c.disappearDelay, c.dispatcher.Publish, c.schedule)
	c.actions = newActionCorrelator(c.quietInterval)

	return c
}

// Run starts the event loop and, when a source is configured, opens the
// stream feeding it. Run returns once the runtime is started; events are
// delivered on the loop goroutine.
//
// Contract: call Run at most once per client instance.
func (c *Client) Run(ctx context.Context, opts ...RunOption) error {
	if c == nil {
		return fmt.Errorf("run called on nil client")
	}
	if !c.canIngest() {
		log.Println("Warning: client already closed, skipping Run")
		return fmt.Errorf("client closed")
	}

	runOptions := RunOptions{}
	for _, opt := range opts {
		opt(&runOptions)
	}
	c.emitCallbacks = newCallbackEventEmitter(c, runOptions)
	c.dispatcher.SubscribeAll(func(event events.Event) { c.emitCallbacks(event) })

	if started := c.startLoop(ctx); started {
		go func() {
			<-ctx.Done()
			c.Close()
		}()
	}

	if c.source != nil {
		if err := c.source.Open(ctx, func(envelope events.Envelope) { c.Handle(envelope) }); err != nil {
			recordedErr := fmt.Errorf("failed to open envelope source: %w", err)
			span := trace.SpanFromContext(ctx)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
			return recordedErr
		}
	}

	return nil
}

// Handle queues one envelope for processing. It reports false when the
// runtime is closed or the queue is full; a full queue means the loop has
// fallen behind and the envelope is dropped rather than blocking the
// transport.
func (c *Client) Handle(envelope events.Envelope) bool {
	if c == nil || !c.canIngest() {
		return false
	}

	item := queueItem{envelope: &envelope, queuedAt: time.Now()}
	select {
	case <-c.closeCh:
		return false
	case c.queue <- item:
		return true
	default:
		logger.Warn("event queue full, dropping envelope", "kind", string(envelope.Kind))
		return false
	}
}

// schedule funnels a callback onto the event loop, preserving the
// single-writer invariant for timer callbacks that mutate world state.
func (c *Client) schedule(callback func()) {
	if c == nil || callback == nil || !c.canIngest() {
		return
	}

	item := queueItem{callback: callback, queuedAt: time.Now()}
	select {
	case <-c.closeCh:
	case c.queue <- item:
	}
}

func (c *Client) canIngest() bool {
	if c == nil {
		return false
	}

	select {
	case <-c.closeCh:
		return false
	default:
		return true
	}
}

func (c *Client) startLoop(ctx context.Context) (started bool) {
	c.startOnce.Do(func() {
		if !c.canIngest() {
			return
		}

		started = true
		c.started.Store(true)
		go func() {
			defer close(c.done)

			for {
				select {
				case <-c.closeCh:
					return
				case item := <-c.queue:
					if !c.canIngest() {
						return
					}
					c.processQueueItem(ctx, item)
				}
			}
		}()
	})

	return started
}

func (c *Client) processQueueItem(ctx context.Context, item queueItem) {
	if item.callback != nil {
		item.callback()
		return
	}
	if item.envelope == nil {
		return
	}

	_, span := tracer.Start(ctx, "process envelope")
	defer span.End()
	span.SetAttributes(
		attribute.String("envelope.kind", string(item.envelope.Kind)),
		attribute.Float64("envelope.queued_time", time.Since(item.queuedAt).Seconds()),
	)

	event, err := events.FromEnvelope(*item.envelope)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("dropping undecodable envelope", "kind", string(item.envelope.Kind), "error", err.Error())
		c.dispatcher.reportError(err)
		return
	}

	// The world updates before subscribers run, so a handler that queries
	// the registry sees state that already includes its own event.
	c.world.HandleEvent(event)
	if state, ok := event.(events.RobotStateEvent); ok {
		c.actions.observe(state.Status, time.Now())
	}
	c.dispatcher.Publish(event)
}

// Subscribe registers a handler for one event kind. Handlers run on the
// event loop in registration order.
func (c *Client) Subscribe(kind events.Kind, handler func(events.Event)) Subscription {
	if c == nil {
		return Subscription{}
	}
	return c.dispatcher.Subscribe(kind, handler)
}

// SubscribeAll registers a handler for every event kind.
func (c *Client) SubscribeAll(handler func(events.Event)) Subscription {
	if c == nil {
		return Subscription{}
	}
	return c.dispatcher.SubscribeAll(handler)
}

// Errors is the side channel for decode failures and handler panics.
func (c *Client) Errors() <-chan error {
	if c == nil {
		return nil
	}
	return c.dispatcher.Errors()
}

// World is the registry of tracked world objects and faces. Reads are only
// consistent from within a subscriber handler or after Close.
func (c *Client) World() *objects.Registry {
	if c == nil {
		return nil
	}
	return c.world
}

// BeginAction starts completion tracking for an action the caller just
// triggered. The handle resolves once the status stream reports the kind
// inactive after the quiet interval. Beginning a kind that is already
// tracked resolves the previous handle as superseded.
//
// The caller must keep the robot state stream alive for the handle to
// resolve; the triggering RPC's own response does not feed the correlator.
func (c *Client) BeginAction(kind ActionKind) *ActionHandle {
	if c == nil {
		return nil
	}
	return c.actions.begin(kind, time.Now())
}

// Close shuts the runtime down: the loop stops, pending disappearance
// timers are cancelled, pending action handles resolve cancelled, and the
// animation cache is invalidated. Idempotent.
func (c *Client) Close() {
	if c == nil {
		return
	}

	c.closeOnce.Do(func() {
		c.endOnce.Do(func() { close(c.closeCh) })

		if c.source != nil {
			if err := c.source.Close(); err != nil {
				logger.Warn("failed to close envelope source", "error", err.Error())
			}
		}

		if c.started.Load() {
			<-c.done
		}

		c.world.Close()
		c.actions.cancelAll()
		c.animations.invalidate()
	})
}
