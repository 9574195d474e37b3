package vector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codaris/vector-core/core/events"
	"github.com/codaris/vector-core/core/objects"
)

const deliveryTimeout = 2 * time.Second

type fakeSource struct {
	onEnvelope func(events.Envelope)
	opened     bool
	closed     bool
}

func (s *fakeSource) Open(ctx context.Context, onEnvelope func(events.Envelope)) error {
	s.onEnvelope = onEnvelope
	s.opened = true
	return nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func awaitEvent(t *testing.T, received <-chan events.Event) events.Event {
	t.Helper()

	select {
	case event := <-received:
		return event
	case <-time.After(deliveryTimeout):
		t.Fatalf("expected an event to be delivered")
		return nil
	}
}

func TestRunDeliversStreamedEnvelopesToSubscribers(t *testing.T) {
	source := &fakeSource{}
	client := NewClient(WithEnvelopeSource(source))
	defer client.Close()

	received := make(chan events.Event, 1)
	client.Subscribe(events.KindWakeWordBegin, func(event events.Event) { received <- event })

	if err := client.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}
	if !source.opened {
		t.Fatalf("expected run to open the envelope source")
	}

	source.onEnvelope(events.Envelope{
		Kind:    events.EnvelopeWakeWord,
		Payload: events.WakeWordPayload{Type: events.WakeWordBegin},
	})

	event := awaitEvent(t, received)
	if event.Kind() != events.KindWakeWordBegin {
		t.Fatalf("expected kind %q, got %q", events.KindWakeWordBegin, event.Kind())
	}
}

func TestUndecodableEnvelopeIsReportedNotFatal(t *testing.T) {
	client := NewClient()
	defer client.Close()

	received := make(chan events.Event, 1)
	client.Subscribe(events.KindKeepAlive, func(event events.Event) { received <- event })

	if err := client.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	client.Handle(events.Envelope{Kind: events.EnvelopeKind("martian")})
	client.Handle(events.Envelope{Kind: events.EnvelopeKeepAlive})

	event := awaitEvent(t, received)
	if event.Kind() != events.KindKeepAlive {
		t.Fatalf("expected the loop to keep running after a decode failure, got %q", event.Kind())
	}

	select {
	case err := <-client.Errors():
		var decodeErr *events.DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("expected a decode error on the side channel, got %T", err)
		}
	default:
		t.Fatalf("expected the decode failure to be reported")
	}
}

func TestWorldUpdatesBeforeSubscribersRun(t *testing.T) {
	client := NewClient(WithDisappearDelay(time.Hour))
	defer client.Close()

	visible := make(chan bool, 1)
	client.Subscribe(events.KindObjectObserved, func(event events.Event) {
		observed := event.(events.ObjectObservedEvent)
		object, ok := client.World().Object(observed.ObjectID)
		visible <- ok && object.IsVisible()
	})

	if err := client.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	client.Handle(events.Envelope{
		Kind: events.EnvelopeObjectEvent,
		Payload: events.ObjectEventPayload{
			Type: events.ObjectEventObserved,
			Observed: &events.ObjectObservation{
				ObjectID:       7,
				Type:           events.ObjectTypeLightCube,
				RobotTimestamp: 100,
			},
		},
	})

	select {
	case sawVisible := <-visible:
		if !sawVisible {
			t.Fatalf("expected the registry to already hold the observed object when its subscriber runs")
		}
	case <-time.After(deliveryTimeout):
		t.Fatalf("expected the observed event to be delivered")
	}
}

func TestRunCallbacksBridgeDerivedEvents(t *testing.T) {
	client := NewClient(WithDisappearDelay(time.Hour))
	defer client.Close()

	appeared := make(chan objects.WorldObject, 1)
	err := client.Run(context.Background(),
		WithObjectAppearedCallback(func(object objects.WorldObject) { appeared <- object }),
	)
	if err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	client.Handle(events.Envelope{
		Kind: events.EnvelopeObjectEvent,
		Payload: events.ObjectEventPayload{
			Type: events.ObjectEventObserved,
			Observed: &events.ObjectObservation{
				ObjectID:       3,
				Type:           events.ObjectTypeCharger,
				RobotTimestamp: 100,
			},
		},
	})

	select {
	case object := <-appeared:
		if got := object.ObjectType(); got != events.ObjectTypeCharger {
			t.Fatalf("expected appeared callback for the charger, got %q", got)
		}
	case <-time.After(deliveryTimeout):
		t.Fatalf("expected the appeared callback to fire")
	}
}

func TestRobotStateFeedsActionCorrelator(t *testing.T) {
	client := NewClient(WithActionQuietInterval(50 * time.Millisecond))
	defer client.Close()

	if err := client.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	handle := client.BeginAction(ActionAnimation)
	time.Sleep(200 * time.Millisecond)

	// An empty status word reads every action flag inactive.
	client.Handle(events.Envelope{
		Kind:    events.EnvelopeRobotState,
		Payload: events.RobotStatePayload{},
	})

	select {
	case <-handle.Done():
	case <-time.After(deliveryTimeout):
		t.Fatalf("expected the handle to resolve from the status stream")
	}
	if got := handle.Outcome(); got != ActionCompleted {
		t.Fatalf("expected outcome %v, got %v", ActionCompleted, got)
	}
}

func TestCloseResolvesPendingActionsAndStopsIngest(t *testing.T) {
	source := &fakeSource{}
	client := NewClient(WithEnvelopeSource(source))

	if err := client.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	handle := client.BeginAction(ActionDriving)

	client.Close()
	client.Close()

	if !source.closed {
		t.Fatalf("expected close to close the envelope source")
	}
	if got := handle.Outcome(); got != ActionCancelled {
		t.Fatalf("expected pending handle to resolve cancelled on close, got %v", got)
	}
	if client.Handle(events.Envelope{Kind: events.EnvelopeKeepAlive}) {
		t.Fatalf("expected ingest to be rejected after close")
	}
}

func TestContextCancellationClosesClient(t *testing.T) {
	client := NewClient()

	ctx, cancel := context.WithCancel(context.Background())
	if err := client.Run(ctx); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	cancel()

	deadline := time.Now().Add(deliveryTimeout)
	for client.Handle(events.Envelope{Kind: events.EnvelopeKeepAlive}) {
		if time.Now().After(deadline) {
			t.Fatalf("expected context cancellation to shut the runtime down")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAnimationsAreCachedAndCopied(t *testing.T) {
	loads := 0
	client := NewClient(WithAnimationLoader(func(ctx context.Context) ([]Animation, []AnimationTrigger, error) {
		loads++
		return []Animation{{Name: "anim_greeting"}}, []AnimationTrigger{{Name: "GreetAfterLongTime"}}, nil
	}))
	defer client.Close()

	first, err := client.Animations(context.Background())
	if err != nil {
		t.Fatalf("expected animations to load, got %v", err)
	}
	first[0].Name = "mutated"

	second, err := client.Animations(context.Background())
	if err != nil {
		t.Fatalf("expected cached animations, got %v", err)
	}
	if second[0].Name != "anim_greeting" {
		t.Fatalf("expected the cache to hand out copies, got %q", second[0].Name)
	}

	if _, err := client.AnimationTriggers(context.Background()); err != nil {
		t.Fatalf("expected triggers to come from the same load, got %v", err)
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}
}

func TestAnimationsWithoutLoaderFail(t *testing.T) {
	client := NewClient()
	defer client.Close()

	if _, err := client.Animations(context.Background()); err == nil {
		t.Fatalf("expected an error without a configured loader")
	}
}
