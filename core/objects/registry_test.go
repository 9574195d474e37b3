package objects

import (
	"sync"
	"testing"
	"time"

	"github.com/codaris/vector-core/core/events"
)

// registryHarness serializes registry access the way the runtime's event
// loop does, so debounce callbacks and test assertions never overlap.
type registryHarness struct {
	mu       sync.Mutex
	registry *Registry
	emitted  []events.Event
}

func newRegistryHarness(disappearDelay time.Duration) *registryHarness {
	harness := &registryHarness{}
	harness.registry = NewRegistry(
		disappearDelay,
		func(event events.Event) { harness.emitted = append(harness.emitted, event) },
		harness.do,
	)
	return harness
}

func (h *registryHarness) do(callback func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	callback()
}

func (h *registryHarness) emittedKinds() []events.Kind {
	h.mu.Lock()
	defer h.mu.Unlock()

	kinds := make([]events.Kind, 0, len(h.emitted))
	for _, event := range h.emitted {
		kinds = append(kinds, event.Kind())
	}
	return kinds
}

func (h *registryHarness) countKind(kind events.Kind) int {
	count := 0
	for _, emittedKind := range h.emittedKinds() {
		if emittedKind == kind {
			count++
		}
	}
	return count
}

func observedEvent(objectID uint32, objectType events.ObjectType, robotTimestamp uint32) events.ObjectObservedEvent {
	return events.NewObjectObservedEvent(events.ObjectObservation{
		ObjectID:       objectID,
		Type:           objectType,
		Pose:           events.Pose{X: 100, OriginID: 1},
		RobotTimestamp: robotTimestamp,
	})
}

func TestObservationCreatesEntityAndEmitsAppeared(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 100))
	})

	harness.do(func() {
		object, ok := harness.registry.Object(1)
		if !ok {
			t.Fatalf("expected entity to be created on first observation")
		}
		if !object.IsVisible() {
			t.Fatalf("expected freshly observed entity to be visible")
		}
		if got := object.LastRobotTimestamp(); got != 100 {
			t.Fatalf("expected robot timestamp 100, got %d", got)
		}
	})

	if got := harness.countKind(KindObjectAppeared); got != 1 {
		t.Fatalf("expected exactly one appeared event, got %d", got)
	}
}

func TestDuplicateObservationsAppearOnlyOnce(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		for i := 0; i < 5; i++ {
			harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, uint32(100+i)))
		}
	})

	if got := harness.countKind(KindObjectAppeared); got != 1 {
		t.Fatalf("expected one appeared event across duplicate observations, got %d", got)
	}
}

func TestObservationTypesCreateMatchingEntities(t *testing.T) {
	testCases := []struct {
		name     string
		observed events.ObjectType
		expected events.ObjectType
	}{
		{name: "light cube", observed: events.ObjectTypeLightCube, expected: events.ObjectTypeLightCube},
		{name: "charger", observed: events.ObjectTypeCharger, expected: events.ObjectTypeCharger},
		{name: "custom object", observed: events.ObjectTypeCustomObject, expected: events.ObjectTypeCustomObject},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			harness := newRegistryHarness(time.Hour)

			harness.do(func() {
				harness.registry.OnObjectObserved(observedEvent(7, testCase.observed, 100))
			})

			harness.do(func() {
				object, ok := harness.registry.Object(7)
				if !ok {
					t.Fatalf("expected entity to exist")
				}
				if got := object.ObjectType(); got != testCase.expected {
					t.Fatalf("expected object type %q, got %q", testCase.expected, got)
				}
			})
		})
	}
}

func TestRapidReobservationKeepsEntityVisible(t *testing.T) {
	harness := newRegistryHarness(100 * time.Millisecond)

	for i := 0; i < 8; i++ {
		harness.do(func() {
			harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 100))
			object, _ := harness.registry.Object(1)
			if !object.IsVisible() {
				t.Fatalf("expected entity to stay visible under rapid re-observation")
			}
		})
		time.Sleep(20 * time.Millisecond)
	}

	if got := harness.countKind(KindObjectDisappeared); got != 0 {
		t.Fatalf("expected no disappeared events while re-observing, got %d", got)
	}
}

func TestEntityDisappearsAfterDebounceDelay(t *testing.T) {
	harness := newRegistryHarness(100 * time.Millisecond)

	harness.do(func() {
		harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 100))
	})

	time.Sleep(50 * time.Millisecond)
	harness.do(func() {
		object, _ := harness.registry.Object(1)
		if !object.IsVisible() {
			t.Fatalf("expected entity to stay visible before the debounce delay elapsed")
		}
	})

	time.Sleep(400 * time.Millisecond)
	harness.do(func() {
		object, _ := harness.registry.Object(1)
		if object.IsVisible() {
			t.Fatalf("expected entity to go stale after the debounce delay")
		}
	})

	if got := harness.countKind(KindObjectDisappeared); got != 1 {
		t.Fatalf("expected exactly one disappeared event, got %d", got)
	}
}

func TestReobservationAfterDisappearanceEmitsAppearedAgain(t *testing.T) {
	harness := newRegistryHarness(50 * time.Millisecond)

	harness.do(func() {
		harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 100))
	})
	time.Sleep(300 * time.Millisecond)
	harness.do(func() {
		harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 200))
	})

	if got := harness.countKind(KindObjectAppeared); got != 2 {
		t.Fatalf("expected a second appeared event after re-observation, got %d", got)
	}

	harness.do(func() {
		object, _ := harness.registry.Object(1)
		if !object.IsVisible() {
			t.Fatalf("expected re-observed entity to be visible")
		}
	})
}

func TestStoppedMovingWithoutMoveYieldsZeroDuration(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	var duration time.Duration
	harness.do(func() {
		harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 100))
		duration = harness.registry.OnObjectStoppedMoving(1, 500)
	})

	if duration != 0 {
		t.Fatalf("expected zero duration for stop without prior move, got %v", duration)
	}
	if got := harness.countKind(KindObjectFinishedMoving); got != 0 {
		t.Fatalf("expected no finished moving event, got %d", got)
	}

	harness.do(func() {
		object, _ := harness.registry.Object(1)
		if object.(*LightCube).IsMoving() {
			t.Fatalf("expected cube to remain not moving")
		}
	})
}

func TestMoveDurationMeasuredOnRobotClock(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	var duration time.Duration
	harness.do(func() {
		harness.registry.OnObjectMoved(1, 1000)
		duration = harness.registry.OnObjectStoppedMoving(1, 1750)
	})

	if duration != 750*time.Millisecond {
		t.Fatalf("expected 750ms move duration, got %v", duration)
	}
	if got := harness.countKind(KindObjectFinishedMoving); got != 1 {
		t.Fatalf("expected one finished moving event, got %d", got)
	}
}

func TestRepeatedMovedEventsKeepOriginalStartTime(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	var duration time.Duration
	harness.do(func() {
		harness.registry.OnObjectMoved(1, 1000)
		harness.registry.OnObjectMoved(1, 1400)
		harness.registry.OnObjectMoved(1, 1900)
		duration = harness.registry.OnObjectStoppedMoving(1, 2000)
	})

	if duration != time.Second {
		t.Fatalf("expected duration measured from the first moved event, got %v", duration)
	}
}

func TestMovementEventsForUnknownIDCreatePlaceholder(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnObjectMoved(42, 1000)
	})

	harness.do(func() {
		object, ok := harness.registry.Object(42)
		if !ok {
			t.Fatalf("expected placeholder entity for never-observed id")
		}
		cube, ok := object.(*LightCube)
		if !ok {
			t.Fatalf("expected placeholder to be a cube, got %T", object)
		}
		if !cube.IsMoving() {
			t.Fatalf("expected placeholder cube to be moving")
		}
		if cube.IsVisible() {
			t.Fatalf("expected placeholder cube to not be visible")
		}
	})
}

func TestTapUpdatesCubeAndEmitsBoundEvent(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnObjectTapped(1, 3000)
	})

	harness.do(func() {
		object, _ := harness.registry.Object(1)
		if object.(*LightCube).LastTappedAt().IsZero() {
			t.Fatalf("expected tap time to be recorded")
		}
	})

	if got := harness.countKind(KindObjectTapped); got != 1 {
		t.Fatalf("expected one bound tapped event, got %d", got)
	}
}

func TestConnectionStateChangeEmitsOnTransitionsOnly(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnConnectionStateChanged(1, "aa:bb", true)
		harness.registry.OnConnectionStateChanged(1, "aa:bb", true)
		harness.registry.OnConnectionStateChanged(1, "aa:bb", false)
	})

	if got := harness.countKind(KindObjectConnectionChanged); got != 2 {
		t.Fatalf("expected connection events only on transitions, got %d", got)
	}

	harness.do(func() {
		cube, ok := harness.registry.CubeByFactoryID("aa:bb")
		if !ok {
			t.Fatalf("expected cube to be indexed by factory id")
		}
		if cube.IsConnected() {
			t.Fatalf("expected cube to end disconnected")
		}
	})
}

func TestAvailableCubeIsAdoptedOnFirstObservation(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnObjectAvailable("aa:bb")
		harness.registry.OnObjectObserved(observedEvent(3, events.ObjectTypeLightCube, 100))
	})

	harness.do(func() {
		cube, ok := harness.registry.CubeByFactoryID("aa:bb")
		if !ok {
			t.Fatalf("expected cube indexed by factory id")
		}
		if got := cube.ID(); got != 3 {
			t.Fatalf("expected advertised cube to adopt object id 3, got %d", got)
		}

		object, ok := harness.registry.Object(3)
		if !ok || object.(*LightCube) != cube {
			t.Fatalf("expected object lookup to resolve the same cube entity")
		}
	})
}

func TestCubeConnectionLostDisconnectsConnectedCubes(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnConnectionStateChanged(1, "aa:bb", true)
		harness.registry.OnCubeConnectionLost()
	})

	harness.do(func() {
		object, _ := harness.registry.Object(1)
		if object.(*LightCube).IsConnected() {
			t.Fatalf("expected cube to be disconnected after connection loss")
		}
	})

	if got := harness.countKind(KindObjectConnectionChanged); got != 2 {
		t.Fatalf("expected connect then disconnect events, got %d", got)
	}
}

func TestFaceIDChangeRekeysEntryInPlace(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	var held *Face
	harness.do(func() {
		harness.registry.OnFaceObserved(events.NewFaceObservedEvent(events.FaceObservation{
			FaceID: 5,
			Name:   "Alice",
		}))
		held, _ = harness.registry.Face(5)
	})

	harness.do(func() {
		harness.registry.OnFaceIDChanged(5, 9)
	})

	harness.do(func() {
		if _, ok := harness.registry.Face(5); ok {
			t.Fatalf("expected lookup by the old face id to fail")
		}

		face, ok := harness.registry.Face(9)
		if !ok {
			t.Fatalf("expected lookup by the new face id to succeed")
		}
		if face != held {
			t.Fatalf("expected the re-keyed entry to be the same entity")
		}
		if got := held.ID(); got != 9 {
			t.Fatalf("expected held reference to report the new id, got %d", got)
		}
		if got := held.Name(); got != "Alice" {
			t.Fatalf("expected held reference to keep its state, got name %q", got)
		}
	})

	if got := harness.countKind(KindFaceReidentified); got != 1 {
		t.Fatalf("expected one reidentified event, got %d", got)
	}
}

func TestFaceIDChangeForUnknownFaceCreatesPlaceholder(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnFaceIDChanged(5, 9)
	})

	harness.do(func() {
		if _, ok := harness.registry.Face(9); !ok {
			t.Fatalf("expected placeholder face under the new id")
		}
	})
}

func TestFaceObservationRefreshesVisionData(t *testing.T) {
	harness := newRegistryHarness(time.Hour)

	harness.do(func() {
		harness.registry.OnFaceObserved(events.NewFaceObservedEvent(events.FaceObservation{
			FaceID:     5,
			Expression: events.FaceExpressionHappiness,
			LeftEye:    []events.CladPoint{{X: 1, Y: 2}},
		}))
	})

	harness.do(func() {
		face, _ := harness.registry.Face(5)
		if got := face.Expression(); got != events.FaceExpressionHappiness {
			t.Fatalf("expected recorded expression, got %v", got)
		}
		if len(face.LeftEye()) != 1 {
			t.Fatalf("expected landmark points to be recorded")
		}
	})
}

func TestCloseStopsPendingDebounceTimers(t *testing.T) {
	harness := newRegistryHarness(50 * time.Millisecond)

	harness.do(func() {
		harness.registry.OnObjectObserved(observedEvent(1, events.ObjectTypeLightCube, 100))
		harness.registry.Close()
	})

	time.Sleep(300 * time.Millisecond)

	if got := harness.countKind(KindObjectDisappeared); got != 0 {
		t.Fatalf("expected no disappearance after close, got %d", got)
	}
}
