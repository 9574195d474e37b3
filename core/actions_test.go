package vector

import (
	"testing"
	"time"

	"github.com/codaris/vector-core/core/events"
)

const testQuietInterval = 100 * time.Millisecond

func statusWith(active bool, kind ActionKind) events.RobotStatus {
	if !active {
		return 0
	}

	// Build a status word whose flag for the kind reads active.
	for bit := 0; bit < 32; bit++ {
		status := events.RobotStatus(1 << bit)
		if kind.isActive(status) {
			return status
		}
	}
	return 0
}

func TestInactiveStatusBeforeQuietIntervalDoesNotResolve(t *testing.T) {
	correlator := newActionCorrelator(testQuietInterval)
	begin := time.Now()

	handle := correlator.begin(ActionAnimation, begin)

	correlator.observe(statusWith(true, ActionAnimation), begin.Add(10*time.Millisecond))
	correlator.observe(statusWith(false, ActionAnimation), begin.Add(50*time.Millisecond))

	if handle.Outcome() != ActionPending {
		t.Fatalf("expected handle to stay pending before the quiet interval, got %v", handle.Outcome())
	}

	correlator.observe(statusWith(false, ActionAnimation), begin.Add(260*time.Millisecond))

	select {
	case <-handle.Done():
	default:
		t.Fatalf("expected handle to resolve after the quiet interval")
	}
	if got := handle.Outcome(); got != ActionCompleted {
		t.Fatalf("expected outcome %v, got %v", ActionCompleted, got)
	}
}

func TestActiveStatusNeverResolves(t *testing.T) {
	correlator := newActionCorrelator(testQuietInterval)
	begin := time.Now()

	handle := correlator.begin(ActionDriving, begin)

	for elapsed := time.Duration(0); elapsed < time.Second; elapsed += 100 * time.Millisecond {
		correlator.observe(statusWith(true, ActionDriving), begin.Add(elapsed))
	}

	if handle.Outcome() != ActionPending {
		t.Fatalf("expected handle to stay pending while the action reads active, got %v", handle.Outcome())
	}
}

func TestSecondBeginSupersedesFirstHandle(t *testing.T) {
	correlator := newActionCorrelator(testQuietInterval)
	begin := time.Now()

	first := correlator.begin(ActionAnimation, begin)
	second := correlator.begin(ActionAnimation, begin.Add(20*time.Millisecond))

	select {
	case <-first.Done():
	default:
		t.Fatalf("expected the first handle to resolve at the moment of the second begin")
	}
	if got := first.Outcome(); got != ActionSuperseded {
		t.Fatalf("expected first outcome %v, got %v", ActionSuperseded, got)
	}
	if second.Outcome() != ActionPending {
		t.Fatalf("expected the second handle to still be pending, got %v", second.Outcome())
	}
}

func TestIndependentKindsResolveIndependently(t *testing.T) {
	correlator := newActionCorrelator(testQuietInterval)
	begin := time.Now()

	animation := correlator.begin(ActionAnimation, begin)
	driving := correlator.begin(ActionDriving, begin)

	// Driving still reads active while the animation flag has gone quiet.
	correlator.observe(statusWith(true, ActionDriving), begin.Add(200*time.Millisecond))

	if animation.Outcome() != ActionCompleted {
		t.Fatalf("expected animation handle to complete, got %v", animation.Outcome())
	}
	if driving.Outcome() != ActionPending {
		t.Fatalf("expected driving handle to stay pending, got %v", driving.Outcome())
	}
}

func TestCancelAllResolvesPendingHandlesCancelled(t *testing.T) {
	correlator := newActionCorrelator(testQuietInterval)
	begin := time.Now()

	animation := correlator.begin(ActionAnimation, begin)
	pathing := correlator.begin(ActionPathing, begin)

	correlator.cancelAll()

	for _, handle := range []*ActionHandle{animation, pathing} {
		select {
		case <-handle.Done():
		default:
			t.Fatalf("expected %v handle to resolve on cancelAll", handle.Kind())
		}
		if got := handle.Outcome(); got != ActionCancelled {
			t.Fatalf("expected outcome %v for %v, got %v", ActionCancelled, handle.Kind(), got)
		}
	}
}

func TestResolvedHandleIgnoresLaterObservations(t *testing.T) {
	correlator := newActionCorrelator(testQuietInterval)
	begin := time.Now()

	handle := correlator.begin(ActionAnimation, begin)
	correlator.observe(statusWith(false, ActionAnimation), begin.Add(200*time.Millisecond))

	if handle.Outcome() != ActionCompleted {
		t.Fatalf("expected handle to complete, got %v", handle.Outcome())
	}

	correlator.cancelAll()
	if got := handle.Outcome(); got != ActionCompleted {
		t.Fatalf("expected completed outcome to stick, got %v", got)
	}
}

func TestActionKindStatusFlagMapping(t *testing.T) {
	testCases := []struct {
		kind   ActionKind
		status events.RobotStatus
	}{
		{kind: ActionAnimation, status: statusWith(true, ActionAnimation)},
		{kind: ActionMotorMotion, status: statusWith(true, ActionMotorMotion)},
		{kind: ActionDriving, status: statusWith(true, ActionDriving)},
		{kind: ActionPathing, status: statusWith(true, ActionPathing)},
		{kind: ActionPickingOrPlacing, status: statusWith(true, ActionPickingOrPlacing)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.kind.String(), func(t *testing.T) {
			if !testCase.kind.isActive(testCase.status) {
				t.Fatalf("expected %v to read active from its own flag", testCase.kind)
			}
			if testCase.kind.isActive(0) {
				t.Fatalf("expected %v to read inactive from an empty status", testCase.kind)
			}
		})
	}
}
