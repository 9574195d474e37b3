package vector

import (
	"sync"
	"time"

	"github.com/codaris/vector-core/core/events"
)

// ActionKind names a long-running robot activity whose completion is
// inferred from the streamed status flags rather than an explicit done
// message.
type ActionKind int

const (
	// ActionAnimation tracks a playing animation.
	ActionAnimation ActionKind = iota
	// ActionMotorMotion tracks any commanded motor movement.
	ActionMotorMotion
	// ActionDriving tracks the treads turning.
	ActionDriving
	// ActionPathing tracks a planned path being driven.
	ActionPathing
	// ActionPickingOrPlacing tracks a cube dock or place maneuver.
	ActionPickingOrPlacing
)

func (k ActionKind) String() string {
	switch k {
	case ActionAnimation:
		return "animation"
	case ActionMotorMotion:
		return "motor_motion"
	case ActionDriving:
		return "driving"
	case ActionPathing:
		return "pathing"
	case ActionPickingOrPlacing:
		return "picking_or_placing"
	default:
		return "unknown"
	}
}

// isActive reads the status flag that reports this action kind in progress.
func (k ActionKind) isActive(status events.RobotStatus) bool {
	switch k {
	case ActionAnimation:
		return status.IsAnimating()
	case ActionMotorMotion:
		return status.AreMotorsMoving()
	case ActionDriving:
		return status.AreWheelsMoving()
	case ActionPathing:
		return status.IsPathing()
	case ActionPickingOrPlacing:
		return status.IsPickingOrPlacing()
	default:
		return false
	}
}

// ActionOutcome is how a tracked action finished.
type ActionOutcome int

const (
	// ActionPending means the handle has not resolved yet.
	ActionPending ActionOutcome = iota
	// ActionCompleted means the status stream reported the action inactive
	// after the quiet interval.
	ActionCompleted
	// ActionSuperseded means a newer action of the same kind took over
	// tracking. Superseding is a success, not a failure, of the old action.
	ActionSuperseded
	// ActionCancelled means the runtime shut down with the handle pending.
	ActionCancelled
)

// ActionHandle is a one-shot completion handle for a tracked action. At
// most one handle per action kind is pending at a time.
type ActionHandle struct {
	kind    ActionKind
	beganAt time.Time

	resolveOnce sync.Once
	done        chan struct{}
	outcome     ActionOutcome
}

// Kind is the action kind this handle tracks.
func (h *ActionHandle) Kind() ActionKind { return h.kind }

// Done is closed when the handle resolves.
func (h *ActionHandle) Done() <-chan struct{} { return h.done }

// Outcome is how the action finished. It reads ActionPending until Done
// is closed.
func (h *ActionHandle) Outcome() ActionOutcome {
	select {
	case <-h.done:
		return h.outcome
	default:
		return ActionPending
	}
}

func (h *ActionHandle) resolve(outcome ActionOutcome) {
	h.resolveOnce.Do(func() {
		h.outcome = outcome
		close(h.done)
	})
}

// DefaultActionQuietInterval is the minimum time between beginning an
// action and trusting an inactive status flag. A status snapshot emitted
// just after begin can still reflect the previous action's trailing
// activity; the quiet interval guards against resolving on that tail.
const DefaultActionQuietInterval = 250 * time.Millisecond

// actionCorrelator resolves action handles by watching the streamed robot
// status flags. Status observations arrive on the runtime's event loop;
// BeginAction may be called from any goroutine.
type actionCorrelator struct {
	mu            sync.Mutex
	pending       map[ActionKind]*ActionHandle
	quietInterval time.Duration
}

func newActionCorrelator(quietInterval time.Duration) *actionCorrelator {
	if quietInterval <= 0 {
		quietInterval = DefaultActionQuietInterval
	}

	return &actionCorrelator{
		pending:       map[ActionKind]*ActionHandle{},
		quietInterval: quietInterval,
	}
}

// begin installs a new handle for the kind. A handle already pending for
// the same kind resolves superseded first.
func (c *actionCorrelator) begin(kind ActionKind, now time.Time) *ActionHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if previous, ok := c.pending[kind]; ok {
		previous.resolve(ActionSuperseded)
	}

	handle := &ActionHandle{
		kind:    kind,
		beganAt: now,
		done:    make(chan struct{}),
	}
	c.pending[kind] = handle
	return handle
}

// observe feeds one status snapshot. A pending handle resolves completed
// when its kind reads inactive and the quiet interval has elapsed since
// begin.
func (c *actionCorrelator) observe(status events.RobotStatus, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for kind, handle := range c.pending {
		if kind.isActive(status) {
			continue
		}
		if now.Sub(handle.beganAt) < c.quietInterval {
			continue
		}

		handle.resolve(ActionCompleted)
		delete(c.pending, kind)
	}
}

// cancelAll resolves every pending handle cancelled. Used at teardown.
func (c *actionCorrelator) cancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for kind, handle := range c.pending {
		handle.resolve(ActionCancelled)
		delete(c.pending, kind)
	}
}
