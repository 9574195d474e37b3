package vector

import (
	"time"

	"github.com/codaris/vector-core/core/events"
	"github.com/codaris/vector-core/core/objects"
)

type ClientOption func(*Client)

// WithEnvelopeSource wires the stream the runtime reads envelopes from.
// Without a source the runtime only processes envelopes fed through
// [Client.Handle].
func WithEnvelopeSource(source EnvelopeSource) ClientOption {
	return func(c *Client) { c.source = source }
}

// WithDisappearDelay overrides how long a world object stays visible after
// its last observation. Non-positive values keep the default.
func WithDisappearDelay(delay time.Duration) ClientOption {
	return func(c *Client) { c.disappearDelay = delay }
}

// WithActionQuietInterval overrides the minimum time between beginning an
// action and trusting an inactive status flag. Non-positive values keep
// the default.
func WithActionQuietInterval(interval time.Duration) ClientOption {
	return func(c *Client) { c.quietInterval = interval }
}

// WithAnimationLoader wires the collaborator that lists the robot's
// animations and animation triggers. The list is fetched once and cached
// until the client closes.
func WithAnimationLoader(loader AnimationLoader) ClientOption {
	return func(c *Client) { c.animations = newAnimationCache(loader) }
}

type RunOptions struct {
	onObjectAppeared       func(object objects.WorldObject)
	onObjectDisappeared    func(object objects.WorldObject)
	onObjectTapped         func(cube *objects.LightCube)
	onObjectFinishedMoving func(cube *objects.LightCube, duration time.Duration)
	onCubeConnection       func(cube *objects.LightCube, connected bool)
	onFaceObserved         func(face *objects.Face)
	onWakeWordBegin        func()
	onWakeWordEnd          func(intentHeard bool, intentJSON string)
	onRobotState           func(state events.RobotStateEvent)
}

type RunOption func(*RunOptions)

// WithObjectAppearedCallback registers a callback for a world object
// becoming visible.
func WithObjectAppearedCallback(callback func(object objects.WorldObject)) RunOption {
	return func(o *RunOptions) {
		o.onObjectAppeared = callback
	}
}

// WithObjectDisappearedCallback registers a callback for a world object
// going stale after its disappearance debounce elapses.
func WithObjectDisappearedCallback(callback func(object objects.WorldObject)) RunOption {
	return func(o *RunOptions) {
		o.onObjectDisappeared = callback
	}
}

// WithObjectTappedCallback registers a callback for cube taps.
func WithObjectTappedCallback(callback func(cube *objects.LightCube)) RunOption {
	return func(o *RunOptions) {
		o.onObjectTapped = callback
	}
}

// WithObjectFinishedMovingCallback registers a callback for a cube coming
// to rest, with the robot-clock move duration.
func WithObjectFinishedMovingCallback(callback func(cube *objects.LightCube, duration time.Duration)) RunOption {
	return func(o *RunOptions) {
		o.onObjectFinishedMoving = callback
	}
}

// WithCubeConnectionCallback registers a callback for cube radio link
// transitions.
func WithCubeConnectionCallback(callback func(cube *objects.LightCube, connected bool)) RunOption {
	return func(o *RunOptions) {
		o.onCubeConnection = callback
	}
}

// WithFaceObservedCallback registers a callback for face sightings. The
// same face entity is passed for every sighting of that face, including
// across face id changes.
func WithFaceObservedCallback(callback func(face *objects.Face)) RunOption {
	return func(o *RunOptions) {
		o.onFaceObserved = callback
	}
}

// WithWakeWordCallback registers callbacks for the wake word being heard
// and for the intent that followed it. Either callback may be nil.
func WithWakeWordCallback(onBegin func(), onEnd func(intentHeard bool, intentJSON string)) RunOption {
	return func(o *RunOptions) {
		o.onWakeWordBegin = onBegin
		o.onWakeWordEnd = onEnd
	}
}

// WithRobotStateCallback registers a callback for every robot state
// snapshot. Snapshots arrive several times per second; the callback runs
// on the event loop and should not block.
func WithRobotStateCallback(callback func(state events.RobotStateEvent)) RunOption {
	return func(o *RunOptions) {
		o.onRobotState = callback
	}
}
