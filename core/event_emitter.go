package vector

import (
	"github.com/codaris/vector-core/core/events"
	"github.com/codaris/vector-core/core/objects"
)

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

// newCallbackEventEmitter bridges dispatcher delivery onto the callbacks
// registered through Run options.
func newCallbackEventEmitter(c *Client, opts RunOptions) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case objects.ObjectAppearedEvent:
			if opts.onObjectAppeared != nil {
				opts.onObjectAppeared(typedEvent.Object)
			}
		case objects.ObjectDisappearedEvent:
			if opts.onObjectDisappeared != nil {
				opts.onObjectDisappeared(typedEvent.Object)
			}
		case objects.ObjectTappedEvent:
			if opts.onObjectTapped != nil {
				opts.onObjectTapped(typedEvent.Cube)
			}
		case objects.ObjectFinishedMovingEvent:
			if opts.onObjectFinishedMoving != nil {
				opts.onObjectFinishedMoving(typedEvent.Cube, typedEvent.Duration)
			}
		case objects.ObjectConnectionChangedEvent:
			if opts.onCubeConnection != nil {
				opts.onCubeConnection(typedEvent.Cube, typedEvent.Connected)
			}
		case events.FaceObservedEvent:
			if opts.onFaceObserved != nil {
				if face, ok := c.world.Face(typedEvent.FaceID); ok {
					opts.onFaceObserved(face)
				}
			}
		case events.WakeWordBeginEvent:
			if opts.onWakeWordBegin != nil {
				opts.onWakeWordBegin()
			}
		case events.WakeWordEndEvent:
			if opts.onWakeWordEnd != nil {
				opts.onWakeWordEnd(typedEvent.IntentHeard, typedEvent.IntentJSON)
			}
		case events.RobotStateEvent:
			if opts.onRobotState != nil {
				opts.onRobotState(typedEvent)
			}
		}
	}
}
