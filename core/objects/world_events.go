package objects

import (
	"time"

	"github.com/codaris/vector-core/core/events"
)

const (
	// KindObjectAppeared identifies an entity becoming visible.
	KindObjectAppeared events.Kind = "world.object_appeared"
	// KindObjectDisappeared identifies an entity going stale after the
	// disappearance debounce elapsed with no new observation.
	KindObjectDisappeared events.Kind = "world.object_disappeared"
	// KindObjectFinishedMoving identifies a cube coming to rest, with the
	// measured move duration.
	KindObjectFinishedMoving events.Kind = "world.object_finished_moving"
	// KindObjectTapped identifies a tap bound to its resolved cube.
	KindObjectTapped events.Kind = "world.object_tapped"
	// KindObjectUpAxisChanged identifies an up-axis change bound to its
	// resolved cube.
	KindObjectUpAxisChanged events.Kind = "world.object_up_axis_changed"
	// KindObjectConnectionChanged identifies a cube connection change bound
	// to its resolved cube.
	KindObjectConnectionChanged events.Kind = "world.object_connection_changed"
	// KindFaceReidentified identifies a tracked face re-keyed under a new id.
	KindFaceReidentified events.Kind = "world.face_reidentified"
)

// ObjectAppearedEvent carries an entity that just became visible.
type ObjectAppearedEvent struct {
	events.Base
	Object WorldObject
}

// NewObjectAppearedEvent creates an object appeared event.
func NewObjectAppearedEvent(object WorldObject) ObjectAppearedEvent {
	return ObjectAppearedEvent{Base: events.NewBase(KindObjectAppeared), Object: object}
}

// ObjectDisappearedEvent carries an entity that just went stale.
type ObjectDisappearedEvent struct {
	events.Base
	Object WorldObject
}

// NewObjectDisappearedEvent creates an object disappeared event.
func NewObjectDisappearedEvent(object WorldObject) ObjectDisappearedEvent {
	return ObjectDisappearedEvent{Base: events.NewBase(KindObjectDisappeared), Object: object}
}

// ObjectFinishedMovingEvent carries a cube that came to rest and how long
// it moved, measured on the robot clock.
type ObjectFinishedMovingEvent struct {
	events.Base
	Cube     *LightCube
	Duration time.Duration
}

// NewObjectFinishedMovingEvent creates an object finished moving event.
func NewObjectFinishedMovingEvent(cube *LightCube, duration time.Duration) ObjectFinishedMovingEvent {
	return ObjectFinishedMovingEvent{Base: events.NewBase(KindObjectFinishedMoving), Cube: cube, Duration: duration}
}

// ObjectTappedEvent carries a tap bound to its resolved cube.
type ObjectTappedEvent struct {
	events.Base
	Cube           *LightCube
	RobotTimestamp uint32
}

// NewObjectTappedEvent creates an object tapped event.
func NewObjectTappedEvent(cube *LightCube, robotTimestamp uint32) ObjectTappedEvent {
	return ObjectTappedEvent{Base: events.NewBase(KindObjectTapped), Cube: cube, RobotTimestamp: robotTimestamp}
}

// ObjectUpAxisChangedEvent carries an up-axis change bound to its cube.
type ObjectUpAxisChangedEvent struct {
	events.Base
	Cube   *LightCube
	UpAxis events.UpAxis
}

// NewObjectUpAxisChangedEvent creates an up axis changed event.
func NewObjectUpAxisChangedEvent(cube *LightCube, upAxis events.UpAxis) ObjectUpAxisChangedEvent {
	return ObjectUpAxisChangedEvent{Base: events.NewBase(KindObjectUpAxisChanged), Cube: cube, UpAxis: upAxis}
}

// ObjectConnectionChangedEvent carries a connection change bound to its cube.
type ObjectConnectionChangedEvent struct {
	events.Base
	Cube      *LightCube
	Connected bool
}

// NewObjectConnectionChangedEvent creates an object connection changed event.
func NewObjectConnectionChangedEvent(cube *LightCube, connected bool) ObjectConnectionChangedEvent {
	return ObjectConnectionChangedEvent{Base: events.NewBase(KindObjectConnectionChanged), Cube: cube, Connected: connected}
}

// FaceReidentifiedEvent carries a face that was re-keyed under a new id.
// The Face reference is the same entity previously addressable by OldID.
type FaceReidentifiedEvent struct {
	events.Base
	Face  *Face
	OldID int32
	NewID int32
}

// NewFaceReidentifiedEvent creates a face reidentified event.
func NewFaceReidentifiedEvent(face *Face, oldID, newID int32) FaceReidentifiedEvent {
	return FaceReidentifiedEvent{Base: events.NewBase(KindFaceReidentified), Face: face, OldID: oldID, NewID: newID}
}
