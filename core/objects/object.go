package objects

import (
	"time"

	"github.com/codaris/vector-core/core/events"
)

// WorldObject is any robot-recognized physical entity tracked locally:
// a light cube, the charger, a custom object, or a face. Entities are
// created lazily on first sighting and never destroyed; one that stops
// being observed goes stale (not visible) but stays addressable.
type WorldObject interface {
	// ObjectType classifies the entity.
	ObjectType() events.ObjectType
	// IsVisible reports whether the entity was observed within the
	// disappearance debounce window.
	IsVisible() bool
	// LastPose is the pose from the most recent observation.
	LastPose() events.Pose
	// LastObservedAt is the local wall-clock time of the last observation.
	LastObservedAt() time.Time
	// LastRobotTimestamp is the robot-clock time of the last observation,
	// in milliseconds.
	LastRobotTimestamp() uint32

	// state keeps the implementing set closed to this package.
	state() *objectState
}

// objectState carries the observation bookkeeping shared by every entity.
// It is mutated only on the registry owner's loop.
type objectState struct {
	visible        bool
	pose           events.Pose
	observedAt     time.Time
	robotTimestamp uint32

	// disappearGeneration tags the currently armed debounce timer; a timer
	// whose generation no longer matches fires into a no-op.
	disappearGeneration uint64
	disappearTimer      *time.Timer
}

func (s *objectState) IsVisible() bool            { return s.visible }
func (s *objectState) LastPose() events.Pose      { return s.pose }
func (s *objectState) LastObservedAt() time.Time  { return s.observedAt }
func (s *objectState) LastRobotTimestamp() uint32 { return s.robotTimestamp }

func (s *objectState) recordObservation(pose events.Pose, robotTimestamp uint32) {
	s.pose = pose
	s.observedAt = time.Now()
	s.robotTimestamp = robotTimestamp
}

// Charger is the robot's home charger.
type Charger struct {
	objectState
	id uint32
}

// ID is the robot-assigned object id, stable for the life of the process.
func (c *Charger) ID() uint32 { return c.id }

func (c *Charger) ObjectType() events.ObjectType { return events.ObjectTypeCharger }

func (c *Charger) state() *objectState { return &c.objectState }

// CustomObject is a user-defined marker object declared to the robot.
type CustomObject struct {
	objectState
	id      uint32
	typeTag uint32
}

// ID is the robot-assigned object id, stable for the life of the process.
func (o *CustomObject) ID() uint32 { return o.id }

// TypeTag is the custom object definition slot this object was declared as.
func (o *CustomObject) TypeTag() uint32 { return o.typeTag }

func (o *CustomObject) ObjectType() events.ObjectType { return events.ObjectTypeCustomObject }

func (o *CustomObject) state() *objectState { return &o.objectState }
