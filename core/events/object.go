package events

const (
	// KindObjectAvailable identifies a connectable cube advertising itself.
	KindObjectAvailable Kind = "object.available"
	// KindObjectConnectionState identifies a cube connection state change.
	KindObjectConnectionState Kind = "object.connection_state"
	// KindObjectMoved identifies a cube reporting accelerometer movement.
	KindObjectMoved Kind = "object.moved"
	// KindObjectStoppedMoving identifies a cube reporting movement stopped.
	KindObjectStoppedMoving Kind = "object.stopped_moving"
	// KindObjectUpAxisChanged identifies a cube reporting a new top face.
	KindObjectUpAxisChanged Kind = "object.up_axis_changed"
	// KindObjectTapped identifies a physical tap on a cube.
	KindObjectTapped Kind = "object.tapped"
	// KindObjectObserved identifies the robot seeing an object.
	KindObjectObserved Kind = "object.observed"
	// KindCubeConnectionLost identifies the cube radio link dropping.
	KindCubeConnectionLost Kind = "object.cube_connection_lost"
	// KindCubeBattery identifies a connected cube's battery reading.
	KindCubeBattery Kind = "object.cube_battery"
)

// ObjectAvailableEvent announces a cube that can be connected to.
type ObjectAvailableEvent struct {
	Base
	FactoryID string
}

// NewObjectAvailableEvent creates an object available event.
func NewObjectAvailableEvent(factoryID string) ObjectAvailableEvent {
	return ObjectAvailableEvent{Base: NewBase(KindObjectAvailable), FactoryID: factoryID}
}

// ObjectConnectionStateEvent reports a cube connecting or disconnecting.
type ObjectConnectionStateEvent struct {
	Base
	ObjectID   uint32
	FactoryID  string
	ObjectType ObjectType
	Connected  bool
}

// NewObjectConnectionStateEvent creates an object connection state event.
func NewObjectConnectionStateEvent(objectID uint32, factoryID string, objectType ObjectType, connected bool) ObjectConnectionStateEvent {
	return ObjectConnectionStateEvent{
		Base:       NewBase(KindObjectConnectionState),
		ObjectID:   objectID,
		FactoryID:  factoryID,
		ObjectType: objectType,
		Connected:  connected,
	}
}

// ObjectMovedEvent reports a cube starting to move.
type ObjectMovedEvent struct {
	Base
	ObjectID       uint32
	RobotTimestamp uint32
}

// NewObjectMovedEvent creates an object moved event.
func NewObjectMovedEvent(objectID, robotTimestamp uint32) ObjectMovedEvent {
	return ObjectMovedEvent{Base: NewBase(KindObjectMoved), ObjectID: objectID, RobotTimestamp: robotTimestamp}
}

// ObjectStoppedMovingEvent reports a cube coming to rest.
type ObjectStoppedMovingEvent struct {
	Base
	ObjectID       uint32
	RobotTimestamp uint32
}

// NewObjectStoppedMovingEvent creates an object stopped moving event.
func NewObjectStoppedMovingEvent(objectID, robotTimestamp uint32) ObjectStoppedMovingEvent {
	return ObjectStoppedMovingEvent{Base: NewBase(KindObjectStoppedMoving), ObjectID: objectID, RobotTimestamp: robotTimestamp}
}

// ObjectUpAxisChangedEvent reports which cube face now points up.
type ObjectUpAxisChangedEvent struct {
	Base
	ObjectID       uint32
	UpAxis         UpAxis
	RobotTimestamp uint32
}

// NewObjectUpAxisChangedEvent creates an up axis changed event.
func NewObjectUpAxisChangedEvent(objectID uint32, upAxis UpAxis, robotTimestamp uint32) ObjectUpAxisChangedEvent {
	return ObjectUpAxisChangedEvent{
		Base:           NewBase(KindObjectUpAxisChanged),
		ObjectID:       objectID,
		UpAxis:         upAxis,
		RobotTimestamp: robotTimestamp,
	}
}

// ObjectTappedEvent reports a physical tap on a cube.
type ObjectTappedEvent struct {
	Base
	ObjectID       uint32
	RobotTimestamp uint32
}

// NewObjectTappedEvent creates an object tapped event.
func NewObjectTappedEvent(objectID, robotTimestamp uint32) ObjectTappedEvent {
	return ObjectTappedEvent{Base: NewBase(KindObjectTapped), ObjectID: objectID, RobotTimestamp: robotTimestamp}
}

// ObjectObservedEvent reports the robot seeing an object in frame.
type ObjectObservedEvent struct {
	Base
	ObjectID           uint32
	ObjectType         ObjectType
	Pose               Pose
	ImageRect          ImageRect
	TopFaceOrientation float32
	IsActive           bool
	RobotTimestamp     uint32
	CustomTypeTag      uint32
}

// NewObjectObservedEvent creates an object observed event.
func NewObjectObservedEvent(observation ObjectObservation) ObjectObservedEvent {
	return ObjectObservedEvent{
		Base:               NewBase(KindObjectObserved),
		ObjectID:           observation.ObjectID,
		ObjectType:         observation.Type,
		Pose:               observation.Pose,
		ImageRect:          observation.ImageRect,
		TopFaceOrientation: observation.TopFaceOrientation,
		IsActive:           observation.IsActive,
		RobotTimestamp:     observation.RobotTimestamp,
		CustomTypeTag:      observation.CustomObjectTypeTag,
	}
}

// CubeConnectionLostEvent reports the cube radio link dropping unexpectedly.
type CubeConnectionLostEvent struct{ Base }

// NewCubeConnectionLostEvent creates a cube connection lost event.
func NewCubeConnectionLostEvent() CubeConnectionLostEvent {
	return CubeConnectionLostEvent{Base: NewBase(KindCubeConnectionLost)}
}

// CubeBatteryEvent reports a connected cube's battery level.
type CubeBatteryEvent struct {
	Base
	FactoryID            string
	Level                CubeBatteryLevel
	BatteryVolts         float32
	TimeSinceLastReading float32
}

// NewCubeBatteryEvent creates a cube battery event.
func NewCubeBatteryEvent(payload CubeBatteryPayload) CubeBatteryEvent {
	return CubeBatteryEvent{
		Base:                 NewBase(KindCubeBattery),
		FactoryID:            payload.FactoryID,
		Level:                payload.Level,
		BatteryVolts:         payload.BatteryVolts,
		TimeSinceLastReading: payload.TimeSinceLastReading,
	}
}
