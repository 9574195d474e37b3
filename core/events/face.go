package events

const (
	// KindFaceObserved identifies the robot seeing a face.
	KindFaceObserved Kind = "face.observed"
	// KindFaceIDChanged identifies vision re-identifying a tracked face.
	KindFaceIDChanged Kind = "face.id_changed"
)

// FaceObservedEvent reports the robot seeing a face, with the identity and
// expression data vision produced for it. Name is empty for unenrolled
// faces; landmark sets may be empty when expression estimation is off.
type FaceObservedEvent struct {
	Base
	FaceID           int32
	Name             string
	Pose             Pose
	ImageRect        ImageRect
	Expression       FaceExpression
	ExpressionValues []uint32
	LeftEye          []CladPoint
	RightEye         []CladPoint
	Nose             []CladPoint
	Mouth            []CladPoint
	RobotTimestamp   uint32
}

// NewFaceObservedEvent creates a face observed event.
func NewFaceObservedEvent(observation FaceObservation) FaceObservedEvent {
	return FaceObservedEvent{
		Base:             NewBase(KindFaceObserved),
		FaceID:           observation.FaceID,
		Name:             observation.Name,
		Pose:             observation.Pose,
		ImageRect:        observation.ImageRect,
		Expression:       observation.Expression,
		ExpressionValues: observation.ExpressionValues,
		LeftEye:          observation.LeftEye,
		RightEye:         observation.RightEye,
		Nose:             observation.Nose,
		Mouth:            observation.Mouth,
		RobotTimestamp:   observation.RobotTimestamp,
	}
}

// FaceIDChangedEvent reports a tracked face being assigned a new id, either
// because a tentative track was matched to an enrolled face or vice versa.
type FaceIDChangedEvent struct {
	Base
	OldID          int32
	NewID          int32
	RobotTimestamp uint32
}

// NewFaceIDChangedEvent creates a face id changed event.
func NewFaceIDChangedEvent(oldID, newID int32, robotTimestamp uint32) FaceIDChangedEvent {
	return FaceIDChangedEvent{Base: NewBase(KindFaceIDChanged), OldID: oldID, NewID: newID, RobotTimestamp: robotTimestamp}
}
