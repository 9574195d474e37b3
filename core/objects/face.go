package objects

import "github.com/codaris/vector-core/core/events"

// Face is a person's face tracked by the robot's vision system. Unlike the
// other entities its id can change over its lifetime: vision hands out a
// tentative id for a new track and later folds it into an enrolled face's
// id, announcing the change explicitly. The registry re-keys the entity in
// place, so a held *Face stays valid across the change.
type Face struct {
	objectState
	id int32

	name             string
	expression       events.FaceExpression
	expressionValues []uint32
	leftEye          []events.CladPoint
	rightEye         []events.CladPoint
	nose             []events.CladPoint
	mouth            []events.CladPoint
}

// ID is the current face id. It changes exactly when a face id change
// event names this face.
func (f *Face) ID() int32 { return f.id }

// Name is the enrolled name, empty for unenrolled faces.
func (f *Face) Name() string { return f.name }

// Expression is the last recognized expression.
func (f *Face) Expression() events.FaceExpression { return f.expression }

// ExpressionValues are the per-expression confidence scores from the last
// observation, when expression estimation was enabled.
func (f *Face) ExpressionValues() []uint32 { return f.expressionValues }

// LeftEye returns the left-eye landmark points from the last observation.
func (f *Face) LeftEye() []events.CladPoint { return f.leftEye }

// RightEye returns the right-eye landmark points from the last observation.
func (f *Face) RightEye() []events.CladPoint { return f.rightEye }

// Nose returns the nose landmark points from the last observation.
func (f *Face) Nose() []events.CladPoint { return f.nose }

// Mouth returns the mouth landmark points from the last observation.
func (f *Face) Mouth() []events.CladPoint { return f.mouth }

func (f *Face) ObjectType() events.ObjectType { return events.ObjectTypeFace }

func (f *Face) state() *objectState { return &f.objectState }

func (f *Face) recordFaceObservation(observation events.FaceObservedEvent) {
	f.recordObservation(observation.Pose, observation.RobotTimestamp)
	if observation.Name != "" {
		f.name = observation.Name
	}
	f.expression = observation.Expression
	f.expressionValues = observation.ExpressionValues
	f.leftEye = observation.LeftEye
	f.rightEye = observation.RightEye
	f.nose = observation.Nose
	f.mouth = observation.Mouth
}
