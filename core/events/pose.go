package events

import "math"

// Pose is a position and rotation in the robot's coordinate frame. Poses are
// only comparable while they share an origin; the robot assigns a new origin
// id whenever it is delocalized (picked up, rebooted).
type Pose struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`

	Q0 float32 `json:"q0"`
	Q1 float32 `json:"q1"`
	Q2 float32 `json:"q2"`
	Q3 float32 `json:"q3"`

	OriginID uint32 `json:"origin_id"`
}

// IsComparableTo reports whether both poses live in the same origin frame.
func (p Pose) IsComparableTo(other Pose) bool {
	return p.OriginID == other.OriginID
}

// DistanceTo returns the straight-line distance to another pose, in mm.
// The result is only meaningful when [Pose.IsComparableTo] holds.
func (p Pose) DistanceTo(other Pose) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	dz := float64(p.Z - other.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// ImageRect is a bounding box in camera image coordinates.
type ImageRect struct {
	XTopLeft float32 `json:"x_top_left"`
	YTopLeft float32 `json:"y_top_left"`
	Width    float32 `json:"width"`
	Height   float32 `json:"height"`
}

// CladPoint is a single 2D landmark point in camera image coordinates.
type CladPoint struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// ObjectType classifies a robot-recognized physical object.
type ObjectType int32

const (
	ObjectTypeUnknown      ObjectType = 0
	ObjectTypeLightCube    ObjectType = 1
	ObjectTypeCharger      ObjectType = 2
	ObjectTypeCustomObject ObjectType = 3

	// ObjectTypeFace never appears on the wire; it classifies locally
	// tracked faces alongside the wire object types.
	ObjectTypeFace ObjectType = 4
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeLightCube:
		return "light_cube"
	case ObjectTypeCharger:
		return "charger"
	case ObjectTypeCustomObject:
		return "custom_object"
	case ObjectTypeFace:
		return "face"
	default:
		return "unknown"
	}
}

// UpAxis names the cube face currently pointing up.
type UpAxis int32

const (
	UpAxisUnknown UpAxis = iota
	UpAxisXNegative
	UpAxisXPositive
	UpAxisYNegative
	UpAxisYPositive
	UpAxisZNegative
	UpAxisZPositive
)

// FaceExpression is the recognized expression on an observed face.
type FaceExpression int32

const (
	FaceExpressionUnknown FaceExpression = iota
	FaceExpressionNeutral
	FaceExpressionHappiness
	FaceExpressionSurprise
	FaceExpressionAnger
	FaceExpressionSadness
)

// RobotStatus is the bit set of live robot state flags streamed with every
// robot state snapshot.
type RobotStatus uint32

const (
	robotStatusIsMoving         RobotStatus = 1 << 0
	robotStatusIsCarryingBlock  RobotStatus = 1 << 1
	robotStatusIsPickingPlacing RobotStatus = 1 << 2
	robotStatusIsPickedUp       RobotStatus = 1 << 3
	robotStatusIsButtonPressed  RobotStatus = 1 << 4
	robotStatusIsFalling        RobotStatus = 1 << 5
	robotStatusIsAnimating      RobotStatus = 1 << 6
	robotStatusIsPathing        RobotStatus = 1 << 7
	robotStatusLiftInPosition   RobotStatus = 1 << 8
	robotStatusHeadInPosition   RobotStatus = 1 << 9
	robotStatusCalmPowerMode    RobotStatus = 1 << 10
	robotStatusIsOnCharger      RobotStatus = 1 << 12
	robotStatusIsCharging       RobotStatus = 1 << 13
	robotStatusCliffDetected    RobotStatus = 1 << 14
	robotStatusWheelsMoving     RobotStatus = 1 << 15
	robotStatusIsBeingHeld      RobotStatus = 1 << 16
)

func (s RobotStatus) has(flag RobotStatus) bool { return s&flag != 0 }

// AreMotorsMoving reports whether any motor is currently in motion.
func (s RobotStatus) AreMotorsMoving() bool { return s.has(robotStatusIsMoving) }

// IsCarryingBlock reports whether a cube sits on the lift.
func (s RobotStatus) IsCarryingBlock() bool { return s.has(robotStatusIsCarryingBlock) }

// IsPickingOrPlacing reports whether a dock/place action is in progress.
func (s RobotStatus) IsPickingOrPlacing() bool { return s.has(robotStatusIsPickingPlacing) }

// IsPickedUp reports whether the robot believes it is off its treads.
func (s RobotStatus) IsPickedUp() bool { return s.has(robotStatusIsPickedUp) }

// IsButtonPressed reports whether the backpack button is held.
func (s RobotStatus) IsButtonPressed() bool { return s.has(robotStatusIsButtonPressed) }

// IsFalling reports whether the robot detects free fall.
func (s RobotStatus) IsFalling() bool { return s.has(robotStatusIsFalling) }

// IsAnimating reports whether an animation is playing.
func (s RobotStatus) IsAnimating() bool { return s.has(robotStatusIsAnimating) }

// IsPathing reports whether the robot is driving a planned path.
func (s RobotStatus) IsPathing() bool { return s.has(robotStatusIsPathing) }

// IsLiftInPosition reports whether the lift reached its commanded height.
func (s RobotStatus) IsLiftInPosition() bool { return s.has(robotStatusLiftInPosition) }

// IsHeadInPosition reports whether the head reached its commanded angle.
func (s RobotStatus) IsHeadInPosition() bool { return s.has(robotStatusHeadInPosition) }

// IsInCalmPowerMode reports whether the robot is in low-power idle.
func (s RobotStatus) IsInCalmPowerMode() bool { return s.has(robotStatusCalmPowerMode) }

// IsOnCharger reports whether the robot is docked on its charger.
func (s RobotStatus) IsOnCharger() bool { return s.has(robotStatusIsOnCharger) }

// IsCharging reports whether the battery is charging.
func (s RobotStatus) IsCharging() bool { return s.has(robotStatusIsCharging) }

// IsCliffDetected reports whether a cliff sensor tripped.
func (s RobotStatus) IsCliffDetected() bool { return s.has(robotStatusCliffDetected) }

// AreWheelsMoving reports whether the treads are turning.
func (s RobotStatus) AreWheelsMoving() bool { return s.has(robotStatusWheelsMoving) }

// IsBeingHeld reports whether the robot detects being held in a hand.
func (s RobotStatus) IsBeingHeld() bool { return s.has(robotStatusIsBeingHeld) }
