package objects

import (
	"time"

	"github.com/codaris/vector-core/core/events"
)

// LightCube is the robot's interactive cube. On top of the shared
// observation state it tracks the radio connection, accelerometer-driven
// movement, the face currently pointing up, and the last tap.
type LightCube struct {
	objectState
	id        uint32
	factoryID string

	connected bool

	moving               bool
	movingStartedAt      time.Time
	movingStartedRobotTS uint32

	upAxis          events.UpAxis
	upAxisChangedAt time.Time

	lastTappedAt      time.Time
	lastTappedRobotTS uint32
}

// ID is the robot-assigned object id, stable for the life of the process.
func (c *LightCube) ID() uint32 { return c.id }

// FactoryID is the cube's permanent hardware identifier. Empty until an
// availability or connection event reports it.
func (c *LightCube) FactoryID() string { return c.factoryID }

// IsConnected reports whether the cube's radio link is up.
func (c *LightCube) IsConnected() bool { return c.connected }

// IsMoving reports whether the cube's accelerometer currently registers
// movement.
func (c *LightCube) IsMoving() bool { return c.moving }

// MovingStartedAt is the local time the current movement began. Zero when
// the cube is not moving.
func (c *LightCube) MovingStartedAt() time.Time { return c.movingStartedAt }

// UpAxis is the cube face last reported pointing up.
func (c *LightCube) UpAxis() events.UpAxis { return c.upAxis }

// UpAxisChangedAt is the local time of the last up-axis report.
func (c *LightCube) UpAxisChangedAt() time.Time { return c.upAxisChangedAt }

// LastTappedAt is the local time of the last tap. Zero when never tapped.
func (c *LightCube) LastTappedAt() time.Time { return c.lastTappedAt }

func (c *LightCube) ObjectType() events.ObjectType { return events.ObjectTypeLightCube }

func (c *LightCube) state() *objectState { return &c.objectState }

// startMoving records the transition into movement. A repeat report while
// already moving keeps the original start time.
func (c *LightCube) startMoving(robotTimestamp uint32) bool {
	if c.moving {
		return false
	}

	c.moving = true
	c.movingStartedAt = time.Now()
	c.movingStartedRobotTS = robotTimestamp
	return true
}

// stopMoving records the transition out of movement and returns the robot-
// clock move duration. A stop without a prior start yields zero duration
// and changes nothing.
func (c *LightCube) stopMoving(robotTimestamp uint32) (time.Duration, bool) {
	if !c.moving {
		return 0, false
	}

	c.moving = false
	duration := time.Duration(robotTimestamp-c.movingStartedRobotTS) * time.Millisecond
	c.movingStartedAt = time.Time{}
	c.movingStartedRobotTS = 0
	return duration, true
}
