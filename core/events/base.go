package events

import "time"

// Kind identifies a typed robot event.
type Kind string

// Event is the contract every typed robot event satisfies.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the fields shared by every typed event. The timestamp is the
// local wall-clock time the record was constructed, not the robot's clock;
// kinds that carry a robot timestamp expose it as their own field.
type Base struct {
	kind      Kind
	timestamp time.Time
}

func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}
