package events

const (
	// KindWakeWordBegin identifies the robot hearing its wake word.
	KindWakeWordBegin Kind = "wake_word.begin"
	// KindWakeWordEnd identifies the wake word exchange concluding.
	KindWakeWordEnd Kind = "wake_word.end"
)

// WakeWordBeginEvent marks the robot hearing its wake word and starting to
// listen for an intent.
type WakeWordBeginEvent struct{ Base }

// NewWakeWordBeginEvent creates a wake word begin event.
func NewWakeWordBeginEvent() WakeWordBeginEvent {
	return WakeWordBeginEvent{Base: NewBase(KindWakeWordBegin)}
}

// WakeWordEndEvent marks the wake word exchange concluding. IntentJSON is
// only populated when IntentHeard is true and the stream owner holds control.
type WakeWordEndEvent struct {
	Base
	IntentHeard bool
	IntentJSON  string
}

// NewWakeWordEndEvent creates a wake word end event.
func NewWakeWordEndEvent(intentHeard bool, intentJSON string) WakeWordEndEvent {
	return WakeWordEndEvent{Base: NewBase(KindWakeWordEnd), IntentHeard: intentHeard, IntentJSON: intentJSON}
}
