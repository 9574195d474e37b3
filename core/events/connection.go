package events

const (
	// KindKeepAlive identifies the liveness ping on the event stream.
	KindKeepAlive Kind = "connection.keep_alive"
	// KindConnectionResponse identifies the event stream subscription ack.
	KindConnectionResponse Kind = "connection.response"
)

// KeepAliveEvent is the periodic liveness ping on the event stream. It
// carries no data; its arrival is the signal.
type KeepAliveEvent struct{ Base }

// NewKeepAliveEvent creates a keep alive event.
func NewKeepAliveEvent() KeepAliveEvent {
	return KeepAliveEvent{Base: NewBase(KindKeepAlive)}
}

// ConnectionResponseEvent acknowledges the event stream subscription and
// reports whether this client holds the primary connection.
type ConnectionResponseEvent struct {
	Base
	IsPrimary bool
}

// NewConnectionResponseEvent creates a connection response event.
func NewConnectionResponseEvent(isPrimary bool) ConnectionResponseEvent {
	return ConnectionResponseEvent{Base: NewBase(KindConnectionResponse), IsPrimary: isPrimary}
}
