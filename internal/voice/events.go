package voice

// EventType names what a device reports.
type EventType int

const (
	// EventRegistered and EventError are client-level.
	EventRegistered EventType = iota + 1
	EventError
	// EventAccept and EventDisconnect refer to a call by CallID.
	EventAccept
	EventDisconnect
)

func (t EventType) String() string {
	switch t {
	case EventRegistered:
		return "registered"
	case EventError:
		return "error"
	case EventAccept:
		return "accept"
	case EventDisconnect:
		return "disconnect"
	default:
		return "unknown"
	}
}

// Event is one notification from a Device.
type Event struct {
	Type    EventType
	CallID  string
	Message string
	Err     error
}

// Registered builds an EventRegistered.
func Registered() Event {
	return Event{Type: EventRegistered}
}

// Failed builds a client-level EventError.
func Failed(err error) Event {
	return Event{Type: EventError, Message: err.Error(), Err: err}
}

// Accepted builds an EventAccept for callID.
func Accepted(callID string) Event {
	return Event{Type: EventAccept, CallID: callID}
}

// Disconnected builds an EventDisconnect for callID. reason may be empty.
func Disconnected(callID, reason string) Event {
	return Event{Type: EventDisconnect, CallID: callID, Message: reason}
}

// EventBufferSize is the capacity devices give their event channel.
const EventBufferSize = 32
