package models

// StatusTag selects the indicator style of the status bar.
type StatusTag string

const (
	StatusInitializing StatusTag = "initializing"
	StatusOffline      StatusTag = "offline"
	StatusReady        StatusTag = "ready"
	StatusBusy         StatusTag = "busy"
	StatusError        StatusTag = "error"
)

// Class returns the exclusive style class for the tag, e.g. "status-ready".
func (t StatusTag) Class() string {
	return "status-" + string(t)
}

// Status is the text and indicator shown in the status bar.
type Status struct {
	Text string    `json:"text"`
	Tag  StatusTag `json:"tag"`
}

// NewStatus is a shorthand constructor.
func NewStatus(text string, tag StatusTag) Status {
	return Status{Text: text, Tag: tag}
}

// Controls holds the enablement of the dialer buttons.
type Controls struct {
	CallEnabled   bool `json:"call_enabled"`
	HangupEnabled bool `json:"hangup_enabled"`
	MuteEnabled   bool `json:"mute_enabled"`
}

// MuteButton is the label and active flag of the mute button.
type MuteButton struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// DialerSnapshot is a read-only copy of the observable dialer state.
type DialerSnapshot struct {
	Status      Status     `json:"status"`
	State       CallState  `json:"state"`
	Controls    Controls   `json:"controls"`
	Mute        MuteButton `json:"mute"`
	Destination string     `json:"destination"`
	CallID      string     `json:"call_id,omitempty"`
}
