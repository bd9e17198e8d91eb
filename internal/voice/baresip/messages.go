package baresip

// ctrl_tcp message shapes.

type commandMsg struct {
	Command string `json:"command,omitempty"`
	Params  string `json:"params,omitempty"`
	Token   string `json:"token,omitempty"`
}

type responseMsg struct {
	Response bool   `json:"response,omitempty"`
	Ok       bool   `json:"ok,omitempty"`
	Data     string `json:"data,omitempty"`
	Token    string `json:"token,omitempty"`
}

type eventMsg struct {
	Event           bool   `json:"event,omitempty"`
	Type            string `json:"type,omitempty"`
	Class           string `json:"class,omitempty"`
	AccountAOR      string `json:"accountaor,omitempty"`
	Direction       string `json:"direction,omitempty"`
	PeerURI         string `json:"peeruri,omitempty"`
	PeerDisplayname string `json:"peerdisplayname,omitempty"`
	ID              string `json:"id,omitempty"`
	Param           string `json:"param,omitempty"`
}

// frameKind distinguishes events from command responses.
type frameKind struct {
	Event    bool `json:"event"`
	Response bool `json:"response"`
}

const (
	cmdUANew     = "uanew"
	cmdDial      = "dial"
	cmdHangupAll = "hangupall"
	cmdMute      = "mute"

	eventRegisterOK      = "REGISTER_OK"
	eventRegisterFail    = "REGISTER_FAIL"
	eventCallOutgoing    = "CALL_OUTGOING"
	eventCallRinging     = "CALL_RINGING"
	eventCallProgress    = "CALL_PROGRESS"
	eventCallEstablished = "CALL_ESTABLISHED"
	eventCallClosed      = "CALL_CLOSED"

	directionIncoming = "incoming"
)
