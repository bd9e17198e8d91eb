package tui

import "github.com/MKhiriev/go-dialer/models"

type snapshotMsg struct {
	snap models.DialerSnapshot
}

// dialerStoppedMsg is sent when the snapshot feed closes.
type dialerStoppedMsg struct{}

type actionDoneMsg struct {
	err error
}

type pastedMsg struct {
	text string
	err  error
}

type clearNoticeMsg struct{}
