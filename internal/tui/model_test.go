package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/internal/mock"
	"github.com/MKhiriev/go-dialer/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func idleSnapshot() models.DialerSnapshot {
	return models.DialerSnapshot{
		Status:   models.NewStatus("Ready to Call", models.StatusReady),
		State:    models.CallStateIdle,
		Controls: models.Controls{CallEnabled: true},
		Mute:     models.MuteButton{Label: "Mute"},
	}
}

func inCallSnapshot() models.DialerSnapshot {
	return models.DialerSnapshot{
		Status:      models.NewStatus("In Call", models.StatusBusy),
		State:       models.CallStateInCall,
		Controls:    models.Controls{HangupEnabled: true, MuteEnabled: true},
		Mute:        models.MuteButton{Label: "Mute"},
		Destination: "5551234",
		CallID:      "call-1",
	}
}

func newTestModel(t *testing.T, snap models.DialerSnapshot) (dialerModel, *mock.MockDialer) {
	t.Helper()
	d := mock.NewMockDialer(gomock.NewController(t))
	d.EXPECT().Snapshot().Return(snap)
	info := models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")
	return newDialerModel(context.Background(), d, nil, info), d
}

func update(t *testing.T, m dialerModel, msg tea.Msg) (dialerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(dialerModel)
	require.True(t, ok)
	return dm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ── input ───────────────────────────────────────────────────────────────────

func TestModel_DigitPressesKey(t *testing.T) {
	m, d := newTestModel(t, idleSnapshot())
	d.EXPECT().PressKey(gomock.Any(), '5').Return(nil)

	_, cmd := update(t, m, runeKey('5'))

	require.NotNil(t, cmd)
	assert.Equal(t, actionDoneMsg{}, cmd())
}

func TestModel_NonKeypadRuneIgnored(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	_, cmd := update(t, m, runeKey('a'))

	assert.Nil(t, cmd)
}

func TestModel_PastedRunesAppend(t *testing.T) {
	snap := idleSnapshot()
	snap.Destination = "1"
	m, d := newTestModel(t, snap)
	d.EXPECT().SetDestination(gomock.Any(), "155512").Return(nil)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("(555) 12"), Paste: true})

	require.NotNil(t, cmd)
	cmd()
}

func TestModel_ClipboardPaste(t *testing.T) {
	m, d := newTestModel(t, idleSnapshot())
	d.EXPECT().SetDestination(gomock.Any(), "+15551234").Return(nil)

	_, cmd := update(t, m, pastedMsg{text: "+1 555-1234"})

	require.NotNil(t, cmd)
	cmd()
}

func TestModel_ClipboardPasteError(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	m, cmd := update(t, m, pastedMsg{err: errors.New("no clipboard utility")})

	assert.NotNil(t, cmd)
	assert.Equal(t, "clipboard: no clipboard utility", m.notice)
}

func TestModel_BackspaceAndClear(t *testing.T) {
	m, d := newTestModel(t, idleSnapshot())
	d.EXPECT().Backspace(gomock.Any()).Return(nil)
	d.EXPECT().ClearDestination(gomock.Any()).Return(nil)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	cmd()

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	require.NotNil(t, cmd)
	cmd()
}

// ── call / alert ────────────────────────────────────────────────────────────

func TestModel_EmptyDestinationShowsAlert(t *testing.T) {
	m, d := newTestModel(t, idleSnapshot())
	d.EXPECT().Call(gomock.Any()).Return(dialer.ErrEmptyDestination)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.True(t, m.showAlert)
	assert.Contains(t, m.View(), "Please enter a phone number.")

	// Keys other than enter/esc are swallowed by the alert.
	m, cmd = update(t, m, runeKey('5'))
	assert.Nil(t, cmd)
	assert.True(t, m.showAlert)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showAlert)
	assert.NotContains(t, m.View(), "Please enter a phone number.")
}

func TestModel_ActionErrorShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	m, cmd := update(t, m, actionDoneMsg{err: errors.New("boom")})

	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "boom")

	m, _ = update(t, m, clearNoticeMsg{})
	assert.Empty(t, m.notice)
}

// ── buttons ─────────────────────────────────────────────────────────────────

func TestModel_DisabledButtonNotActivatable(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusButtons, m.focus)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, buttonHangup, m.selected)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestModel_CallButton(t *testing.T) {
	snap := idleSnapshot()
	snap.Destination = "5551234"
	m, d := newTestModel(t, snap)
	d.EXPECT().Call(gomock.Any()).Return(nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, actionDoneMsg{}, cmd())
}

func TestModel_HangupAndMuteButtons(t *testing.T) {
	m, d := newTestModel(t, inCallSnapshot())
	d.EXPECT().Hangup(gomock.Any()).Return(nil)
	d.EXPECT().ToggleMute(gomock.Any()).Return(nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "call is disabled in a call")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
}

func TestModel_MuteLabelFollowsSnapshot(t *testing.T) {
	m, _ := newTestModel(t, inCallSnapshot())
	assert.Contains(t, m.View(), "Mute")

	snap := inCallSnapshot()
	snap.Mute = models.MuteButton{Label: "Unmute", Active: true}
	m, _ = update(t, m, snapshotMsg{snap: snap})

	assert.Contains(t, m.View(), "Unmute")
}

// ── keypad ──────────────────────────────────────────────────────────────────

func TestModel_KeypadPress(t *testing.T) {
	m, d := newTestModel(t, idleSnapshot())
	d.EXPECT().PressKey(gomock.Any(), '5').Return(nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusKeypad, m.focus)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	cmd()
}

func TestModel_KeypadUpFromTopRowFocusesButtons(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())
	m.setFocus(focusKeypad)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, focusButtons, m.focus)
}

func TestKeypad_MoveClamps(t *testing.T) {
	k := keypadModel{}

	assert.Equal(t, '1', k.move(-1, -1).current())
	assert.Equal(t, '#', k.move(10, 10).current())
	assert.Equal(t, '0', k.move(3, 1).current())
}

// ── snapshots / lifecycle ───────────────────────────────────────────────────

func TestModel_SnapshotUpdatesView(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	snap := idleSnapshot()
	snap.Status = models.NewStatus("Calling 5551234...", models.StatusBusy)
	snap.Destination = "5551234"
	m, cmd := update(t, m, snapshotMsg{snap: snap})

	assert.Nil(t, cmd, "no feed in tests")
	assert.Equal(t, "5551234", m.input.Value())
	assert.Contains(t, m.View(), "Calling 5551234...")
}

func TestWaitForSnapshot(t *testing.T) {
	feed := make(chan models.DialerSnapshot, 1)
	feed <- idleSnapshot()

	assert.Equal(t, snapshotMsg{snap: idleSnapshot()}, waitForSnapshot(feed)())

	close(feed)
	assert.Equal(t, dialerStoppedMsg{}, waitForSnapshot(feed)())
}

func TestModel_BuildInfoOverlay(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	m, _ = update(t, m, runeKey('?'))
	assert.Contains(t, m.View(), "ABOUT")
	assert.Contains(t, m.View(), "1.0.0")
	assert.Contains(t, m.View(), "abc123")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "ABOUT")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_DialerStoppedQuits(t *testing.T) {
	m, _ := newTestModel(t, idleSnapshot())

	m, cmd := update(t, m, dialerStoppedMsg{})

	assert.False(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
