package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusButtons
	focusKeypad

	focusCount
)

const hotKeys = "tab: focus • enter: select • ctrl+v: paste • ctrl+u: clear • ?: about"

// dialerModel is the single dialer screen. It never owns dialer state: every
// key press becomes a Dialer call and the screen redraws from snapshots.
type dialerModel struct {
	ctx       context.Context
	dialer    dialer.Dialer
	feed      <-chan models.DialerSnapshot
	buildInfo models.AppBuildInfo

	snap     models.DialerSnapshot
	input    textinput.Model
	focus    focusArea
	selected button
	keypad   keypadModel

	alert         alertModel
	showAlert     bool
	showBuildInfo bool
	notice        string
	quitByUser    bool
}

func newDialerModel(ctx context.Context, d dialer.Dialer, feed <-chan models.DialerSnapshot, buildInfo models.AppBuildInfo) dialerModel {
	ti := textinput.New()
	ti.Prompt = "☎  "
	ti.Placeholder = "Phone number"
	ti.CharLimit = 32
	ti.Focus()

	m := dialerModel{
		ctx:       ctx,
		dialer:    d,
		feed:      feed,
		buildInfo: buildInfo,
		input:     ti,
	}
	m.applySnapshot(d.Snapshot())
	return m
}

func (m dialerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForSnapshot(m.feed))
}

func (m dialerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case snapshotMsg:
		m.applySnapshot(msg.snap)
		return m, waitForSnapshot(m.feed)

	case dialerStoppedMsg:
		return m, tea.Quit

	case actionDoneMsg:
		switch {
		case errors.Is(msg.err, dialer.ErrEmptyDestination):
			m.showAlert = true
			m.alert.message = alertEmptyDestination
		case msg.err != nil:
			m.notice = humanizeError(msg.err)
			return m, cmdClearNotice()
		}
		return m, nil

	case pastedMsg:
		if msg.err != nil {
			m.notice = humanizeError(fmt.Errorf("clipboard: %w", msg.err))
			return m, cmdClearNotice()
		}
		number := sanitizeNumber(msg.text)
		if number == "" {
			return m, nil
		}
		return m, m.cmdSetDestination(m.snap.Destination + number)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dialerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showAlert {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showAlert = false
			m.alert.message = ""
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.paste):
		return m, cmdPaste()
	case key.Matches(msg, keys.clear):
		return m, m.cmdDialer(m.dialer.ClearDestination)
	}

	switch m.focus {
	case focusButtons:
		return m.updateButtons(msg)
	case focusKeypad:
		return m.updateKeypad(msg)
	default:
		return m.updateInput(msg)
	}
}

func (m dialerModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		return m, m.cmdDialer(m.dialer.Call)
	case key.Matches(msg, keys.backspace):
		return m, m.cmdDialer(m.dialer.Backspace)
	case key.Matches(msg, keys.down):
		m.setFocus(focusButtons)
		return m, nil
	}

	if msg.Type != tea.KeyRunes {
		return m, nil
	}

	digits := sanitizeNumber(string(msg.Runes))
	switch {
	case digits == "":
		return m, nil
	case len(digits) == 1 && !msg.Paste:
		return m, m.cmdPressKey(rune(digits[0]))
	default:
		return m, m.cmdSetDestination(m.snap.Destination + digits)
	}
}

func (m dialerModel) updateButtons(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.left):
		if m.selected > buttonCall {
			m.selected--
		}
	case key.Matches(msg, keys.right):
		if m.selected < buttonCount-1 {
			m.selected++
		}
	case key.Matches(msg, keys.up):
		m.setFocus(focusInput)
	case key.Matches(msg, keys.down):
		m.setFocus(focusKeypad)
	case key.Matches(msg, keys.enter):
		return m, m.activate(m.selected)
	}
	return m, nil
}

// activate returns nil for a disabled button.
func (m dialerModel) activate(b button) tea.Cmd {
	if !b.enabled(m.snap) {
		return nil
	}

	switch b {
	case buttonCall:
		return m.cmdDialer(m.dialer.Call)
	case buttonHangup:
		return m.cmdDialer(m.dialer.Hangup)
	default:
		return m.cmdDialer(m.dialer.ToggleMute)
	}
}

func (m dialerModel) updateKeypad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.keypad.row == 0 {
			m.setFocus(focusButtons)
			return m, nil
		}
		m.keypad = m.keypad.move(-1, 0)
	case key.Matches(msg, keys.down):
		m.keypad = m.keypad.move(1, 0)
	case key.Matches(msg, keys.left):
		m.keypad = m.keypad.move(0, -1)
	case key.Matches(msg, keys.right):
		m.keypad = m.keypad.move(0, 1)
	case key.Matches(msg, keys.enter):
		return m, m.cmdPressKey(m.keypad.current())
	case key.Matches(msg, keys.backspace):
		return m, m.cmdDialer(m.dialer.Backspace)
	}
	return m, nil
}

func (m *dialerModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *dialerModel) applySnapshot(snap models.DialerSnapshot) {
	m.snap = snap
	m.input.SetValue(snap.Destination)
	m.input.CursorEnd()
}

func (m dialerModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(renderStatus(m.snap.Status))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(renderButtons(m.snap, m.focus == focusButtons, m.selected))
	b.WriteString("\n\n")
	b.WriteString(m.keypad.View(m.focus == focusKeypad))
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.notice))
	}

	page := renderPage("GO DIALER", b.String(), hotKeys)
	if m.showAlert {
		page += "\n\n" + m.alert.View()
	}
	return appStyle.Render(page)
}

func waitForSnapshot(feed <-chan models.DialerSnapshot) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-feed
		if !ok {
			return dialerStoppedMsg{}
		}
		return snapshotMsg{snap: snap}
	}
}

func (m dialerModel) cmdDialer(action func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: action(ctx)}
	}
}

func (m dialerModel) cmdPressKey(r rune) tea.Cmd {
	ctx := m.ctx
	d := m.dialer
	return func() tea.Msg {
		return actionDoneMsg{err: d.PressKey(ctx, r)}
	}
}

func (m dialerModel) cmdSetDestination(to string) tea.Cmd {
	ctx := m.ctx
	d := m.dialer
	return func() tea.Msg {
		return actionDoneMsg{err: d.SetDestination(ctx, to)}
	}
}

func cmdPaste() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return pastedMsg{text: text, err: err}
	}
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
