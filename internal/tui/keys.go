package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	backspace key.Binding
	quit      key.Binding
	paste     key.Binding
	clear     key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	backspace: key.NewBinding(key.WithKeys("backspace")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	clear:     key.NewBinding(key.WithKeys("ctrl+u")),
	info:      key.NewBinding(key.WithKeys("?")),
}
