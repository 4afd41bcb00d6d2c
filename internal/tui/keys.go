package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	focus     key.Binding
	quit      key.Binding
	quitBlur  key.Binding
	clear     key.Binding
	copy      key.Binding
	restore   key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	focus:     key.NewBinding(key.WithKeys("tab", "/", "enter")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	quitBlur:  key.NewBinding(key.WithKeys("q")),
	clear:     key.NewBinding(key.WithKeys("ctrl+l")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	restore:   key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
}
