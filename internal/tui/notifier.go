// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const notificationBuffer = 8

// Notifier delivers search notifications to the terminal UI as toasts. It
// never blocks: notifications arriving while the buffer is full are dropped.
type Notifier struct {
	toasts chan toastMsg
}

func NewNotifier() *Notifier {
	return &Notifier{toasts: make(chan toastMsg, notificationBuffer)}
}

func (n *Notifier) Success(msg string) {
	n.push(toastMsg{kind: toastSuccess, text: msg})
}

func (n *Notifier) Error(msg string) {
	n.push(toastMsg{kind: toastError, text: humanizeServerUnavailableError(msg)})
}

func (n *Notifier) push(t toastMsg) {
	select {
	case n.toasts <- t:
	default:
	}
}

// wait returns a command that blocks until the next notification.
func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		return <-n.toasts
	}
}
