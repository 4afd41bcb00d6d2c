// Package dropdown implements the results dropdown interaction state: its
// visibility, dismissal on outside pointer presses and on Escape, keyboard
// highlight and item selection.
//
// The controller does not listen to any input device itself. The host
// environment (the terminal UI) provides an [EventSource] and the controller
// subscribes to it between Attach and Detach.
package dropdown
