// Package tui renders the address search widget in the terminal with
// bubbletea.
//
// The widget binds a text input to a search coordinator, draws the result
// dropdown below it and routes mouse and key events to the dropdown
// controller. Coordinator updates are funnelled into the bubbletea event loop
// so all rendering happens on one goroutine.
package tui
