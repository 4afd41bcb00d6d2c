// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dropdown

import (
	"sync"

	"github.com/MKhiriev/address-search/models"
)

// Option customises a [Controller].
type Option func(*Controller)

// WithRegion sets the initial bounding region of the widget.
func WithRegion(r Region) Option {
	return func(c *Controller) {
		c.region = r
	}
}

// WithBlur registers fn to be called when Escape blurs the input.
func WithBlur(fn func()) Option {
	return func(c *Controller) {
		c.onBlur = fn
	}
}

// Controller owns the dropdown interaction state on top of a search
// coordinator. Visibility itself is derived from the coordinator state.
type Controller struct {
	coordinator Coordinator
	onBlur      func()

	mu          sync.Mutex
	region      Region
	focused     bool
	highlight   int
	resultKeys  []string
	unsubscribe func()
}

// NewController returns a controller with no highlighted item and a focused
// input.
func NewController(coordinator Coordinator, opts ...Option) *Controller {
	c := &Controller{
		coordinator: coordinator,
		focused:     true,
		highlight:   -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach subscribes the controller to host events. A previous subscription is
// released first.
func (c *Controller) Attach(host EventSource) {
	c.Detach()

	unsubscribe := host.Subscribe(c)

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
}

// Detach releases the host subscription. Safe to call when not attached.
func (c *Controller) Detach() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// SetRegion updates the widget bounding box, e.g. after a resize.
func (c *Controller) SetRegion(r Region) {
	c.mu.Lock()
	c.region = r
	c.mu.Unlock()
}

// SetFocused records whether the search input has focus.
func (c *Controller) SetFocused(focused bool) {
	c.mu.Lock()
	c.focused = focused
	c.mu.Unlock()
}

// Focused reports whether the search input has focus.
func (c *Controller) Focused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.focused
}

// Visible reports whether the dropdown should be rendered.
func (c *Controller) Visible() bool {
	return visible(c.coordinator.State())
}

func visible(s models.SearchState) bool {
	return s.DropdownOpen && len(s.Results) > 0
}

// Items returns the results to render, or nil when the dropdown is hidden.
func (c *Controller) Items() []models.Address {
	s := c.coordinator.State()
	if !visible(s) {
		return nil
	}
	return s.Results
}

// Highlighted returns the index of the highlighted item, or -1.
func (c *Controller) Highlighted() int {
	s := c.coordinator.State()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncLocked(s.Results)
	if !visible(s) {
		return -1
	}
	return c.highlight
}

// MoveDown highlights the next item, stopping at the last one.
func (c *Controller) MoveDown() {
	c.move(1)
}

// MoveUp highlights the previous item, stopping at the first one.
func (c *Controller) MoveUp() {
	c.move(-1)
}

func (c *Controller) move(delta int) {
	s := c.coordinator.State()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncLocked(s.Results)
	if !visible(s) {
		return
	}

	next := c.highlight + delta
	if c.highlight < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= len(s.Results) {
		next = len(s.Results) - 1
	}
	c.highlight = next
}

// Click selects the item at index and closes the dropdown. It reports whether
// an item was selected.
func (c *Controller) Click(index int) bool {
	s := c.coordinator.State()
	if !visible(s) || index < 0 || index >= len(s.Results) {
		return false
	}

	c.coordinator.OnItemSelect(s.Results[index])
	c.coordinator.SetDropdownOpen(false)

	c.mu.Lock()
	c.highlight = -1
	c.mu.Unlock()

	return true
}

// SelectHighlighted clicks the highlighted item, if any.
func (c *Controller) SelectHighlighted() bool {
	return c.Click(c.Highlighted())
}

// Dismiss closes the dropdown without selecting anything.
func (c *Controller) Dismiss() {
	if !c.Visible() {
		return
	}
	c.coordinator.SetDropdownOpen(false)

	c.mu.Lock()
	c.highlight = -1
	c.mu.Unlock()
}

// HandlePointer implements [Listener]. A press outside the widget region
// dismisses the dropdown.
func (c *Controller) HandlePointer(ev PointerEvent) {
	if ev.Kind != PointerPress {
		return
	}

	c.mu.Lock()
	inside := c.region.Contains(ev.X, ev.Y)
	c.mu.Unlock()

	if !inside {
		c.Dismiss()
	}
}

// HandleKey implements [Listener]. Keys are ignored while the input is not
// focused.
func (c *Controller) HandleKey(ev KeyEvent) {
	if !c.Focused() {
		return
	}

	switch ev.Key {
	case KeyEscape:
		c.Dismiss()
		c.SetFocused(false)
		if c.onBlur != nil {
			c.onBlur()
		}
	case KeyDown:
		c.MoveDown()
	case KeyUp:
		c.MoveUp()
	case KeyEnter:
		c.SelectHighlighted()
	}
}

// syncLocked resets the highlight when the result set changed.
func (c *Controller) syncLocked(results []models.Address) {
	if sameResults(c.resultKeys, results) {
		return
	}

	keys := make([]string, len(results))
	for i, a := range results {
		keys[i] = a.TSID + "|" + a.Label()
	}
	c.resultKeys = keys
	c.highlight = -1
}

func sameResults(keys []string, results []models.Address) bool {
	if len(keys) != len(results) {
		return false
	}
	for i, a := range results {
		if keys[i] != a.TSID+"|"+a.Label() {
			return false
		}
	}
	return true
}
