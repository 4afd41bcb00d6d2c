package tui

import (
	"sync"

	"github.com/MKhiriev/address-search/internal/dropdown"
	tea "github.com/charmbracelet/bubbletea"
)

// eventBus turns terminal mouse and key messages into dropdown host events.
type eventBus struct {
	mu        sync.Mutex
	listeners map[int]dropdown.Listener
	nextID    int
}

func newEventBus() *eventBus {
	return &eventBus{listeners: make(map[int]dropdown.Listener)}
}

// Subscribe implements [dropdown.EventSource].
func (b *eventBus) Subscribe(l dropdown.Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

func (b *eventBus) snapshot() []dropdown.Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]dropdown.Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		out = append(out, l)
	}
	return out
}

func (b *eventBus) emitPointer(ev dropdown.PointerEvent) {
	for _, l := range b.snapshot() {
		l.HandlePointer(ev)
	}
}

func (b *eventBus) emitKey(ev dropdown.KeyEvent) {
	for _, l := range b.snapshot() {
		l.HandleKey(ev)
	}
}

// pointerEvent maps a bubbletea mouse message. ok is false for wheel and
// other events the dropdown does not track.
func pointerEvent(msg tea.MouseMsg) (ev dropdown.PointerEvent, ok bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return ev, false
	}

	ev = dropdown.PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = dropdown.PointerPress
	case tea.MouseActionRelease:
		ev.Kind = dropdown.PointerRelease
	case tea.MouseActionMotion:
		ev.Kind = dropdown.PointerMove
	default:
		return ev, false
	}
	return ev, true
}
