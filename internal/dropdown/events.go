package dropdown

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerRelease
	PointerMove
)

// PointerEvent is a pointer interaction in host coordinates.
type PointerEvent struct {
	X, Y int
	Kind PointerKind
}

// Key identifies the keys the dropdown reacts to.
type Key string

const (
	KeyEscape Key = "esc"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyEnter  Key = "enter"
)

// KeyEvent is a key press delivered while the widget lives.
type KeyEvent struct {
	Key Key
}

// Region is the widget's bounding box in host coordinates. Width and Height
// are exclusive extents.
type Region struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside r. An empty region contains
// nothing.
func (r Region) Contains(x, y int) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Listener receives host events.
type Listener interface {
	HandlePointer(PointerEvent)
	HandleKey(KeyEvent)
}

// EventSource is the host capability the controller subscribes to for the
// widget's lifetime.
type EventSource interface {
	Subscribe(l Listener) (unsubscribe func())
}
