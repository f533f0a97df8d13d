package core

// EventType classifies an input event reported by a backend.
type EventType int

const (
	EventNone    EventType = iota
	EventQuit              // Window close / terminal interrupt
	EventKeyDown           // Key pressed
	EventKeyUp             // Key released
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Key identifies a physical key. Only Escape has meaning to the game.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeySpace
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	default:
		return "Other"
	}
}

// Event is a single input event.
type Event struct {
	Type EventType
	Key  Key // Set for KeyDown/KeyUp
}

// QuitEvent returns a quit request event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent returns a key press event.
func KeyDownEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUpEvent returns a key release event.
func KeyUpEvent(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// RequestsQuit reports whether the event asks the session to terminate:
// a quit event, or Escape being pressed.
func (e Event) RequestsQuit() bool {
	return e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape)
}

// EventSource drains pending input events without blocking.
type EventSource interface {
	PollEvents() []Event
}

// Canvas is the drawing surface a backend exposes to the game.
type Canvas interface {
	Clear(bg Color)
	FillRect(r Rect, c Color)
	FillCircle(x, y, radius int, c Color)
	Present()
}
