package widgets

// KeyEvent represents a decoded keyboard input event delivered to a widget
// by the host event loop.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	// For special keys (arrows, navigation), this is the specific constant.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
	// MouseNone indicates no button (used for motion events).
	MouseNone
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	// MousePress indicates a button was pressed.
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
	// MouseDrag indicates motion while a button is held.
	MouseDrag
)

// MouseEvent represents a mouse input event in the receiving widget's local
// coordinates. Containers translate X and Y before forwarding to children.
type MouseEvent struct {
	// Button is which mouse button was involved.
	Button MouseButton
	// Action is the type of mouse action (press, release, drag).
	Action MouseAction
	// X is the column position (0-indexed).
	X int
	// Y is the row position (0-indexed).
	Y int
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

// Translate returns a copy of the event moved by (dx, dy), used by
// containers to convert their coordinates into a child's.
func (e MouseEvent) Translate(dx, dy int) MouseEvent {
	e.X += dx
	e.Y += dy
	return e
}
