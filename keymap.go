package widgets

// KeyMap is an ordered list of key bindings. Widgets build one in their
// constructor and run incoming key events through Handle.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key     Key      // Specific key (KeyCtrlB, KeyEscape, etc.), or 0
	Rune    rune     // Specific rune, or 0
	AnyRune bool     // Match any printable character
	Mod     Modifier // Required modifiers; the event must carry exactly these
}

// Matches reports whether the pattern matches the event.
func (p KeyPattern) Matches(e KeyEvent) bool {
	if e.Mod != p.Mod {
		return false
	}
	if p.Key != 0 {
		return e.Key == p.Key
	}
	if p.Rune != 0 {
		return e.Rune == p.Rune
	}
	if p.AnyRune {
		return e.IsRune() && e.Rune != 0
	}
	return false
}

// Handle runs the event through the bindings in order and returns true once
// a binding matches and consumes it.
func (m KeyMap) Handle(e KeyEvent) bool {
	for _, binding := range m {
		if binding.Pattern.Matches(e) {
			binding.Handler(e)
			return true
		}
	}
	return false
}

// OnKey creates a binding for a specific key.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
	}
}

// OnKeyMod creates a binding for a key with a required modifier set.
func OnKeyMod(key Key, mod Modifier, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key, Mod: mod},
		Handler: handler,
	}
}

// OnRune creates a binding for a specific printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
	}
}

// OnRuneMod creates a binding for a printable character with a required
// modifier set (e.g. Alt+b for word movement).
func OnRuneMod(r rune, mod Modifier, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r, Mod: mod},
		Handler: handler,
	}
}

// OnRunes creates a binding for all printable characters.
// Use this for text inputs that consume character keys.
func OnRunes(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{AnyRune: true},
		Handler: handler,
	}
}
