package widgets

// Widget is the interface every widget in the tree implements. A widget
// owns exactly one surface (or none, when withdrawn), reports the size it
// would like, paints itself on demand, and consumes or ignores the input
// events its parent forwards.
//
// All methods run synchronously on the host's single UI thread; widgets
// hold no locks and share no state.
type Widget interface {
	// SizeHint returns the widget's requested size in (columns, lines).
	// Containers aggregate child hints into their own.
	SizeHint() (width, height int)

	// SetSurface hands the widget its drawing region, replacing any
	// previous one. A nil surface withdraws the widget: it must stop
	// painting until a surface is assigned again. Containers reshape
	// their children here.
	SetSurface(s Surface)

	// Surface returns the widget's current surface, or nil when withdrawn.
	Surface() Surface

	// Render paints the widget's entire surface. A withdrawn widget
	// renders nothing.
	Render()

	// HandleKey processes a keyboard event, returning true if consumed.
	HandleKey(ev KeyEvent) bool

	// HandleMouse processes a mouse event in local coordinates, returning
	// true if consumed.
	HandleMouse(ev MouseEvent) bool
}

// BaseWidget carries the surface slot and default no-op input handlers.
// Widgets embed it and override what they need; containers override
// SetSurface to reshape children.
type BaseWidget struct {
	surface Surface
}

// SetSurface stores the widget's drawing region (nil withdraws it).
func (b *BaseWidget) SetSurface(s Surface) {
	b.surface = s
}

// Surface returns the current drawing region, or nil when withdrawn.
func (b *BaseWidget) Surface() Surface {
	return b.surface
}

// HandleKey ignores the event.
func (b *BaseWidget) HandleKey(KeyEvent) bool {
	return false
}

// HandleMouse ignores the event.
func (b *BaseWidget) HandleMouse(MouseEvent) bool {
	return false
}
