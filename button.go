package widgets

// Button shows a centered label and fires a callback when clicked or when
// Enter or Space is pressed. While the primary button is held inside it,
// the active pen is used.
type Button struct {
	BaseWidget

	label     string
	pen       Style
	activePen Style
	onClick   func()
	pressed   bool
}

var _ Widget = (*Button)(nil)

// ButtonOption configures a Button.
type ButtonOption func(*Button)

// WithButtonPen sets the label pen.
func WithButtonPen(pen Style) ButtonOption {
	return func(b *Button) {
		b.pen = pen
	}
}

// WithButtonActivePen sets the pen used while the button is held down.
func WithButtonActivePen(pen Style) ButtonOption {
	return func(b *Button) {
		b.activePen = pen
	}
}

// WithButtonOnClick sets the activation callback.
func WithButtonOnClick(fn func()) ButtonOption {
	return func(b *Button) {
		b.onClick = fn
	}
}

// NewButton creates a button with the given label.
func NewButton(label string, opts ...ButtonOption) *Button {
	b := &Button{
		label:     label,
		activePen: NewStyle().Reverse(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the label and repaints.
func (b *Button) SetLabel(label string) {
	b.label = label
	b.Render()
}

// SizeHint requests one line: the label plus the "< >" marker cells.
func (b *Button) SizeHint() (width, height int) {
	return TextWidth(b.label) + 4, 1
}

// Render paints the label centered between angle markers.
func (b *Button) Render() {
	s := b.surface
	if s == nil {
		return
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}

	pen := b.pen
	if b.pressed {
		pen = b.activePen
	}
	s.Fill(s.Rect(), ' ', pen)

	line := h / 2
	label := "< " + b.label + " >"
	startX := (w - TextWidth(label)) / 2
	s.SetString(max(startX, 0), line, label, pen)
}

// Activate fires the click callback.
func (b *Button) Activate() {
	if b.onClick != nil {
		b.onClick()
	}
}

// HandleKey activates on Enter or Space.
func (b *Button) HandleKey(ev KeyEvent) bool {
	if ev.Is(KeyEnter) || (ev.IsRune() && ev.Rune == ' ' && ev.Mod == ModNone) {
		b.Activate()
		return true
	}
	return false
}

// HandleMouse shows the active pen while pressed and activates when the
// button is released inside the widget.
func (b *Button) HandleMouse(ev MouseEvent) bool {
	switch {
	case ev.Action == MousePress && ev.Button == MouseLeft:
		b.pressed = true
		b.Render()
		return true
	case ev.Action == MouseRelease && b.pressed:
		b.pressed = false
		b.Render()
		if b.surface != nil && b.surface.Rect().Contains(ev.X, ev.Y) {
			b.Activate()
		}
		return true
	}
	return false
}
