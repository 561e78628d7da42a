package widgets

// CheckButton is a labelled on/off toggle rendered as "[x] label".
type CheckButton struct {
	BaseWidget

	label    string
	checked  bool
	pen      Style
	onToggle func(bool)
}

var _ Widget = (*CheckButton)(nil)

// CheckButtonOption configures a CheckButton.
type CheckButtonOption func(*CheckButton)

// WithCheckButtonPen sets the pen.
func WithCheckButtonPen(pen Style) CheckButtonOption {
	return func(c *CheckButton) {
		c.pen = pen
	}
}

// WithCheckButtonChecked sets the initial state.
func WithCheckButtonChecked(on bool) CheckButtonOption {
	return func(c *CheckButton) {
		c.checked = on
	}
}

// WithCheckButtonOnToggle sets the callback fired with the new state on
// every toggle.
func WithCheckButtonOnToggle(fn func(bool)) CheckButtonOption {
	return func(c *CheckButton) {
		c.onToggle = fn
	}
}

// NewCheckButton creates a check button with the given label.
func NewCheckButton(label string, opts ...CheckButtonOption) *CheckButton {
	c := &CheckButton{label: label}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Checked returns the current state.
func (c *CheckButton) Checked() bool {
	return c.checked
}

// SetChecked sets the state directly (no callback) and repaints.
func (c *CheckButton) SetChecked(on bool) {
	c.checked = on
	c.Render()
}

// Toggle flips the state, fires the callback, and repaints.
func (c *CheckButton) Toggle() {
	c.checked = !c.checked
	if c.onToggle != nil {
		c.onToggle(c.checked)
	}
	c.Render()
}

// SizeHint requests one line: the "[x] " marker plus the label.
func (c *CheckButton) SizeHint() (width, height int) {
	return TextWidth(c.label) + 4, 1
}

// Render paints the marker and label.
func (c *CheckButton) Render() {
	s := c.surface
	if s == nil {
		return
	}
	s.Clear()
	marker := "[ ] "
	if c.checked {
		marker = "[x] "
	}
	s.SetString(0, 0, marker+c.label, c.pen)
}

// HandleKey toggles on Enter or Space.
func (c *CheckButton) HandleKey(ev KeyEvent) bool {
	if ev.Is(KeyEnter) || (ev.IsRune() && ev.Rune == ' ' && ev.Mod == ModNone) {
		c.Toggle()
		return true
	}
	return false
}

// HandleMouse toggles on primary press.
func (c *CheckButton) HandleMouse(ev MouseEvent) bool {
	if ev.Action == MousePress && ev.Button == MouseLeft {
		c.Toggle()
		return true
	}
	return false
}
