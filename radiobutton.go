package widgets

// RadioGroup keeps at most one of its member RadioButtons active.
type RadioGroup struct {
	active *RadioButton
}

// NewRadioGroup creates an empty group.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Active returns the currently active member, or nil.
func (g *RadioGroup) Active() *RadioButton {
	return g.active
}

// activate makes r the active member, deactivating and repainting the
// previous one.
func (g *RadioGroup) activate(r *RadioButton) {
	if g.active == r {
		return
	}
	prev := g.active
	g.active = r
	if prev != nil {
		prev.Render()
	}
}

// RadioButton is a labelled exclusive-choice toggle rendered as
// "(*) label". Activating one deactivates the rest of its group.
type RadioButton struct {
	BaseWidget

	label      string
	group      *RadioGroup
	pen        Style
	onActivate func()
}

var _ Widget = (*RadioButton)(nil)

// RadioButtonOption configures a RadioButton.
type RadioButtonOption func(*RadioButton)

// WithRadioButtonPen sets the pen.
func WithRadioButtonPen(pen Style) RadioButtonOption {
	return func(r *RadioButton) {
		r.pen = pen
	}
}

// WithRadioButtonOnActivate sets the callback fired when this member
// becomes active.
func WithRadioButtonOnActivate(fn func()) RadioButtonOption {
	return func(r *RadioButton) {
		r.onActivate = fn
	}
}

// NewRadioButton creates a radio button in the given group.
func NewRadioButton(group *RadioGroup, label string, opts ...RadioButtonOption) *RadioButton {
	r := &RadioButton{
		label: label,
		group: group,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Active returns true when this member is its group's selection.
func (r *RadioButton) Active() bool {
	return r.group.active == r
}

// Activate makes this member the group's selection and fires the callback.
func (r *RadioButton) Activate() {
	alreadyActive := r.Active()
	r.group.activate(r)
	r.Render()
	if !alreadyActive && r.onActivate != nil {
		r.onActivate()
	}
}

// SizeHint requests one line: the "(*) " marker plus the label.
func (r *RadioButton) SizeHint() (width, height int) {
	return TextWidth(r.label) + 4, 1
}

// Render paints the marker and label.
func (r *RadioButton) Render() {
	s := r.surface
	if s == nil {
		return
	}
	s.Clear()
	marker := "( ) "
	if r.Active() {
		marker = "(*) "
	}
	s.SetString(0, 0, marker+r.label, r.pen)
}

// HandleKey activates on Enter or Space.
func (r *RadioButton) HandleKey(ev KeyEvent) bool {
	if ev.Is(KeyEnter) || (ev.IsRune() && ev.Rune == ' ' && ev.Mod == ModNone) {
		r.Activate()
		return true
	}
	return false
}

// HandleMouse activates on primary press.
func (r *RadioButton) HandleMouse(ev MouseEvent) bool {
	if ev.Action == MousePress && ev.Button == MouseLeft {
		r.Activate()
		return true
	}
	return false
}
