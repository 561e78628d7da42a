package widgets

// Static displays a single line of styled text. It is the simplest leaf
// widget and the one layout tests build grids out of.
type Static struct {
	BaseWidget

	text string
	pen  Style
}

var _ Widget = (*Static)(nil)

// StaticOption configures a Static.
type StaticOption func(*Static)

// WithStaticPen sets the text pen.
func WithStaticPen(pen Style) StaticOption {
	return func(s *Static) {
		s.pen = pen
	}
}

// NewStatic creates a static text widget.
func NewStatic(text string, opts ...StaticOption) *Static {
	s := &Static{text: text}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Text returns the displayed text.
func (s *Static) Text() string {
	return s.text
}

// SetText replaces the text and repaints.
func (s *Static) SetText(text string) {
	s.text = text
	s.Render()
}

// SizeHint requests one line, as wide as the text displays.
func (s *Static) SizeHint() (width, height int) {
	return TextWidth(s.text), 1
}

// Render paints the text on the first line.
func (s *Static) Render() {
	if s.surface == nil {
		return
	}
	s.surface.Clear()
	s.surface.SetString(0, 0, s.text, s.pen)
}
