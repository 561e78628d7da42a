package widgets

// Fill paints its entire surface with a single rune and pen. It requests a
// minimal 1x1 and relies on expand weights to claim space, which makes it
// the standard padding widget in grid layouts.
type Fill struct {
	BaseWidget

	rune rune
	pen  Style
}

var _ Widget = (*Fill)(nil)

// FillOption configures a Fill.
type FillOption func(*Fill)

// WithFillPen sets the fill pen.
func WithFillPen(pen Style) FillOption {
	return func(f *Fill) {
		f.pen = pen
	}
}

// NewFill creates a fill widget painting the given rune.
func NewFill(r rune, opts ...FillOption) *Fill {
	f := &Fill{rune: r}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SizeHint requests the minimal 1x1 cell.
func (f *Fill) SizeHint() (width, height int) {
	return 1, 1
}

// Render floods the surface with the fill rune.
func (f *Fill) Render() {
	if f.surface == nil {
		return
	}
	f.surface.Fill(f.surface.Rect(), f.rune, f.pen)
}
