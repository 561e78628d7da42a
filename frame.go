package widgets

import "errors"

// ErrUnknownLineStyle is returned when configuring a frame or split with a
// line style this package does not know.
var ErrUnknownLineStyle = errors.New("widgets: unknown line style")

// Frame draws a border around a single child, with an optional title
// centered in the top edge. The child paints inside the one-cell inset; a
// frame too small to hold its border withdraws the child entirely.
type Frame struct {
	BaseWidget

	child    Widget
	title    string
	line     LineStyle
	pen      Style
	titlePen Style
}

var _ Widget = (*Frame)(nil)

// FrameOption configures a Frame.
type FrameOption func(*Frame)

// WithFrameTitle sets the title shown centered in the top border.
func WithFrameTitle(title string) FrameOption {
	return func(f *Frame) {
		f.title = title
	}
}

// WithFrameLineStyle sets the border line style. Unknown styles are
// rejected and leave the current style in place; use SetLineStyle to
// observe the rejection.
func WithFrameLineStyle(l LineStyle) FrameOption {
	return func(f *Frame) {
		_ = f.SetLineStyle(l)
	}
}

// WithFramePen sets the border pen.
func WithFramePen(pen Style) FrameOption {
	return func(f *Frame) {
		f.pen = pen
	}
}

// WithFrameTitlePen sets the title pen.
func WithFrameTitlePen(pen Style) FrameOption {
	return func(f *Frame) {
		f.titlePen = pen
	}
}

// NewFrame creates a frame around child. The child may be nil for an empty
// decorative box.
func NewFrame(child Widget, opts ...FrameOption) *Frame {
	f := &Frame{
		child: child,
		line:  LineSingle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetLineStyle changes the border line style. Unknown styles are rejected
// with ErrUnknownLineStyle and the previous style is kept.
func (f *Frame) SetLineStyle(l LineStyle) error {
	if !l.Valid() {
		return ErrUnknownLineStyle
	}
	f.line = l
	return nil
}

// Title returns the frame title.
func (f *Frame) Title() string {
	return f.title
}

// SetTitle changes the frame title.
func (f *Frame) SetTitle(title string) {
	f.title = title
}

// Child returns the framed widget, or nil.
func (f *Frame) Child() Widget {
	return f.child
}

// SizeHint requests the child's size plus the border, widened to fit the
// title when one is set.
func (f *Frame) SizeHint() (width, height int) {
	cw, ch := 0, 0
	if f.child != nil {
		cw, ch = f.child.SizeHint()
	}
	width = max(cw, TextWidth(f.title)) + 2
	height = ch + 2
	return width, height
}

// SetSurface assigns the frame's region and reshapes the child into the
// one-cell inset. A frame smaller than 2x2 withdraws the child.
func (f *Frame) SetSurface(s Surface) {
	f.surface = s
	if f.child == nil {
		return
	}
	if s == nil {
		f.child.SetSurface(nil)
		return
	}
	inner := s.Rect().Inset(1)
	if inner.IsEmpty() {
		f.child.SetSurface(nil)
		return
	}
	f.child.SetSurface(NewSubSurface(s, inner))
}

// Render paints the border, the centered title, and the child.
func (f *Frame) Render() {
	s := f.surface
	if s == nil {
		return
	}
	w, h := s.Size()
	if w < 2 || h < 2 {
		s.Clear()
		return
	}

	drawBox(s, s.Rect(), f.line, f.pen)
	f.renderTitle(s, w)

	if f.child != nil && f.child.Surface() != nil {
		f.child.Render()
	}
}

// renderTitle centers the title in the top border, truncating with an
// ellipsis when the edge is too narrow. Display width is measured, so wide
// characters center correctly.
func (f *Frame) renderTitle(s Surface, w int) {
	if f.title == "" {
		return
	}
	available := w - 2
	if available <= 0 {
		return
	}

	title := f.title
	titleWidth := TextWidth(title)
	if titleWidth > available {
		kept := make([]rune, 0, len(title))
		keptWidth := 0
		for _, r := range title {
			rw := RuneWidth(r)
			// Reserve one cell for the ellipsis.
			if keptWidth+rw > available-1 {
				break
			}
			kept = append(kept, r)
			keptWidth += rw
		}
		title = string(kept) + "…"
		titleWidth = keptWidth + 1
	}

	startX := 1 + (available-titleWidth)/2
	s.SetString(startX, 0, title, f.titlePen)
}

// HandleKey forwards the event to the child.
func (f *Frame) HandleKey(ev KeyEvent) bool {
	if f.child == nil {
		return false
	}
	return f.child.HandleKey(ev)
}

// HandleMouse forwards events inside the border to the child, translated
// into the child's coordinates.
func (f *Frame) HandleMouse(ev MouseEvent) bool {
	if f.child == nil || f.child.Surface() == nil || f.surface == nil {
		return false
	}
	inner := f.surface.Rect().Inset(1)
	if !inner.Contains(ev.X, ev.Y) {
		return false
	}
	return f.child.HandleMouse(ev.Translate(-1, -1))
}
