package widgets

import "errors"

// ErrBadThickness is returned when configuring a split divider thinner than
// one cell.
var ErrBadThickness = errors.New("widgets: divider thickness must be at least 1")

// splitAxis selects which axis a Split divides.
type splitAxis uint8

const (
	// axisHorizontal stacks children vertically with a horizontal divider
	// bar between them (HSplit).
	axisHorizontal splitAxis = iota
	// axisVertical places children side by side with a vertical divider
	// (VSplit).
	axisVertical
)

// Split divides its surface between two children along one axis, separated
// by a draggable divider bar. Pressing the primary button on the divider
// starts a drag; motion moves the split point (clamped to the valid range)
// and releasing the button ends the drag wherever the pointer is.
type Split struct {
	BaseWidget

	axis      splitAxis
	first     Widget
	second    Widget
	pos       int // split position along the axis; -1 until first reshape
	thickness int
	line      LineStyle
	pen       Style
	activePen Style
	dragging  bool

	firstRect   Rect
	dividerRect Rect
	secondRect  Rect
}

var _ Widget = (*Split)(nil)

// SplitOption configures a Split.
type SplitOption func(*Split)

// WithSplitThickness sets the divider thickness in cells. Values below 1
// are rejected and leave the current thickness; use SetThickness to observe
// the rejection.
func WithSplitThickness(n int) SplitOption {
	return func(s *Split) {
		_ = s.SetThickness(n)
	}
}

// WithSplitPosition sets the initial split position. It is clamped to the
// valid range on the first reshape.
func WithSplitPosition(pos int) SplitOption {
	return func(s *Split) {
		s.pos = pos
	}
}

// WithSplitLineStyle sets the divider line style. Unknown styles are
// rejected and leave the current style in place.
func WithSplitLineStyle(l LineStyle) SplitOption {
	return func(s *Split) {
		if l.Valid() {
			s.line = l
		}
	}
}

// WithSplitPen sets the divider pen.
func WithSplitPen(pen Style) SplitOption {
	return func(s *Split) {
		s.pen = pen
	}
}

// WithSplitActivePen sets the divider pen used while dragging.
func WithSplitActivePen(pen Style) SplitOption {
	return func(s *Split) {
		s.activePen = pen
	}
}

// NewHSplit stacks top above bottom with a horizontal divider bar.
func NewHSplit(top, bottom Widget, opts ...SplitOption) *Split {
	return newSplit(axisHorizontal, top, bottom, opts)
}

// NewVSplit places left beside right with a vertical divider bar.
func NewVSplit(left, right Widget, opts ...SplitOption) *Split {
	return newSplit(axisVertical, left, right, opts)
}

func newSplit(axis splitAxis, first, second Widget, opts []SplitOption) *Split {
	s := &Split{
		axis:      axis,
		first:     first,
		second:    second,
		pos:       -1,
		thickness: 1,
		line:      LineSingle,
		activePen: NewStyle().Bold(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetThickness changes the divider thickness. Values below 1 are rejected
// with ErrBadThickness.
func (s *Split) SetThickness(n int) error {
	if n < 1 {
		return ErrBadThickness
	}
	s.thickness = n
	return nil
}

// Position returns the current split position along the axis, or -1 before
// the first reshape.
func (s *Split) Position() int {
	return s.pos
}

// SetPosition moves the split point and reshapes. The position is clamped
// to [0, extent-thickness].
func (s *Split) SetPosition(pos int) {
	s.pos = pos
	s.reshape()
}

// Dragging returns true while the divider is being dragged.
func (s *Split) Dragging() bool {
	return s.dragging
}

// SizeHint sums the children's requests along the split axis (plus the
// divider) and takes the maximum across it.
func (s *Split) SizeHint() (width, height int) {
	w1, h1 := s.first.SizeHint()
	w2, h2 := s.second.SizeHint()
	if s.axis == axisHorizontal {
		return max(w1, w2), h1 + h2 + s.thickness
	}
	return w1 + w2 + s.thickness, max(h1, h2)
}

// SetSurface assigns the split's region and reshapes both children.
func (s *Split) SetSurface(surf Surface) {
	s.surface = surf
	s.reshape()
}

// extent returns the surface length along the split axis and across it.
func (s *Split) extent() (along, across int) {
	w, h := s.surface.Size()
	if s.axis == axisHorizontal {
		return h, w
	}
	return w, h
}

// reshape recomputes the two child regions and the divider bar from the
// split position. When the extent cannot fit the divider, both children are
// withdrawn.
func (s *Split) reshape() {
	s.firstRect, s.dividerRect, s.secondRect = Rect{}, Rect{}, Rect{}
	if s.surface == nil {
		s.first.SetSurface(nil)
		s.second.SetSurface(nil)
		return
	}

	along, across := s.extent()
	if along < s.thickness || across <= 0 {
		s.first.SetSurface(nil)
		s.second.SetSurface(nil)
		return
	}

	if s.pos < 0 {
		s.pos = s.defaultPosition(along)
	}
	s.pos = min(max(s.pos, 0), along-s.thickness)

	if s.axis == axisHorizontal {
		s.firstRect = NewRect(0, 0, across, s.pos)
		s.dividerRect = NewRect(0, s.pos, across, s.thickness)
		s.secondRect = NewRect(0, s.pos+s.thickness, across, along-s.pos-s.thickness)
	} else {
		s.firstRect = NewRect(0, 0, s.pos, across)
		s.dividerRect = NewRect(s.pos, 0, s.thickness, across)
		s.secondRect = NewRect(s.pos+s.thickness, 0, along-s.pos-s.thickness, across)
	}

	s.assign(s.first, s.firstRect)
	s.assign(s.second, s.secondRect)
}

// assign gives the child a sub-surface for rect, or withdraws it when the
// rect is degenerate.
func (s *Split) assign(child Widget, rect Rect) {
	if rect.IsEmpty() {
		child.SetSurface(nil)
		return
	}
	child.SetSurface(NewSubSurface(s.surface, rect))
}

// defaultPosition places the divider proportionally to the children's
// requested sizes along the axis, falling back to the middle.
func (s *Split) defaultPosition(along int) int {
	var a, b int
	if s.axis == axisHorizontal {
		_, a = s.first.SizeHint()
		_, b = s.second.SizeHint()
	} else {
		a, _ = s.first.SizeHint()
		b, _ = s.second.SizeHint()
	}
	usable := along - s.thickness
	if a+b <= 0 {
		return usable / 2
	}
	return usable * a / (a + b)
}

// Render paints the divider bar and both children. The divider uses the
// active pen while dragging.
func (s *Split) Render() {
	if s.surface == nil {
		return
	}

	if !s.dividerRect.IsEmpty() {
		pen := s.pen
		if s.dragging {
			pen = s.activePen
		}
		bar := s.line.chars().Horizontal
		if s.axis == axisVertical {
			bar = s.line.chars().Vertical
		}
		s.surface.Fill(s.dividerRect, bar, pen)
	}

	if s.first.Surface() != nil {
		s.first.Render()
	}
	if s.second.Surface() != nil {
		s.second.Render()
	}
}

// HandleKey forwards the event to the first child, then the second.
func (s *Split) HandleKey(ev KeyEvent) bool {
	return s.first.HandleKey(ev) || s.second.HandleKey(ev)
}

// HandleMouse implements divider dragging and routes everything else to the
// child under the pointer.
func (s *Split) HandleMouse(ev MouseEvent) bool {
	if s.surface == nil {
		return false
	}

	if s.dragging {
		switch ev.Action {
		case MouseDrag:
			s.dragTo(ev)
			return true
		case MouseRelease:
			// Release ends the drag even when the pointer has left the
			// divider area.
			s.dragTo(ev)
			s.dragging = false
			s.Render()
			return true
		}
	}

	if ev.Action == MousePress && ev.Button == MouseLeft && s.dividerRect.Contains(ev.X, ev.Y) {
		s.dragging = true
		s.Render()
		return true
	}

	if s.first.Surface() != nil && s.firstRect.Contains(ev.X, ev.Y) {
		return s.first.HandleMouse(ev.Translate(-s.firstRect.X, -s.firstRect.Y))
	}
	if s.second.Surface() != nil && s.secondRect.Contains(ev.X, ev.Y) {
		return s.second.HandleMouse(ev.Translate(-s.secondRect.X, -s.secondRect.Y))
	}
	return false
}

// dragTo moves the split point to the pointer and repaints.
func (s *Split) dragTo(ev MouseEvent) {
	pos := ev.Y
	if s.axis == axisVertical {
		pos = ev.X
	}
	along, _ := s.extent()
	s.pos = min(max(pos, 0), along-s.thickness)
	s.reshape()
	s.Render()
}
