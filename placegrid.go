package widgets

import "fmt"

// Placegrid is a placeholder widget that outlines its area, crosses it with
// diagonals, and prints its current size in the middle. It exists to make
// layout behavior visible in demos and tests.
type Placegrid struct {
	BaseWidget

	pen Style
}

var _ Widget = (*Placegrid)(nil)

// PlacegridOption configures a Placegrid.
type PlacegridOption func(*Placegrid)

// WithPlacegridPen sets the pen.
func WithPlacegridPen(pen Style) PlacegridOption {
	return func(p *Placegrid) {
		p.pen = pen
	}
}

// NewPlacegrid creates a placeholder widget.
func NewPlacegrid(opts ...PlacegridOption) *Placegrid {
	p := &Placegrid{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SizeHint requests the minimal 1x1 cell; Placegrid is meant to be
// stretched by its container.
func (p *Placegrid) SizeHint() (width, height int) {
	return 1, 1
}

// Render paints the outline, the diagonals, and the size label.
func (p *Placegrid) Render() {
	s := p.surface
	if s == nil {
		return
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}

	s.Clear()
	drawBox(s, s.Rect(), LineSingle, p.pen)

	// Diagonals, skipping the corners the box already owns.
	if w > 2 && h > 2 {
		for y := 1; y < h-1; y++ {
			down := 1 + (y*(w-3))/(h-1)
			up := w - 2 - (y*(w-3))/(h-1)
			s.SetRune(down, y, '\\', p.pen)
			s.SetRune(up, y, '/', p.pen)
		}
	}

	label := fmt.Sprintf("%dx%d", w, h)
	if TextWidth(label) <= w {
		s.SetString((w-TextWidth(label))/2, h/2, label, p.pen)
	}
}
