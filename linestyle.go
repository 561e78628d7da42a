package widgets

// LineStyle selects the box-drawing characters used by Frame borders,
// Split dividers, and Placegrid outlines.
type LineStyle int

const (
	// LineSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	LineSingle LineStyle = iota
	// LineDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	LineDouble
	// LineRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	LineRounded
	// LineThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	LineThick
	// LineASCII uses plain ASCII characters (-, |, +)
	LineASCII
)

// Valid returns true for a known line style.
func (l LineStyle) Valid() bool {
	return l >= LineSingle && l <= LineASCII
}

// lineChars holds the characters used to draw one line style.
type lineChars struct {
	TopLeft     rune
	Horizontal  rune
	TopRight    rune
	Vertical    rune
	BottomLeft  rune
	BottomRight rune
}

// chars returns the box-drawing characters for this line style.
// Unknown styles fall back to LineSingle; validation happens at the
// configuration boundary, not at paint time.
func (l LineStyle) chars() lineChars {
	switch l {
	case LineDouble:
		return lineChars{
			TopLeft:     '╔',
			Horizontal:  '═',
			TopRight:    '╗',
			Vertical:    '║',
			BottomLeft:  '╚',
			BottomRight: '╝',
		}
	case LineRounded:
		return lineChars{
			TopLeft:     '╭',
			Horizontal:  '─',
			TopRight:    '╮',
			Vertical:    '│',
			BottomLeft:  '╰',
			BottomRight: '╯',
		}
	case LineThick:
		return lineChars{
			TopLeft:     '┏',
			Horizontal:  '━',
			TopRight:    '┓',
			Vertical:    '┃',
			BottomLeft:  '┗',
			BottomRight: '┛',
		}
	case LineASCII:
		return lineChars{
			TopLeft:     '+',
			Horizontal:  '-',
			TopRight:    '+',
			Vertical:    '|',
			BottomLeft:  '+',
			BottomRight: '+',
		}
	default:
		return lineChars{
			TopLeft:     '┌',
			Horizontal:  '─',
			TopRight:    '┐',
			Vertical:    '│',
			BottomLeft:  '└',
			BottomRight: '┘',
		}
	}
}

// drawBox draws a box border on the surface at the specified rectangle.
// If the rectangle is smaller than 2x2, nothing is drawn.
func drawBox(s Surface, rect Rect, line LineStyle, pen Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := line.chars()

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	s.SetRune(left, top, chars.TopLeft, pen)
	s.SetRune(right, top, chars.TopRight, pen)
	s.SetRune(left, bottom, chars.BottomLeft, pen)
	s.SetRune(right, bottom, chars.BottomRight, pen)

	for x := left + 1; x < right; x++ {
		s.SetRune(x, top, chars.Horizontal, pen)
		s.SetRune(x, bottom, chars.Horizontal, pen)
	}

	for y := top + 1; y < bottom; y++ {
		s.SetRune(left, y, chars.Vertical, pen)
		s.SetRune(right, y, chars.Vertical, pen)
	}
}
