package widgets

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in a surface buffer.
// Wide characters (CJK, emoji) occupy multiple cells; the first cell holds
// the rune, subsequent cells are marked as continuations.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// NewCellWithWidth creates a new Cell with an explicit width.
// Use this for continuation cells (width 0) or when width is already known.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: width,
	}
}

// IsContinuation returns true if this cell is a continuation of a wide
// character. Continuation cells have Width == 0 and follow the primary cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// RuneWidth returns the display width of a rune in terminal cells: 1 for
// most characters, 2 for wide characters (CJK, most emoji). Control and
// zero-width runes are reported as 1 because a cell grid cannot place a
// glyph in less than one cell.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// TextWidth returns the display width of a string in terminal cells,
// measured the same way the surface paints it.
func TextWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
