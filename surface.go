package widgets

import "strings"

// Surface is the rectangular drawing region handed to a widget by its
// parent. Containers partition their own surface into disjoint sub-surfaces
// for children; a child whose allocation collapses to zero size has its
// surface withdrawn (SetSurface(nil)) rather than receiving a degenerate
// one.
//
// All coordinates are local to the surface, (0, 0) top-left. Painting
// outside the surface bounds is silently clipped.
type Surface interface {
	// Size returns the surface dimensions (columns, lines).
	Size() (width, height int)

	// Rect returns the surface bounds as a Rect at (0, 0).
	Rect() Rect

	// SetRune paints a single rune with the given pen.
	SetRune(x, y int, r rune, pen Style)

	// SetString paints a string without wrapping and returns the display
	// width consumed.
	SetString(x, y int, s string, pen Style) int

	// Fill paints a rectangle with the given rune and pen.
	Fill(rect Rect, r rune, pen Style)

	// Clear erases the whole surface to spaces with the default pen.
	Clear()

	// ClearRect erases a rectangular region.
	ClearRect(rect Rect)

	// SetCursor places the input cursor, used by focusable widgets.
	SetCursor(x, y int)

	// InsertCols shifts row y right by n cells starting at column x,
	// filling the vacated cells with spaces in the given pen. Returns
	// false when the surface cannot shift in place; callers must then
	// repaint the affected span themselves.
	InsertCols(y, x, n int, pen Style) bool

	// DeleteCols shifts row y left by n cells starting at column x,
	// filling the exposed cells at the right edge with spaces in the
	// given pen. Returns false when unsupported, as with InsertCols.
	DeleteCols(y, x, n int, pen Style) bool
}

// colShifter is the internal fast path behind InsertCols/DeleteCols: a
// bounded in-row shift that never disturbs cells at or beyond limit.
// SubSurface uses it to shift within its own region without touching
// sibling regions of the shared parent.
type colShifter interface {
	shiftCols(y, x, limit, n int, pen Style) bool
}

// BufferSurface is a double-buffered 2D grid of cells implementing Surface.
// Writes go to the back buffer; Flush() computes the damage diff and swaps
// buffers. It is the reference surface used by the examples and tests, and
// the natural backing for a terminal renderer.
type BufferSurface struct {
	front  []Cell // currently displayed state
	back   []Cell // state being built
	width  int
	height int

	cursorX int
	cursorY int
}

var _ Surface = (*BufferSurface)(nil)

// CellChange represents a single cell that differs between front and back
// buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBufferSurface creates a new double-buffered grid of the specified
// dimensions. Both buffers are initialized with spaces and default styling.
func NewBufferSurface(width, height int) *BufferSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	size := width * height
	front := make([]Cell, size)
	back := make([]Cell, size)

	defaultCell := NewCell(' ', NewStyle())
	for i := range front {
		front[i] = defaultCell
		back[i] = defaultCell
	}

	return &BufferSurface{
		front:  front,
		back:   back,
		width:  width,
		height: height,
	}
}

// Size returns the surface dimensions (columns, lines).
func (b *BufferSurface) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the surface bounds as a Rect starting at (0, 0).
func (b *BufferSurface) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *BufferSurface) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y) from the back buffer.
// Returns an empty Cell if the position is out of bounds.
func (b *BufferSurface) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.back[idx]
}

// SetCell sets the cell at position (x, y) in the back buffer.
// Does nothing if the position is out of bounds.
func (b *BufferSurface) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.back[idx] = c
}

// SetRune sets a rune at position (x, y) with the given pen.
// Handles wide characters by setting continuation cells and properly clears
// overlapped wide characters.
func (b *BufferSurface) SetRune(x, y int, r rune, pen Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	width := RuneWidth(r)
	currentCell := b.Cell(x, y)

	// If target position is a continuation cell, clear the originating wide char
	if currentCell.IsContinuation() {
		b.clearWideCharAt(x, y)
	}

	// If target position is the START of a wide character, clear its continuation
	if currentCell.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, NewCell(' ', NewStyle()))
	}

	// If placing a wide char would overlap an existing wide char at x+1, clear it
	if width == 2 && x+1 < b.width {
		next := b.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	// Wide char at the last column can't fit; paint a space instead
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', pen))
		return
	}

	b.SetCell(x, y, NewCellWithWidth(r, pen, uint8(width)))

	// Set continuation cell for wide characters
	if width == 2 {
		b.SetCell(x+1, y, NewCellWithWidth(0, pen, 0))
	}
}

// clearWideCharAt clears a wide character that includes position (x, y).
// If (x, y) is a continuation cell, finds and clears the originating cell.
// If (x, y) is a wide char start, clears it and its continuation.
func (b *BufferSurface) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	defaultCell := NewCell(' ', NewStyle())

	if cell.IsContinuation() {
		if x > 0 {
			b.SetCell(x-1, y, defaultCell)
		}
		b.SetCell(x, y, defaultCell)
	} else if cell.Width == 2 {
		b.SetCell(x, y, defaultCell)
		if x+1 < b.width {
			b.SetCell(x+1, y, defaultCell)
		}
	}
}

// SetString writes a string starting at position (x, y) with the given pen.
// Returns the total display width consumed (handles wide characters).
// Stops at the surface edge without wrapping.
func (b *BufferSurface) SetString(x, y int, s string, pen Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	totalWidth := 0
	curX := x

	for _, r := range s {
		if curX >= b.width {
			break
		}
		if curX < 0 {
			// Skip characters before the visible area
			curX += RuneWidth(r)
			continue
		}

		width := RuneWidth(r)

		// Wide char that doesn't fit ends the string
		if width == 2 && curX+1 >= b.width {
			break
		}

		b.SetRune(curX, y, r, pen)
		curX += width
		totalWidth += width
	}

	return totalWidth
}

// Fill fills a rectangle with the given rune and pen.
// Handles wide characters appropriately.
func (b *BufferSurface) Fill(rect Rect, r rune, pen Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				// Wide char doesn't fit in remaining space, fill with space
				b.SetRune(x, y, ' ', pen)
				x++
			} else {
				b.SetRune(x, y, r, pen)
				x += width
			}
		}
	}
}

// Clear clears the entire back buffer to spaces with default style.
func (b *BufferSurface) Clear() {
	b.ClearRect(b.Rect())
}

// ClearRect clears a rectangular region to spaces with default style.
func (b *BufferSurface) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	defaultCell := NewCell(' ', NewStyle())

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			// Handle wide character cleanup at the region edges
			cell := b.Cell(x, y)
			if cell.IsContinuation() && x == rect.X {
				if x > 0 {
					b.SetCell(x-1, y, defaultCell)
				}
			}
			if cell.Width == 2 && x+1 == rect.Right() {
				if x+1 < b.width {
					b.SetCell(x+1, y, defaultCell)
				}
			}
			b.SetCell(x, y, defaultCell)
		}
	}
}

// SetCursor places the input cursor. Out-of-bounds positions are clamped to
// the surface.
func (b *BufferSurface) SetCursor(x, y int) {
	if b.width == 0 || b.height == 0 {
		b.cursorX, b.cursorY = 0, 0
		return
	}
	b.cursorX = min(max(x, 0), b.width-1)
	b.cursorY = min(max(y, 0), b.height-1)
}

// Cursor returns the current input cursor position.
func (b *BufferSurface) Cursor() (x, y int) {
	return b.cursorX, b.cursorY
}

// InsertCols shifts row y right by n cells starting at column x.
func (b *BufferSurface) InsertCols(y, x, n int, pen Style) bool {
	return b.shiftCols(y, x, b.width, n, pen)
}

// DeleteCols shifts row y left by n cells starting at column x.
func (b *BufferSurface) DeleteCols(y, x, n int, pen Style) bool {
	return b.shiftCols(y, x, b.width, -n, pen)
}

// shiftCols moves cells within [x, limit) of row y by n columns (right for
// positive n, left for negative), filling vacated cells with spaces in pen.
// Cells at or beyond limit are never touched.
func (b *BufferSurface) shiftCols(y, x, limit, n int, pen Style) bool {
	if y < 0 || y >= b.height {
		return true // nothing to shift, but the operation is supported
	}
	limit = min(limit, b.width)
	x = max(x, 0)
	if x >= limit || n == 0 {
		return true
	}

	row := b.back[y*b.width : y*b.width+b.width]
	blank := NewCell(' ', pen)

	if n > 0 {
		if n >= limit-x {
			for i := x; i < limit; i++ {
				row[i] = blank
			}
			return true
		}
		copy(row[x+n:limit], row[x:limit-n])
		for i := x; i < x+n; i++ {
			row[i] = blank
		}
		return true
	}

	m := -n
	if m >= limit-x {
		for i := x; i < limit; i++ {
			row[i] = blank
		}
		return true
	}
	copy(row[x:limit-m], row[x+m:limit])
	for i := limit - m; i < limit; i++ {
		row[i] = blank
	}
	return true
}

// Diff returns all cells that changed between front and back buffers.
// Cells are returned in row-major order (top-to-bottom, left-to-right)
// which optimizes terminal output by minimizing cursor moves.
func (b *BufferSurface) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width) // pre-allocate one row
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			if !b.back[idx].Equal(b.front[idx]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[idx]})
			}
		}
	}
	return changes
}

// Flush returns the damage diff and swaps the back buffer into the front.
// A renderer applies the returned changes to the terminal.
func (b *BufferSurface) Flush() []CellChange {
	changes := b.Diff()
	copy(b.front, b.back)
	return changes
}

// String renders the back buffer to a string for debugging.
// Each row is separated by a newline. Continuation cells (from wide
// characters) are skipped.
func (b *BufferSurface) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the back buffer content with trailing spaces removed
// from each line.
func (b *BufferSurface) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(cell.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// Resize changes the surface dimensions, preserving content where possible.
// Content in the overlapping region is preserved; new areas are cleared.
func (b *BufferSurface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	if width == b.width && height == b.height {
		return
	}

	newSize := width * height
	newFront := make([]Cell, newSize)
	newBack := make([]Cell, newSize)

	defaultCell := NewCell(' ', NewStyle())
	for i := range newFront {
		newFront[i] = defaultCell
		newBack[i] = defaultCell
	}

	copyWidth := min(width, b.width)
	copyHeight := min(height, b.height)

	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			newFront[y*width+x] = b.front[y*b.width+x]
			newBack[y*width+x] = b.back[y*b.width+x]
		}
	}

	b.front = newFront
	b.back = newBack
	b.width = width
	b.height = height
}

// SubSurface is an offset, clipped view onto a parent surface. Containers
// hand one to each child so that children can paint in local coordinates
// without being able to reach sibling regions.
type SubSurface struct {
	parent Surface
	rect   Rect // region within the parent, already clipped to it
}

var _ Surface = (*SubSurface)(nil)

// NewSubSurface creates a view onto the given region of parent. The region
// is clipped to the parent's bounds; an entirely out-of-bounds region
// yields a zero-sized surface.
func NewSubSurface(parent Surface, rect Rect) *SubSurface {
	return &SubSurface{
		parent: parent,
		rect:   rect.Intersect(parent.Rect()),
	}
}

// Size returns the view dimensions (columns, lines).
func (s *SubSurface) Size() (width, height int) {
	return s.rect.Width, s.rect.Height
}

// Rect returns the view bounds as a Rect at (0, 0).
func (s *SubSurface) Rect() Rect {
	return NewRect(0, 0, s.rect.Width, s.rect.Height)
}

// SetRune paints a rune at local (x, y), clipped to the view.
func (s *SubSurface) SetRune(x, y int, r rune, pen Style) {
	if x < 0 || x >= s.rect.Width || y < 0 || y >= s.rect.Height {
		return
	}
	// A wide rune half inside the view is clipped to a space so it cannot
	// bleed into a sibling region.
	if RuneWidth(r) == 2 && x+1 >= s.rect.Width {
		s.parent.SetRune(s.rect.X+x, s.rect.Y+y, ' ', pen)
		return
	}
	s.parent.SetRune(s.rect.X+x, s.rect.Y+y, r, pen)
}

// SetString paints a string at local (x, y), clipped to the view, and
// returns the display width consumed.
func (s *SubSurface) SetString(x, y int, str string, pen Style) int {
	if y < 0 || y >= s.rect.Height {
		return 0
	}

	totalWidth := 0
	curX := x
	for _, r := range str {
		if curX >= s.rect.Width {
			break
		}
		width := RuneWidth(r)
		if curX < 0 {
			curX += width
			continue
		}
		if width == 2 && curX+1 >= s.rect.Width {
			break
		}
		s.SetRune(curX, y, r, pen)
		curX += width
		totalWidth += width
	}
	return totalWidth
}

// Fill paints a local rectangle, clipped to the view.
func (s *SubSurface) Fill(rect Rect, r rune, pen Style) {
	rect = rect.Intersect(s.Rect())
	if rect.IsEmpty() {
		return
	}
	s.parent.Fill(rect.Translate(s.rect.X, s.rect.Y), r, pen)
}

// Clear erases the whole view.
func (s *SubSurface) Clear() {
	s.ClearRect(s.Rect())
}

// ClearRect erases a local rectangular region, clipped to the view.
func (s *SubSurface) ClearRect(rect Rect) {
	rect = rect.Intersect(s.Rect())
	if rect.IsEmpty() {
		return
	}
	s.parent.ClearRect(rect.Translate(s.rect.X, s.rect.Y))
}

// SetCursor places the input cursor, translated into the parent.
func (s *SubSurface) SetCursor(x, y int) {
	if s.rect.IsEmpty() {
		return
	}
	x = min(max(x, 0), s.rect.Width-1)
	y = min(max(y, 0), s.rect.Height-1)
	s.parent.SetCursor(s.rect.X+x, s.rect.Y+y)
}

// InsertCols shifts within the view only; sibling regions of the shared
// parent are never disturbed. Returns false when the root surface has no
// in-place shift support.
func (s *SubSurface) InsertCols(y, x, n int, pen Style) bool {
	return s.shiftCols(y, x, s.rect.Width, n, pen)
}

// DeleteCols shifts within the view only, like InsertCols.
func (s *SubSurface) DeleteCols(y, x, n int, pen Style) bool {
	return s.shiftCols(y, x, s.rect.Width, -n, pen)
}

func (s *SubSurface) shiftCols(y, x, limit, n int, pen Style) bool {
	if y < 0 || y >= s.rect.Height {
		return true
	}
	limit = min(limit, s.rect.Width)
	x = max(x, 0)
	if x >= limit || n == 0 {
		return true
	}
	shifter, ok := s.parent.(colShifter)
	if !ok {
		return false
	}
	return shifter.shiftCols(s.rect.Y+y, s.rect.X+x, s.rect.X+limit, n, pen)
}
