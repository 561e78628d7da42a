package widgets

import "unicode"

// scrollMargin is how close (in columns) the cursor may get to either
// visible edge before the window scrolls.
const scrollMargin = 5

// Entry is a single-line text input. It keeps a rune buffer, a cursor
// position (rune index), and a horizontal scroll offset (columns), and
// repairs only the damaged part of its line on each edit: pure cursor moves
// reposition the terminal cursor, edits scrolled out of view paint nothing,
// and in-view edits shift the trailing text in place when the surface
// supports it, falling back to repainting from the edit point to the right
// edge.
//
// All mutations go through Splice; the editing key bindings are expressed
// in terms of it.
type Entry struct {
	BaseWidget

	text      []rune
	cursor    int // rune index, 0 <= cursor <= len(text)
	scroll    int // leftmost visible column
	overwrite bool

	pen      Style
	onCommit func(string)
	keymap   KeyMap
}

var _ Widget = (*Entry)(nil)

// EntryOption configures an Entry.
type EntryOption func(*Entry)

// WithEntryText sets the initial content, with the cursor at the end.
func WithEntryText(s string) EntryOption {
	return func(e *Entry) {
		e.text = []rune(s)
		e.cursor = len(e.text)
	}
}

// WithEntryPen sets the text pen.
func WithEntryPen(pen Style) EntryOption {
	return func(e *Entry) {
		e.pen = pen
	}
}

// WithEntryOnCommit sets the callback invoked by the commit binding
// (Enter). It receives the buffer content; the buffer itself is left
// unchanged, so clearing is the callback's responsibility.
func WithEntryOnCommit(fn func(string)) EntryOption {
	return func(e *Entry) {
		e.onCommit = fn
	}
}

// NewEntry creates an empty entry.
func NewEntry(opts ...EntryOption) *Entry {
	e := &Entry{}
	for _, opt := range opts {
		opt(e)
	}
	e.keymap = e.buildKeyMap()
	return e
}

// --- State access ---

// Text returns the current buffer content.
func (e *Entry) Text() string {
	return string(e.text)
}

// SetText replaces the buffer, moves the cursor to the end, and repaints.
func (e *Entry) SetText(s string) {
	e.text = []rune(s)
	e.cursor = len(e.text)
	e.recomputeScroll()
	e.Render()
}

// CursorPos returns the cursor position as a rune index.
func (e *Entry) CursorPos() int {
	return e.cursor
}

// SetCursorPos moves the cursor (clamped to the buffer) and scrolls as
// needed.
func (e *Entry) SetCursorPos(pos int) {
	e.moveCursor(pos)
}

// ScrollOffset returns the leftmost visible column.
func (e *Entry) ScrollOffset() int {
	return e.scroll
}

// OverwriteMode returns true when typed characters replace instead of
// insert.
func (e *Entry) OverwriteMode() bool {
	return e.overwrite
}

// SetOverwriteMode toggles between insert and overwrite typing.
func (e *Entry) SetOverwriteMode(on bool) {
	e.overwrite = on
}

// --- Geometry helpers ---

// colOf returns the display column of the rune at index pos, measured from
// the start of the buffer.
func (e *Entry) colOf(pos int) int {
	col := 0
	for i := 0; i < pos && i < len(e.text); i++ {
		col += RuneWidth(e.text[i])
	}
	return col
}

// indexNearestCol returns the rune index whose rendered column is closest
// to col. Ties resolve to the earlier index.
func (e *Entry) indexNearestCol(col int) int {
	best, bestDist := 0, abs(col)
	c := 0
	for i, r := range e.text {
		if d := abs(c - col); d < bestDist {
			best, bestDist = i, d
		}
		c += RuneWidth(r)
	}
	if d := abs(c - col); d < bestDist {
		best = len(e.text)
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// visibleWidth returns the surface width, or 0 when withdrawn.
func (e *Entry) visibleWidth() int {
	if e.surface == nil {
		return 0
	}
	w, _ := e.surface.Size()
	return w
}

// --- Splice, the single mutation primitive ---

// Splice replaces deleteCount runes starting at pos with insert, returning
// the deleted text. Positions are clamped to the buffer. The cursor shifts
// by the length delta when it sat at or after the end of the spliced range,
// moves to the end of the inserted text when it sat inside the range, and
// stays put when it sat before it.
func (e *Entry) Splice(pos, deleteCount int, insert string) string {
	pos = min(max(pos, 0), len(e.text))
	deleteCount = min(max(deleteCount, 0), len(e.text)-pos)
	ins := []rune(insert)

	editCol := e.colOf(pos)
	delWidth := e.colOf(pos+deleteCount) - editCol
	insWidth := TextWidth(insert)
	deleted := string(e.text[pos : pos+deleteCount])

	text := make([]rune, 0, len(e.text)-deleteCount+len(ins))
	text = append(text, e.text[:pos]...)
	text = append(text, ins...)
	text = append(text, e.text[pos+deleteCount:]...)
	e.text = text

	switch {
	case e.cursor >= pos+deleteCount:
		e.cursor += len(ins) - deleteCount
	case e.cursor > pos:
		e.cursor = pos + len(ins)
	}

	scrolled := e.recomputeScroll()
	e.repairDamage(editCol, delWidth, insWidth, scrolled)
	return deleted
}

// --- Scrolling ---

// recomputeScroll shifts the scroll offset by half the visible width,
// repeatedly, until the cursor's rendered column sits outside the edge
// margins, clamped so the offset never goes negative. Returns true if the
// offset changed.
func (e *Entry) recomputeScroll() bool {
	w := e.visibleWidth()
	if w <= 1 {
		return false
	}
	margin := min(scrollMargin, (w-1)/2)
	half := max(w/2, 1)
	old := e.scroll
	cur := e.colOf(e.cursor)

	for cur-e.scroll < margin && e.scroll > 0 {
		e.scroll = max(e.scroll-half, 0)
	}
	for cur-e.scroll > w-1-margin {
		e.scroll += half
	}
	return e.scroll != old
}

// --- Painting ---

// Render repaints the whole visible line and places the cursor.
func (e *Entry) Render() {
	s := e.surface
	if s == nil {
		return
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}
	e.renderSpan(0, w)
	e.placeCursor()
}

// renderSpan repaints the columns [from, to) of the line from the buffer.
func (e *Entry) renderSpan(from, to int) {
	s := e.surface
	if s == nil {
		return
	}
	w, _ := s.Size()
	from = max(from, 0)
	to = min(to, w)
	if from >= to {
		return
	}

	s.ClearRect(NewRect(from, 0, to-from, 1))
	col := -e.scroll
	for _, r := range e.text {
		rw := RuneWidth(r)
		if col >= to {
			break
		}
		if col+rw > from {
			// SetRune clips runes left of the window (col < 0).
			s.SetRune(col, 0, r, e.pen)
		}
		col += rw
	}
}

// placeCursor positions the input cursor at the cursor's visible column.
func (e *Entry) placeCursor() {
	if e.surface == nil {
		return
	}
	e.surface.SetCursor(e.colOf(e.cursor)-e.scroll, 0)
}

// repairDamage issues the minimal screen update for a splice. editCol,
// delWidth and insWidth describe the edit in absolute columns, measured
// before and after the mutation.
func (e *Entry) repairDamage(editCol, delWidth, insWidth int, scrolled bool) {
	s := e.surface
	if s == nil {
		return
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}

	if scrolled {
		// The whole window moved; incremental repair cannot win.
		e.Render()
		return
	}

	vis := editCol - e.scroll
	if vis >= w {
		// Edit fully right of the window: nothing visible changed.
		e.placeCursor()
		return
	}
	if vis < 0 {
		// Edit left of the window. The original left this as an
		// unhandled internal error; here it clamps and repaints the
		// whole visible line.
		e.renderSpan(0, w)
		e.placeCursor()
		return
	}

	switch {
	case insWidth > delWidth:
		if s.InsertCols(0, vis, insWidth-delWidth, e.pen) {
			e.renderSpan(vis, min(vis+insWidth, w))
		} else {
			e.renderSpan(vis, w)
		}
	case delWidth > insWidth:
		if s.DeleteCols(0, vis, delWidth-insWidth, e.pen) {
			e.renderSpan(vis, min(vis+insWidth, w))
			// The left shift exposed columns at the right edge; repaint
			// them with whatever slid into view.
			e.renderSpan(w-(delWidth-insWidth), w)
		} else {
			e.renderSpan(vis, w)
		}
	case insWidth > 0:
		// Same width in as out: repaint just the replaced span.
		e.renderSpan(vis, min(vis+insWidth, w))
	}
	e.placeCursor()
}

// moveCursor clamps and moves the cursor, scrolling and repainting as
// little as possible.
func (e *Entry) moveCursor(pos int) {
	e.cursor = min(max(pos, 0), len(e.text))
	if e.recomputeScroll() {
		e.Render()
		return
	}
	e.placeCursor()
}

// --- Word boundaries ---

func isWordSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// WordStartBackward returns the start of the word at or before pos,
// skipping any whitespace in between. Returns 0 when no boundary exists.
func (e *Entry) WordStartBackward(pos int) int {
	i := min(max(pos, 0), len(e.text))
	for i > 0 && isWordSpace(e.text[i-1]) {
		i--
	}
	for i > 0 && !isWordSpace(e.text[i-1]) {
		i--
	}
	return i
}

// WordEndBackward returns the position just past the word preceding pos.
// Returns 0 when no boundary exists.
func (e *Entry) WordEndBackward(pos int) int {
	i := min(max(pos, 0), len(e.text))
	for i > 0 && !isWordSpace(e.text[i-1]) {
		i--
	}
	for i > 0 && isWordSpace(e.text[i-1]) {
		i--
	}
	return i
}

// WordStartForward returns the start of the next word strictly after the
// word containing pos, or def when there is none.
func (e *Entry) WordStartForward(pos, def int) int {
	i := min(max(pos, 0), len(e.text))
	for i < len(e.text) && !isWordSpace(e.text[i]) {
		i++
	}
	for i < len(e.text) && isWordSpace(e.text[i]) {
		i++
	}
	if i >= len(e.text) {
		return def
	}
	return i
}

// WordEndForward returns the position just past the word at or after pos,
// or def when there is none.
func (e *Entry) WordEndForward(pos, def int) int {
	i := min(max(pos, 0), len(e.text))
	for i < len(e.text) && isWordSpace(e.text[i]) {
		i++
	}
	if i >= len(e.text) {
		return def
	}
	for i < len(e.text) && !isWordSpace(e.text[i]) {
		i++
	}
	return i
}

// --- Input ---

// buildKeyMap wires the editing bindings. Every edit is a Splice; every
// motion is a moveCursor.
func (e *Entry) buildKeyMap() KeyMap {
	return KeyMap{
		OnRunes(e.typeRune),

		// Motion
		OnKey(KeyLeft, func(KeyEvent) { e.moveCursor(e.cursor - 1) }),
		OnKey(KeyRight, func(KeyEvent) { e.moveCursor(e.cursor + 1) }),
		OnKeyMod(KeyLeft, ModCtrl, func(KeyEvent) { e.moveCursor(e.WordStartBackward(e.cursor)) }),
		OnKeyMod(KeyRight, ModCtrl, func(KeyEvent) { e.moveCursor(e.WordEndForward(e.cursor, len(e.text))) }),
		OnRuneMod('b', ModAlt, func(KeyEvent) { e.moveCursor(e.WordStartBackward(e.cursor)) }),
		OnRuneMod('f', ModAlt, func(KeyEvent) { e.moveCursor(e.WordEndForward(e.cursor, len(e.text))) }),
		OnKey(KeyHome, func(KeyEvent) { e.moveCursor(0) }),
		OnKey(KeyEnd, func(KeyEvent) { e.moveCursor(len(e.text)) }),
		OnKey(KeyCtrlA, func(KeyEvent) { e.moveCursor(0) }),
		OnKey(KeyCtrlE, func(KeyEvent) { e.moveCursor(len(e.text)) }),

		// Deletion
		OnKey(KeyBackspace, func(KeyEvent) { e.deleteBackward() }),
		OnKey(KeyDelete, func(KeyEvent) { e.deleteForward() }),
		OnKey(KeyCtrlD, func(KeyEvent) { e.deleteForward() }),
		OnKey(KeyCtrlW, func(KeyEvent) { e.deleteWordBackward() }),
		OnKeyMod(KeyBackspace, ModAlt, func(KeyEvent) { e.deleteWordBackward() }),
		OnRuneMod('d', ModAlt, func(KeyEvent) { e.deleteWordForward() }),
		OnKey(KeyCtrlU, func(KeyEvent) { e.Splice(0, e.cursor, "") }),
		OnKey(KeyCtrlK, func(KeyEvent) { e.Splice(e.cursor, len(e.text)-e.cursor, "") }),

		// Modes and commit
		OnKey(KeyInsert, func(KeyEvent) { e.overwrite = !e.overwrite }),
		OnKey(KeyEnter, func(KeyEvent) { e.commit() }),
	}
}

// typeRune inserts (or overwrites) the typed character at the cursor. An
// overwriting splice leaves the cursor at the edit position, so it is
// advanced past the new character explicitly.
func (e *Entry) typeRune(ev KeyEvent) {
	del := 0
	if e.overwrite && e.cursor < len(e.text) {
		del = 1
	}
	pos := e.cursor
	e.Splice(pos, del, string(ev.Rune))
	if e.cursor == pos {
		e.moveCursor(pos + 1)
	}
}

func (e *Entry) deleteBackward() {
	if e.cursor > 0 {
		e.Splice(e.cursor-1, 1, "")
	}
}

func (e *Entry) deleteForward() {
	if e.cursor < len(e.text) {
		e.Splice(e.cursor, 1, "")
	}
}

func (e *Entry) deleteWordBackward() {
	start := e.WordStartBackward(e.cursor)
	if start < e.cursor {
		e.Splice(start, e.cursor-start, "")
	}
}

func (e *Entry) deleteWordForward() {
	end := e.WordEndForward(e.cursor, len(e.text))
	if end > e.cursor {
		e.Splice(e.cursor, end-e.cursor, "")
	}
}

// commit invokes the commit callback with the buffer content, only when the
// buffer is non-empty. The buffer is left unchanged.
func (e *Entry) commit() {
	if len(e.text) == 0 || e.onCommit == nil {
		return
	}
	e.onCommit(string(e.text))
}

// SizeHint requests one line, wide enough for the content plus the cursor
// cell.
func (e *Entry) SizeHint() (width, height int) {
	return e.colOf(len(e.text)) + 1, 1
}

// SetSurface assigns the entry's region and re-derives the scroll offset
// for the new width.
func (e *Entry) SetSurface(s Surface) {
	e.surface = s
	if s != nil {
		e.recomputeScroll()
	}
}

// HandleKey runs the event through the editing bindings.
func (e *Entry) HandleKey(ev KeyEvent) bool {
	return e.keymap.Handle(ev)
}

// HandleMouse places the cursor at the rune whose rendered column is
// closest to the click.
func (e *Entry) HandleMouse(ev MouseEvent) bool {
	if ev.Action != MousePress || ev.Button != MouseLeft {
		return false
	}
	e.moveCursor(e.indexNearestCol(ev.X + e.scroll))
	return true
}
