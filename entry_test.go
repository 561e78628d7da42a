package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Splice(t *testing.T) {
	type tc struct {
		text        string
		cursor      int
		pos         int
		deleteCount int
		insert      string

		wantText    string
		wantCursor  int
		wantDeleted string
	}

	tests := map[string]tc{
		"insert into empty buffer": {
			text:   "",
			cursor: 0,
			pos:    0, deleteCount: 0, insert: "abc",
			wantText:   "abc",
			wantCursor: 3,
		},
		"insert at cursor": {
			text:   "helloworld",
			cursor: 5,
			pos:    5, deleteCount: 0, insert: ", ",
			wantText:   "hello, world",
			wantCursor: 7,
		},
		"delete returns the removed text": {
			text:   "hello world",
			cursor: 11,
			pos:    5, deleteCount: 6, insert: "",
			wantText:    "hello",
			wantCursor:  5,
			wantDeleted: " world",
		},
		"replace range": {
			text:   "hello world",
			cursor: 11,
			pos:    6, deleteCount: 5, insert: "there",
			wantText:    "hello there",
			wantCursor:  11,
			wantDeleted: "world",
		},
		"cursor before edit stays put": {
			text:   "hello world",
			cursor: 2,
			pos:    6, deleteCount: 5, insert: "x",
			wantText:    "hello x",
			wantCursor:  2,
			wantDeleted: "world",
		},
		"cursor inside deleted range moves to insert end": {
			text:   "hello world",
			cursor: 8,
			pos:    6, deleteCount: 5, insert: "hi",
			wantText:    "hello hi",
			wantCursor:  8,
			wantDeleted: "world",
		},
		"cursor after edit shifts by delta": {
			text:   "hello world",
			cursor: 11,
			pos:    0, deleteCount: 5, insert: "yo",
			wantText:    "yo world",
			wantCursor:  8,
			wantDeleted: "hello",
		},
		"position clamped to buffer": {
			text:   "abc",
			cursor: 3,
			pos:    100, deleteCount: 5, insert: "d",
			wantText:   "abcd",
			wantCursor: 4,
		},
		"delete count clamped to remaining": {
			text:   "abc",
			cursor: 3,
			pos:    1, deleteCount: 100, insert: "",
			wantText:    "a",
			wantCursor:  1,
			wantDeleted: "bc",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEntry(WithEntryText(tt.text))
			e.SetCursorPos(tt.cursor)

			deleted := e.Splice(tt.pos, tt.deleteCount, tt.insert)

			assert.Equal(t, tt.wantText, e.Text())
			assert.Equal(t, tt.wantCursor, e.CursorPos())
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

// The cursor must stay inside the buffer no matter what splices run.
func TestEntry_CursorInvariant(t *testing.T) {
	e := NewEntry(WithEntryText("some initial text"))
	s := NewBufferSurface(12, 1)
	e.SetSurface(s)

	splices := []struct {
		pos, del int
		ins      string
	}{
		{0, 0, "x"}, {5, 10, ""}, {100, 100, "abc"}, {0, 100, ""},
		{0, 0, "hello world again"}, {3, 2, "yy"}, {-5, 3, "z"},
	}
	for _, sp := range splices {
		e.Splice(sp.pos, sp.del, sp.ins)
		require.GreaterOrEqual(t, e.CursorPos(), 0)
		require.LessOrEqual(t, e.CursorPos(), len([]rune(e.Text())))
	}
}

func TestEntry_Typing(t *testing.T) {
	e := NewEntry()
	s := NewBufferSurface(20, 1)
	e.SetSurface(s)

	for _, r := range "hello" {
		require.True(t, e.HandleKey(runeEvent(r)))
	}

	assert.Equal(t, "hello", e.Text())
	assert.Equal(t, 5, e.CursorPos())
	assert.Equal(t, "hello", s.StringTrimmed())

	x, y := s.Cursor()
	assert.Equal(t, 5, x)
	assert.Equal(t, 0, y)
}

func TestEntry_OverwriteMode(t *testing.T) {
	e := NewEntry(WithEntryText("abc"))
	s := NewBufferSurface(20, 1)
	e.SetSurface(s)
	e.SetCursorPos(0)

	require.True(t, e.HandleKey(keyEvent(KeyInsert)))
	assert.True(t, e.OverwriteMode())

	e.HandleKey(runeEvent('X'))
	assert.Equal(t, "Xbc", e.Text())
	assert.Equal(t, 1, e.CursorPos())

	// Overwrite at the end extends instead of replacing.
	e.SetCursorPos(3)
	e.HandleKey(runeEvent('Y'))
	assert.Equal(t, "XbcY", e.Text())
}

func TestEntry_EditingKeys(t *testing.T) {
	type tc struct {
		text   string
		cursor int
		keys   []KeyEvent

		wantText   string
		wantCursor int
	}

	alt := func(r rune) KeyEvent {
		return KeyEvent{Key: KeyRune, Rune: r, Mod: ModAlt}
	}

	tests := map[string]tc{
		"backspace deletes before cursor": {
			text: "abc", cursor: 2,
			keys:     []KeyEvent{keyEvent(KeyBackspace)},
			wantText: "ac", wantCursor: 1,
		},
		"backspace at start is a no-op": {
			text: "abc", cursor: 0,
			keys:     []KeyEvent{keyEvent(KeyBackspace)},
			wantText: "abc", wantCursor: 0,
		},
		"delete removes at cursor": {
			text: "abc", cursor: 1,
			keys:     []KeyEvent{keyEvent(KeyDelete)},
			wantText: "ac", wantCursor: 1,
		},
		"ctrl-d deletes forward": {
			text: "abc", cursor: 0,
			keys:     []KeyEvent{keyEvent(KeyCtrlD)},
			wantText: "bc", wantCursor: 0,
		},
		"ctrl-u kills to start": {
			text: "hello world", cursor: 6,
			keys:     []KeyEvent{keyEvent(KeyCtrlU)},
			wantText: "world", wantCursor: 0,
		},
		"ctrl-k kills to end": {
			text: "hello world", cursor: 5,
			keys:     []KeyEvent{keyEvent(KeyCtrlK)},
			wantText: "hello", wantCursor: 5,
		},
		"ctrl-w deletes word backward": {
			text: "foo bar baz", cursor: 11,
			keys:     []KeyEvent{keyEvent(KeyCtrlW)},
			wantText: "foo bar ", wantCursor: 8,
		},
		"alt-d deletes word forward": {
			text: "foo bar baz", cursor: 4,
			keys:     []KeyEvent{alt('d')},
			wantText: "foo  baz", wantCursor: 4,
		},
		"home and end": {
			text: "abc", cursor: 1,
			keys:     []KeyEvent{keyEvent(KeyEnd), keyEvent(KeyHome)},
			wantText: "abc", wantCursor: 0,
		},
		"ctrl-a and ctrl-e": {
			text: "abc", cursor: 1,
			keys:     []KeyEvent{keyEvent(KeyCtrlA), keyEvent(KeyCtrlE)},
			wantText: "abc", wantCursor: 3,
		},
		"arrows move by one": {
			text: "abc", cursor: 1,
			keys:     []KeyEvent{keyEvent(KeyRight), keyEvent(KeyRight), keyEvent(KeyLeft)},
			wantText: "abc", wantCursor: 2,
		},
		"ctrl-left jumps to word start": {
			text: "foo bar", cursor: 6,
			keys:     []KeyEvent{{Key: KeyLeft, Mod: ModCtrl}},
			wantText: "foo bar", wantCursor: 4,
		},
		"alt-f jumps past word end": {
			text: "foo bar", cursor: 0,
			keys:     []KeyEvent{alt('f')},
			wantText: "foo bar", wantCursor: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEntry(WithEntryText(tt.text))
			s := NewBufferSurface(40, 1)
			e.SetSurface(s)
			e.Render()
			e.SetCursorPos(tt.cursor)

			for _, k := range tt.keys {
				require.True(t, e.HandleKey(k), "key %v should be consumed", k)
			}

			assert.Equal(t, tt.wantText, e.Text())
			assert.Equal(t, tt.wantCursor, e.CursorPos())
			assert.Equal(t, tt.wantText, s.StringTrimmed())
		})
	}
}

func TestEntry_WordBoundaries(t *testing.T) {
	// Indices:          0123456789ab
	e := NewEntry(WithEntryText("foo bar  baz"))

	assert.Equal(t, 9, e.WordStartBackward(12))
	assert.Equal(t, 4, e.WordStartBackward(9))
	assert.Equal(t, 0, e.WordStartBackward(0))

	assert.Equal(t, 7, e.WordEndBackward(9))
	assert.Equal(t, 0, e.WordEndBackward(2))

	assert.Equal(t, 4, e.WordStartForward(0, 12))
	assert.Equal(t, 12, e.WordStartForward(9, 12))

	assert.Equal(t, 7, e.WordEndForward(3, 12))
	assert.Equal(t, 12, e.WordEndForward(12, 12))
}

func TestEntry_Scrolling(t *testing.T) {
	e := NewEntry()
	s := NewBufferSurface(10, 1)
	e.SetSurface(s)

	for i := 0; i < 20; i++ {
		e.HandleKey(runeEvent('a'))
	}

	// Width 10, margin 4: the window shifted in half-width steps until the
	// cursor cleared the right margin.
	assert.Equal(t, 15, e.ScrollOffset())
	assert.Equal(t, "aaaaa", s.StringTrimmed())

	cursorCol := TextWidth(e.Text()) - e.ScrollOffset()
	x, _ := s.Cursor()
	assert.Equal(t, cursorCol, x)

	// Jumping home scrolls all the way back.
	e.HandleKey(keyEvent(KeyHome))
	assert.Equal(t, 0, e.ScrollOffset())
	assert.Equal(t, strings.Repeat("a", 10), s.StringTrimmed())
}

func TestEntry_EditLeftOfWindow(t *testing.T) {
	e := NewEntry(WithEntryText(strings.Repeat("a", 20)))
	s := NewBufferSurface(10, 1)
	e.SetSurface(s)
	e.Render()
	require.Equal(t, 15, e.ScrollOffset())

	// Splice entirely left of the visible window: the line repaints and the
	// scroll offset stays valid.
	e.Splice(0, 1, "")

	assert.Equal(t, 19, len(e.Text()))
	assert.Equal(t, 15, e.ScrollOffset())
	assert.Equal(t, "aaaa", s.StringTrimmed())
}

func TestEntry_EditRightOfWindow(t *testing.T) {
	e := NewEntry(WithEntryText(strings.Repeat("a", 20)))
	s := NewBufferSurface(10, 1)
	e.SetSurface(s)
	e.HandleKey(keyEvent(KeyHome))
	require.Equal(t, 0, e.ScrollOffset())

	before := s.StringTrimmed()
	e.Splice(15, 1, "zz")

	// The edit is beyond the window; nothing visible changes.
	assert.Equal(t, before, s.StringTrimmed())
	assert.Equal(t, 0, e.ScrollOffset())
}

func TestEntry_RepairWithoutShiftSupport(t *testing.T) {
	e := NewEntry(WithEntryText("hello"))
	root := newFlatSurface(20, 1)
	sub := NewSubSurface(root, NewRect(0, 0, 20, 1))
	e.SetSurface(sub)
	e.Render()

	// The surface refuses in-place shifts, so edits fall back to repainting.
	e.SetCursorPos(0)
	e.HandleKey(runeEvent('X'))
	assert.Equal(t, "Xhello", e.Text())
	assert.Equal(t, "Xhello", root.StringTrimmed())

	e.HandleKey(keyEvent(KeyDelete))
	assert.Equal(t, "Xello", e.Text())
	assert.Equal(t, "Xello", root.StringTrimmed())
}

func TestEntry_WideChars(t *testing.T) {
	e := NewEntry()
	s := NewBufferSurface(20, 1)
	e.SetSurface(s)

	for _, r := range "日本x" {
		e.HandleKey(runeEvent(r))
	}

	assert.Equal(t, "日本x", e.Text())
	assert.Equal(t, "日本x", s.StringTrimmed())

	x, _ := s.Cursor()
	assert.Equal(t, 5, x)

	e.HandleKey(keyEvent(KeyBackspace))
	assert.Equal(t, "日本", e.Text())
	assert.Equal(t, "日本", s.StringTrimmed())
}

func TestEntry_Commit(t *testing.T) {
	var committed []string
	e := NewEntry(WithEntryOnCommit(func(s string) {
		committed = append(committed, s)
	}))
	s := NewBufferSurface(20, 1)
	e.SetSurface(s)

	// Empty buffer: commit does not fire.
	e.HandleKey(keyEvent(KeyEnter))
	assert.Empty(t, committed)

	e.SetText("hello")
	e.HandleKey(keyEvent(KeyEnter))
	require.Equal(t, []string{"hello"}, committed)

	// The buffer survives the commit.
	assert.Equal(t, "hello", e.Text())
}

func TestEntry_MouseClick(t *testing.T) {
	type tc struct {
		text       string
		clickX     int
		wantCursor int
	}

	tests := map[string]tc{
		"click on a rune": {
			text:   "hello",
			clickX: 2, wantCursor: 2,
		},
		"click past the end": {
			text:   "hi",
			clickX: 8, wantCursor: 2,
		},
		"click between wide chars lands on the nearer": {
			text:   "日本x",
			clickX: 3, wantCursor: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEntry(WithEntryText(tt.text))
			s := NewBufferSurface(20, 1)
			e.SetSurface(s)

			require.True(t, e.HandleMouse(press(tt.clickX, 0)))
			assert.Equal(t, tt.wantCursor, e.CursorPos())
		})
	}
}

func TestEntry_WithdrawnIsSafe(t *testing.T) {
	e := NewEntry(WithEntryText("abc"))

	// No surface: edits mutate state without painting.
	e.Splice(1, 1, "xyz")
	assert.Equal(t, "axyzc", e.Text())
	e.Render()
	e.HandleKey(runeEvent('!'))
	assert.Equal(t, "axyzc!", e.Text())
}

func TestEntry_SizeHint(t *testing.T) {
	e := NewEntry(WithEntryText("日本x"))
	w, h := e.SizeHint()
	assert.Equal(t, 6, w) // 5 columns of text plus the cursor cell
	assert.Equal(t, 1, h)
}
