package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_DefaultPosition(t *testing.T) {
	type tc struct {
		firstH, secondH int
		surfaceH        int
		wantPos         int
	}

	tests := map[string]tc{
		"proportional to hints": {
			firstH: 2, secondH: 6,
			surfaceH: 9,
			wantPos:  2, // 8 usable lines split 2:6
		},
		"equal hints center the divider": {
			firstH: 3, secondH: 3,
			surfaceH: 11,
			wantPos:  5,
		},
		"zero hints fall back to the middle": {
			firstH: 0, secondH: 0,
			surfaceH: 9,
			wantPos:  4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewHSplit(newStub(4, tt.firstH), newStub(4, tt.secondH))
			s.SetSurface(NewBufferSurface(10, tt.surfaceH))
			assert.Equal(t, tt.wantPos, s.Position())
		})
	}
}

func TestSplit_PositionClamped(t *testing.T) {
	s := NewHSplit(newStub(4, 2), newStub(4, 2))
	s.SetSurface(NewBufferSurface(10, 9))

	s.SetPosition(100)
	assert.Equal(t, 8, s.Position())

	s.SetPosition(-5)
	assert.Equal(t, 0, s.Position())
}

func TestSplit_ChildRegions(t *testing.T) {
	top := newStub(4, 2)
	bottom := newStub(4, 2)
	s := NewHSplit(top, bottom, WithSplitPosition(3))
	s.SetSurface(NewBufferSurface(10, 9))

	require.NotNil(t, top.Surface())
	w, h := top.Surface().Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)

	require.NotNil(t, bottom.Surface())
	w, h = bottom.Surface().Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)
}

func TestSplit_PositionZeroWithdrawsFirst(t *testing.T) {
	top := newStub(4, 2)
	bottom := newStub(4, 2)
	s := NewHSplit(top, bottom, WithSplitPosition(0))
	s.SetSurface(NewBufferSurface(10, 5))

	assert.Nil(t, top.Surface(), "a zero-height region withdraws the child")
	require.NotNil(t, bottom.Surface())
	_, h := bottom.Surface().Size()
	assert.Equal(t, 4, h)
}

func TestSplit_TooSmallWithdrawsBoth(t *testing.T) {
	top := newStub(4, 2)
	bottom := newStub(4, 2)
	s := NewHSplit(top, bottom, WithSplitThickness(3))
	s.SetSurface(NewBufferSurface(10, 2))

	assert.Nil(t, top.Surface())
	assert.Nil(t, bottom.Surface())
	s.Render() // must not panic
}

func TestSplit_Thickness(t *testing.T) {
	s := NewHSplit(newStub(1, 1), newStub(1, 1))
	require.ErrorIs(t, s.SetThickness(0), ErrBadThickness)
	require.NoError(t, s.SetThickness(2))

	s.SetSurface(NewBufferSurface(10, 8))
	s.SetPosition(3)

	second := s.second.Surface()
	require.NotNil(t, second)
	_, h := second.Size()
	assert.Equal(t, 3, h) // 8 lines - 3 above - 2 divider
}

func TestSplit_RenderDivider(t *testing.T) {
	s := NewVSplit(NewStatic("ab"), NewStatic("cd"))
	buf := NewBufferSurface(9, 3)
	s.SetSurface(buf)
	s.Render()

	assert.Equal(t, "ab  │cd\n    │\n    │", buf.StringTrimmed())
}

func TestSplit_Drag(t *testing.T) {
	s := NewHSplit(newStub(4, 2), newStub(4, 2), WithSplitPosition(2))
	buf := NewBufferSurface(10, 9)
	s.SetSurface(buf)
	s.Render()

	// Press on the divider starts the drag.
	require.True(t, s.HandleMouse(press(3, 2)))
	assert.True(t, s.Dragging())

	// Motion moves the split point.
	require.True(t, s.HandleMouse(MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 3, Y: 5}))
	assert.Equal(t, 5, s.Position())
	assert.True(t, s.Dragging())

	// Release ends the drag even away from the divider.
	require.True(t, s.HandleMouse(MouseEvent{Button: MouseLeft, Action: MouseRelease, X: 9, Y: 7}))
	assert.Equal(t, 7, s.Position())
	assert.False(t, s.Dragging())
}

func TestSplit_DragClamped(t *testing.T) {
	s := NewHSplit(newStub(4, 2), newStub(4, 2), WithSplitPosition(2))
	s.SetSurface(NewBufferSurface(10, 9))

	require.True(t, s.HandleMouse(press(0, 2)))
	s.HandleMouse(MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 0, Y: 100})
	assert.Equal(t, 8, s.Position())

	s.HandleMouse(MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 0, Y: -3})
	assert.Equal(t, 0, s.Position())
}

func TestSplit_MouseRouting(t *testing.T) {
	first := newStub(4, 2)
	second := newStub(4, 2)
	first.consume = true
	second.consume = true
	s := NewHSplit(first, second, WithSplitPosition(3))
	s.SetSurface(NewBufferSurface(10, 9))

	require.True(t, s.HandleMouse(press(2, 1)))
	require.NotNil(t, first.lastMouse)
	assert.Equal(t, 1, first.lastMouse.Y)

	require.True(t, s.HandleMouse(press(2, 6)))
	require.NotNil(t, second.lastMouse)
	assert.Equal(t, 2, second.lastMouse.Y, "event should be in the child's coordinates")
}

func TestSplit_KeyRouting(t *testing.T) {
	first := newStub(4, 2)
	second := newStub(4, 2)
	second.consume = true
	s := NewVSplit(first, second)
	s.SetSurface(NewBufferSurface(10, 3))

	assert.True(t, s.HandleKey(keyEvent(KeyTab)))
	require.NotNil(t, first.lastKey)
	require.NotNil(t, second.lastKey)
}
