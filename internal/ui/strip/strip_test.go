package strip

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/bounce"
	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/pan"
	"github.com/llehouerou/reel/internal/ui/testutil"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

const (
	testWidth  = 80
	testHeight = 12
)

func testItems(kinds ...carousel.MediaKind) []media.Item {
	items := make([]media.Item, len(kinds))
	for i, k := range kinds {
		name := fmt.Sprintf("item-%02d.%s", i, k)
		items[i] = media.Item{Path: "/media/" + name, Name: name, Kind: k}
	}
	return items
}

func images(n int) []carousel.MediaKind {
	kinds := make([]carousel.MediaKind, n)
	for i := range kinds {
		kinds[i] = carousel.Image
	}
	return kinds
}

func newTestStrip(t *testing.T, kinds ...carousel.MediaKind) (*Model, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	opts := DefaultOptions()
	opts.Clock = clk
	m, err := New(media.NewList(testItems(kinds...)), opts)
	require.NoError(t, err)
	m.SetSize(testWidth, testHeight)
	return m, clk
}

// runFrames advances the clock one frame at a time until nothing animates
// and returns the messages raised on the way.
func runFrames(t *testing.T, m *Model, clk *fakeClock) []tea.Msg {
	t.Helper()
	var msgs []tea.Msg
	msgs = append(msgs, m.out...)
	m.out = nil
	for range 2000 {
		if !m.Animating() {
			return msgs
		}
		clk.advance(m.opts.FrameInterval)
		m.advance(clk.Now())
		msgs = append(msgs, m.out...)
		m.out = nil
	}
	t.Fatal("strip never settled")
	return nil
}

func assertSettled(t *testing.T, m *Model, index int) {
	t.Helper()
	assert.Equal(t, index, m.Center())
	assert.False(t, m.geo.State().Transitioning())
	assert.InDelta(t, m.geo.ContentOffsetX(index), m.Offset().X, 1e-9)
}

func focusMsgs(msgs []tea.Msg) []FocusChangedMsg {
	var out []FocusChangedMsg
	for _, msg := range msgs {
		if f, ok := msg.(FocusChangedMsg); ok {
			out = append(out, f)
		}
	}
	return out
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

// handle feeds one mouse message and returns the messages it raised.
func handle(m *Model, msg tea.MouseMsg) []tea.Msg {
	m.handleMouse(msg)
	out := m.out
	m.out = nil
	return out
}

func edgeMsgs(msgs []tea.Msg) []EdgeMsg {
	var out []EdgeMsg
	for _, msg := range msgs {
		if e, ok := msg.(EdgeMsg); ok {
			out = append(out, e)
		}
	}
	return out
}

func TestNew_CentersFirstItem(t *testing.T) {
	m, _ := newTestStrip(t, images(5)...)

	require.True(t, m.Ready())
	assert.Equal(t, 5, m.Count())
	assertSettled(t, m, 0)
	f := m.geo.Frame(0)
	assert.InDelta(t, testWidth/2, f.MidX()-m.Offset().X, 1e-9)
}

func TestNext_SpringsToNeighbour(t *testing.T) {
	m, clk := newTestStrip(t, images(5)...)

	cmd := m.Next()
	require.NotNil(t, cmd)
	require.True(t, m.Animating())

	msgs := runFrames(t, m, clk)
	assertSettled(t, m, 1)
	focus := focusMsgs(msgs)
	require.NotEmpty(t, focus)
	assert.Equal(t, 1, focus[len(focus)-1].Index)
	assert.Equal(t, "item-01.image", focus[len(focus)-1].Item.Name)
}

func TestFocus_ClampsAtEnds(t *testing.T) {
	m, clk := newTestStrip(t, images(4)...)

	m.Prev()
	assert.Empty(t, focusMsgs(runFrames(t, m, clk)))
	assertSettled(t, m, 0)

	m.Last()
	runFrames(t, m, clk)
	assertSettled(t, m, 3)

	m.Next()
	runFrames(t, m, clk)
	assertSettled(t, m, 3)

	m.First()
	runFrames(t, m, clk)
	assertSettled(t, m, 0)
}

func TestFocus_RepeatedKeysAccumulate(t *testing.T) {
	m, clk := newTestStrip(t, images(6)...)

	m.Next()
	clk.advance(m.opts.FrameInterval)
	m.advance(clk.Now())
	m.Next()
	m.Next()
	runFrames(t, m, clk)
	assertSettled(t, m, 3)
}

func TestFlush_KeepsOneTickInFlight(t *testing.T) {
	m, _ := newTestStrip(t, images(5)...)

	require.NotNil(t, m.Next())
	assert.True(t, m.ticking)
	assert.Nil(t, m.Next(), "a second tick must not be scheduled")

	cmd := m.Update(FrameMsg{Time: m.clock.Now().Add(m.opts.FrameInterval)})
	assert.NotNil(t, cmd, "a frame schedules the next one while animating")
}

func TestWheel_MovesFocus(t *testing.T) {
	m, clk := newTestStrip(t, images(5)...)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 10, 5))
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 10, 5))
	runFrames(t, m, clk)
	assertSettled(t, m, 2)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 10, 5))
	runFrames(t, m, clk)
	assertSettled(t, m, 1)
}

func TestDrag_PeeksThenBouncesBack(t *testing.T) {
	m, clk := newTestStrip(t, images(5)...)
	rest := m.Offset().X

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 5))
	require.Equal(t, pan.Tracking, m.PanState())

	clk.advance(10 * time.Millisecond)
	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 37, 5))

	stretched := m.Offset().X - rest
	assert.Greater(t, stretched, 0.0)
	assert.Less(t, stretched, 3.0, "the drag is rubber-banded")
	assert.Equal(t, 1, m.geo.State().Transition.Target, "the neighbour starts to grow")
	assert.Equal(t, bounce.Direction(0), m.Bouncing(), "a neighbour is still ahead")

	clk.advance(200 * time.Millisecond)
	m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 37, 5))
	require.Equal(t, pan.Bouncing, m.PanState())

	runFrames(t, m, clk)
	assert.Equal(t, pan.Idle, m.PanState())
	assert.Equal(t, bounce.Direction(0), m.Bouncing())
	assertSettled(t, m, 0)
}

func TestDrag_ScrollsAcrossItems(t *testing.T) {
	m, clk := newTestStrip(t, images(20)...)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 70, 5))
	for x := 66; x >= 30; x -= 4 {
		clk.advance(10 * time.Millisecond)
		m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, 5))
	}
	require.True(t, m.drag.scrolling, "a long drag leaves the elastic region")
	assert.Greater(t, m.Center(), 0, "focus follows the scroll")

	clk.advance(5 * time.Millisecond)
	m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 30, 5))
	assert.False(t, m.drag.active)

	runFrames(t, m, clk)
	assert.Greater(t, m.Center(), 2, "the fling carries past the release point")
	assertSettled(t, m, m.Center())
}

func TestDrag_FreeScrollInsideTheStripIsNotOverscroll(t *testing.T) {
	m, clk := newTestStrip(t, images(20)...)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 70, 5))
	var msgs []tea.Msg
	for x := 66; x >= 10; x -= 4 {
		clk.advance(10 * time.Millisecond)
		msgs = append(msgs, handle(m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, 5))...)
	}
	require.True(t, m.drag.scrolling)
	require.Greater(t, m.Offset().X, m.geo.ContentOffsetX(0))
	require.Less(t, m.Offset().X, m.geo.ContentOffsetX(19))

	assert.Equal(t, bounce.Direction(0), m.Bouncing())
	assert.Empty(t, edgeMsgs(msgs))
	for _, w := range testutil.LineWidths(m.View()) {
		assert.Equal(t, testWidth, w)
	}
}

func TestDrag_PastFirstItemSnapsFocus(t *testing.T) {
	m, clk := newTestStrip(t, images(20)...)
	m.SetFocus(2)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 5, 5))
	var msgs []tea.Msg
	for x := 9; x <= 77; x += 4 {
		clk.advance(10 * time.Millisecond)
		msgs = append(msgs, handle(m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, 5))...)
	}
	require.True(t, m.drag.scrolling)
	require.Less(t, m.Offset().X, m.geo.ContentOffsetX(0), "pulled past the first item")

	assert.Equal(t, bounce.Left, m.Bouncing())
	assert.Equal(t, 0, m.Center())
	assert.Equal(t, []EdgeMsg{{Edge: bounce.Left}}, edgeMsgs(msgs))

	clk.advance(200 * time.Millisecond)
	msgs = handle(m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 77, 5))
	msgs = append(msgs, runFrames(t, m, clk)...)
	assertSettled(t, m, 0)
	assert.Equal(t, bounce.Direction(0), m.Bouncing())
	assert.Contains(t, edgeMsgs(msgs), EdgeMsg{Edge: bounce.Left, Recovering: true})
}

func TestEdges_OverscrollSnapsFocusToEnds(t *testing.T) {
	m, _ := newTestStrip(t, images(6)...)
	m.SetFocus(3)
	lo := m.geo.ContentOffsetX(0)
	hi := m.geo.ContentOffsetX(5)

	m.setOffset(geom.Point{X: lo - 2})
	assert.Equal(t, 0, m.Center())
	assert.Equal(t, bounce.Left, m.Bouncing())
	require.Len(t, focusMsgs(m.out), 1)
	assert.Equal(t, 0, focusMsgs(m.out)[0].Index)
	assert.Equal(t, []EdgeMsg{{Edge: bounce.Left}}, edgeMsgs(m.out))
	m.out = nil

	m.setOffset(geom.Point{X: lo - 1})
	assert.Equal(t, bounce.Left, m.edges.ReverseBouncing())
	assert.Equal(t, []EdgeMsg{{Edge: bounce.Left, Recovering: true}}, edgeMsgs(m.out))
	m.out = nil

	m.setOffset(geom.Point{X: lo})
	assert.Equal(t, bounce.Direction(0), m.Bouncing())
	assert.Empty(t, edgeMsgs(m.out))

	m.setOffset(geom.Point{X: hi + 3})
	assert.Equal(t, 5, m.Center())
	assert.Equal(t, bounce.Right, m.Bouncing())
	assert.Equal(t, []EdgeMsg{{Edge: bounce.Right}}, edgeMsgs(m.out))
}

func TestDrag_ScrollIsContinuousAtInvalidation(t *testing.T) {
	m, clk := newTestStrip(t, images(10)...)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 5))
	prev := m.Offset().X
	for x := 39; x >= 20; x-- {
		clk.advance(10 * time.Millisecond)
		m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, 5))
		step := m.Offset().X - prev
		assert.GreaterOrEqual(t, step, 0.0, "x=%d", x)
		assert.LessOrEqual(t, step, 1.0+1e-9, "x=%d", x)
		prev = m.Offset().X
	}
	assert.True(t, m.drag.scrolling)
}

func TestDrag_IgnoredWhenEmpty(t *testing.T) {
	m, _ := newTestStrip(t)
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 5))
	assert.False(t, m.drag.active)
	assert.Equal(t, pan.Idle, m.PanState())
}

func TestToggleStyle_Animates(t *testing.T) {
	m, clk := newTestStrip(t, images(5)...)
	_, err := m.SetPreferredSize("/media/item-00.image", geom.Size{Width: 40, Height: 10})
	require.NoError(t, err)
	runFrames(t, m, clk)
	carouselOffset := m.Offset().X

	m.ToggleStyle()
	assert.Equal(t, carousel.Flow, m.Style())
	require.True(t, m.Animating())
	runFrames(t, m, clk)

	assertSettled(t, m, 0)
	assert.NotEqual(t, carouselOffset, m.Offset().X)

	m.ToggleStyle()
	runFrames(t, m, clk)
	assert.Equal(t, carousel.Carousel, m.Style())
	assert.InDelta(t, carouselOffset, m.Offset().X, 1e-9)
}

func TestSetPreferredSize(t *testing.T) {
	m, clk := newTestStrip(t, images(3)...)
	before := m.Offset().X

	cmd, err := m.SetPreferredSize("/media/item-01.image", geom.Size{Width: 40, Height: 10})
	require.NoError(t, err)
	assert.Nil(t, cmd, "an unfocused item does not move the strip")
	assert.Equal(t, before, m.Offset().X)

	cmd, err = m.SetPreferredSize("/media/item-00.image", geom.Size{Width: 40, Height: 10})
	require.NoError(t, err)
	assert.NotNil(t, cmd)
	runFrames(t, m, clk)
	assertSettled(t, m, 0)
	assert.InDelta(t, 37.5, m.geo.Size(0).Width, 1e-9, "clamped to 2.5 natural widths")

	size, ok := m.MeasuredSize("/media/item-00.image")
	assert.True(t, ok)
	assert.Equal(t, geom.Size{Width: 40, Height: 10}, size)

	_, err = m.SetPreferredSize("/media/item-02.image", geom.Size{})
	require.ErrorIs(t, err, carousel.ErrInvalidSize)
}

func TestRemoveFocused(t *testing.T) {
	m, clk := newTestStrip(t, images(3)...)
	m.SetFocus(1)

	cmd, err := m.RemoveFocused()
	require.NoError(t, err)
	require.NotNil(t, cmd)
	_, err = m.RemoveFocused()
	require.ErrorIs(t, err, carousel.ErrRemovalInProgress)

	msgs := runFrames(t, m, clk)
	assert.Equal(t, 2, m.Count())
	assertSettled(t, m, 1)

	var removed []string
	for _, msg := range msgs {
		if r, ok := msg.(RemovedMsg); ok {
			removed = append(removed, r.Item.Name)
		}
	}
	assert.Equal(t, []string{"item-01.image"}, removed)
	focus := focusMsgs(msgs)
	require.NotEmpty(t, focus)
	assert.Equal(t, "item-02.image", focus[len(focus)-1].Item.Name)
}

func TestRemoveFocused_BlocksFocusAndStyle(t *testing.T) {
	m, clk := newTestStrip(t, images(4)...)

	_, err := m.RemoveFocused()
	require.NoError(t, err)
	clk.advance(m.opts.FrameInterval)
	m.advance(clk.Now())

	m.Next()
	assert.False(t, m.focus.active, "focus keys wait for the removal")
	m.SetStyle(carousel.Flow, true)
	assert.Equal(t, carousel.Carousel, m.Style())

	runFrames(t, m, clk)
	assert.Equal(t, 3, m.Count())
	assertSettled(t, m, 0)
}

func TestRemoveFocused_SizeMeasuredMeanwhileAppliesAfter(t *testing.T) {
	m, clk := newTestStrip(t, images(3)...)
	m.SetFocus(1)

	_, err := m.RemoveFocused()
	require.NoError(t, err)
	clk.advance(m.opts.FrameInterval)
	m.advance(clk.Now())

	id := carousel.ItemID("/media/item-02.image")
	before := m.geo.Frame(2)
	cmd, err := m.SetPreferredSize(id, geom.Size{Width: 40, Height: 10})
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.geo.Frame(2), "the removal keeps its layout")
	_, ok := m.MeasuredSize(id)
	assert.True(t, ok)

	runFrames(t, m, clk)
	assertSettled(t, m, 1)
	assert.InDelta(t, 37.5, m.geo.Size(1).Width, 1e-9)
}

func TestRemoveFocused_LastItemEmpties(t *testing.T) {
	m, clk := newTestStrip(t, images(1)...)

	_, err := m.RemoveFocused()
	require.NoError(t, err)
	msgs := runFrames(t, m, clk)

	assert.True(t, m.Empty())
	assert.Contains(t, msgs, tea.Msg(EmptiedMsg{}))
	assert.Equal(t, geom.Point{}, m.Offset())

	_, err = m.RemoveFocused()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestTogglePlaying(t *testing.T) {
	m, clk := newTestStrip(t, carousel.Image, carousel.Video, carousel.Image)

	_, ok := m.TogglePlaying()
	assert.False(t, ok, "images do not play")

	m.SetFocus(1)
	_, ok = m.TogglePlaying()
	require.True(t, ok)
	assert.True(t, m.Playing())
	runFrames(t, m, clk)
	assertSettled(t, m, 1)

	m.Next()
	runFrames(t, m, clk)
	assert.Equal(t, carousel.ItemID(""), m.geo.Playing(), "leaving the video stops it")

	m.Prev()
	runFrames(t, m, clk)
	assert.False(t, m.Playing())
}

func TestSetSize_Recenters(t *testing.T) {
	m, _ := newTestStrip(t, images(5)...)
	m.SetFocus(2)

	m.SetSize(120, 20)
	assertSettled(t, m, 2)
	f := m.geo.Frame(2)
	assert.InDelta(t, 60, f.MidX()-m.Offset().X, 1e-9)
}

func TestSetSize_TooSmallKeepsLayout(t *testing.T) {
	m, _ := newTestStrip(t, images(2)...)
	before := m.geo.State().Viewport

	m.SetSize(80, 2)
	assert.Equal(t, before, m.geo.State().Viewport)
}

func TestItemAt(t *testing.T) {
	m, _ := newTestStrip(t, images(5)...)

	it, ok := m.ItemAt(testWidth / 2)
	require.True(t, ok)
	assert.Equal(t, "item-00.image", it.Name)

	_, ok = m.ItemAt(0)
	assert.False(t, ok, "the inset left of the first item is empty")
}

func TestView_FillsTheStrip(t *testing.T) {
	m, clk := newTestStrip(t, carousel.Image, carousel.Video, carousel.PDF)

	view := m.View()
	widths := testutil.LineWidths(view)
	require.Len(t, widths, testHeight)
	for i, w := range widths {
		assert.Equal(t, testWidth, w, "line %d", i)
	}
	assert.True(t, testutil.ContainsLine(view, "item-00.image"))
	assert.True(t, testutil.ContainsLine(view, "image"))

	m.Next()
	runFrames(t, m, clk)
	assert.True(t, testutil.ContainsLine(m.View(), "item-01.video"))
}

func TestView_DuringDragKeepsWidth(t *testing.T) {
	m, clk := newTestStrip(t, images(3)...)
	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 5))
	clk.advance(10 * time.Millisecond)
	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 38, 5))

	for i, w := range testutil.LineWidths(m.View()) {
		assert.Equal(t, testWidth, w, "line %d", i)
	}
}

func TestView_Empty(t *testing.T) {
	m, _ := newTestStrip(t)
	assert.True(t, testutil.ContainsLine(m.View(), "No media"))
	assert.Len(t, testutil.LineWidths(m.View()), testHeight)
}
