package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"frender/pkg/geom"
)

func TestKeyEdges(t *testing.T) {
	tr := NewTracker()

	tr.KeyDown("n")
	s := tr.Frame()
	assert.True(t, s.Pressed("N"))
	assert.True(t, s.JustPressed("n"))
	assert.False(t, s.JustReleased("N"))

	s = tr.Frame()
	assert.True(t, s.Pressed("N"))
	assert.False(t, s.JustPressed("N"), "edge lasts a single frame")

	tr.KeyDown("N") // auto-repeat
	s = tr.Frame()
	assert.False(t, s.JustPressed("N"))

	tr.KeyUp("N")
	s = tr.Frame()
	assert.False(t, s.Pressed("N"))
	assert.True(t, s.JustReleased("N"))
}

func TestTapWithinFrame(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown("Space")
	tr.KeyUp("Space")
	s := tr.Frame()
	assert.False(t, s.Pressed("Space"))
	assert.True(t, s.JustPressed("Space"))
	assert.True(t, s.JustReleased("Space"))
}

func TestReleaseWithoutPress(t *testing.T) {
	tr := NewTracker()
	tr.KeyUp("Q")
	tr.ButtonUp(MouseLeft)
	s := tr.Frame()
	assert.False(t, s.JustReleased("Q"))
	assert.False(t, s.ButtonJustReleased(MouseLeft))
}

func TestButtonsAndMouse(t *testing.T) {
	tr := NewTracker()
	tr.MoveTo(geom.V(10, 4))
	tr.ButtonDown(MouseLeft)
	s := tr.Frame()
	assert.True(t, s.ButtonPressed(MouseLeft))
	assert.True(t, s.ButtonJustPressed(MouseLeft))
	assert.False(t, s.ButtonPressed(MouseRight))
	assert.Equal(t, geom.V(10, 4), s.Mouse())
	assert.Equal(t, geom.V(10, 4), s.MouseDelta())

	tr.MoveTo(geom.V(7, 9))
	tr.ButtonUp(MouseLeft)
	s = tr.Frame()
	assert.Equal(t, geom.V(-3, 5), s.MouseDelta())
	assert.True(t, s.ButtonJustReleased(MouseLeft))
	assert.False(t, s.ButtonPressed(MouseLeft))

	s = tr.Frame()
	assert.True(t, s.MouseDelta().IsZero())
}

func TestSnapshotIsolated(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown("A")
	s := tr.Frame()
	tr.KeyUp("A")
	assert.True(t, s.Pressed("A"), "later events do not leak into an old snapshot")
}

func TestConcurrentEvents(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.MoveTo(geom.V(i, j))
				tr.KeyDown("K")
				tr.KeyUp("K")
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		tr.Frame()
	}
	wg.Wait()
	assert.False(t, tr.Frame().Pressed("K"))
}

func TestMouseButtonString(t *testing.T) {
	assert.Equal(t, "left", MouseLeft.String())
	assert.Equal(t, "middle", MouseMiddle.String())
	assert.Equal(t, "unknown", MouseButton(0).String())
}

func TestSnapshotScaled(t *testing.T) {
	tr := NewTracker()
	tr.MoveTo(geom.V(45, -1))
	tr.KeyDown("A")
	s := tr.Frame().Scaled(20)
	assert.Equal(t, geom.V(2, -1), s.Mouse())
	assert.True(t, s.Pressed("A"))
	assert.Equal(t, geom.V(45, -1), tr.Frame().Scaled(1).Mouse())
}
