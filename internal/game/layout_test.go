package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContainsIsOpenInterval(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	require.True(t, r.Contains(11, 21))
	require.True(t, r.Contains(60, 45))
	require.False(t, r.Contains(10, 45), "left edge")
	require.False(t, r.Contains(110, 45), "right edge")
	require.False(t, r.Contains(60, 20), "top edge")
	require.False(t, r.Contains(60, 70), "bottom edge")
	require.False(t, r.Contains(0, 0))
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(800, 600, 4)
	require.Equal(t, Rect{X: 40, Y: 80, W: 720, H: 120}, l.Panel)
	require.Len(t, l.Options, 4)
	for i, want := range []float64{230, 304, 378, 452} {
		require.Equal(t, Rect{X: 40, Y: want, W: 720, H: 60}, l.Options[i])
	}
	require.Equal(t, Rect{X: 320, Y: 550, W: 160, H: 48}, l.Button)
}

func TestComputeLayoutCapsPanelWidth(t *testing.T) {
	l := ComputeLayout(1920, 1080, 4)
	require.Equal(t, 900.0, l.Panel.W)
	require.Equal(t, (1920.0-900)/2, l.Panel.X)
	cx, _ := l.Button.Center()
	require.Equal(t, 960.0, cx)
}

func TestComputeLayoutIsPure(t *testing.T) {
	require.Equal(t, ComputeLayout(1024, 768, 4), ComputeLayout(1024, 768, 4))
	require.NotEqual(t, ComputeLayout(1024, 768, 4), ComputeLayout(640, 768, 4))
}

func TestOptionAt(t *testing.T) {
	l := ComputeLayout(800, 600, 4)
	require.Equal(t, 0, l.OptionAt(400, 260))
	require.Equal(t, 3, l.OptionAt(400, 480))
	require.Equal(t, -1, l.OptionAt(400, 297), "gap between rows")
	require.Equal(t, -1, l.OptionAt(40, 260), "border")
}

func TestPressUsesCurrentCanvasSize(t *testing.T) {
	a := newTestApp(t)
	a.Resize(1600, 900)
	x, y := ComputeLayout(1600, 900, 4).Options[2].Center()
	a.Press(x, y)
	require.Equal(t, 2, a.Session.Selected)
}
