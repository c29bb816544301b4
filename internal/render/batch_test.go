package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quizsky/internal/game"
)

func vertex(b *Batch, i int) []float32 {
	return b.Verts[i*Stride : (i+1)*Stride]
}

func TestFillRectQuad(t *testing.T) {
	b := NewBatch(nil)
	b.FillRect(game.Rect{X: 10, Y: 20, W: 100, H: 40}, 8, game.RGB(255, 0, 0))
	require.Equal(t, 6, b.Len())

	tl := vertex(b, 0)
	require.Equal(t, []float32{9, 19}, tl[0:2], "padded top-left corner")
	require.Equal(t, []float32{-51, -21}, tl[2:4])
	require.Equal(t, []float32{50, 20}, tl[4:6])
	require.Equal(t, []float32{1, 0, 0, 1}, tl[6:10])
	require.Equal(t, []float32{KindFillBox, 8, 0}, tl[10:13])

	br := vertex(b, 4)
	require.Equal(t, []float32{111, 61}, br[0:2])
}

func TestStrokeGrowsQuad(t *testing.T) {
	b := NewBatch(nil)
	b.StrokeEllipse(0, 0, 20, 10, 4, game.RGB(0, 0, 0))
	tl := vertex(b, 0)
	require.Equal(t, []float32{-13, -8}, tl[0:2])
	require.Equal(t, float32(KindStrokeEllipse), tl[10])
	require.Equal(t, float32(4), tl[12])
}

func TestTransparentShapesAreSkipped(t *testing.T) {
	b := NewBatch(nil)
	b.FillEllipse(0, 0, 10, 10, game.Color{})
	b.Text("hidden", game.Rect{W: 100, H: 20}, game.AlignLeft, game.AlignTop, 13, game.Color{})
	require.Zero(t, b.Len())
}

func TestRotatedRect(t *testing.T) {
	b := NewBatch(nil)
	b.FillRotatedRect(0, 0, 10, 20, 1.5707963267948966, game.RGB(1, 2, 3))
	tl := vertex(b, 0)
	// A quarter turn maps local (-6, -11) to (11, -6).
	require.InDelta(t, 11, tl[0], 1e-4)
	require.InDelta(t, -6, tl[1], 1e-4)
	require.Equal(t, []float32{-6, -11}, tl[2:4])
}

func TestLineIsCapsule(t *testing.T) {
	b := NewBatch(nil)
	b.Line(0, 0, 30, 40, 4, game.RGB(1, 1, 1))
	v := vertex(b, 0)
	require.InDelta(t, 27, v[4], 1e-5, "half length includes the round cap")
	require.InDelta(t, 2, v[5], 1e-5)
	require.InDelta(t, 2, v[11], 1e-5)
}

func TestTextSkipsSpaces(t *testing.T) {
	b := NewBatch(nil)
	b.Text("a b", game.Rect{W: 200, H: 13}, game.AlignLeft, game.AlignTop, 13, game.RGB(0, 0, 0))
	require.Equal(t, 12, b.Len())
	require.Equal(t, float32(KindGlyph), vertex(b, 0)[10])

	// Second glyph starts two cells to the right.
	require.Equal(t, float32(14), vertex(b, 6)[0])
}

func TestTextAlignment(t *testing.T) {
	b := NewBatch(nil)
	box := game.Rect{X: 0, Y: 0, W: 70, H: 33}
	b.Text("ab", box, game.AlignCenter, game.AlignMiddle, 13, game.RGB(0, 0, 0))
	require.Equal(t, []float32{28, 10}, vertex(b, 0)[0:2])

	b.Reset()
	b.Text("ab", box, game.AlignRight, game.AlignBottom, 13, game.RGB(0, 0, 0))
	require.Equal(t, []float32{56, 20}, vertex(b, 0)[0:2])
}

func TestTextWrapsAtBoxWidth(t *testing.T) {
	b := NewBatch(nil)
	b.Text("aa bb", game.Rect{W: 21, H: 100}, game.AlignLeft, game.AlignTop, 13, game.RGB(0, 0, 0))
	require.Equal(t, 24, b.Len())
	third := vertex(b, 12)
	require.Equal(t, float32(0), third[0])
	require.Equal(t, float32(16), third[1], "second line snaps to a whole pixel")
}

func TestBatchDrawsWholeApp(t *testing.T) {
	b := NewBatch(nil)
	a := game.NewApp(game.Options{Width: 800, Height: 600, Seed: 1})
	require.NoError(t, a.Start(nil))
	a.Move(400, 300)
	a.Tick(1.0/60, b)
	require.Positive(t, b.Len())
	require.Zero(t, len(b.Verts)%Stride)
}
