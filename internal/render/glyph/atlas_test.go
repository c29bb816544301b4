package glyph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtlasHasInkForPrintableRunes(t *testing.T) {
	a := NewAtlas()
	require.Equal(t, 7, a.CellW)
	require.Equal(t, 13, a.CellH)
	require.Equal(t, Cols*a.CellW, a.Image.Bounds().Dx())
	require.Equal(t, a.Rows*a.CellH, a.Image.Bounds().Dy())

	inked := func(ch rune) bool {
		i := int(ch - FirstRune)
		x0, y0 := (i%Cols)*a.CellW, (i/Cols)*a.CellH
		for y := y0; y < y0+a.CellH; y++ {
			for x := x0; x < x0+a.CellW; x++ {
				if a.Image.RGBAAt(x, y).A > 0 {
					return true
				}
			}
		}
		return false
	}
	require.False(t, inked(' '))
	for _, ch := range "AQz09?" {
		require.True(t, inked(ch), "rune %q", ch)
	}
}

func TestUV(t *testing.T) {
	a := NewAtlas()
	u0, v0, u1, v1, ok := a.UV(' ')
	require.True(t, ok)
	require.Zero(t, u0)
	require.Zero(t, v0)
	require.InDelta(t, 1.0/Cols, u1, 1e-6)
	require.InDelta(t, 1.0/float64(a.Rows), v1, 1e-6)

	_, _, _, _, ok = a.UV('\t')
	require.False(t, ok)
	_, _, _, _, ok = a.UV('é')
	require.False(t, ok)
}

func TestMeasure(t *testing.T) {
	a := NewAtlas()
	require.Equal(t, 35.0, a.Measure("Hello", 1))
	require.Equal(t, 70.0, a.Measure("Hello", 2))
	require.Equal(t, 21.0, a.Measure("ab\nabc", 1))
	require.InDelta(t, 2.0, a.Scale(26), 1e-9)
}

func TestWrap(t *testing.T) {
	a := NewAtlas()
	// 70px at scale 1 is ten cells.
	require.Equal(t, []string{"the quick", "brown fox"}, a.Wrap("the quick brown fox", 1, 70))
	require.Equal(t, []string{"abcdefghij", "klm"}, a.Wrap("abcdefghijklm", 1, 70))
	require.Equal(t, []string{"one", "", "two"}, a.Wrap("one\n\ntwo", 1, 70))
	require.Equal(t, []string{"no wrap at all here"}, a.Wrap("no wrap at all here", 1, 0))
	require.Equal(t, []string{"a", "b"}, a.Wrap("a b", 1, 1))
}
