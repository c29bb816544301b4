// Package glyph rasterises the bitmap UI font into a texture atlas and lays
// out text against it. It has no GL dependency.
package glyph

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	FirstRune = 32
	LastRune  = 126
	Cols      = 16
)

// Atlas is a grid of fixed-size cells, one per printable ASCII rune.
type Atlas struct {
	Image  *image.RGBA
	CellW  int
	CellH  int
	Cols   int
	Rows   int
	Ascent int
}

// NewAtlas draws basicfont's 7x13 face white-on-transparent so the shader can
// tint it.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	n := LastRune - FirstRune + 1
	rows := (n + Cols - 1) / Cols

	img := image.NewRGBA(image.Rect(0, 0, Cols*cellW, rows*cellH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := rune(FirstRune); ch <= LastRune; ch++ {
		i := int(ch - FirstRune)
		x, y := (i%Cols)*cellW, (i/Cols)*cellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(ch))
	}
	return &Atlas{
		Image:  img,
		CellW:  cellW,
		CellH:  cellH,
		Cols:   Cols,
		Rows:   rows,
		Ascent: face.Ascent,
	}
}

// UV returns the normalised texture rectangle for ch. ok is false for runes
// outside the atlas.
func (a *Atlas) UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < FirstRune || ch > LastRune {
		return 0, 0, 0, 0, false
	}
	i := int(ch - FirstRune)
	col, row := i%a.Cols, i/a.Cols
	w := float32(a.Image.Bounds().Dx())
	h := float32(a.Image.Bounds().Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1, true
}

// Scale converts a pixel text height to an atlas scale factor.
func (a *Atlas) Scale(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size / float64(a.CellH)
}

// Measure returns the width of the widest line of s at the given scale.
func (a *Atlas) Measure(s string, scale float64) float64 {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if n := len([]rune(line)); n > widest {
			widest = n
		}
	}
	return float64(widest*a.CellW) * scale
}

// LineHeight is the vertical advance between wrapped lines.
func (a *Atlas) LineHeight(scale float64) float64 {
	return float64(a.CellH) * scale * 1.25
}

// Wrap breaks s into lines no wider than maxW. Words longer than a line are
// split. maxW <= 0 disables wrapping; explicit newlines are always honoured.
func (a *Atlas) Wrap(s string, scale, maxW float64) []string {
	if maxW <= 0 {
		return strings.Split(s, "\n")
	}
	perLine := int(maxW / (float64(a.CellW) * scale))
	if perLine < 1 {
		perLine = 1
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var cur []rune
		for _, w := range words {
			wr := []rune(w)
			for len(wr) > perLine {
				if len(cur) > 0 {
					out = append(out, string(cur))
					cur = cur[:0]
				}
				out = append(out, string(wr[:perLine]))
				wr = wr[perLine:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, wr...)
			case len(cur)+1+len(wr) <= perLine:
				cur = append(cur, ' ')
				cur = append(cur, wr...)
			default:
				out = append(out, string(cur))
				cur = append(cur[:0], wr...)
			}
		}
		if len(cur) > 0 {
			out = append(out, string(cur))
		}
	}
	return out
}
