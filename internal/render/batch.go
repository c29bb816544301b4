// Package render turns game.Canvas calls into a flat vertex stream that one
// shader program can draw in submission order.
package render

import (
	"math"

	"quizsky/internal/game"
	"quizsky/internal/render/glyph"
)

// Stride is the number of float32s per vertex:
// pos(2) local(2) half(2) color(4) params(3).
const Stride = 13

// Shape kinds, matched by the fragment shader.
const (
	KindFillBox = iota
	KindStrokeBox
	KindFillEllipse
	KindStrokeEllipse
	KindGlyph
)

// aaPad widens every quad so the antialiased edge is not clipped.
const aaPad = 1.0

// Batch accumulates quads for one frame. It implements game.Canvas.
type Batch struct {
	Verts []float32
	Atlas *glyph.Atlas
}

var _ game.Canvas = (*Batch)(nil)

func NewBatch(atlas *glyph.Atlas) *Batch {
	if atlas == nil {
		atlas = glyph.NewAtlas()
	}
	return &Batch{
		Verts: make([]float32, 0, 4096*Stride),
		Atlas: atlas,
	}
}

func (b *Batch) Reset() { b.Verts = b.Verts[:0] }

// Len returns the number of queued vertices.
func (b *Batch) Len() int { return len(b.Verts) / Stride }

func colorF(c game.Color) (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// shape queues a quad centred on (cx, cy) with half extents (hw, hh), grown by
// pad and rotated by angle.
func (b *Batch) shape(cx, cy, hw, hh, pad, angle float64, col game.Color, kind int, radius, stroke float64) {
	if col.A == 0 || hw < 0 || hh < 0 {
		return
	}
	cr, cg, cb, ca := colorF(col)
	sin, cos := math.Sincos(angle)
	ex, ey := hw+pad, hh+pad

	vert := func(lx, ly float64) {
		px := cx + cos*lx - sin*ly
		py := cy + sin*lx + cos*ly
		b.Verts = append(b.Verts,
			float32(px), float32(py),
			float32(lx), float32(ly),
			float32(hw), float32(hh),
			cr, cg, cb, ca,
			float32(kind), float32(radius), float32(stroke),
		)
	}
	// Two triangles: TL, TR, BL then TR, BR, BL.
	vert(-ex, -ey)
	vert(ex, -ey)
	vert(-ex, ey)
	vert(ex, -ey)
	vert(ex, ey)
	vert(-ex, ey)
}

func (b *Batch) FillRect(r game.Rect, radius float64, c game.Color) {
	cx, cy := r.Center()
	b.shape(cx, cy, r.W/2, r.H/2, aaPad, 0, c, KindFillBox, radius, 0)
}

func (b *Batch) StrokeRect(r game.Rect, radius, weight float64, c game.Color) {
	cx, cy := r.Center()
	b.shape(cx, cy, r.W/2, r.H/2, weight/2+aaPad, 0, c, KindStrokeBox, radius, weight)
}

func (b *Batch) FillEllipse(cx, cy, w, h float64, c game.Color) {
	b.shape(cx, cy, w/2, h/2, aaPad, 0, c, KindFillEllipse, 0, 0)
}

func (b *Batch) StrokeEllipse(cx, cy, w, h, weight float64, c game.Color) {
	b.shape(cx, cy, w/2, h/2, weight/2+aaPad, 0, c, KindStrokeEllipse, 0, weight)
}

// Line is a capsule from (x0, y0) to (x1, y1).
func (b *Batch) Line(x0, y0, x1, y1, weight float64, c game.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	b.shape((x0+x1)/2, (y0+y1)/2, length/2+weight/2, weight/2, aaPad,
		math.Atan2(dy, dx), c, KindFillBox, weight/2, 0)
}

func (b *Batch) FillRotatedRect(cx, cy, w, h, angle float64, c game.Color) {
	b.shape(cx, cy, w/2, h/2, aaPad, angle, c, KindFillBox, 0, 0)
}

// Text lays s out inside box using the bitmap atlas. size is the glyph
// height in pixels.
func (b *Batch) Text(s string, box game.Rect, h game.HAlign, v game.VAlign, size float64, c game.Color) {
	if s == "" || c.A == 0 {
		return
	}
	a := b.Atlas
	scale := a.Scale(size)
	lines := a.Wrap(s, scale, box.W)
	glyphH := float64(a.CellH) * scale
	lineH := a.LineHeight(scale)
	total := lineH*float64(len(lines)-1) + glyphH

	y := box.Y
	switch v {
	case game.AlignMiddle:
		y = box.Y + (box.H-total)/2
	case game.AlignBottom:
		y = box.Y + box.H - total
	}
	for _, line := range lines {
		w := a.Measure(line, scale)
		x := box.X
		switch h {
		case game.AlignCenter:
			x = box.X + (box.W-w)/2
		case game.AlignRight:
			x = box.X + box.W - w
		}
		b.textLine(line, math.Round(x), math.Round(y), scale, c)
		y += lineH
	}
}

func (b *Batch) textLine(line string, x, y, scale float64, c game.Color) {
	a := b.Atlas
	cw := float64(a.CellW) * scale
	ch := float64(a.CellH) * scale
	cr, cg, cb, ca := colorF(c)
	for _, r := range line {
		u0, v0, u1, v1, ok := a.UV(r)
		if ok && r != ' ' {
			x0, y0 := float32(x), float32(y)
			x1, y1 := float32(x+cw), float32(y+ch)
			vert := func(px, py, u, v float32) {
				b.Verts = append(b.Verts,
					px, py,
					u, v,
					0, 0,
					cr, cg, cb, ca,
					KindGlyph, 0, 0,
				)
			}
			vert(x0, y0, u0, v0)
			vert(x1, y0, u1, v0)
			vert(x0, y1, u0, v1)
			vert(x1, y0, u1, v0)
			vert(x1, y1, u1, v1)
			vert(x0, y1, u0, v1)
		}
		x += cw
	}
}
