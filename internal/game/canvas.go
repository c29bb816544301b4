package game

// HAlign is horizontal text alignment inside a box.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment inside a box.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Canvas is the drawing surface the engine paints each tick. Coordinates are
// framebuffer pixels with the origin at the top-left corner.
type Canvas interface {
	FillRect(r Rect, radius float64, c Color)
	StrokeRect(r Rect, radius, weight float64, c Color)
	FillEllipse(cx, cy, w, h float64, c Color)
	StrokeEllipse(cx, cy, w, h, weight float64, c Color)
	Line(x0, y0, x1, y1, weight float64, c Color)
	// FillRotatedRect fills a w x h rectangle centred on (cx, cy) and rotated
	// by angle radians.
	FillRotatedRect(cx, cy, w, h, angle float64, c Color)
	// Text draws s inside box, wrapping at the box width when it is positive.
	Text(s string, box Rect, h HAlign, v VAlign, size float64, c Color)
}
