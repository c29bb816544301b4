package game

// Color is an 8-bit per channel colour with alpha.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// WithAlpha returns c with alpha a on the 0..255 scale, clamped.
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(clampF(a, 0, 255) + 0.5)
	return c
}

// ScaleAlpha multiplies the alpha channel by k.
func (c Color) ScaleAlpha(k float64) Color {
	return c.WithAlpha(float64(c.A) * k)
}

func (c Color) Add(dr, dg, db int) Color {
	return Color{
		R: uint8(clamp(int(c.R)+dr, 0, 255)),
		G: uint8(clamp(int(c.G)+dg, 0, 255)),
		B: uint8(clamp(int(c.B)+db, 0, 255)),
		A: c.A,
	}
}

// LerpColor interpolates every channel, alpha included.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
		A: lerpU8(a.A, b.A, t),
	}
}

var Palette = struct {
	SkyTop       Color
	SkyBottom    Color
	StormTop     Color
	StormBottom  Color
	Sun          Color
	Cloud        Color
	StormCore    Color
	StormShade   Color
	Panel        Color
	Ink          Color
	InkSoft      Color
	Selected     Color
	SelectedLine Color
	Hover        Color
	HoverLine    Color
	Button       Color
	ButtonHover  Color
	ButtonOff    Color
	CursorPink   Color
	CursorGold   Color
	Burst        Color
	Success      Color
	Failure      Color
	Bubble       Color
	Rain         Color
	Title        Color
	ScoreText    Color
	Message      Color
	Hint         Color
}{
	SkyTop:       RGB(180, 220, 255),
	SkyBottom:    RGB(100, 180, 255),
	StormTop:     RGB(80, 90, 110),
	StormBottom:  RGB(50, 60, 75),
	Sun:          RGB(255, 230, 150),
	Cloud:        RGB(255, 255, 255),
	StormCore:    RGB(40, 40, 50),
	StormShade:   RGB(58, 58, 70),
	Panel:        Color{R: 255, G: 255, B: 255, A: 240},
	Ink:          RGB(20, 20, 20),
	InkSoft:      RGB(10, 10, 10),
	Selected:     Color{R: 255, G: 155, B: 210, A: 230},
	SelectedLine: RGB(220, 70, 150),
	Hover:        RGB(255, 230, 245),
	HoverLine:    RGB(255, 105, 180),
	Button:       RGB(40, 120, 200),
	ButtonHover:  RGB(30, 160, 240),
	ButtonOff:    RGB(160, 160, 160),
	CursorPink:   RGB(255, 105, 180),
	CursorGold:   RGB(255, 215, 0),
	Burst:        RGB(255, 200, 80),
	Success:      RGB(80, 220, 120),
	Failure:      RGB(240, 100, 100),
	Bubble:       RGB(150, 200, 255),
	Rain:         RGB(175, 195, 220),
	Title:        RGB(255, 255, 255),
	ScoreText:    RGB(255, 240, 200),
	Message:      Color{R: 255, G: 255, B: 255, A: 240},
	Hint:         RGB(220, 220, 220),
}
