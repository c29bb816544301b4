package game

// skyBand is the height of one gradient stripe.
const skyBand = 4.0

func drawSky(c Canvas, theme Theme, w, h float64) {
	if h <= 0 || w <= 0 {
		return
	}
	for y := 0.0; y < h; y += skyBand {
		t := y / h
		var col Color
		if theme == ThemeStorm {
			col = LerpColor(Palette.StormTop, Palette.StormBottom, t*0.9)
		} else {
			col = LerpColor(Palette.SkyTop, Palette.SkyBottom, t)
		}
		c.FillRect(Rect{X: 0, Y: y, W: w, H: skyBand}, 0, col)
	}
	if theme == ThemeSun {
		drawSun(c, w*0.85, h*0.18)
	}
}

// drawSun stacks translucent discs, faint and wide outside, denser inside.
func drawSun(c Canvas, x, y float64) {
	for r := 80.0; r > 0; r -= 12 {
		a := mapRange(r, 80, 0, 30, 180)
		c.FillEllipse(x, y, r*3, r*3, Palette.Sun.WithAlpha(a))
	}
}
