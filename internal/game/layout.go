package game

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains is an open-interval test: points on the border are outside.
func (r Rect) Contains(px, py float64) bool {
	return r.X < px && px < r.X+r.W && r.Y < py && py < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W*0.5, r.Y + r.H*0.5
}

// Layout holds every rectangle of the quiz screen for one frame.
type Layout struct {
	Panel   Rect
	Options []Rect
	Button  Rect
	HintY   float64
}

// ComputeLayout is a pure function of the canvas size and option count, so the
// draw pass and the input pass always agree on where things are.
func ComputeLayout(w, h float64, optionCount int) Layout {
	panelW := w - LayoutMargin*2
	if panelW > LayoutMaxWidth {
		panelW = LayoutMaxWidth
	}
	if panelW < 0 {
		panelW = 0
	}
	l := Layout{
		Panel: Rect{X: (w - panelW) / 2, Y: LayoutPanelTop, W: panelW, H: LayoutPanelHeight},
	}

	optY := LayoutPanelTop + LayoutOptionsOffset
	if optionCount < 0 {
		optionCount = 0
	}
	l.Options = make([]Rect, optionCount)
	for i := range l.Options {
		l.Options[i] = Rect{
			X: l.Panel.X,
			Y: optY + float64(i)*(LayoutOptionHeight+LayoutOptionGap),
			W: panelW,
			H: LayoutOptionHeight,
		}
	}

	by := optY + float64(optionCount)*(LayoutOptionHeight+LayoutOptionGap) + LayoutButtonGap
	l.Button = Rect{X: w/2 - LayoutButtonW/2, Y: by, W: LayoutButtonW, H: LayoutButtonH}
	l.HintY = by + LayoutButtonH + 18
	return l
}

// OptionAt returns the index of the option row under (px, py), or -1.
func (l Layout) OptionAt(px, py float64) int {
	for i, r := range l.Options {
		if r.Contains(px, py) {
			return i
		}
	}
	return -1
}
