package game

import "fmt"

func drawLoading(c Canvas, w, h float64) {
	c.Text("Loading...", Rect{X: 0, Y: 0, W: w, H: h}, AlignCenter, AlignMiddle, 24, Palette.Title)
}

func (a *App) drawQuiz(c Canvas, l Layout) {
	s := a.Session
	q, ok := s.Current()
	if !ok {
		return
	}

	// Question panel.
	c.FillRect(l.Panel, PanelRadius, Palette.Panel)
	header := fmt.Sprintf("Question %d/%d", s.Index+1, s.Total())
	c.Text(header, Rect{X: l.Panel.X + 20, Y: l.Panel.Y + 12, W: l.Panel.W - 40, H: 26}, AlignLeft, AlignTop, 22, Palette.Ink)
	c.Text(q.Prompt, Rect{X: l.Panel.X + 20, Y: l.Panel.Y + 40, W: l.Panel.W - 40, H: l.Panel.H - 48}, AlignLeft, AlignTop, 20, Palette.Ink)

	// Options.
	for i, r := range l.Options {
		hovered := a.pointerSeen && r.Contains(a.pointerX, a.pointerY)
		ink := Palette.InkSoft
		switch {
		case s.Selected == i:
			c.FillRect(r, OptionRadius, Palette.Selected)
			c.StrokeRect(r, OptionRadius, 2, Palette.SelectedLine)
			ink = RGB(30, 30, 30)
		case hovered:
			c.FillRect(r, OptionRadius, Palette.Hover)
			c.StrokeRect(r, OptionRadius, 2.2, Palette.HoverLine)
			ink = Palette.Ink
		default:
			c.FillRect(r, OptionRadius, Palette.Panel)
		}
		c.Text(q.Label(i), Rect{X: r.X + 16, Y: r.Y, W: r.W - 32, H: r.H}, AlignLeft, AlignMiddle, 18, ink)
	}

	// Next / submit button.
	ready := s.Ready()
	btn := Palette.Button
	switch {
	case !ready:
		btn = Palette.ButtonOff
	case l.Button.Contains(a.pointerX, a.pointerY):
		btn = Palette.ButtonHover
	}
	c.FillRect(l.Button, OptionRadius, btn)
	label := "Next"
	if s.IsLast() {
		label = "Submit"
	}
	c.Text(label, l.Button, AlignCenter, AlignMiddle, 18, RGB(255, 255, 255))

	if !ready {
		c.Text("Please choose an option first", Rect{X: 0, Y: l.HintY - 10, W: a.w, H: 20},
			AlignCenter, AlignMiddle, 14, Palette.Cloud.WithAlpha(200))
	}
}

func (a *App) drawResult(c Canvas) {
	s := a.Session
	w, h := a.w, a.h
	if s.Tier == TierPerfect {
		c.FillRect(Rect{W: w, H: h}, 0, Color{R: 255, G: 255, B: 255, A: 20})
	} else {
		c.FillRect(Rect{W: w, H: h}, 0, Color{A: 90})
	}

	line := func(text string, cy, size float64, col Color) {
		c.Text(text, Rect{X: 0, Y: cy - size, W: w, H: size * 2}, AlignCenter, AlignMiddle, size, col)
	}
	line("Quiz complete", h/2-90, 56, Palette.Title)
	line(fmt.Sprintf("Score: %d / %d", s.Score, s.Total()), h/2-20, 48, Palette.ScoreText)
	switch s.Tier {
	case TierPerfect, TierHigh:
		line("Excellent! You did really well!", h/2+40, 36, RGB(255, 230, 200))
	case TierMid:
		line("Nice work, keep it up!", h/2+40, 36, Palette.Message)
	default:
		line("Don't give up, practice makes perfect!", h/2+40, 36, Palette.Message)
	}
	line("Click anywhere to restart", h-60, 20, Palette.Hint)
}

// drawCursor draws the pink pointer ring, larger with a dot over an option.
func drawCursor(c Canvas, x, y float64, hover bool) {
	if hover {
		c.StrokeEllipse(x, y, 40, 40, 3.8, Palette.CursorPink)
		c.FillEllipse(x, y, 10, 10, Palette.CursorPink)
		return
	}
	c.StrokeEllipse(x, y, 26, 26, 2.2, Palette.CursorPink.WithAlpha(180))
}
