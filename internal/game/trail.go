package game

type TrailSample struct {
	X, Y float64
	T    float64 // app clock, seconds
}

// Trail is the fading pointer tail, oldest sample first.
type Trail struct {
	Samples []TrailSample
}

// Push appends a sample and drops the oldest ones beyond the cap for the
// current pointer state.
func (t *Trail) Push(x, y, now float64, held bool) {
	t.Samples = append(t.Samples, TrailSample{X: x, Y: y, T: now})
	limit := TrailCap
	if held {
		limit = TrailCapHeld
	}
	if n := len(t.Samples) - limit; n > 0 {
		t.Samples = append(t.Samples[:0], t.Samples[n:]...)
	}
}

func (t *Trail) Clear() { t.Samples = t.Samples[:0] }

func (t *Trail) Draw(c Canvas, now float64, held bool) {
	n := float64(len(t.Samples))
	maxSize := 12.0
	col := Palette.Cloud
	if held {
		maxSize = 20
		col = Palette.CursorGold
	}
	for i, s := range t.Samples {
		a := mapRange(now-s.T, 0, TrailFadeSeconds, 200, 0)
		if a <= 0 {
			continue
		}
		size := mapRange(float64(i), 0, n, 2, maxSize)
		c.FillEllipse(s.X, s.Y, size, size, col.WithAlpha(a))
	}
}
