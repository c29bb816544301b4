package game

// StormCloud is a heavy, slow cloud seeded by a low score.
type StormCloud struct {
	X, Y    float64
	Scale   float64
	Speed   float64
	W, H    float64
	Opacity float64
}

func NewStormCloud(r *Rand, x, y, scale float64) StormCloud {
	s := StormCloud{X: x, Y: y, Scale: scale}
	s.Speed = r.RangeF(4.8, 16.8) * (0.6 + scale*0.4)
	if s.Speed < 2.4 {
		s.Speed = 2.4
	}
	s.W = 220 * scale
	s.H = 90 * scale
	s.Opacity = r.RangeF(140, 200)
	return s
}

func (s *StormCloud) Update(dt, w float64, r *Rand) {
	s.X += s.Speed * dt
	if s.X-s.W > w {
		s.X = -s.W - r.RangeF(20, 200)
	}
}

// Draw layers a dark core with two smaller, lighter lobes.
func (s *StormCloud) Draw(c Canvas) {
	c.FillEllipse(s.X, s.Y, s.W, s.H, Palette.StormCore.WithAlpha(s.Opacity))
	shade := Palette.StormShade.WithAlpha(s.Opacity - 30)
	c.FillEllipse(s.X-s.W*0.3, s.Y+s.H*0.05, s.W*0.8, s.H*0.8, shade)
	c.FillEllipse(s.X+s.W*0.28, s.Y+s.H*0.02, s.W*0.7, s.H*0.75, shade.Add(8, 8, 8))
}

type StormSystem struct {
	Clouds []StormCloud
}

func (ss *StormSystem) Clear() { ss.Clouds = ss.Clouds[:0] }

func (ss *StormSystem) Len() int { return len(ss.Clouds) }

// Spawn adds count storm clouds over the upper half of a w x h canvas.
func (ss *StormSystem) Spawn(r *Rand, count int, w, h float64) {
	for range count {
		ss.Clouds = append(ss.Clouds, NewStormCloud(r,
			r.RangeF(-200, w),
			r.RangeF(h*0.05, h*0.5),
			r.RangeF(0.8, 1.6)))
	}
}

func (ss *StormSystem) Update(dt, w float64, r *Rand) {
	for i := range ss.Clouds {
		ss.Clouds[i].Update(dt, w, r)
	}
}

func (ss *StormSystem) Draw(c Canvas) {
	for i := range ss.Clouds {
		ss.Clouds[i].Draw(c)
	}
}
