package game

// RainDrop is one falling streak under the storm.
type RainDrop struct {
	X, Y   float64
	VX, VY float64
	Len    float64
	Alpha  float64
}

// RainSystem rains from the storm clouds while it is active. Drops that are
// already falling finish when it stops.
type RainSystem struct {
	Drops  []RainDrop
	Active bool

	rng       *Rand
	intensity float64
	windX     float64
	spawnAcc  float64
	gustAcc   float64
}

func NewRainSystem(rng *Rand) *RainSystem {
	if rng == nil {
		rng = NewRand(1)
	}
	return &RainSystem{rng: rng, intensity: 1}
}

// Start begins a shower with a fresh intensity and wind.
func (rs *RainSystem) Start() {
	rs.Active = true
	rs.spawnAcc = 0
	rs.gustAcc = 0
	rs.intensity = 0.78 + rs.rng.RangeF(0, 0.62)
	rs.windX = rs.rng.RangeF(-RainWindMax*0.75, RainWindMax*0.75)
}

func (rs *RainSystem) Stop() { rs.Active = false }

func (rs *RainSystem) Clear() {
	rs.Drops = rs.Drops[:0]
	rs.Active = false
}

func (rs *RainSystem) Len() int { return len(rs.Drops) }

// Update moves the drops, removes those below a canvas of height h and, while
// active, spawns new ones across its width w.
func (rs *RainSystem) Update(dt, w, h float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(rs.Drops); {
		d := &rs.Drops[i]
		d.X += d.VX * dt
		d.Y += d.VY * dt
		if d.Y-d.Len > h {
			rs.Drops[i] = rs.Drops[len(rs.Drops)-1]
			rs.Drops = rs.Drops[:len(rs.Drops)-1]
			continue
		}
		i++
	}
	if !rs.Active {
		return
	}

	// Slow gust drift so the slant changes over time.
	rs.gustAcc += dt
	if rs.gustAcc >= 0.6 {
		rs.windX = clampF(rs.windX+rs.rng.RangeF(-RainGust, RainGust), -RainWindMax, RainWindMax)
		rs.gustAcc = 0
	}

	rs.spawnAcc += RainRate * rs.intensity * dt
	count := int(rs.spawnAcc)
	if count <= 0 {
		return
	}
	rs.spawnAcc -= float64(count)

	r := rs.rng
	for range count {
		if len(rs.Drops) >= MaxRainDrops {
			return
		}
		rs.Drops = append(rs.Drops, RainDrop{
			X:     r.RangeF(-40, w+40),
			Y:     r.RangeF(h*0.1, h*0.45),
			VX:    rs.windX + r.RangeF(-8, 8),
			VY:    RainSpeed + r.RangeF(0, 160),
			Len:   r.RangeF(8, 16),
			Alpha: r.RangeF(90, 160),
		})
	}
}

func (rs *RainSystem) Draw(c Canvas) {
	for i := range rs.Drops {
		d := &rs.Drops[i]
		// Streak points back along the velocity.
		k := d.Len / d.VY
		c.Line(d.X, d.Y, d.X-d.VX*k, d.Y-d.Len, 1.4, Palette.Rain.WithAlpha(d.Alpha))
	}
}
