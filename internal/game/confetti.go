package game

import "math"

type Confetto struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Rot      float64
	RotSpeed float64 // rad/s
	Col      Color
}

func NewConfetto(r *Rand, x, y float64) Confetto {
	return Confetto{
		X: x, Y: y,
		VX:       r.RangeF(-60, 60),
		VY:       r.RangeF(60, 240),
		W:        r.RangeF(6, 12),
		H:        r.RangeF(8, 14),
		Rot:      r.RangeF(0, math.Pi*2),
		RotSpeed: r.RangeF(-6, 6),
		Col:      RGB(uint8(r.Range(50, 255)), uint8(r.Range(50, 255)), uint8(r.Range(50, 255))),
	}
}

// Update advances one piece. clock is the app time in seconds and drives the
// shared flutter.
func (c *Confetto) Update(dt, clock float64) {
	c.X += c.VX * dt
	c.Y += c.VY * dt
	c.Rot += c.RotSpeed * dt
	c.VX += math.Sin(clock*ConfettoFlutterHz) * ConfettoFlutterAmp * dt
}

// Off reports whether the piece has fallen past the bottom margin.
func (c *Confetto) Off(h float64) bool { return c.Y > h+ConfettoMargin }

type ConfettiSystem struct {
	Max int
	C   []Confetto
	rng *Rand
}

func NewConfettiSystem(max int, rng *Rand) *ConfettiSystem {
	if max <= 0 {
		max = MaxConfetti
	}
	if rng == nil {
		rng = NewRand(1)
	}
	return &ConfettiSystem{Max: max, rng: rng}
}

func (cs *ConfettiSystem) Clear() { cs.C = cs.C[:0] }

func (cs *ConfettiSystem) Len() int { return len(cs.C) }

// Spawn drops count pieces at random x in [0, w) and y in [yMin, yMax).
func (cs *ConfettiSystem) Spawn(count int, w, yMin, yMax float64) {
	for range count {
		if len(cs.C) >= cs.Max {
			return
		}
		cs.C = append(cs.C, NewConfetto(cs.rng, cs.rng.RangeF(0, w), cs.rng.RangeF(yMin, yMax)))
	}
}

func (cs *ConfettiSystem) Update(dt, clock, h float64) {
	for i := 0; i < len(cs.C); {
		c := &cs.C[i]
		c.Update(dt, clock)
		if c.Off(h) {
			cs.C[i] = cs.C[len(cs.C)-1]
			cs.C = cs.C[:len(cs.C)-1]
			continue
		}
		i++
	}
}

func (cs *ConfettiSystem) Draw(cv Canvas) {
	for i := range cs.C {
		c := &cs.C[i]
		cv.FillRotatedRect(c.X, c.Y, c.W, c.H, c.Rot, c.Col)
	}
}
