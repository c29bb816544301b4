package game

import "math"

// SpawnBurst emits count particles at (x, y). dir scales the radial velocity
// and a negative value mirrors it. Every particle also gets an upward kick.
func (ps *ParticleSystem) SpawnBurst(x, y float64, count int, col Color, dir float64) {
	r := ps.rng
	for range count {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(60, 360)
		ps.Add(Particle{
			X: x, Y: y,
			VX:      math.Cos(ang) * spd * dir,
			VY:      math.Sin(ang)*spd*dir - r.RangeF(60, 180),
			Gravity: ParticleGravity,
			Size:    r.RangeF(6, 14),
			MaxLife: ParticleLifetime,
			Col:     col,
			Kind:    ParticleBurst,
		})
	}
}

// SpawnSuccess sprays green particles across the middle of the button.
func (ps *ParticleSystem) SpawnSuccess(button Rect) {
	cx, cy := button.Center()
	r := ps.rng
	for range SuccessBurstCount {
		ps.SpawnBurst(r.RangeF(cx-60, cx+60), cy, 1, Palette.Success, 1)
	}
}

// SpawnFailure bursts red particles at the pointer.
func (ps *ParticleSystem) SpawnFailure(x, y float64) {
	ps.SpawnBurst(x, y, FailureBurstCount, Palette.Failure, 1)
}

// SpawnSparks scatters a couple of gold sparks around a dragging pointer.
func (ps *ParticleSystem) SpawnSparks(x, y float64) {
	r := ps.rng
	for range DragSparkCount {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(60, 360)
		ps.Add(Particle{
			X: x + r.RangeF(-8, 8), Y: y + r.RangeF(-8, 8),
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang)*spd - r.RangeF(60, 180),
			Gravity: ParticleGravity,
			Size:    r.RangeF(6, 14),
			MaxLife: ParticleLifetime,
			Col:     Palette.CursorGold,
			Kind:    ParticleSpark,
		})
	}
}

// SpawnBubbles releases slow buoyant particles from the lower part of a
// w x h canvas.
func (ps *ParticleSystem) SpawnBubbles(w, h float64, count int) {
	r := ps.rng
	for range count {
		ps.Add(Particle{
			X:       r.RangeF(0, w),
			Y:       r.RangeF(h*0.55, h+40),
			VX:      r.RangeF(-15, 15),
			VY:      r.RangeF(-90, -35),
			Gravity: BubbleBuoyancy,
			Size:    r.RangeF(8, 20),
			MaxLife: BubbleLifetime * r.RangeF(0.8, 1.2),
			Col:     Palette.Bubble,
			Kind:    ParticleBubble,
		})
	}
}
