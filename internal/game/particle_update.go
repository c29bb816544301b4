package game

// Update ages every particle, integrates velocity under its gravity and drops
// the expired ones. Order is not preserved.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Expired() {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.VY += p.Gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
}
