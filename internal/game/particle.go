package game

type ParticleKind uint8

const (
	ParticleBurst ParticleKind = iota
	ParticleSpark
	ParticleBubble
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64 // px/s^2, negative floats upward

	Size float64

	Life    float64 // seconds since spawn
	MaxLife float64

	Col  Color
	Kind ParticleKind
}

// Alpha fades linearly from 255 at spawn to 0 at MaxLife.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clampF(mapRange(p.Life, 0, p.MaxLife, 255, 0), 0, 255)
}

// Expired reports whether the particle has outlived its lifetime.
func (p *Particle) Expired() bool { return p.Life > p.MaxLife }

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, rng *Rand) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if rng == nil {
		rng = NewRand(1)
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, 256),
		rng: rng,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// CountKind returns how many live particles are of kind k.
func (ps *ParticleSystem) CountKind(k ParticleKind) int {
	n := 0
	for i := range ps.P {
		if ps.P[i].Kind == k {
			n++
		}
	}
	return n
}

func (ps *ParticleSystem) Draw(c Canvas) {
	for i := range ps.P {
		p := &ps.P[i]
		a := p.Alpha()
		if a <= 0 {
			continue
		}
		if p.Kind == ParticleBubble {
			// Soft body plus a faint rim.
			c.FillEllipse(p.X, p.Y, p.Size, p.Size, p.Col.WithAlpha(a*0.55))
			c.StrokeEllipse(p.X, p.Y, p.Size, p.Size, 1.2, p.Col.WithAlpha(a))
			continue
		}
		c.FillEllipse(p.X, p.Y, p.Size, p.Size, p.Col.WithAlpha(a))
	}
}
