package game

// CloudPart is one soft ellipse of a cloud, fixed at construction so the
// cloud does not jitter between frames.
type CloudPart struct {
	OX, OY float64
	W, H   float64
	Alpha  float64
}

type Cloud struct {
	X, Y    float64
	Scale   float64
	Speed   float64 // px/s, always rightward
	W, H    float64
	Opacity float64
	Parts   []CloudPart
}

func NewCloud(r *Rand, x, y, scale float64) Cloud {
	c := Cloud{X: x, Y: y, Scale: scale}
	c.Speed = r.RangeF(7.2, 24) * (0.5 + scale*0.5)
	if c.Speed < 3.6 {
		c.Speed = 3.6
	}
	c.W = 120 * scale
	c.H = 60 * scale
	c.Opacity = r.RangeF(50, 140)
	c.bakeParts(r, r.Range(3, 5))
	return c
}

func (c *Cloud) bakeParts(r *Rand, detail int) {
	c.Parts = c.Parts[:0]
	for i := range detail {
		c.Parts = append(c.Parts, CloudPart{
			OX:    (float64(i)-float64(detail-1)/2)*(c.W*0.08) + r.RangeF(-6, 6),
			OY:    r.RangeF(-4, 4),
			W:     c.W * (0.6 + r.RangeF(0, 0.6)),
			H:     c.H * (0.6 + r.RangeF(0, 0.6)),
			Alpha: c.Opacity * (0.7 + r.RangeF(0, 0.6)),
		})
	}
}

// Update drifts the cloud right and wraps it to the left once it has fully
// left a canvas of width w.
func (c *Cloud) Update(dt, w float64, r *Rand) {
	c.X += c.Speed * dt
	if c.X-c.W > w {
		c.X = -c.W - r.RangeF(20, 200)
	}
}

func (c *Cloud) Draw(cv Canvas, fade float64) {
	for _, p := range c.Parts {
		a := p.Alpha * fade
		if a <= 0.5 {
			continue
		}
		cv.FillEllipse(c.X+p.OX, c.Y+p.OY, p.W, p.H, Palette.Cloud.WithAlpha(a))
	}
}

// CloudLayer is the decorative sky population. Clouds never die; they wrap.
type CloudLayer struct {
	Clouds     []Cloud
	Fade       float64
	FadeTarget float64
}

func NewCloudLayer(r *Rand, count int, w, h float64) *CloudLayer {
	cl := &CloudLayer{Fade: CloudFadeVisible, FadeTarget: CloudFadeVisible}
	for range count {
		cl.Clouds = append(cl.Clouds, NewCloud(r,
			r.RangeF(-100, w+100),
			r.RangeF(h*0.02, h*0.6),
			r.RangeF(0.8, 1.4)))
	}
	return cl
}

func (cl *CloudLayer) Update(dt, w float64, r *Rand) {
	cl.Fade = easeToward(cl.Fade, cl.FadeTarget, CloudFadeRate, dt)
	for i := range cl.Clouds {
		cl.Clouds[i].Update(dt, w, r)
	}
}

// Refresh scatters the clouds again and rebakes their parts. Scale, speed
// and opacity are kept.
func (cl *CloudLayer) Refresh(r *Rand, w, h float64) {
	for i := range cl.Clouds {
		c := &cl.Clouds[i]
		c.X = r.RangeF(-100, w+100)
		c.Y = r.RangeF(h*0.02, h*0.6)
		c.bakeParts(r, len(c.Parts))
	}
}

func (cl *CloudLayer) Draw(cv Canvas) {
	for i := range cl.Clouds {
		cl.Clouds[i].Draw(cv, cl.Fade)
	}
}
