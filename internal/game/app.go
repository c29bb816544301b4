package game

import "quizsky/internal/quiz"

// Options configures a new App.
type Options struct {
	Width, Height float64
	Seed          uint64
	MaxQuestions  int
	Thresholds    Thresholds
	Bus           *EventBus
}

// App is the whole presentation: session state plus every animated
// population. All methods must be called from one goroutine.
type App struct {
	Session   *Session
	Bus       *EventBus
	Clouds    *CloudLayer
	Storms    *StormSystem
	Rain      *RainSystem
	Particles *ParticleSystem
	Confetti  *ConfettiSystem
	Trail     *Trail

	rng          *Rand
	w, h         float64
	now          float64
	maxQuestions int

	pointerX, pointerY float64
	pointerDown        bool
	pointerSeen        bool
}

func NewApp(opts Options) *App {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds
	}
	if opts.Bus == nil {
		opts.Bus = NewEventBus()
	}
	rng := NewRand(opts.Seed)
	a := &App{
		Session:      NewSession(opts.Thresholds),
		Bus:          opts.Bus,
		Storms:       &StormSystem{},
		Rain:         NewRainSystem(NewRand(opts.Seed ^ 0x57A7)),
		Particles:    NewParticleSystem(MaxParticles, NewRand(opts.Seed^0xBEAD)),
		Confetti:     NewConfettiSystem(MaxConfetti, NewRand(opts.Seed^0xC0FE)),
		Trail:        &Trail{},
		rng:          rng,
		w:            opts.Width,
		h:            opts.Height,
		maxQuestions: opts.MaxQuestions,
	}
	a.Clouds = NewCloudLayer(rng, CloudCount, a.w, a.h)
	return a
}

// Start hands the loaded questions to the session (loading -> quiz).
func (a *App) Start(qs []quiz.Question) error {
	if err := a.Session.Start(qs, a.maxQuestions); err != nil {
		return err
	}
	a.Bus.Emit(Event{Type: EventQuestionsLoaded, Data: a.Session.Total()})
	return nil
}

// Resize records the new canvas size; the next layout uses it.
func (a *App) Resize(w, h float64) {
	a.w, a.h = w, h
}

func (a *App) Size() (float64, float64) { return a.w, a.h }

// Clock returns seconds of app time.
func (a *App) Clock() float64 { return a.now }

func (a *App) Phase() Phase { return a.Session.Phase }

// Theme is derived, never stored.
func (a *App) Theme() Theme { return themeFor(a.Session.Phase, a.Session.Tier) }

// Layout returns the quiz rectangles for the current canvas size.
func (a *App) Layout() Layout {
	return ComputeLayout(a.w, a.h, quiz.OptionCount)
}

// Update steps every population by dt seconds and prunes expired entities.
func (a *App) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDT {
		dt = MaxFrameDT
	}
	a.now += dt
	a.Clouds.Update(dt, a.w, a.rng)
	a.Storms.Update(dt, a.w, a.rng)
	a.Rain.Update(dt, a.w, a.h)
	if a.pointerSeen {
		a.Trail.Push(a.pointerX, a.pointerY, a.now, a.pointerDown)
	}
	a.Particles.Update(dt)
	a.Confetti.Update(dt, a.now, a.h)
}

// Draw paints one frame: sky, background populations, the screen for the
// current phase, foreground populations and finally the cursor.
func (a *App) Draw(c Canvas) {
	theme := a.Theme()
	drawSky(c, theme, a.w, a.h)
	a.Clouds.Draw(c)
	a.Storms.Draw(c)
	a.Rain.Draw(c)
	a.Trail.Draw(c, a.now, a.pointerDown)

	hover := false
	switch a.Session.Phase {
	case PhaseQuiz:
		l := a.Layout()
		hover = a.pointerSeen && l.OptionAt(a.pointerX, a.pointerY) >= 0
		a.drawQuiz(c, l)
	case PhaseResult:
		a.drawResult(c)
	default:
		drawLoading(c, a.w, a.h)
	}

	a.Particles.Draw(c)
	a.Confetti.Draw(c)
	if a.pointerSeen {
		drawCursor(c, a.pointerX, a.pointerY, hover)
	}
}

// Tick is one full update and draw pass.
func (a *App) Tick(dt float64, c Canvas) {
	a.Update(dt)
	a.Draw(c)
}

// Restart leaves the result screen: counters reset, transient effects
// cleared, clouds scattered afresh. Outside the result phase it does nothing.
func (a *App) Restart() {
	if !a.Session.Restart() {
		return
	}
	a.Particles.Clear()
	a.Confetti.Clear()
	a.Storms.Clear()
	a.Rain.Clear()
	a.Clouds.FadeTarget = CloudFadeVisible
	a.Clouds.Refresh(a.rng, a.w, a.h)
	a.Bus.Emit(Event{Type: EventRestarted})
}
