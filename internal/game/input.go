package game

// Move tracks the pointer without a button held.
func (a *App) Move(x, y float64) {
	a.pointerX, a.pointerY = x, y
	a.pointerSeen = true
}

// Release ends a press or drag.
func (a *App) Release() { a.pointerDown = false }

// Drag moves a held pointer and throws a few decorative sparks.
func (a *App) Drag(x, y float64) {
	a.Move(x, y)
	a.pointerDown = true
	a.Particles.SpawnSparks(x, y)
}

// Press hit-tests (x, y) against the current layout and drives the state
// machine. Presses that hit nothing are ignored.
func (a *App) Press(x, y float64) {
	a.Move(x, y)
	a.pointerDown = true

	switch a.Session.Phase {
	case PhaseQuiz:
		l := a.Layout()
		if i := l.OptionAt(x, y); i >= 0 {
			if a.Session.Select(i) {
				a.Particles.SpawnBurst(x, y, SelectBurstCount, Palette.Burst, 1)
				a.Bus.Emit(Event{Type: EventOptionSelected, X: x, Y: y, Data: i})
			}
			return
		}
		if l.Button.Contains(x, y) {
			a.submit(x, y, l)
		}
	case PhaseResult:
		a.Restart()
	}
}

func (a *App) submit(x, y float64, l Layout) {
	out := a.Session.Submit()
	if !out.Accepted {
		return
	}
	if out.Correct {
		a.Particles.SpawnSuccess(l.Button)
	} else {
		a.Particles.SpawnFailure(x, y)
	}
	a.Bus.Emit(Event{Type: EventAnswerSubmitted, X: x, Y: y, Data: out.Question, Correct: out.Correct})
	if out.Finished {
		a.seedResult(a.Session.Tier)
	}
}
