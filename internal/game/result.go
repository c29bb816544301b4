package game

// Tier is the outcome bucket of a finished attempt.
type Tier int

const (
	TierNone Tier = iota
	TierLow
	TierMid
	TierHigh
	TierPerfect
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	case TierPerfect:
		return "perfect"
	}
	return "none"
}

// Thresholds are absolute scores, tuned for sets of 5 to 7 questions.
type Thresholds struct {
	High int
	Mid  int
}

var DefaultThresholds = Thresholds{High: 4, Mid: 2}

// TierFor buckets a final score. Buckets are checked from best to worst so
// exactly one applies.
func TierFor(score, total int, th Thresholds) Tier {
	switch {
	case total > 0 && score == total:
		return TierPerfect
	case score >= th.High:
		return TierHigh
	case score >= th.Mid:
		return TierMid
	default:
		return TierLow
	}
}

// Theme is the sky look, derived from phase and tier.
type Theme int

const (
	ThemeCalm Theme = iota
	ThemeSun
	ThemeStorm
)

func (t Theme) String() string {
	switch t {
	case ThemeSun:
		return "sun"
	case ThemeStorm:
		return "storm"
	}
	return "calm"
}

func themeFor(p Phase, t Tier) Theme {
	if p != PhaseResult {
		return ThemeCalm
	}
	switch t {
	case TierPerfect:
		return ThemeSun
	case TierLow:
		return ThemeStorm
	}
	return ThemeCalm
}

// seedResult spawns the result animation for tier. Called once per entry
// into the result phase.
func (a *App) seedResult(t Tier) {
	w, h := a.w, a.h
	switch t {
	case TierPerfect:
		a.Clouds.FadeTarget = CloudFadePerfect
		a.Confetti.Spawn(PerfectConfetti, w, -300, -10)
	case TierHigh:
		a.Clouds.FadeTarget = CloudFadeVisible
		a.Confetti.Spawn(HighConfetti, w, -200, -10)
	case TierMid:
		a.Clouds.FadeTarget = CloudFadeVisible
		a.Particles.SpawnBubbles(w, h, MidBubbles)
	case TierLow:
		a.Clouds.FadeTarget = CloudFadeVisible
		a.Storms.Clear()
		a.Storms.Spawn(a.rng, StormCloudCount, w, h)
		a.Rain.Start()
		a.Confetti.Spawn(LowDebris, w, -400, h)
	default:
		return
	}
	a.Bus.Emit(Event{Type: EventResultSeeded, Tier: t, Data: a.Session.Score})
}
