package synth

import "quizsky/internal/game"

// ForEvent picks the effect for a game event. ok is false for events that
// stay silent.
func ForEvent(e game.Event) (kind Sound, ok bool) {
	switch e.Type {
	case game.EventOptionSelected:
		return SoundSelect, true
	case game.EventAnswerSubmitted:
		if e.Correct {
			return SoundCorrect, true
		}
		return SoundWrong, true
	case game.EventResultSeeded:
		switch e.Tier {
		case game.TierPerfect:
			return SoundPerfect, true
		case game.TierHigh:
			return SoundHigh, true
		case game.TierMid:
			return SoundMid, true
		case game.TierLow:
			return SoundLow, true
		}
	case game.EventRestarted:
		return SoundRestart, true
	}
	return 0, false
}
