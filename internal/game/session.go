package game

import (
	"errors"

	"quizsky/internal/quiz"
)

type Phase int

const (
	PhaseLoading Phase = iota // waiting for the question source
	PhaseQuiz                 // answering questions
	PhaseResult               // score screen, any press restarts
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseQuiz:
		return "quiz"
	case PhaseResult:
		return "result"
	}
	return "unknown"
}

// NoSelection marks that no option is chosen.
const NoSelection = -1

// ErrAlreadyStarted is returned by Start outside the loading phase.
var ErrAlreadyStarted = errors.New("game: session already started")

// Session is the quiz state machine. It has no side effects beyond its own
// fields; the App turns its outcomes into animation.
type Session struct {
	Phase      Phase
	Questions  []quiz.Question
	Index      int
	Score      int
	Selected   int
	Tier       Tier
	Thresholds Thresholds
}

func NewSession(th Thresholds) *Session {
	return &Session{
		Phase:      PhaseLoading,
		Selected:   NoSelection,
		Thresholds: th,
	}
}

// Start moves loading -> quiz with at most max questions, falling back to
// the built-in set when qs is empty.
func (s *Session) Start(qs []quiz.Question, max int) error {
	if s.Phase != PhaseLoading {
		return ErrAlreadyStarted
	}
	s.Questions = quiz.Prepare(qs, max)
	s.Index = 0
	s.Score = 0
	s.Selected = NoSelection
	s.Tier = TierNone
	s.Phase = PhaseQuiz
	return nil
}

func (s *Session) Total() int { return len(s.Questions) }

// Current returns the question being shown.
func (s *Session) Current() (quiz.Question, bool) {
	if s.Phase != PhaseQuiz || s.Index >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Ready reports whether the submit button is enabled.
func (s *Session) Ready() bool {
	return s.Phase == PhaseQuiz && s.Selected != NoSelection
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.Index >= len(s.Questions)-1 }

// Select marks option i of the current question.
func (s *Session) Select(i int) bool {
	if s.Phase != PhaseQuiz || i < 0 || i >= quiz.OptionCount {
		return false
	}
	s.Selected = i
	return true
}

// SubmitOutcome describes what a submit did.
type SubmitOutcome struct {
	Accepted bool // false when nothing was selected
	Correct  bool
	Finished bool // the session just entered the result phase
	Question int  // index of the scored question
	Choice   int
}

// Submit scores the selected option and advances. Without a selection it
// does nothing.
func (s *Session) Submit() SubmitOutcome {
	q, ok := s.Current()
	if !ok || s.Selected == NoSelection {
		return SubmitOutcome{}
	}
	out := SubmitOutcome{
		Accepted: true,
		Correct:  q.IsCorrect(s.Selected),
		Question: s.Index,
		Choice:   s.Selected,
	}
	if out.Correct {
		s.Score++
	}
	s.Selected = NoSelection
	s.Index++
	if s.Index == len(s.Questions) {
		s.Phase = PhaseResult
		s.Tier = TierFor(s.Score, len(s.Questions), s.Thresholds)
		out.Finished = true
	}
	return out
}

// Restart moves result -> quiz with counters cleared. Outside the result
// phase it is a no-op and returns false.
func (s *Session) Restart() bool {
	if s.Phase != PhaseResult {
		return false
	}
	s.Index = 0
	s.Score = 0
	s.Selected = NoSelection
	s.Tier = TierNone
	s.Phase = PhaseQuiz
	return true
}
