package quiz

import (
	"errors"
	"strings"
)

// OptionCount is the fixed number of choices per question.
const OptionCount = 4

// MaxQuestions caps the active set, preserving source order.
const MaxQuestions = 7

// ErrNoQuestions is returned when a source yields no usable rows.
var ErrNoQuestions = errors.New("quiz: no questions in source")

// Question is one multiple-choice record. Answer holds a normalised letter.
type Question struct {
	Prompt  string
	Options [OptionCount]string
	Answer  string
}

// NormalizeAnswer trims whitespace and upper-cases an answer letter.
func NormalizeAnswer(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Letter maps an option index to its letter: 0 -> "A".
func Letter(i int) string {
	if i < 0 || i >= OptionCount {
		return ""
	}
	return string(rune('A' + i))
}

// ValidAnswer reports whether the stored answer names one of the options.
func (q Question) ValidAnswer() bool {
	a := NormalizeAnswer(q.Answer)
	for i := range OptionCount {
		if a == Letter(i) {
			return true
		}
	}
	return false
}

// IsCorrect reports whether option i is the answer. Unknown answer letters
// never match.
func (q Question) IsCorrect(i int) bool {
	l := Letter(i)
	return l != "" && NormalizeAnswer(q.Answer) == l
}

// Label renders an option the way the quiz screen shows it, e.g. "B. 4".
func (q Question) Label(i int) string {
	if i < 0 || i >= OptionCount {
		return ""
	}
	return Letter(i) + ". " + q.Options[i]
}

// Fallback returns the built-in arithmetic set used when no source is available.
func Fallback() []Question {
	return []Question{
		{Prompt: "2+2=?", Options: [OptionCount]string{"3", "4", "5", "6"}, Answer: "B"},
		{Prompt: "5-3=?", Options: [OptionCount]string{"1", "3", "2", "4"}, Answer: "C"},
		{Prompt: "3*3=?", Options: [OptionCount]string{"6", "9", "8", "7"}, Answer: "B"},
		{Prompt: "10/2=?", Options: [OptionCount]string{"3", "4", "5", "2"}, Answer: "C"},
		{Prompt: "1+1=?", Options: [OptionCount]string{"1", "3", "2", "4"}, Answer: "C"},
	}
}

// Prepare substitutes the fallback set for an empty input and truncates to
// max entries. max outside 1..MaxQuestions means MaxQuestions. The input
// slice is not modified.
func Prepare(qs []Question, max int) []Question {
	if max <= 0 || max > MaxQuestions {
		max = MaxQuestions
	}
	if len(qs) == 0 {
		qs = Fallback()
	}
	if len(qs) > max {
		qs = qs[:max]
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}
