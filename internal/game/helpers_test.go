package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordCanvas keeps a log of draw calls instead of painting.
type recordCanvas struct {
	ops   []string
	texts []string
}

func (r *recordCanvas) FillRect(Rect, float64, Color) {
	r.ops = append(r.ops, "fillRect")
}

func (r *recordCanvas) StrokeRect(Rect, float64, float64, Color) {
	r.ops = append(r.ops, "strokeRect")
}

func (r *recordCanvas) FillEllipse(_, _, _, _ float64, _ Color) {
	r.ops = append(r.ops, "fillEllipse")
}

func (r *recordCanvas) StrokeEllipse(_, _, _, _, _ float64, _ Color) {
	r.ops = append(r.ops, "strokeEllipse")
}

func (r *recordCanvas) Line(_, _, _, _, _ float64, _ Color) {
	r.ops = append(r.ops, "line")
}

func (r *recordCanvas) FillRotatedRect(_, _, _, _, _ float64, _ Color) {
	r.ops = append(r.ops, "rotatedRect")
}

func (r *recordCanvas) Text(s string, _ Rect, _ HAlign, _ VAlign, _ float64, _ Color) {
	r.ops = append(r.ops, "text")
	r.texts = append(r.texts, s)
}

func (r *recordCanvas) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := NewApp(Options{Width: 800, Height: 600, Seed: 42})
	require.NoError(t, a.Start(nil))
	return a
}

func pressOption(a *App, i int) {
	x, y := a.Layout().Options[i].Center()
	a.Press(x, y)
	a.Release()
}

func pressButton(a *App) {
	x, y := a.Layout().Button.Center()
	a.Press(x, y)
	a.Release()
}

// correctIndex returns the option index whose letter is the answer.
func correctIndex(t *testing.T, a *App) int {
	t.Helper()
	q, ok := a.Session.Current()
	require.True(t, ok)
	for i := range q.Options {
		if q.IsCorrect(i) {
			return i
		}
	}
	t.Fatalf("question %q has no correct option", q.Prompt)
	return -1
}

func wrongIndex(t *testing.T, a *App) int {
	t.Helper()
	q, ok := a.Session.Current()
	require.True(t, ok)
	for i := range q.Options {
		if !q.IsCorrect(i) {
			return i
		}
	}
	panic(fmt.Sprintf("question %q has no wrong option", q.Prompt))
}

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	require.GreaterOrEqual(t, s.Score, 0)
	require.LessOrEqual(t, s.Score, s.Index)
	require.GreaterOrEqual(t, s.Index, 0)
	require.LessOrEqual(t, s.Index, s.Total())
	if s.Selected != NoSelection {
		require.Less(t, s.Selected, 4)
	}
}
