package quiz_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quizsky/internal/quiz"
)

func TestNormalizeAnswer(t *testing.T) {
	require.Equal(t, "B", quiz.NormalizeAnswer("  b \t"))
	require.Equal(t, "C", quiz.NormalizeAnswer("C"))
	require.Equal(t, "", quiz.NormalizeAnswer("   "))
}

func TestIsCorrectToleratesCaseAndWhitespace(t *testing.T) {
	q := quiz.Question{Prompt: "p", Options: [4]string{"a", "b", "c", "d"}, Answer: " d "}
	require.True(t, q.IsCorrect(3))
	require.False(t, q.IsCorrect(0))
	require.False(t, q.IsCorrect(4))
	require.False(t, q.IsCorrect(-1))
}

func TestInvalidAnswerIsAlwaysWrong(t *testing.T) {
	q := quiz.Question{Prompt: "p", Options: [4]string{"a", "b", "c", "d"}, Answer: "E"}
	require.False(t, q.ValidAnswer())
	for i := range quiz.OptionCount {
		require.False(t, q.IsCorrect(i))
	}
}

func TestLabel(t *testing.T) {
	q := quiz.Fallback()[0]
	require.Equal(t, "B. 4", q.Label(1))
	require.Equal(t, "", q.Label(9))
}

func TestPrepareFallsBackAndTruncates(t *testing.T) {
	got := quiz.Prepare(nil, 0)
	require.Len(t, got, 5)
	require.Equal(t, "2+2=?", got[0].Prompt)

	many := make([]quiz.Question, 10)
	for i := range many {
		many[i].Prompt = string(rune('a' + i))
	}
	got = quiz.Prepare(many, 0)
	require.Len(t, got, quiz.MaxQuestions)
	require.Equal(t, "a", got[0].Prompt)
	require.Equal(t, "g", got[6].Prompt)

	got[0].Prompt = "changed"
	require.Equal(t, "a", many[0].Prompt)
}

func TestPrepareNeverExceedsMaxQuestions(t *testing.T) {
	many := make([]quiz.Question, 12)
	require.Len(t, quiz.Prepare(many, 20), quiz.MaxQuestions)
	require.Len(t, quiz.Prepare(many, 3), 3)
	require.Len(t, quiz.Prepare(many[:4], 20), 4)
}

func TestParse(t *testing.T) {
	src := "\ufeffQuestion,optionA,optionB,optionC,optionD,Answer\n" +
		"Capital of France?,Rome,Paris,Berlin,Madrid, b \n" +
		"short,row\n" +
		"\"Comma, inside\",1,2,3,4,a\n"
	qs, err := quiz.Parse(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	require.Equal(t, "Capital of France?", qs[0].Prompt)
	require.Equal(t, [4]string{"Rome", "Paris", "Berlin", "Madrid"}, qs[0].Options)
	require.Equal(t, "B", qs[0].Answer)
	require.True(t, qs[0].IsCorrect(1))
	require.Equal(t, "Comma, inside", qs[1].Prompt)
}

func TestParseKeepsOptionTextLiteral(t *testing.T) {
	src := "question,optionA,optionB,optionC,optionD,answer\nQ?,  lead,b,c,d,A\n"
	qs, err := quiz.Parse(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 1)
	require.Equal(t, "  lead", qs[0].Options[0])
	require.Equal(t, "A", qs[0].Answer)
}

func TestParseColumnOrderIsFree(t *testing.T) {
	src := "answer,optionD,optionC,optionB,optionA,question\nA,d,c,b,a,q\n"
	qs, err := quiz.Parse(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, [4]string{"a", "b", "c", "d"}, qs[0].Options)
	require.Equal(t, "q", qs[0].Prompt)
}

func TestParseErrors(t *testing.T) {
	_, err := quiz.Parse(context.Background(), strings.NewReader(""))
	require.ErrorIs(t, err, quiz.ErrNoQuestions)

	_, err = quiz.Parse(context.Background(), strings.NewReader("question,answer\nq,A\n"))
	require.ErrorContains(t, err, "missing columns")

	_, err = quiz.Parse(context.Background(), strings.NewReader("question,optionA,optionB,optionC,optionD,answer\n"))
	require.ErrorIs(t, err, quiz.ErrNoQuestions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = quiz.Parse(ctx, strings.NewReader("question,optionA,optionB,optionC,optionD,answer\nq,a,b,c,d,A\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := quiz.LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadAsync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.csv")
	body := "question,optionA,optionB,optionC,optionD,answer\nq1,a,b,c,d,A\nq2,a,b,c,d,D\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	res := <-quiz.LoadAsync(context.Background(), path)
	require.NoError(t, res.Err)
	require.Len(t, res.Questions, 2)
	require.Equal(t, "D", res.Questions[1].Answer)
}
