package quiz

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Column names expected in the CSV header.
const (
	ColQuestion = "question"
	ColOptionA  = "optionA"
	ColOptionB  = "optionB"
	ColOptionC  = "optionC"
	ColOptionD  = "optionD"
	ColAnswer   = "answer"
)

var requiredColumns = []string{ColQuestion, ColOptionA, ColOptionB, ColOptionC, ColOptionD, ColAnswer}

// LoadResult is delivered by LoadAsync once the source has been read.
type LoadResult struct {
	Questions []Question
	Err       error
}

// LoadFile reads questions from a CSV file.
func LoadFile(ctx context.Context, path string) ([]Question, error) {
	if path == "" {
		return nil, ErrNoQuestions
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("quiz: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(ctx, f)
}

// LoadAsync reads path on a separate goroutine. The channel is buffered so the
// loader never blocks on a receiver that stopped polling.
func LoadAsync(ctx context.Context, path string) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	go func() {
		qs, err := LoadFile(ctx, path)
		out <- LoadResult{Questions: qs, Err: err}
	}()
	return out
}

// Parse reads a header row followed by one question per row. Header names are
// matched case-insensitively and may appear in any order. Rows that are too
// short are skipped with a warning.
func Parse(ctx context.Context, r io.Reader) ([]Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoQuestions
	}
	if err != nil {
		return nil, fmt.Errorf("quiz: parse csv header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var qs []Question
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("quiz: parse csv: %w", err)
		}
		q, ok := rowToQuestion(rec, idx)
		if !ok {
			slog.Warn("skipping short question row", "line", line, "fields", len(rec))
			continue
		}
		if !q.ValidAnswer() {
			slog.Warn("question answer is not A-D, it can never be answered correctly",
				"line", line, "answer", q.Answer)
		}
		qs = append(qs, q)
	}
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	return qs, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		for _, want := range requiredColumns {
			if strings.EqualFold(h, want) {
				idx[want] = i
			}
		}
	}
	var missing []string
	for _, want := range requiredColumns {
		if _, ok := idx[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("quiz: csv header missing columns %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func rowToQuestion(rec []string, idx map[string]int) (Question, bool) {
	get := func(col string) (string, bool) {
		i := idx[col]
		if i >= len(rec) {
			return "", false
		}
		return rec[i], true
	}
	var q Question
	var ok bool
	if q.Prompt, ok = get(ColQuestion); !ok {
		return q, false
	}
	for i, col := range []string{ColOptionA, ColOptionB, ColOptionC, ColOptionD} {
		if q.Options[i], ok = get(col); !ok {
			return q, false
		}
	}
	answer, ok := get(ColAnswer)
	if !ok {
		return q, false
	}
	q.Answer = NormalizeAnswer(answer)
	return q, true
}
