package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"quizsky/internal/game"
)

// Init installs the default logger on stderr. format is "json" or "text".
func Init(level, format string) *slog.Logger {
	return InitWriter(os.Stderr, level, format)
}

func InitWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to slog, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// AttachEvents logs game events on bus. Each attempt, from questions loaded
// or restart until the next restart, carries its own attempt id.
func AttachEvents(l *slog.Logger, bus *game.EventBus) {
	if l == nil || bus == nil {
		return
	}
	attempt := uuid.NewString()
	bus.SubscribeAll(func(e game.Event) {
		if e.Type == game.EventRestarted {
			attempt = uuid.NewString()
		}
		log := l.With("attempt", attempt, "event", e.Type.String())
		switch e.Type {
		case game.EventQuestionsLoaded:
			log.Info("quiz started", "questions", e.Data)
		case game.EventOptionSelected:
			log.Debug("option selected", "option", e.Data)
		case game.EventAnswerSubmitted:
			log.Info("answer submitted", "question", e.Data+1, "correct", e.Correct)
		case game.EventResultSeeded:
			log.Info("quiz finished", "score", e.Data, "tier", e.Tier.String())
		case game.EventRestarted:
			log.Info("quiz restarted")
		}
	})
}
