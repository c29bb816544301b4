package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "quizsky.yaml", `
window:
  width: 1280
quiz:
  questions: data/q.csv
  high_score: 5
seed: 99
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1280, cfg.Window.Width)
	require.Equal(t, 720, cfg.Window.Height, "untouched default")
	require.Equal(t, "data/q.csv", cfg.Quiz.Questions)
	require.Equal(t, 5, cfg.Quiz.HighScore)
	require.Equal(t, 2, cfg.Quiz.MidScore)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "window: [1, 2")
	_, err := Load(path)
	require.ErrorContains(t, err, "config: parse")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("QUIZSKY_QUESTIONS", "/tmp/q.csv")
	t.Setenv("QUIZSKY_SEED", "1234")
	t.Setenv("QUIZSKY_MUTE", "true")
	t.Setenv("QUIZSKY_LOG_LEVEL", "debug")
	t.Setenv("QUIZSKY_MAX_QUESTIONS", "not-a-number")

	cfg := Default()
	ApplyEnv(&cfg)
	require.Equal(t, "/tmp/q.csv", cfg.Quiz.Questions)
	require.Equal(t, uint64(1234), cfg.Seed)
	require.True(t, cfg.Audio.Mute)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 7, cfg.Quiz.MaxQuestions)
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "QUIZSKY_TEST_ONLY=from-file\n")
	t.Setenv("QUIZSKY_TEST_ONLY", "")
	os.Unsetenv("QUIZSKY_TEST_ONLY")
	require.NoError(t, LoadEnvFile(path))
	require.Equal(t, "from-file", os.Getenv("QUIZSKY_TEST_ONLY"))

	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, LoadEnvFile(""))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Window.Width = 0
	cfg.Quiz.HighScore = 1
	cfg.Audio.Volume = 2
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"window size", "thresholds", "volume", "log format"} {
		require.ErrorContains(t, err, want)
	}
}

func TestValidateMaxQuestionsRange(t *testing.T) {
	t.Setenv("QUIZSKY_MAX_QUESTIONS", "20")
	cfg := Default()
	ApplyEnv(&cfg)
	require.Equal(t, 20, cfg.Quiz.MaxQuestions)
	require.ErrorContains(t, cfg.Validate(), "max_questions")

	cfg.Quiz.MaxQuestions = 0
	require.ErrorContains(t, cfg.Validate(), "max_questions")

	cfg.Quiz.MaxQuestions = 7
	require.NoError(t, cfg.Validate())
}
