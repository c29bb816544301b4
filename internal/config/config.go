package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"quizsky/internal/quiz"
)

type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
		VSync  bool   `yaml:"vsync"`
	} `yaml:"window"`
	Quiz struct {
		Questions    string `yaml:"questions"`
		MaxQuestions int    `yaml:"max_questions"`
		HighScore    int    `yaml:"high_score"`
		MidScore     int    `yaml:"mid_score"`
	} `yaml:"quiz"`
	Seed  uint64 `yaml:"seed"`
	Audio struct {
		Mute   bool    `yaml:"mute"`
		Volume float64 `yaml:"volume"`
	} `yaml:"audio"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Window.Width = 960
	cfg.Window.Height = 720
	cfg.Window.Title = "Quiz Sky"
	cfg.Window.VSync = true
	cfg.Quiz.Questions = "questions.csv"
	cfg.Quiz.MaxQuestions = quiz.MaxQuestions
	cfg.Quiz.HighScore = 4
	cfg.Quiz.MidScore = 2
	cfg.Audio.Volume = 0.58
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// Load reads YAML config from path over the defaults. A missing file is not
// an error; an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFile loads a .env file into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from QUIZSKY_* variables. Unparsable values are
// ignored.
func ApplyEnv(cfg *Config) {
	cfg.Quiz.Questions = getEnv("QUIZSKY_QUESTIONS", cfg.Quiz.Questions)
	cfg.Quiz.MaxQuestions = getEnvInt("QUIZSKY_MAX_QUESTIONS", cfg.Quiz.MaxQuestions)
	cfg.Seed = getEnvUint("QUIZSKY_SEED", cfg.Seed)
	cfg.Audio.Mute = getEnvBool("QUIZSKY_MUTE", cfg.Audio.Mute)
	cfg.Log.Level = getEnv("QUIZSKY_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("QUIZSKY_LOG_FORMAT", cfg.Log.Format)
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Quiz.MaxQuestions <= 0 || c.Quiz.MaxQuestions > quiz.MaxQuestions {
		errs = append(errs, fmt.Errorf("max_questions %d must be between 1 and %d", c.Quiz.MaxQuestions, quiz.MaxQuestions))
	}
	if c.Quiz.MidScore < 0 || c.Quiz.HighScore < c.Quiz.MidScore {
		errs = append(errs, fmt.Errorf("score thresholds need 0 <= mid (%d) <= high (%d)", c.Quiz.MidScore, c.Quiz.HighScore))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %.2f outside [0,1]", c.Audio.Volume))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q must be text or json", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if value, ok := os.LookupEnv(key); ok {
		if u, err := strconv.ParseUint(value, 10, 64); err == nil {
			return u
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
