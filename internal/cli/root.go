package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quizsky/internal/config"
	"quizsky/internal/logger"
)

// RunFunc starts the interactive game with a resolved configuration.
type RunFunc func(ctx context.Context, cfg config.Config, log *slog.Logger) error

type flags struct {
	configPath string
	envFile    string
	questions  string
	seed       uint64
	mute       bool
	logLevel   string
	logFormat  string
}

// Execute runs the CLI.
func Execute(run RunFunc) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd(run).ExecuteContext(ctx)
}

func newRootCmd(run RunFunc) *cobra.Command {
	envConfig := os.Getenv("QUIZSKY_CONFIG")
	if envConfig == "" {
		envConfig = "quizsky.yaml"
	}
	f := &flags{}

	cmd := &cobra.Command{
		Use:          "quizsky",
		Short:        "Multiple-choice quiz under an animated sky",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.Seed == 0 {
				cfg.Seed = uint64(time.Now().UnixNano())
			}
			log.Info("starting", "questions", cfg.Quiz.Questions, "seed", cfg.Seed,
				"size", []int{cfg.Window.Width, cfg.Window.Height}, "mute", cfg.Audio.Mute)
			return run(cmd.Context(), cfg, log)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", envConfig, "path to YAML config")
	pf.StringVar(&f.envFile, "env-file", ".env", "optional .env file loaded before the environment is read")
	pf.StringVar(&f.questions, "questions", "", "question CSV (overrides config)")
	pf.Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	pf.BoolVar(&f.mute, "mute", false, "disable sound effects")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "text or json")

	cmd.AddCommand(newCheckCmd(f))
	return cmd
}

// resolve layers defaults, the YAML file, .env, QUIZSKY_* variables and
// explicit flags, in that order, then installs the logger.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	if err := config.LoadEnvFile(f.envFile); err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyEnv(&cfg)

	pf := cmd.Flags()
	if pf.Changed("questions") {
		cfg.Quiz.Questions = f.questions
	}
	if pf.Changed("seed") {
		cfg.Seed = f.seed
	}
	if pf.Changed("mute") {
		cfg.Audio.Mute = f.mute
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if pf.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	log := logger.InitWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	return cfg, log, nil
}
