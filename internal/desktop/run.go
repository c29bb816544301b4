// Package desktop hosts the game in a GLFW window.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"quizsky/internal/audio"
	"quizsky/internal/config"
	"quizsky/internal/game"
	"quizsky/internal/gfx"
	"quizsky/internal/logger"
	"quizsky/internal/quiz"
)

// Run opens the window and drives the frame loop until the window closes or
// ctx is cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := gfx.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := game.NewEventBus()
	logger.AttachEvents(log, bus)

	sfx, err := audio.New(cfg.Audio.Volume, cfg.Audio.Mute)
	if err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
	}
	sfx.Attach(bus)

	fbW, fbH := window.GetFramebufferSize()
	app := game.NewApp(game.Options{
		Width:        float64(fbW),
		Height:       float64(fbH),
		Seed:         cfg.Seed,
		MaxQuestions: cfg.Quiz.MaxQuestions,
		Thresholds:   game.Thresholds{High: cfg.Quiz.HighScore, Mid: cfg.Quiz.MidScore},
		Bus:          bus,
	})
	bindInput(window, app)

	loadCtx, cancelLoad := context.WithCancel(ctx)
	defer cancelLoad()
	loading := quiz.LoadAsync(loadCtx, cfg.Quiz.Questions)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > game.MaxFrameDT {
			dt = game.MaxFrameDT
		}

		glfw.PollEvents()

		select {
		case res := <-loading:
			loading = nil
			startQuiz(app, res, cfg.Quiz.Questions, log)
		default:
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		app.Resize(float64(fbW), float64(fbH))

		canvas := rend.BeginFrame(fbW, fbH)
		app.Tick(dt, canvas)
		rend.EndFrame()
		window.SwapBuffers()
	}
	return nil
}

// startQuiz hands the loaded questions to the app, falling back to the
// built-in set when the source is missing or broken.
func startQuiz(app *game.App, res quiz.LoadResult, path string, log *slog.Logger) {
	qs := res.Questions
	switch {
	case res.Err == nil:
		log.Info("questions loaded", "path", path, "count", len(qs))
	case errors.Is(res.Err, quiz.ErrNoQuestions), errors.Is(res.Err, fs.ErrNotExist):
		log.Info("no questions found, using built-in set", "path", path)
		qs = nil
	case errors.Is(res.Err, context.Canceled):
		return
	default:
		log.Warn("question source unusable, using built-in set", "path", path, "err", res.Err)
		qs = nil
	}
	if err := app.Start(qs); err != nil {
		log.Error("start quiz", "err", err)
	}
}

func bindInput(window *glfw.Window, app *game.App) {
	cursor := func(w *glfw.Window) (float64, float64) {
		x, y := w.GetCursorPos()
		sx, sy := cursorScale(w)
		return x * sx, y * sy
	}
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			app.Press(cursor(w))
		case glfw.Release:
			app.Release()
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, _, _ float64) {
		x, y := cursor(w)
		if w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
			app.Drag(x, y)
			return
		}
		app.Move(x, y)
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			app.Resize(float64(width), float64(height))
		}
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
}
