package gui

import (
	"errors"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomviz/internal/app"
	"github.com/san-kum/atomviz/internal/config"
)

// ErrWindow indicates raylib could not create the window.
var ErrWindow = errors.New("gui: window initialization failed")

// initWindow opens the fixed-size window and sets the starting frame rate.
func initWindow(w config.WindowConfig) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	if !rl.IsWindowReady() {
		return ErrWindow
	}
	rl.SetTargetFPS(int32(w.PromptFPS))
	return nil
}

// loadFont loads the configured TTF with bilinear filtering, falling back to
// raylib's built-in font when no file is configured or it cannot be read.
func loadFont(path string, size int) (rl.Font, bool) {
	if path == "" {
		return rl.GetFontDefault(), false
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("font %s unavailable, using default: %v", path, err)
		return rl.GetFontDefault(), false
	}
	font := rl.LoadFontEx(path, int32(size), nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// Run opens the window, runs the visualizer until the window is closed and
// releases every raylib resource on return. A positive startZ skips the
// initial prompt.
func Run(cfg *config.Config, startZ int) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	if startZ > 0 {
		if err := a.Select(startZ); err != nil {
			return err
		}
	}

	if err := initWindow(cfg.Window); err != nil {
		return err
	}
	defer rl.CloseWindow()

	s := NewSurface(cfg.Window)
	defer s.Close()

	a.Run(s)
	return nil
}
