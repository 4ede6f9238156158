package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"game-prototype/internal/config"
)

// maxFrameTime caps the dt handed to update, so a stalled frame (window drag, breakpoint)
// does not arrive as one huge step.
const maxFrameTime = 0.25

// Run opens the window described by cfg and drives the main loop. Each frame it calls update
// with the frame time, then clears the screen and calls draw. When the window is closed unload
// runs while the GL context still exists. ESC does not quit; close via the window button.
func Run(cfg config.WindowConfig, update func(dt float32), draw, unload func()) {
	if cfg.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), cfg.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
		rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(cfg.TargetFPS)

	for !rl.WindowShouldClose() {
		update(clampFrameTime(rl.GetFrameTime()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if unload != nil {
		unload()
	}
}

func clampFrameTime(dt float32) float32 {
	return min(max(dt, 0), maxFrameTime)
}
