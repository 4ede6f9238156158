package debug

import (
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"game-prototype/internal/config"
	"game-prototype/internal/freecam"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30

	logFontSize   = 14
	logLineHeight = logFontSize + 2
	logLines      = 8
)

// Frame is what the overlay reports about the current frame.
type Frame struct {
	State          string
	Camera         freecam.State
	Player         mgl32.Vec3
	PlayerGrounded bool
	Skybox         string
	SkyboxIndex    int
	SkyboxCount    int
	SunAngle       float32
	Log            []string
}

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowCamera   bool
	ShowLog      bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with the overlays enabled in cfg.
func New(cfg config.DebugConfig) *Debug {
	return &Debug{
		ShowFPS:      cfg.ShowFPS,
		ShowMemAlloc: cfg.ShowMemAlloc,
		ShowCamera:   cfg.ShowCamera,
	}
}

// Toggle flips every overlay on or off together.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS || d.ShowMemAlloc || d.ShowCamera || d.ShowLog)
	d.ShowFPS, d.ShowMemAlloc, d.ShowCamera, d.ShowLog = on, on, on, on
}

// Draw renders the enabled overlays. Call last in the draw loop.
// FPS and memory go top-right in green; camera and sun lines go top-left; the log tail goes
// bottom-left. FPS/Mem text is only recomputed every updateInterval frames.
func (d *Debug) Draw(f Frame) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, y)
	}

	if d.ShowCamera {
		y = fpsPadding
		for _, line := range CameraLines(f) {
			rl.DrawText(line, fpsPadding, y, fpsFontSize, rl.Green)
			y += fpsLineHeight
		}
	}

	if d.ShowLog && len(f.Log) > 0 {
		lines := f.Log
		if len(lines) > logLines {
			lines = lines[len(lines)-logLines:]
		}
		y = int32(rl.GetScreenHeight()) - fpsPadding - int32(len(lines))*logLineHeight
		for _, line := range lines {
			rl.DrawText(line, fpsPadding, y, logFontSize, rl.LightGray)
			y += logLineHeight
		}
	}
}

// CameraLines formats the camera block of the overlay.
func CameraLines(f Frame) []string {
	c := f.Camera
	capture := "off"
	if c.MoveToggled {
		capture = "locked"
	}
	footing := "air"
	if f.PlayerGrounded {
		footing = "ground"
	}
	return []string{
		fmt.Sprintf("state: %s", f.State),
		fmt.Sprintf("pos: %.2f %.2f %.2f", c.Position.X(), c.Position.Y(), c.Position.Z()),
		fmt.Sprintf("yaw: %.1f pitch: %.1f", degrees(c.Yaw), degrees(c.Pitch)),
		fmt.Sprintf("speed: %.2f mouse: %s", c.Velocity.Len(), capture),
		fmt.Sprintf("player: %.2f %.2f %.2f %s", f.Player.X(), f.Player.Y(), f.Player.Z(), footing),
		fmt.Sprintf("skybox: %s (%d/%d)", f.Skybox, f.SkyboxIndex+1, f.SkyboxCount),
		fmt.Sprintf("sun: %.0f", degrees(f.SunAngle)),
	}
}

func degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	x := int32(rl.GetScreenWidth()) - w - fpsPadding
	rl.DrawText(text, x, y, fpsFontSize, rl.Green)
}
