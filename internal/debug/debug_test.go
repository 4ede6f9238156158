package debug

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-prototype/internal/config"
	"game-prototype/internal/freecam"
)

func TestNewFollowsConfig(t *testing.T) {
	d := New(config.DebugConfig{ShowFPS: true, ShowCamera: true})
	assert.True(t, d.ShowFPS)
	assert.False(t, d.ShowMemAlloc)
	assert.True(t, d.ShowCamera)
	assert.False(t, d.ShowLog)
}

func TestToggle(t *testing.T) {
	d := New(config.DebugConfig{ShowFPS: true})
	d.Toggle()
	assert.False(t, d.ShowFPS || d.ShowMemAlloc || d.ShowCamera || d.ShowLog)
	d.Toggle()
	assert.True(t, d.ShowFPS && d.ShowMemAlloc && d.ShowCamera && d.ShowLog)
}

func TestCameraLines(t *testing.T) {
	lines := CameraLines(Frame{
		State: "playing",
		Camera: freecam.State{
			Position:    mgl32.Vec3{1, 2.5, -3},
			Yaw:         math32.Pi / 2,
			Pitch:       -math32.Pi / 4,
			Velocity:    mgl32.Vec3{3, 0, 4},
			MoveToggled: true,
		},
		Player:         mgl32.Vec3{99.25, 1, 0},
		PlayerGrounded: true,
		Skybox:         "Forest",
		SkyboxIndex:    2,
		SkyboxCount:    5,
		SunAngle:       math32.Pi,
	})
	require.Len(t, lines, 7)
	assert.Equal(t, "state: playing", lines[0])
	assert.Equal(t, "pos: 1.00 2.50 -3.00", lines[1])
	assert.Equal(t, "yaw: 90.0 pitch: -45.0", lines[2])
	assert.Equal(t, "speed: 5.00 mouse: locked", lines[3])
	assert.Equal(t, "player: 99.25 1.00 0.00 ground", lines[4])
	assert.Equal(t, "skybox: Forest (3/5)", lines[5])
	assert.Equal(t, "sun: 180", lines[6])

	air := CameraLines(Frame{})
	assert.Equal(t, "player: 0.00 0.00 0.00 air", air[4])
}
