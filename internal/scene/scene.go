package scene

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"game-prototype/internal/assets"
	"game-prototype/internal/freecam"
	"game-prototype/internal/input"
	"game-prototype/internal/physics"
	"game-prototype/internal/player"
	"game-prototype/internal/skybox"
	"game-prototype/internal/stage"
)

const (
	// sunSpeed is how fast the sun turns about the world Y axis, in radians per second.
	sunSpeed    = 0.5
	sunDistance = 60
	sunHeight   = 40
	sunRadius   = 3

	playerRadius = 0.5
	fovy         = 45
)

// Options wires a Scene to its collaborators.
type Options struct {
	Camera      freecam.Config
	Start       freecam.Transform
	Controls    player.Controls
	PlayerSpeed float32
	Skyboxes    *skybox.Cycler
	Assets      *assets.Manifest
	Log         *zap.Logger
}

// Scene is the playable world: the stage, the player, the skybox and a free-flying camera.
// Update runs simulation and input; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera rl.Camera3D

	cam      *freecam.Controller
	view     freecam.Transform
	keys     []input.Key
	player   *player.Player
	world    *physics.World
	pieces   []stage.Piece
	skyboxes *skybox.Cycler
	assets   *assets.Manifest
	sky      sky
	sunAngle float32
	captured bool
	rng      *rand.Rand
	log      *zap.Logger
}

// New builds the stage, spawns the player and places the camera at opts.Start.
func New(opts Options) *Scene {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{
		cam:      freecam.New(opts.Camera),
		view:     opts.Start,
		player:   player.New(opts.Controls, opts.PlayerSpeed),
		world:    physics.NewWorld(),
		pieces:   stage.Build(),
		skyboxes: opts.Skyboxes,
		assets:   opts.Assets,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      log,
	}
	s.keys = append(opts.Camera.Bindings.Keys(), opts.Controls.Keys()...)
	stage.Register(s.world, s.pieces)
	s.world.AddBody(s.player.Body)

	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	applyView(&s.Camera, s.view)
	return s
}

// Update runs once per frame while playing.
func (s *Scene) Update(dt float32) {
	keys := input.Poll(keyDown, s.keys...)

	s.player.Update(keys)
	s.world.Step(dt)

	bindings := s.cam.Config().Bindings
	md := rl.GetMouseDelta()
	s.view = s.cam.Update(freecam.Input{
		Dt:            dt,
		Keys:          keys,
		MouseDelta:    mgl32.Vec2{md.X, md.Y},
		CaptureHeld:   rl.IsMouseButtonDown(rl.MouseButton(bindings.CaptureMouse)),
		TogglePressed: rl.IsKeyPressed(int32(bindings.ToggleMouse)),
	}, s.view)
	applyView(&s.Camera, s.view)
	s.syncCursor()

	if rl.IsKeyPressed(int32(input.KeySpace)) {
		s.skyboxes.Next(s.rng.Intn)
	}
	s.sunAngle = advanceSun(s.sunAngle, dt)
}

// Draw renders the world. Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw() {
	s.loadPendingSkybox()
	rl.BeginMode3D(s.Camera)
	if s.sky.loaded {
		s.sky.draw(s.Camera.Position)
	}
	for _, p := range s.pieces {
		drawPiece(p)
	}
	drawPlayer(s.player)
	rl.DrawSphere(toVector3(sunPosition(s.sunAngle)), sunRadius, rl.Yellow)
	rl.EndMode3D()
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	s.sky.unload()
	if s.captured {
		rl.EnableCursor()
		s.captured = false
	}
}

// CameraState returns the free camera's state for overlays.
func (s *Scene) CameraState() freecam.State {
	return s.cam.State()
}

// SetCameraEnabled turns the free camera on or off, releasing the cursor when it goes off.
func (s *Scene) SetCameraEnabled(enabled bool) {
	s.cam.SetEnabled(enabled)
	s.syncCursor()
}

// SunAngle returns the sun's current rotation about Y in radians, within [0, 2π).
func (s *Scene) SunAngle() float32 {
	return s.sunAngle
}

// Skybox returns the skybox on display or being loaded, its index and the catalogue size.
func (s *Scene) Skybox() (skybox.Entry, int, int) {
	return s.skyboxes.Current(), s.skyboxes.Index(), s.skyboxes.Len()
}

// PlayerPosition returns the player's body centre and whether it is standing on something.
func (s *Scene) PlayerPosition() (mgl32.Vec3, bool) {
	return s.player.Position(), s.player.Grounded()
}

// syncCursor hides and locks the cursor while the camera is steering with the mouse.
func (s *Scene) syncCursor() {
	st := s.cam.State()
	want := st.Enabled && (st.MoveToggled || rl.IsMouseButtonDown(rl.MouseButton(s.cam.Config().Bindings.CaptureMouse)))
	if want == s.captured {
		return
	}
	if want {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
	s.captured = want
}

// loadPendingSkybox converts the cycler's current entry into a cubemap. It runs from Draw so the
// GPU upload happens once the window and GL context exist. On failure the cycler falls back to
// the skybox still on screen.
func (s *Scene) loadPendingSkybox() {
	if !s.skyboxes.Pending() {
		return
	}
	entry := s.skyboxes.Current()
	tex, err := s.uploadCubemap(s.assets.Path(entry.Path))
	if err != nil {
		s.log.Warn("skybox not loaded", zap.String("name", entry.Name), zap.Error(err))
		s.skyboxes.MarkFailed()
		return
	}
	s.sky.replace(tex)
	s.skyboxes.MarkLoaded()
	s.log.Debug("skybox loaded", zap.String("name", entry.Name), zap.Int32("size", tex.Width))
}

func (s *Scene) uploadCubemap(path string) (rl.Texture2D, error) {
	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return rl.Texture2D{}, errors.Errorf("cannot read image %s", path)
	}
	defer rl.UnloadImage(img)

	if _, err := skybox.CubemapLayers(int(img.Width), int(img.Height)); err != nil {
		return rl.Texture2D{}, err
	}
	tex := rl.LoadTextureCubemap(img, rl.CubemapLayoutLineVertical)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, errors.Errorf("cubemap upload failed for %s", path)
	}
	return tex, nil
}

func keyDown(k input.Key) bool {
	return rl.IsKeyDown(int32(k))
}

// applyView points cam along the transform's forward axis.
func applyView(cam *rl.Camera3D, t freecam.Transform) {
	cam.Position = toVector3(t.Position)
	cam.Target = toVector3(t.Position.Add(freecam.Forward(t.Rotation)))
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func advanceSun(angle, dt float32) float32 {
	angle = math32.Mod(angle+sunSpeed*dt, 2*math32.Pi)
	if angle < 0 {
		angle += 2 * math32.Pi
	}
	return angle
}

// sunPosition places the sun marker on a circle above the stage.
func sunPosition(angle float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(angle) * sunDistance, sunHeight, math32.Sin(angle) * sunDistance}
}

func drawPiece(p stage.Piece) {
	size := p.HalfExtents.Mul(2)
	rl.DrawCube(toVector3(p.Position), size.X(), size.Y(), size.Z(), p.Color)
	if p.Kind != stage.KindGround {
		rl.DrawCubeWires(toVector3(p.Position), size.X(), size.Y(), size.Z(), rl.DarkGray)
	}
}

// drawPlayer draws the body as a capsule filling its box.
func drawPlayer(p *player.Player) {
	pos := p.Position()
	half := p.Body.HalfExtents.Y() - playerRadius
	start := rl.NewVector3(pos.X(), pos.Y()-half, pos.Z())
	end := rl.NewVector3(pos.X(), pos.Y()+half, pos.Z())
	rl.DrawCapsule(start, end, playerRadius, 16, 8, rl.Gold)
}
