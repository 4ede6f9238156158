package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"game-prototype/internal/config"
	"game-prototype/internal/debug"
	"game-prototype/internal/freecam"
	"game-prototype/internal/game"
	"game-prototype/internal/graphics"
	"game-prototype/internal/input"
	"game-prototype/internal/logger"
	"game-prototype/internal/scene"
	"game-prototype/internal/skybox"
)

// runPlay opens the window and steps the game through loading, menu and play.
// Enter starts playing, Escape returns to the menu and F1 toggles the debug overlay.
func runPlay(cfg config.Config, log *logger.Logger) error {
	camCfg, err := cfg.FreeCam()
	if err != nil {
		return err
	}
	controls, err := cfg.PlayerControls()
	if err != nil {
		return err
	}
	cycler, err := skybox.NewCycler(cfg.Skyboxes, log.Named("skybox"))
	if err != nil {
		return err
	}
	manifest := cfg.Manifest()
	machine := game.NewMachine(log.Named("game"))
	dbg := debug.New(cfg.Debug)
	menu := scene.NewMenu(cfg.Window.Title, log.Logger)

	var scn *scene.Scene
	machine.OnEnter(game.Menu, func() {
		if scn != nil {
			scn.SetCameraEnabled(false)
		}
	})
	machine.OnEnter(game.Playing, func() {
		if scn != nil {
			scn.SetCameraEnabled(true)
			return
		}
		scn = scene.New(scene.Options{
			Camera:      camCfg,
			Start:       freecam.LookAt(mgl32.Vec3(cfg.Camera.Start.Position), mgl32.Vec3(cfg.Camera.Start.Target)),
			Controls:    controls,
			PlayerSpeed: cfg.Player.Speed,
			Skyboxes:    cycler,
			Assets:      manifest,
			Log:         log.Named("scene"),
		})
	})

	transition := func(next game.State) {
		if err := machine.Transition(next); err != nil {
			log.Error("state change rejected", zap.Error(err))
		}
	}

	update := func(dt float32) {
		if rl.IsKeyPressed(int32(input.KeyF1)) {
			dbg.Toggle()
		}
		switch machine.Current() {
		case game.Loading:
			if err := manifest.Verify(log.Logger); err != nil {
				log.Warn("continuing with missing assets", zap.Strings("missing", manifest.Missing()))
			}
			paths := make([]string, 0, len(cfg.Assets.Textures))
			for _, p := range cfg.Assets.Textures {
				paths = append(paths, manifest.Path(p))
			}
			menu.LoadLogos(paths)
			transition(game.Menu)
		case game.Menu:
			if rl.IsKeyPressed(int32(input.KeyEnter)) {
				transition(game.Playing)
			}
		case game.Playing:
			if rl.IsKeyPressed(int32(input.KeyEscape)) {
				transition(game.Menu)
				return
			}
			scn.Update(dt)
		}
	}

	draw := func() {
		frame := debug.Frame{State: machine.Current().String(), Log: log.History().Last(8)}
		if machine.In(game.Menu) {
			menu.Draw()
		}
		if machine.In(game.Playing) {
			scn.Draw()
		}
		if scn != nil {
			frame.Camera = scn.CameraState()
			frame.Player, frame.PlayerGrounded = scn.PlayerPosition()
			sky, idx, n := scn.Skybox()
			frame.Skybox, frame.SkyboxIndex, frame.SkyboxCount = sky.Name, idx, n
			frame.SunAngle = scn.SunAngle()
		}
		dbg.Draw(frame)
	}

	unload := func() {
		menu.Unload()
		if scn != nil {
			scn.Unload()
		}
	}

	graphics.Run(cfg.Window, update, draw, unload)
	log.Info("window closed", zap.Stringer("state", machine.Current()))
	return nil
}
