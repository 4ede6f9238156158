package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"game-prototype/internal/assets"
	"game-prototype/internal/freecam"
	"game-prototype/internal/input"
	"game-prototype/internal/player"
	"game-prototype/internal/skybox"
)

// Path is the default config file, relative to the process working directory.
const Path = "config/game.yaml"

// Config is the whole game configuration. Persisted as YAML; key bindings are stored by name.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
	Assets   AssetsConfig   `yaml:"assets"`
	Skyboxes []skybox.Entry `yaml:"skyboxes"`
	Camera   CameraConfig   `yaml:"camera"`
	Player   PlayerConfig   `yaml:"player"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
	File   string `yaml:"file,omitempty"`
}

// DebugConfig holds the overlay toggles; all overlays are off by default.
type DebugConfig struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowCamera   bool `yaml:"show_camera"`
}

type AssetsConfig struct {
	Root     string   `yaml:"root"`
	Audio    []string `yaml:"audio"`
	Textures []string `yaml:"textures"`
}

type CameraConfig struct {
	WalkSpeed     float32           `yaml:"walk_speed"`
	RunSpeed      float32           `yaml:"run_speed"`
	Friction      float32           `yaml:"friction"`
	Sensitivity   float32           `yaml:"sensitivity"`
	Keys          CameraKeys        `yaml:"keys"`
	CaptureButton string            `yaml:"capture_button"`
	Start         CameraStartConfig `yaml:"start"`
}

type CameraKeys struct {
	Forward     string `yaml:"forward"`
	Back        string `yaml:"back"`
	Left        string `yaml:"left"`
	Right       string `yaml:"right"`
	Up          string `yaml:"up"`
	Down        string `yaml:"down"`
	Run         string `yaml:"run"`
	ToggleMouse string `yaml:"toggle_mouse"`
}

// CameraStartConfig places the camera before the first frame: at Position, looking at Target.
type CameraStartConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

type PlayerConfig struct {
	Speed float32    `yaml:"speed"`
	Keys  PlayerKeys `yaml:"keys"`
}

type PlayerKeys struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "skybox playground",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "logs/game.log",
		},
		Assets: AssetsConfig{
			Root:     "assets",
			Audio:    []string{"audio/flying.ogg"},
			Textures: []string{"textures/bevy.png", "textures/github.png"},
		},
		Skyboxes: skybox.Defaults(),
		Camera: CameraConfig{
			WalkSpeed:   5,
			RunSpeed:    15,
			Friction:    0.5,
			Sensitivity: 1,
			Keys: CameraKeys{
				Forward:     "W",
				Back:        "S",
				Left:        "A",
				Right:       "D",
				Up:          "E",
				Down:        "Q",
				Run:         "LeftShift",
				ToggleMouse: "M",
			},
			CaptureButton: "Left",
			Start: CameraStartConfig{
				Position: [3]float32{0, 5, 8},
				Target:   [3]float32{0, 0, 0},
			},
		},
		Player: PlayerConfig{
			Speed: player.DefaultSpeed,
			Keys: PlayerKeys{
				Up:    "W",
				Down:  "R",
				Left:  "A",
				Right: "S",
			},
		},
	}
}

// Load reads the config at path. A missing file yields Default(); a present but invalid
// file is an error. Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write config")
}

// Validate checks ranges and that every key name resolves.
func (c Config) Validate() error {
	cam := c.Camera
	if cam.WalkSpeed <= 0 || cam.RunSpeed <= 0 {
		return errors.Errorf("camera speeds must be positive (walk %v, run %v)", cam.WalkSpeed, cam.RunSpeed)
	}
	if cam.Friction < 0 || cam.Friction > 1 {
		return errors.Errorf("camera friction %v outside [0, 1]", cam.Friction)
	}
	if c.Player.Speed <= 0 {
		return errors.Errorf("player speed must be positive, got %v", c.Player.Speed)
	}
	if len(c.Skyboxes) == 0 {
		return errors.New("at least one skybox is required")
	}
	if _, err := c.FreeCam(); err != nil {
		return err
	}
	if _, err := c.PlayerControls(); err != nil {
		return err
	}
	return nil
}

// FreeCam converts the camera section into a controller config.
func (c Config) FreeCam() (freecam.Config, error) {
	cam := c.Camera
	var b freecam.Bindings
	keys := []binding{
		{"camera.keys.forward", cam.Keys.Forward, &b.Forward},
		{"camera.keys.back", cam.Keys.Back, &b.Back},
		{"camera.keys.left", cam.Keys.Left, &b.Left},
		{"camera.keys.right", cam.Keys.Right, &b.Right},
		{"camera.keys.up", cam.Keys.Up, &b.Up},
		{"camera.keys.down", cam.Keys.Down, &b.Down},
		{"camera.keys.run", cam.Keys.Run, &b.Run},
		{"camera.keys.toggle_mouse", cam.Keys.ToggleMouse, &b.ToggleMouse},
	}
	if err := resolve(keys); err != nil {
		return freecam.Config{}, err
	}
	btn, err := input.ParseMouseButton(cam.CaptureButton)
	if err != nil {
		return freecam.Config{}, errors.Wrap(err, "camera.capture_button")
	}
	b.CaptureMouse = btn

	return freecam.Config{
		WalkSpeed:   cam.WalkSpeed,
		RunSpeed:    cam.RunSpeed,
		Friction:    cam.Friction,
		Sensitivity: cam.Sensitivity,
		Bindings:    b,
	}, nil
}

// PlayerControls converts the player key names.
func (c Config) PlayerControls() (player.Controls, error) {
	var pc player.Controls
	keys := []binding{
		{"player.keys.up", c.Player.Keys.Up, &pc.Up},
		{"player.keys.down", c.Player.Keys.Down, &pc.Down},
		{"player.keys.left", c.Player.Keys.Left, &pc.Left},
		{"player.keys.right", c.Player.Keys.Right, &pc.Right},
	}
	if err := resolve(keys); err != nil {
		return player.Controls{}, err
	}
	return pc, nil
}

// Manifest lists every asset the Loading state has to find, skyboxes included.
func (c Config) Manifest() *assets.Manifest {
	m := assets.NewManifest(c.Assets.Root)
	m.Add("audio", c.Assets.Audio...)
	m.Add("textures", c.Assets.Textures...)
	for _, s := range c.Skyboxes {
		m.Add("skyboxes", s.Path)
	}
	return m
}

type binding struct {
	field string
	name  string
	dst   *input.Key
}

func resolve(bs []binding) error {
	for _, b := range bs {
		k, err := input.ParseKey(b.name)
		if err != nil {
			return errors.Wrapf(err, "%s (known keys: %s)", b.field, strings.Join(input.KeyNames(), ", "))
		}
		*b.dst = k
	}
	return nil
}
