package stage

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"game-prototype/internal/physics"
)

// Kind says how a piece is drawn.
type Kind int

const (
	KindGround Kind = iota
	KindBox
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindBox:
		return "box"
	case KindWall:
		return "wall"
	}
	return "unknown"
}

const (
	// HalfSize is half the side of the square play field.
	HalfSize = 100
	// groundDepth gives the ground collider volume below y=0.
	groundDepth = 0.5
	wallHeight  = 0.5
	wallDepth   = 0.5
)

// Piece is one static element of the stage, centred on Position.
type Piece struct {
	Name        string
	Kind        Kind
	Position    mgl32.Vec3
	HalfExtents mgl32.Vec3
	Color       color.RGBA
}

var (
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Build returns the stage: a 200x200 ground whose top is y=0, a 1m box at (2, 0.5, -2) and four
// walls along the field's edges.
func Build() []Piece {
	wallY := float32(wallHeight / 2)
	return []Piece{
		{
			Name:        "ground",
			Kind:        KindGround,
			Position:    mgl32.Vec3{0, -groundDepth / 2, 0},
			HalfExtents: mgl32.Vec3{HalfSize, groundDepth / 2, HalfSize},
			Color:       green,
		},
		{
			Name:        "box",
			Kind:        KindBox,
			Position:    mgl32.Vec3{2, 0.5, -2},
			HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5},
			Color:       blue,
		},
		wall("wall-north", mgl32.Vec3{0, wallY, -HalfSize}, mgl32.Vec3{HalfSize, wallHeight / 2, wallDepth / 2}),
		wall("wall-south", mgl32.Vec3{0, wallY, HalfSize}, mgl32.Vec3{HalfSize, wallHeight / 2, wallDepth / 2}),
		wall("wall-west", mgl32.Vec3{-HalfSize, wallY, 0}, mgl32.Vec3{wallDepth / 2, wallHeight / 2, HalfSize}),
		wall("wall-east", mgl32.Vec3{HalfSize, wallY, 0}, mgl32.Vec3{wallDepth / 2, wallHeight / 2, HalfSize}),
	}
}

func wall(name string, pos, half mgl32.Vec3) Piece {
	return Piece{Name: name, Kind: KindWall, Position: pos, HalfExtents: half, Color: red}
}

// Register adds every piece to w as a static body named after the piece.
func Register(w *physics.World, pieces []Piece) {
	for _, p := range pieces {
		w.AddBody(physics.NewBody(p.Name, p.Position, p.HalfExtents, 0, true))
	}
}
