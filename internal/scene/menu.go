package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	menuTitleSize = 40
	menuHintSize  = 20
	menuLogoSize  = 96
	menuGap       = 24
)

// Menu is the screen shown between loading and play: a title, the loaded logos and a hint.
type Menu struct {
	Title string
	Hint  string
	logos []rl.Texture2D
	log   *zap.Logger
}

// NewMenu returns a menu with the given title.
func NewMenu(title string, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{Title: title, Hint: "press enter to play", log: log}
}

// LoadLogos uploads the textures at paths. Files that fail to load are skipped.
func (m *Menu) LoadLogos(paths []string) {
	for _, p := range paths {
		tex := rl.LoadTexture(p)
		if !rl.IsTextureValid(tex) {
			m.log.Warn("menu texture not loaded", zap.String("path", p))
			continue
		}
		m.logos = append(m.logos, tex)
	}
}

// Draw renders the menu centred on screen. Call between BeginDrawing and EndDrawing.
func (m *Menu) Draw() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	y := h/2 - menuLogoSize - menuGap

	tw := rl.MeasureText(m.Title, menuTitleSize)
	rl.DrawText(m.Title, (w-tw)/2, y-menuTitleSize-menuGap, menuTitleSize, rl.RayWhite)

	if n := int32(len(m.logos)); n > 0 {
		total := n*menuLogoSize + (n-1)*menuGap
		x := (w - total) / 2
		for _, tex := range m.logos {
			src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
			dst := rl.NewRectangle(float32(x), float32(y), menuLogoSize, menuLogoSize)
			rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
			x += menuLogoSize + menuGap
		}
	}

	hw := rl.MeasureText(m.Hint, menuHintSize)
	rl.DrawText(m.Hint, (w-hw)/2, y+menuLogoSize+menuGap, menuHintSize, rl.LightGray)
}

// Unload frees the logo textures.
func (m *Menu) Unload() {
	for _, tex := range m.logos {
		rl.UnloadTexture(tex)
	}
	m.logos = nil
}
