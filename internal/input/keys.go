package input

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Key is a keyboard key code. Values match raylib (and GLFW) so they can be passed
// straight to rl.IsKeyDown.
type Key int32

// MouseButton is a mouse button code matching raylib's rl.MouseButton values.
type MouseButton int32

const (
	KeyNull       Key = 0
	KeySpace      Key = 32
	KeyA          Key = 65
	KeyB          Key = 66
	KeyC          Key = 67
	KeyD          Key = 68
	KeyE          Key = 69
	KeyF          Key = 70
	KeyG          Key = 71
	KeyM          Key = 77
	KeyQ          Key = 81
	KeyR          Key = 82
	KeyS          Key = 83
	KeyT          Key = 84
	KeyW          Key = 87
	KeyX          Key = 88
	KeyZ          Key = 90
	KeyEscape     Key = 256
	KeyEnter      Key = 257
	KeyTab        Key = 258
	KeyRight      Key = 262
	KeyLeft       Key = 263
	KeyDown       Key = 264
	KeyUp         Key = 265
	KeyF1         Key = 290
	KeyLeftShift  Key = 340
	KeyLeftCtrl   Key = 341
	KeyRightShift Key = 344
)

const (
	MouseLeft   MouseButton = 0
	MouseRight  MouseButton = 1
	MouseMiddle MouseButton = 2
)

var keyNames = map[string]Key{
	"space":      KeySpace,
	"a":          KeyA,
	"b":          KeyB,
	"c":          KeyC,
	"d":          KeyD,
	"e":          KeyE,
	"f":          KeyF,
	"g":          KeyG,
	"m":          KeyM,
	"q":          KeyQ,
	"r":          KeyR,
	"s":          KeyS,
	"t":          KeyT,
	"w":          KeyW,
	"x":          KeyX,
	"z":          KeyZ,
	"escape":     KeyEscape,
	"enter":      KeyEnter,
	"tab":        KeyTab,
	"right":      KeyRight,
	"left":       KeyLeft,
	"down":       KeyDown,
	"up":         KeyUp,
	"f1":         KeyF1,
	"leftshift":  KeyLeftShift,
	"leftctrl":   KeyLeftCtrl,
	"rightshift": KeyRightShift,
}

var mouseNames = map[string]MouseButton{
	"left":   MouseLeft,
	"right":  MouseRight,
	"middle": MouseMiddle,
}

// ParseKey resolves a config key name such as "W" or "LeftShift". Matching ignores case.
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyNull, errors.Errorf("unknown key %q", name)
	}
	return k, nil
}

// ParseMouseButton resolves "Left", "Right" or "Middle".
func ParseMouseButton(name string) (MouseButton, error) {
	b, ok := mouseNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return MouseLeft, errors.Errorf("unknown mouse button %q", name)
	}
	return b, nil
}

// String returns the lower-case config name of the key, or "key(<code>)" for unnamed codes.
func (k Key) String() string {
	for name, code := range keyNames {
		if code == k {
			return name
		}
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// String returns the config name of the button.
func (b MouseButton) String() string {
	for name, code := range mouseNames {
		if code == b {
			return name
		}
	}
	return "mouse(" + strconv.Itoa(int(b)) + ")"
}

// KeyNames returns every accepted key name, sorted. Used in config error messages.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
