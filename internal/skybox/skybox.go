package skybox

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CubeFaces is the number of layers a cubemap texture array holds.
const CubeFaces = 6

// Entry is one selectable skybox: a display name and the path of its stacked cubemap image.
type Entry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Defaults are the five skyboxes shipped under assets/textures/skyboxes.
func Defaults() []Entry {
	return []Entry{
		{Name: "City", Path: "textures/skyboxes/ForbiddenCity/cubemap.png"},
		{Name: "Church", Path: "textures/skyboxes/SaintPetersBasilica/cubemap.png"},
		{Name: "Forest", Path: "textures/skyboxes/MountainPath/cubemap.png"},
		{Name: "Town Square", Path: "textures/skyboxes/Tallinn/cubemap.png"},
		{Name: "Mountains", Path: "textures/skyboxes/Brudslojan/cubemap.png"},
	}
}

// Cycler tracks which skybox is shown and whether its image still has to be turned into a
// cubemap. The first entry is current and pending after construction.
type Cycler struct {
	entries []Entry
	index   int
	shown   int // index on screen, -1 before the first successful load
	loaded  bool
	log     *zap.Logger
}

// NewCycler returns a cycler over entries. At least one entry is required.
func NewCycler(entries []Entry, log *zap.Logger) (*Cycler, error) {
	if len(entries) == 0 {
		return nil, errors.New("skybox: no entries")
	}
	if log == nil {
		log = zap.NewNop()
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Cycler{entries: cp, shown: -1, log: log}, nil
}

// Current returns the active entry.
func (c *Cycler) Current() Entry {
	return c.entries[c.index]
}

// Index returns the position of the active entry.
func (c *Cycler) Index() int {
	return c.index
}

// Len returns the number of entries.
func (c *Cycler) Len() int {
	return len(c.entries)
}

// Next switches to a uniformly chosen entry other than the current one and marks it pending.
// intn must behave like rand.Intn. With a single entry the current one is reloaded.
func (c *Cycler) Next(intn func(n int) int) Entry {
	n := len(c.entries)
	if n > 1 {
		next := intn(n)
		for next == c.index {
			next = intn(n)
		}
		c.index = next
	}
	c.loaded = false
	c.log.Info("changing skybox", zap.String("name", c.Current().Name), zap.Int("index", c.index))
	return c.Current()
}

// Pending reports whether the current entry still has to be converted and swapped in.
func (c *Cycler) Pending() bool {
	return !c.loaded
}

// MarkLoaded records that the host finished converting the current entry and shows it.
func (c *Cycler) MarkLoaded() {
	c.loaded = true
	c.shown = c.index
}

// MarkFailed records that the current entry could not be converted. The cycler goes back to the
// entry still on screen, if any, so Current keeps naming what is displayed.
func (c *Cycler) MarkFailed() {
	failed := c.Current()
	c.loaded = true
	if c.shown < 0 {
		c.log.Warn("skybox failed, nothing shown", zap.String("name", failed.Name))
		return
	}
	c.index = c.shown
	c.log.Warn("skybox failed, keeping previous",
		zap.String("failed", failed.Name), zap.String("name", c.Current().Name))
}

// CubemapLayers returns how many square layers a vertically stacked image of the given size
// holds. Only strips of exactly six faces are accepted.
func CubemapLayers(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Errorf("skybox: invalid image size %dx%d", width, height)
	}
	if height%width != 0 {
		return 0, errors.Errorf("skybox: height %d is not a multiple of width %d", height, width)
	}
	layers := height / width
	if layers != CubeFaces {
		return 0, errors.Errorf("skybox: stacked image has %d layers, want %d", layers, CubeFaces)
	}
	return layers, nil
}
