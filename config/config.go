package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalid = errors.New("config: invalid value")

// EditorConfig is the full editor configuration.
type EditorConfig struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Camera CameraConfig `yaml:"camera"`
	Input  InputConfig  `yaml:"input"`
	Assets AssetsConfig `yaml:"assets"`
	UI     UIConfig     `yaml:"ui"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

// WorldConfig holds grid dimensions.
type WorldConfig struct {
	Size     int `yaml:"size"`      // cells per side
	TileSize int `yaml:"tile_size"` // pixels per cell at zoom 1
}

// CameraConfig holds zoom settings.
type CameraConfig struct {
	MinZoom    float64 `yaml:"min_zoom"`
	MaxZoom    float64 `yaml:"max_zoom"`
	ZoomStep   float64 `yaml:"zoom_step"`
	AnchorZoom bool    `yaml:"anchor_zoom"`
}

// InputConfig holds pointer behavior.
type InputConfig struct {
	Interaction string `yaml:"interaction"` // paint or cycle
	DragPaint   bool   `yaml:"drag_paint"`
}

// AssetsConfig selects the sprite source.
type AssetsConfig struct {
	Strategy   string `yaml:"strategy"` // atlas, files or glyph
	Dir        string `yaml:"dir"`      // empty uses embedded resources
	SpriteSize int    `yaml:"sprite_size"`
	Watch      bool   `yaml:"watch"`
}

// UIConfig holds control settings.
type UIConfig struct {
	Selector string `yaml:"selector"` // toggle or dropdown
	Debug    bool   `yaml:"debug"`
}

const (
	InteractionPaint = "paint"
	InteractionCycle = "cycle"

	SelectorToggle   = "toggle"
	SelectorDropdown = "dropdown"

	StrategyAtlas = "atlas"
	StrategyFiles = "files"
	StrategyGlyph = "glyph"
)

// GlyphTileSize is the cell size used by the glyph strategy when the world
// tile size is left at its default.
const GlyphTileSize = 12

// Validate checks the configuration and normalizes enum fields to lower case.
func (c *EditorConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		bad("window tps %d", c.Window.TPS)
	}
	if c.World.Size <= 0 {
		bad("world size %d", c.World.Size)
	}
	if c.World.TileSize <= 0 {
		bad("world tile_size %d", c.World.TileSize)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		bad("camera zoom bounds [%g, %g]", c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Camera.ZoomStep <= 0 {
		bad("camera zoom_step %g", c.Camera.ZoomStep)
	}

	c.Input.Interaction = normalize(c.Input.Interaction, InteractionPaint)
	if c.Input.Interaction != InteractionPaint && c.Input.Interaction != InteractionCycle {
		bad("input interaction %q", c.Input.Interaction)
	}

	c.Assets.Strategy = normalize(c.Assets.Strategy, StrategyAtlas)
	switch c.Assets.Strategy {
	case StrategyAtlas, StrategyFiles, StrategyGlyph:
	default:
		bad("assets strategy %q", c.Assets.Strategy)
	}
	if c.Assets.SpriteSize <= 0 {
		bad("assets sprite_size %d", c.Assets.SpriteSize)
	}
	if c.Assets.Watch && strings.TrimSpace(c.Assets.Dir) == "" {
		bad("assets watch needs a dir")
	}

	c.UI.Selector = normalize(c.UI.Selector, SelectorToggle)
	if c.UI.Selector != SelectorToggle && c.UI.Selector != SelectorDropdown {
		bad("ui selector %q", c.UI.Selector)
	}

	return errors.Join(errs...)
}

// TileSize returns the cell size in world pixels for the selected strategy.
func (c EditorConfig) TileSize() int {
	if c.Assets.Strategy == StrategyGlyph && c.World.TileSize == Default().World.TileSize {
		return GlyphTileSize
	}
	return c.World.TileSize
}

func normalize(s, fallback string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback
	}
	return s
}
