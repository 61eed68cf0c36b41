package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/railgrid/grid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Strategy selects how tile sprites are produced.
type Strategy string

const (
	// StrategyAtlas cuts sprites from a single atlas image.
	StrategyAtlas Strategy = "atlas"
	// StrategyFiles loads one image per tile state.
	StrategyFiles Strategy = "files"
	// StrategyGlyph renders a letter per tile state; no image files are needed.
	StrategyGlyph Strategy = "glyph"
)

var ErrUnknownStrategy = errors.New("assets: unknown sprite strategy")

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategyAtlas, StrategyFiles, StrategyGlyph:
		return s, nil
	case "":
		return StrategyAtlas, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Images holds one decoded image per tile state. Empty is always nil.
type Images [4]image.Image

var spriteFiles = map[grid.TileState]string{
	grid.Rail:     TrackFile,
	grid.Building: BuildingFile,
	grid.Station:  StationFile,
}

var glyphs = map[grid.TileState]string{
	grid.Rail:     "R",
	grid.Building: "B",
	grid.Station:  "S",
}

// AtlasRegion returns the source rectangle of the idx-th sprite in an atlas
// with the given number of columns, filled row by row.
func AtlasRegion(idx, cols, tile int) image.Rectangle {
	if cols <= 0 {
		cols = 1
	}
	x := (idx % cols) * tile
	y := (idx / cols) * tile
	return image.Rect(x, y, x+tile, y+tile)
}

// Decode produces the tile images for a strategy. tile is the sprite edge in
// pixels: the atlas cell size, or the glyph height. Any missing or malformed
// sprite is an error.
func Decode(fsys fs.FS, strategy Strategy, tile int) (Images, error) {
	var out Images
	if tile <= 0 {
		return out, fmt.Errorf("decode sprites: tile size %d", tile)
	}
	switch strategy {
	case StrategyAtlas:
		return decodeAtlas(fsys, tile)
	case StrategyFiles:
		for state, name := range spriteFiles {
			img, err := DecodeImage(fsys, name)
			if err != nil {
				return out, fmt.Errorf("sprite %v: %w", state, err)
			}
			out[state] = img
		}
		return out, nil
	case StrategyGlyph:
		return renderGlyphs(tile)
	default:
		return out, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func decodeAtlas(fsys fs.FS, tile int) (Images, error) {
	var out Images
	atlas, err := DecodeImage(fsys, AtlasFile)
	if err != nil {
		return out, err
	}
	sub, ok := atlas.(subImager)
	if !ok {
		return out, fmt.Errorf("atlas %T does not support sub images", atlas)
	}
	bounds := atlas.Bounds()
	cols := bounds.Dx() / tile
	for _, state := range grid.States[1:] {
		r := AtlasRegion(int(state)-1, cols, tile).Add(bounds.Min)
		if !r.In(bounds) {
			return out, fmt.Errorf("atlas %dx%d has no %v sprite at %v: %w", bounds.Dx(), bounds.Dy(), state, r, ErrMissingSprite)
		}
		out[state] = sub.SubImage(r)
	}
	return out, nil
}

func renderGlyphs(tile int) (Images, error) {
	var out Images
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return out, fmt.Errorf("parse glyph font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(tile), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return out, fmt.Errorf("glyph face: %w", err)
	}
	defer face.Close()

	ascent := face.Metrics().Ascent.Ceil()
	for state, letter := range glyphs {
		dst := image.NewRGBA(image.Rect(0, 0, tile, tile))
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.Black),
			Face: face,
		}
		w := d.MeasureString(letter).Ceil()
		d.Dot = fixed.P((tile-w)/2, min(ascent, tile))
		d.DrawString(letter)
		out[state] = dst
	}
	return out, nil
}

// Sprites maps tile states to GPU images.
type Sprites struct {
	Strategy Strategy
	images   [4]*ebiten.Image
}

// NewSprites uploads decoded images.
func NewSprites(strategy Strategy, imgs Images) *Sprites {
	s := &Sprites{Strategy: strategy}
	for i, img := range imgs {
		if img == nil {
			continue
		}
		s.images[i] = ebiten.NewImageFromImage(img)
	}
	return s
}

// Load decodes and uploads the sprites for a strategy.
func Load(fsys fs.FS, strategy Strategy, tile int) (*Sprites, error) {
	imgs, err := Decode(fsys, strategy, tile)
	if err != nil {
		return nil, err
	}
	return NewSprites(strategy, imgs), nil
}

// Sprite returns the image for a tile state, or nil for Empty.
func (s *Sprites) Sprite(state grid.TileState) *ebiten.Image {
	if s == nil || !state.Valid() {
		return nil
	}
	return s.images[state]
}
