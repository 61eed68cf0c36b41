package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/railgrid/assets"
	"github.com/milk9111/railgrid/grid"
	"github.com/milk9111/railgrid/obj"
	"golang.org/x/image/colornames"
)

// Renderer draws the visible part of the grid through the camera.
type Renderer struct {
	Sprites    *assets.Sprites
	Background color.Color
	LineColor  color.Color
	HoverColor color.Color

	plan Plan
}

func NewRenderer(sprites *assets.Sprites) *Renderer {
	return &Renderer{
		Sprites:    sprites,
		Background: colornames.White,
		LineColor:  colornames.Lightgray,
		HoverColor: colornames.Orange,
	}
}

// Plan returns the plan built by the last Draw.
func (r *Renderer) Plan() *Plan {
	return &r.plan
}

// Draw clears the screen, then draws grid lines and tile sprites for the
// cells the camera can see. When hoverOK is set the hovered cell is outlined.
func (r *Renderer) Draw(screen *ebiten.Image, cam *obj.Camera, g *grid.Grid, tileSize float64, hover image.Point, hoverOK bool) {
	screen.Fill(r.Background)
	r.plan.Build(cam, g, tileSize)

	for _, l := range r.plan.Columns {
		r.line(screen, cam, l, 1, r.LineColor)
	}
	for _, l := range r.plan.Rows {
		r.line(screen, cam, l, 1, r.LineColor)
	}

	view := cam.GeoM()
	for _, cmd := range r.plan.Sprites {
		img := r.Sprites.Sprite(cmd.State)
		if img == nil {
			continue
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if w == 0 || h == 0 {
			continue
		}
		wx, wy := r.plan.Origin(cmd.Cell)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(tileSize/float64(w), tileSize/float64(h))
		op.GeoM.Translate(wx, wy)
		op.GeoM.Concat(view)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}

	if hoverOK {
		r.outline(screen, cam, hover, tileSize)
	}
}

func (r *Renderer) line(screen *ebiten.Image, cam *obj.Camera, l Line, width float32, clr color.Color) {
	x0, y0 := cam.WorldToScreen(l.X0, l.Y0)
	x1, y1 := cam.WorldToScreen(l.X1, l.Y1)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, false)
}

func (r *Renderer) outline(screen *ebiten.Image, cam *obj.Camera, cell image.Point, tileSize float64) {
	x0 := float64(cell.X) * tileSize
	y0 := float64(cell.Y) * tileSize
	x1 := x0 + tileSize
	y1 := y0 + tileSize
	edges := [4]Line{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}
	for _, e := range edges {
		r.line(screen, cam, e, 2, r.HoverColor)
	}
}
