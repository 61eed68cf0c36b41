package render

import (
	"image"

	"github.com/milk9111/railgrid/grid"
	"github.com/milk9111/railgrid/obj"
)

// Line is a grid line segment in world pixels.
type Line struct {
	X0, Y0 float64
	X1, Y1 float64
}

// SpriteCmd places the sprite for State at Cell.
type SpriteCmd struct {
	Cell  image.Point
	State grid.TileState
}

// Plan is the draw list for one frame: the culled cell rectangle, one grid
// line per visible column and row, and one sprite per non-empty visible cell.
type Plan struct {
	Bounds   image.Rectangle
	TileSize float64
	Columns  []Line
	Rows     []Line
	Sprites  []SpriteCmd
}

// NewPlan builds a plan for the camera's current view of g.
func NewPlan(cam *obj.Camera, g *grid.Grid, tileSize float64) *Plan {
	p := &Plan{}
	p.Build(cam, g, tileSize)
	return p
}

// Build recomputes the plan in place, reusing its buffers.
func (p *Plan) Build(cam *obj.Camera, g *grid.Grid, tileSize float64) {
	p.Columns = p.Columns[:0]
	p.Rows = p.Rows[:0]
	p.Sprites = p.Sprites[:0]
	p.TileSize = tileSize
	p.Bounds = obj.VisibleCells(cam, tileSize, g.Size())
	if p.Bounds.Empty() {
		return
	}

	b := p.Bounds
	top := float64(b.Min.Y) * tileSize
	bottom := float64(b.Max.Y) * tileSize
	left := float64(b.Min.X) * tileSize
	right := float64(b.Max.X) * tileSize
	for x := b.Min.X; x < b.Max.X; x++ {
		wx := float64(x) * tileSize
		p.Columns = append(p.Columns, Line{X0: wx, Y0: top, X1: wx, Y1: bottom})
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		wy := float64(y) * tileSize
		p.Rows = append(p.Rows, Line{X0: left, Y0: wy, X1: right, Y1: wy})
	}

	g.Each(b, func(x, y int, s grid.TileState) {
		p.Sprites = append(p.Sprites, SpriteCmd{Cell: image.Pt(x, y), State: s})
	})
}

// Cells returns the number of cells the plan covers.
func (p *Plan) Cells() int {
	return p.Bounds.Dx() * p.Bounds.Dy()
}

// Origin returns the world position of a cell's top-left corner.
func (p *Plan) Origin(cell image.Point) (float64, float64) {
	return float64(cell.X) * p.TileSize, float64(cell.Y) * p.TileSize
}
