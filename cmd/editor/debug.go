package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/railgrid/assets"
	"github.com/milk9111/railgrid/grid"
)

// debugLineHeight matches ebitenutil's debug font.
const debugLineHeight = 16

type debugInfo struct {
	FPS, TPS  float64
	Zoom      float64
	TargetX   float64
	TargetY   float64
	Hover     image.Point
	HoverOK   bool
	HoverTile grid.TileState
	Bounds    image.Rectangle
	Sprites   int
	Mode      grid.TileState
	Strategy  assets.Strategy
	Painted   int
}

func (d debugInfo) lines() []string {
	hover := "-"
	if d.HoverOK {
		hover = fmt.Sprintf("(%d, %d) %v", d.Hover.X, d.Hover.Y, d.HoverTile)
	}
	return []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", d.FPS, d.TPS),
		fmt.Sprintf("Zoom: %.3f  Target: (%.1f, %.1f)", d.Zoom, d.TargetX, d.TargetY),
		fmt.Sprintf("Hover: %s", hover),
		fmt.Sprintf("Visible: [%d,%d)-[%d,%d)  cells: %d  sprites: %d",
			d.Bounds.Min.X, d.Bounds.Min.Y, d.Bounds.Max.X, d.Bounds.Max.Y, d.Bounds.Dx()*d.Bounds.Dy(), d.Sprites),
		fmt.Sprintf("Mode: %v  Assets: %s  Painted: %d", d.Mode, d.Strategy, d.Painted),
	}
}

func (d debugInfo) String() string {
	return strings.Join(d.lines(), "\n")
}

// Height is the overlay height in pixels.
func (d debugInfo) Height() int {
	return len(d.lines()) * debugLineHeight
}

func (e *Editor) debugInfo() debugInfo {
	plan := e.renderer.Plan()
	d := debugInfo{
		FPS:      ebiten.ActualFPS(),
		TPS:      ebiten.ActualTPS(),
		Zoom:     e.camera.Zoom(),
		TargetX:  e.camera.TargetX,
		TargetY:  e.camera.TargetY,
		Hover:    e.router.Hover,
		HoverOK:  e.router.HoverOK,
		Bounds:   plan.Bounds,
		Sprites:  len(plan.Sprites),
		Mode:     e.router.Mode,
		Strategy: e.strategy,
		Painted:  e.grid.Size()*e.grid.Size() - e.grid.Count(grid.Empty),
	}
	if d.HoverOK {
		d.HoverTile, _ = e.grid.Get(d.Hover.X, d.Hover.Y)
	}
	return d
}
