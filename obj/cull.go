package obj

import (
	"image"
	"math"

	"github.com/milk9111/railgrid/common"
)

// VisibleCells returns the grid cells covered by the camera's viewport as a
// half-open rectangle, clamped to [0, cells] on both axes. The start corner is
// floored and the end corner is ceiled so partially visible edge cells are kept.
func VisibleCells(c *Camera, tileSize float64, cells int) image.Rectangle {
	if c == nil || tileSize <= 0 || cells <= 0 {
		return image.Rectangle{}
	}
	minX, minY, maxX, maxY := c.VisibleRect()
	x0 := cellIndex(math.Floor(minX/tileSize), cells)
	y0 := cellIndex(math.Floor(minY/tileSize), cells)
	x1 := cellIndex(math.Ceil(maxX/tileSize), cells)
	y1 := cellIndex(math.Ceil(maxY/tileSize), cells)
	return image.Rect(x0, y0, x1, y1)
}

func cellIndex(v float64, cells int) int {
	return int(common.Clamp(v, 0, float64(cells)))
}

// CellAt maps a screen point to the grid cell under it. The world point is
// clamped into [0, cells) before truncation, so the result always addresses a
// cell even when the pointer is outside the world.
func CellAt(c *Camera, sx, sy, tileSize float64, cells int) image.Point {
	wx, wy := c.ScreenToWorld(sx, sy)
	return image.Pt(clampCell(wx/tileSize, cells), clampCell(wy/tileSize, cells))
}

func clampCell(v float64, cells int) int {
	if !common.Finite(v) {
		return 0
	}
	i := int(math.Floor(common.Clamp(v, 0, float64(cells))))
	return common.ClampInt(i, 0, cells-1)
}

// InsideWorld reports whether a screen point maps onto the world rectangle.
func InsideWorld(c *Camera, sx, sy, tileSize float64, cells int) bool {
	wx, wy := c.ScreenToWorld(sx, sy)
	extent := tileSize * float64(cells)
	return wx >= 0 && wy >= 0 && wx < extent && wy < extent
}
