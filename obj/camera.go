package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/railgrid/common"
)

const (
	DefaultMinZoom  = 0.125
	DefaultMaxZoom  = 64.0
	DefaultZoomStep = 0.25
)

// Camera maps between screen pixels and world pixels. The world point
// (TargetX, TargetY) is drawn at screen point (OffsetX, OffsetY); the view is
// scaled by the zoom factor and rotated by Rotation radians around that point.
type Camera struct {
	TargetX float64
	TargetY float64
	OffsetX float64
	OffsetY float64
	// Rotation is carried by the transform but no input changes it.
	Rotation float64

	zoom     float64
	minZoom  float64
	maxZoom  float64
	zoomStep float64
	// keep the world point under the cursor fixed while zooming
	anchorZoom bool

	screenW float64
	screenH float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera for the given viewport size at zoom 1 looking at
// the world origin.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		zoom:     1,
		minZoom:  DefaultMinZoom,
		maxZoom:  DefaultMaxZoom,
		zoomStep: DefaultZoomStep,
		screenW:  float64(screenW),
		screenH:  float64(screenH),
	}
}

// SetZoomLimits replaces the zoom bounds and wheel step. Invalid values are ignored.
func (c *Camera) SetZoomLimits(minZoom, maxZoom, step float64) {
	if common.Finite(minZoom) && common.Finite(maxZoom) && minZoom > 0 && maxZoom >= minZoom {
		c.minZoom = minZoom
		c.maxZoom = maxZoom
	}
	if common.Finite(step) && step > 0 {
		c.zoomStep = step
	}
	c.SetZoom(c.zoom)
}

// SetAnchorZoom makes ZoomAt keep the world point under the anchor fixed.
func (c *Camera) SetAnchorZoom(on bool) {
	c.anchorZoom = on
}

// SetScreenSize updates the viewport size and re-clamps the target.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == float64(w) && c.screenH == float64(h) {
		return
	}
	c.screenW = float64(w)
	c.screenH = float64(h)
	c.clampTarget()
}

// ScreenSize returns the viewport size in pixels.
func (c *Camera) ScreenSize() (float64, float64) {
	return c.screenW, c.screenH
}

// SetWorldBounds sets the world pixel dimensions for clamping the target.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
	c.clampTarget()
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// ZoomLimits returns the configured zoom bounds.
func (c *Camera) ZoomLimits() (float64, float64) {
	return c.minZoom, c.maxZoom
}

// SetZoom clamps z into the zoom bounds and re-clamps the target.
// Non-finite or non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if !common.Finite(z) || z <= 0 {
		return
	}
	c.zoom = common.Clamp(z, c.minZoom, c.maxZoom)
	c.clampTarget()
}

// ScreenToWorld applies the inverse camera transform.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	dx := (sx - c.OffsetX) / c.zoom
	dy := (sy - c.OffsetY) / c.zoom
	if c.Rotation != 0 {
		sin, cos := math.Sincos(c.Rotation)
		dx, dy = dx*cos+dy*sin, -dx*sin+dy*cos
	}
	return dx + c.TargetX, dy + c.TargetY
}

// WorldToScreen applies the forward camera transform.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	dx := wx - c.TargetX
	dy := wy - c.TargetY
	if c.Rotation != 0 {
		sin, cos := math.Sincos(c.Rotation)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	return dx*c.zoom + c.OffsetX, dy*c.zoom + c.OffsetY
}

// GeoM returns the forward transform for drawing world-space images.
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.TargetX, -c.TargetY)
	if c.Rotation != 0 {
		m.Rotate(c.Rotation)
	}
	m.Scale(c.zoom, c.zoom)
	m.Translate(c.OffsetX, c.OffsetY)
	return m
}

// Pan moves the view by a screen-space drag delta: dragging right moves the
// target left. The target is clamped afterwards.
func (c *Camera) Pan(dx, dy float64) {
	if !common.Finite(dx) || !common.Finite(dy) {
		return
	}
	wx := -dx / c.zoom
	wy := -dy / c.zoom
	if c.Rotation != 0 {
		sin, cos := math.Sincos(c.Rotation)
		wx, wy = wx*cos+wy*sin, -wx*sin+wy*cos
	}
	c.TargetX += wx
	c.TargetY += wy
	c.clampTarget()
}

// ZoomAt scales the zoom by 1+step*|wheel| (inverted for negative wheel),
// clamps it and re-clamps the target. It reports whether the zoom changed.
func (c *Camera) ZoomAt(wheel, anchorX, anchorY float64) bool {
	if wheel == 0 || !common.Finite(wheel) {
		return false
	}
	factor := 1 + c.zoomStep*math.Abs(wheel)
	if wheel < 0 {
		factor = 1 / factor
	}
	next := common.Clamp(c.zoom*factor, c.minZoom, c.maxZoom)
	if !common.Finite(next) || next == c.zoom {
		return false
	}

	beforeX, beforeY := c.ScreenToWorld(anchorX, anchorY)
	c.zoom = next
	if c.anchorZoom {
		afterX, afterY := c.ScreenToWorld(anchorX, anchorY)
		c.TargetX += beforeX - afterX
		c.TargetY += beforeY - afterY
	}
	c.clampTarget()
	return true
}

// VisibleRect returns the axis-aligned world rectangle covered by the viewport.
func (c *Camera) VisibleRect() (minX, minY, maxX, maxY float64) {
	if c.Rotation == 0 {
		minX, minY = c.ScreenToWorld(0, 0)
		maxX, maxY = c.ScreenToWorld(c.screenW, c.screenH)
		return minX, minY, maxX, maxY
	}
	corners := [4][2]float64{{0, 0}, {c.screenW, 0}, {0, c.screenH}, {c.screenW, c.screenH}}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y := c.ScreenToWorld(p[0], p[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

// clampTarget keeps the unrotated view inside the world bounds. When the
// zoomed viewport is wider than the world on an axis, the view is pinned to
// the world origin on that axis.
func (c *Camera) clampTarget() {
	if c.zoom <= 0 {
		return
	}
	left := c.OffsetX / c.zoom
	top := c.OffsetY / c.zoom
	viewW := c.screenW / c.zoom
	viewH := c.screenH / c.zoom
	if c.worldW > 0 {
		c.TargetX = common.Clamp(c.TargetX, left, c.worldW-viewW+left)
	}
	if c.worldH > 0 {
		c.TargetY = common.Clamp(c.TargetY, top, c.worldH-viewH+top)
	}
}
