package obj

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/milk9111/railgrid/grid"
)

// Interaction selects what a primary click does to a cell.
type Interaction int

const (
	// InteractionPaint writes the selected mode into the cell.
	InteractionPaint Interaction = iota
	// InteractionCycle advances the cell to its next state.
	InteractionCycle
)

func (i Interaction) String() string {
	switch i {
	case InteractionPaint:
		return "paint"
	case InteractionCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Occluder reports which screen points belong to on-screen controls.
type Occluder interface {
	// Occludes reports whether the point lies over a control this frame.
	Occludes(x, y float64) bool
	// Modal reports whether a control (an open dropdown) is capturing input.
	Modal() bool
}

// RectOccluder is an Occluder backed by fixed screen rectangles.
type RectOccluder struct {
	Rects []image.Rectangle
	Open  bool
}

func (o *RectOccluder) Occludes(x, y float64) bool {
	p := image.Pt(int(x), int(y))
	for _, r := range o.Rects {
		if p.In(r) {
			return true
		}
	}
	return false
}

func (o *RectOccluder) Modal() bool {
	return o.Open
}

// Result describes what one Update did.
type Result struct {
	Zoomed  bool
	Panned  bool
	Painted bool
	// Cell is the cell written when Painted is true.
	Cell  image.Point
	State grid.TileState
	// Occluded is true when a paint was suppressed by a control.
	Occluded bool
}

// Router applies one input snapshot per frame to the camera and the grid.
type Router struct {
	Camera   *Camera
	Grid     *grid.Grid
	TileSize float64
	Occluder Occluder
	Logger   *log.Logger

	// Mode is the tile state written by primary clicks.
	Mode        grid.TileState
	Interaction Interaction
	// DragPaint keeps painting while the primary button is held.
	DragPaint bool

	// Hover is the cell under the pointer; HoverOK is false while the
	// pointer is over a control or outside the world.
	Hover   image.Point
	HoverOK bool

	// stroke is true while a press that reached the grid is still held.
	stroke bool
}

func NewRouter(cam *Camera, g *grid.Grid, tileSize float64, occ Occluder) *Router {
	return &Router{
		Camera:    cam,
		Grid:      g,
		TileSize:  tileSize,
		Occluder:  occ,
		Mode:      grid.Rail,
		DragPaint: true,
	}
}

// SetMode changes the paint value. Invalid states are ignored.
func (r *Router) SetMode(s grid.TileState) {
	if s.Valid() {
		r.Mode = s
	}
}

// Update zooms, pans and paints, in that order, from a single snapshot.
func (r *Router) Update(s Snapshot) Result {
	var res Result

	if s.WheelY != 0 {
		res.Zoomed = r.Camera.ZoomAt(s.WheelY, s.CursorX, s.CursorY)
	}

	if s.PanHeld && (s.DeltaX != 0 || s.DeltaY != 0) {
		r.Camera.Pan(s.DeltaX, s.DeltaY)
		res.Panned = true
	}

	cells := r.Grid.Size()
	blocked := r.blocked(s.CursorX, s.CursorY)
	r.HoverOK = !blocked && InsideWorld(r.Camera, s.CursorX, s.CursorY, r.TileSize, cells)
	if r.HoverOK {
		r.Hover = CellAt(r.Camera, s.CursorX, s.CursorY, r.TileSize, cells)
	}

	switch {
	case s.PaintPressed:
		r.stroke = !blocked
	case !s.PaintHeld:
		r.stroke = false
	}

	if !r.wantsPaint(s) {
		return res
	}
	if blocked {
		res.Occluded = true
		return res
	}

	cell := CellAt(r.Camera, s.CursorX, s.CursorY, r.TileSize, cells)
	state, err := r.apply(cell)
	if err != nil {
		// CellAt clamps into the grid, so this is a logic error.
		panic(fmt.Errorf("router: write cell %v: %w", cell, err))
	}
	res.Painted = true
	res.Cell = cell
	res.State = state
	if r.Logger != nil {
		r.Logger.Debug("cell updated", "x", cell.X, "y", cell.Y, "state", state, "interaction", r.Interaction)
	}
	return res
}

// wantsPaint reports whether the frame writes a cell. Holding the button only
// paints when the press that started the stroke was not blocked.
func (r *Router) wantsPaint(s Snapshot) bool {
	if s.PaintPressed {
		return true
	}
	return r.Interaction == InteractionPaint && r.DragPaint && r.stroke && s.PaintHeld
}

func (r *Router) blocked(x, y float64) bool {
	if r.Occluder == nil {
		return false
	}
	return r.Occluder.Modal() || r.Occluder.Occludes(x, y)
}

func (r *Router) apply(cell image.Point) (grid.TileState, error) {
	if r.Interaction == InteractionCycle {
		return r.Grid.Cycle(cell.X, cell.Y)
	}
	return r.Mode, r.Grid.Set(cell.X, cell.Y, r.Mode)
}
