package ui

import (
	"fmt"
	"image"

	"github.com/milk9111/railgrid/grid"
)

// dropdownState tracks whether the mode dropdown is capturing input. A
// dropdown closed during a frame stays modal until the next frame begins, so
// the click that closed it never reaches the grid.
type dropdownState struct {
	open   bool
	closed bool
}

func (d *dropdownState) beginFrame() {
	d.closed = false
}

func (d *dropdownState) toggle() {
	if d.open {
		d.close()
		return
	}
	d.open = true
}

func (d *dropdownState) close() {
	if d.open {
		d.closed = true
	}
	d.open = false
}

func (d *dropdownState) modal() bool {
	return d.open || d.closed
}

// hitTest reports whether a screen point lies inside any rectangle.
func hitTest(rects []image.Rectangle, x, y float64) bool {
	p := image.Pt(int(x), int(y))
	for _, r := range rects {
		if p.In(r) {
			return true
		}
	}
	return false
}

func modeLabel(s grid.TileState) string {
	return fmt.Sprintf("Mode: %v v", s)
}

func debugLabel(on bool) string {
	if on {
		return "Debug: On"
	}
	return "Debug: Off"
}
