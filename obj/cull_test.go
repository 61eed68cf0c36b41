package obj

import (
	"image"
	"testing"
)

func TestVisibleCells(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		zoom   float64
		tx, ty float64
		want   image.Rectangle
	}{
		{"aligned_ten_by_ten", 320, 320, 1, 320, 320, image.Rect(10, 10, 20, 20)},
		{"origin_default_window", 680, 420, 1, 0, 0, image.Rect(0, 0, 22, 14)},
		{"partial_edge_cells_kept", 320, 320, 1, 330, 330, image.Rect(10, 10, 21, 21)},
		{"zoomed_in", 320, 320, 2, 320, 320, image.Rect(10, 10, 15, 15)},
		{"far_corner_clamped", 680, 420, 1, 1e9, 1e9, image.Rect(978, 986, 1000, 1000)},
		{"whole_world", 4000, 4000, DefaultMinZoom, 0, 0, image.Rect(0, 0, 1000, 1000)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := newTestCamera(c.w, c.h)
			cam.SetZoom(c.zoom)
			cam.TargetX, cam.TargetY = c.tx, c.ty
			cam.SetWorldBounds(testWorld, testWorld)
			got := VisibleCells(cam, testTile, testCells)
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestVisibleCellsDegenerateInput(t *testing.T) {
	if got := VisibleCells(nil, testTile, testCells); !got.Empty() {
		t.Fatalf("nil camera should give empty bounds, got %v", got)
	}
	if got := VisibleCells(NewCamera(10, 10), 0, testCells); !got.Empty() {
		t.Fatalf("zero tile size should give empty bounds, got %v", got)
	}
}

func TestCellAtClampsIntoGrid(t *testing.T) {
	cam := NewCamera(680, 420)
	cases := []struct {
		name   string
		sx, sy float64
		want   image.Point
	}{
		{"inside", 176, 176, image.Pt(5, 5)},
		{"left_of_world", -500, 40, image.Pt(0, 1)},
		{"beyond_far_edge", 1e9, 1e9, image.Pt(testCells-1, testCells-1)},
		{"exact_far_edge", testWorld, 0, image.Pt(testCells-1, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CellAt(cam, c.sx, c.sy, testTile, testCells); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}
