package render

import (
	"image"
	"testing"

	"github.com/milk9111/railgrid/grid"
	"github.com/milk9111/railgrid/obj"
)

const (
	testTile  = 32.0
	testCells = 1000
)

func newCamera(w, h int) *obj.Camera {
	cam := obj.NewCamera(w, h)
	cam.SetWorldBounds(testTile*testCells, testTile*testCells)
	return cam
}

func TestPlanCullsToVisibleRectangle(t *testing.T) {
	g := grid.New(testCells)
	cam := newCamera(320, 320)
	cam.TargetX, cam.TargetY = 10*testTile, 10*testTile

	for y := 0; y < testCells; y += 5 {
		for x := 0; x < testCells; x += 5 {
			if err := g.Set(x, y, grid.Building); err != nil {
				t.Fatal(err)
			}
		}
	}

	p := NewPlan(cam, g, testTile)
	if want := image.Rect(10, 10, 20, 20); p.Bounds != want {
		t.Fatalf("expected bounds %v, got %v", want, p.Bounds)
	}
	if p.Cells() != 100 {
		t.Fatalf("expected 100 cells, got %d", p.Cells())
	}
	if len(p.Columns) != 10 || len(p.Rows) != 10 {
		t.Fatalf("expected 10 columns and 10 rows, got %d and %d", len(p.Columns), len(p.Rows))
	}
	if len(p.Sprites) != 4 {
		t.Fatalf("expected 4 sprites in view, got %d", len(p.Sprites))
	}
	for _, s := range p.Sprites {
		if !s.Cell.In(p.Bounds) {
			t.Fatalf("sprite %v outside bounds %v", s.Cell, p.Bounds)
		}
	}
}

func TestPlanLineGeometry(t *testing.T) {
	g := grid.New(testCells)
	cam := newCamera(320, 320)
	cam.TargetX, cam.TargetY = 10*testTile, 10*testTile

	p := NewPlan(cam, g, testTile)
	first := p.Columns[0]
	if first != (Line{X0: 320, Y0: 320, X1: 320, Y1: 640}) {
		t.Fatalf("unexpected first column %+v", first)
	}
	last := p.Rows[len(p.Rows)-1]
	if last != (Line{X0: 320, Y0: 608, X1: 640, Y1: 608}) {
		t.Fatalf("unexpected last row %+v", last)
	}
}

func TestPlanSpritePositions(t *testing.T) {
	g := grid.New(testCells)
	if err := g.Set(5, 5, grid.Rail); err != nil {
		t.Fatal(err)
	}
	if err := g.Set(6, 5, grid.Station); err != nil {
		t.Fatal(err)
	}
	cam := newCamera(680, 420)

	p := NewPlan(cam, g, testTile)
	if len(p.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(p.Sprites))
	}
	want := []SpriteCmd{{image.Pt(5, 5), grid.Rail}, {image.Pt(6, 5), grid.Station}}
	for i, w := range want {
		if p.Sprites[i] != w {
			t.Fatalf("sprite %d: expected %+v, got %+v", i, w, p.Sprites[i])
		}
	}
	if x, y := p.Origin(image.Pt(5, 5)); x != 160 || y != 160 {
		t.Fatalf("unexpected origin (%g, %g)", x, y)
	}
}

func TestPlanBuildReusesBuffers(t *testing.T) {
	g := grid.New(testCells)
	cam := newCamera(320, 320)
	p := NewPlan(cam, g, testTile)
	cols := cap(p.Columns)

	p.Build(cam, g, testTile)
	if len(p.Columns) != 10 || cap(p.Columns) != cols {
		t.Fatalf("rebuild changed buffers: len=%d cap=%d (was %d)", len(p.Columns), cap(p.Columns), cols)
	}
}

func TestPlanEmptyWhenCameraOutsideGrid(t *testing.T) {
	g := grid.New(10)
	cam := obj.NewCamera(320, 320)
	cam.TargetX, cam.TargetY = -1000, -1000

	p := NewPlan(cam, g, testTile)
	if !p.Bounds.Empty() || len(p.Columns) != 0 || len(p.Sprites) != 0 {
		t.Fatalf("expected empty plan, got %+v", p)
	}
}
