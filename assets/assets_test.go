package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/railgrid/grid"
)

func TestAtlasRegion(t *testing.T) {
	cases := []struct {
		name          string
		idx, cols, sz int
		want          image.Rectangle
	}{
		{"row_rail", 0, 3, 32, image.Rect(0, 0, 32, 32)},
		{"row_building", 1, 3, 32, image.Rect(32, 0, 64, 32)},
		{"row_station", 2, 3, 32, image.Rect(64, 0, 96, 32)},
		{"square_station", 2, 2, 32, image.Rect(0, 32, 32, 64)},
		{"zero_cols_is_column", 1, 0, 16, image.Rect(0, 16, 16, 32)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AtlasRegion(c.idx, c.cols, c.sz); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestDecodeEmbeddedStrategies(t *testing.T) {
	for _, s := range []Strategy{StrategyAtlas, StrategyFiles, StrategyGlyph} {
		t.Run(string(s), func(t *testing.T) {
			imgs, err := Decode(Embedded(), s, 32)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if imgs[grid.Empty] != nil {
				t.Fatalf("empty tile should have no sprite")
			}
			for _, state := range grid.States[1:] {
				img := imgs[state]
				if img == nil {
					t.Fatalf("missing sprite for %v", state)
				}
				if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
					t.Fatalf("%v sprite is %v, want 32x32", state, b)
				}
			}
		})
	}
}

func TestAtlasSpritesComeFromDistinctRegions(t *testing.T) {
	imgs, err := Decode(Embedded(), StrategyAtlas, 32)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i, state := range grid.States[1:] {
		if got := imgs[state].Bounds().Min.X; got != i*32 {
			t.Fatalf("%v sprite starts at x=%d, want %d", state, got, i*32)
		}
	}
}

func TestDecodeFailsFastOnMissingFiles(t *testing.T) {
	empty := fstest.MapFS{}
	for _, s := range []Strategy{StrategyAtlas, StrategyFiles} {
		if _, err := Decode(empty, s, 32); err == nil {
			t.Fatalf("%s: expected error for missing resources", s)
		}
	}
}

func TestDecodeRejectsSmallAtlas(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, AtlasFile), 64, 32)
	_, err := Decode(os.DirFS(dir), StrategyAtlas, 32)
	if !errors.Is(err, ErrMissingSprite) {
		t.Fatalf("expected ErrMissingSprite, got %v", err)
	}
}

func TestDecodeRejectsCorruptImage(t *testing.T) {
	fsys := fstest.MapFS{AtlasFile: &fstest.MapFile{Data: []byte("not a png")}}
	if _, err := Decode(fsys, StrategyAtlas, 32); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{"": StrategyAtlas, "Atlas": StrategyAtlas, " files ": StrategyFiles, "glyph": StrategyGlyph}
	for in, want := range cases {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Fatalf("ParseStrategy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseStrategy("sheet"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestResources(t *testing.T) {
	if _, err := Resources(""); err != nil {
		t.Fatalf("embedded resources: %v", err)
	}
	if _, err := Resources(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestCleanResourcePath(t *testing.T) {
	cases := map[string]string{
		"resources/atlas.png":           "atlas.png",
		"track.png":                     "track.png",
		"/opt/game/resources/sub/a.png": "sub/a.png",
		"/tmp/station.png":              "station.png",
	}
	for in, want := range cases {
		if got := cleanResourcePath(in); got != want {
			t.Fatalf("cleanResourcePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsImageChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, TrackFile)
	writePNG(t, target, 32, 32)

	deadline := time.After(3 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) != ".png" {
				t.Fatalf("unexpected event for %s", name)
			}
			if name == target {
				return
			}
		case <-deadline:
			t.Fatalf("no event for %s", target)
		}
	}
}

func TestWatcherDrainDeduplicates(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4)}
	w.Events <- "a.png"
	w.Events <- "a.png"
	w.Events <- "b.png"
	got := w.Drain()
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.png" {
		t.Fatalf("unexpected drain result %v", got)
	}
	if again := w.Drain(); len(again) != 0 {
		t.Fatalf("second drain should be empty, got %v", again)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
