package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(defaultEditorYAML)
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 680 || cfg.Window.Height != 420 || cfg.Window.Title != "Tester" || cfg.Window.TPS != 60 {
		t.Fatalf("unexpected window defaults %+v", cfg.Window)
	}
	if cfg.World.Size != 1000 || cfg.World.TileSize != 32 {
		t.Fatalf("unexpected world defaults %+v", cfg.World)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", fileName), "window:\n  title: Local\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Local" {
		t.Fatalf("expected local config, got title %q", cfg.Window.Title)
	}

	writeFile(t, filepath.Join(home, ".railgrid", fileName), "window:\n  title: User\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "User" {
		t.Fatalf("expected user config, got title %q", cfg.Window.Title)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "window:\n  title: Custom\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Custom" {
		t.Fatalf("expected custom config, got title %q", cfg.Window.Title)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "camera:\n  anchor_zoom: true\nassets:\n  strategy: Glyph\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Camera.AnchorZoom {
		t.Fatalf("anchor_zoom not applied")
	}
	if cfg.Camera.MaxZoom != 64 || cfg.World.Size != 1000 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Assets.Strategy != StrategyGlyph {
		t.Fatalf("strategy not normalized: %q", cfg.Assets.Strategy)
	}
	if cfg.TileSize() != GlyphTileSize {
		t.Fatalf("glyph tile size = %d, want %d", cfg.TileSize(), GlyphTileSize)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	writeFile(t, path, "window: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EditorConfig)
	}{
		{"zero_width", func(c *EditorConfig) { c.Window.Width = 0 }},
		{"zero_tps", func(c *EditorConfig) { c.Window.TPS = 0 }},
		{"negative_world", func(c *EditorConfig) { c.World.Size = -1 }},
		{"zero_tile", func(c *EditorConfig) { c.World.TileSize = 0 }},
		{"inverted_zoom", func(c *EditorConfig) { c.Camera.MinZoom, c.Camera.MaxZoom = 4, 2 }},
		{"zero_min_zoom", func(c *EditorConfig) { c.Camera.MinZoom = 0 }},
		{"zero_step", func(c *EditorConfig) { c.Camera.ZoomStep = 0 }},
		{"unknown_interaction", func(c *EditorConfig) { c.Input.Interaction = "erase" }},
		{"unknown_strategy", func(c *EditorConfig) { c.Assets.Strategy = "sheet" }},
		{"zero_sprite_size", func(c *EditorConfig) { c.Assets.SpriteSize = 0 }},
		{"watch_without_dir", func(c *EditorConfig) { c.Assets.Watch = true }},
		{"unknown_selector", func(c *EditorConfig) { c.UI.Selector = "menu" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateNormalizesEnums(t *testing.T) {
	cfg := Default()
	cfg.Input.Interaction = " Cycle "
	cfg.UI.Selector = "DROPDOWN"
	cfg.Assets.Strategy = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Input.Interaction != InteractionCycle || cfg.UI.Selector != SelectorDropdown || cfg.Assets.Strategy != StrategyAtlas {
		t.Fatalf("enums not normalized: %+v", cfg)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
