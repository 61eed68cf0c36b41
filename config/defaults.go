package config

import (
	_ "embed"
)

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

// Default returns the built-in configuration.
func Default() EditorConfig {
	return EditorConfig{
		Window: WindowConfig{
			Width:     680,
			Height:    420,
			Title:     "Tester",
			TPS:       60,
			Resizable: true,
		},
		World: WorldConfig{
			Size:     1000,
			TileSize: 32,
		},
		Camera: CameraConfig{
			MinZoom:  0.125,
			MaxZoom:  64,
			ZoomStep: 0.25,
		},
		Input: InputConfig{
			Interaction: InteractionPaint,
			DragPaint:   true,
		},
		Assets: AssetsConfig{
			Strategy:   StrategyAtlas,
			SpriteSize: 32,
		},
		UI: UIConfig{
			Selector: SelectorToggle,
		},
	}
}
