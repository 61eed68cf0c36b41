// railgrid-editor paints rail, building and station tiles on a large grid.
//
// Usage:
//
//	railgrid-editor [flags]
//
// Controls:
//
//	Left mouse    - Paint the selected mode (or cycle the cell)
//	Right mouse   - Drag to pan
//	Wheel         - Zoom
//	1-4           - Select Empty, Rail, Building, Station
//	F3            - Toggle the debug overlay
//	Ctrl+C        - Copy the debug overlay to the clipboard
//	Esc           - Quit
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/railgrid/config"
	"github.com/milk9111/railgrid/script"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagWidth     int
	flagHeight    int
	flagTitle     string
	flagTPS       int
	flagResizable bool
	flagStrategy  string
	flagAssetsDir string
	flagScript    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "railgrid-editor",
	Short: "Paint rail, building and station tiles on a 1000x1000 grid",
	Long: `railgrid-editor opens a window with a pannable, zoomable tile grid.

Configuration is read from --config, ~/.railgrid/editor.yaml,
./configs/editor.yaml or the built-in defaults, in that order.
Flags override the loaded configuration.

Examples:
  railgrid-editor
  railgrid-editor --assets glyph
  railgrid-editor --assets-dir ./resources --width 1280 --height 720
  railgrid-editor --script seeds/loop.tengo --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runEditor,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "Path to editor config YAML")
	flags.IntVar(&flagWidth, "width", 680, "Window width")
	flags.IntVar(&flagHeight, "height", 420, "Window height")
	flags.StringVar(&flagTitle, "title", "Tester", "Window title")
	flags.IntVar(&flagTPS, "tps", 60, "Ticks per second")
	flags.BoolVar(&flagResizable, "resizable", true, "Allow resizing the window")
	flags.StringVar(&flagStrategy, "assets", "", "Sprite source: atlas, files, glyph")
	flags.StringVar(&flagAssetsDir, "assets-dir", "", "Directory with atlas.png or track/building/station.png")
	flags.StringVar(&flagScript, "script", "", "Tengo script that seeds the grid at startup")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runEditor(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "railgrid",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", flagLogLevel, "error", err)
	}
	logger.SetLevel(level)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	logger.Info("config loaded",
		"world", cfg.World.Size,
		"tile", cfg.TileSize(),
		"assets", cfg.Assets.Strategy,
		"selector", cfg.UI.Selector,
		"interaction", cfg.Input.Interaction,
	)

	editor, err := NewEditor(cfg, logger)
	if err != nil {
		logger.Fatal("failed to start editor", "error", err)
	}
	defer editor.Close()

	if flagScript != "" {
		res, err := script.RunFile(flagScript, editor.grid)
		if err != nil {
			logger.Fatal("seed script failed", "error", err)
		}
		logger.Info("grid seeded", "script", flagScript, "painted", res.Painted)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(editor); err != nil {
		logger.Error("editor stopped", "error", err)
		editor.Close()
		os.Exit(1)
	}
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.EditorConfig) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("title") {
		cfg.Window.Title = flagTitle
	}
	if flags.Changed("tps") {
		cfg.Window.TPS = flagTPS
	}
	if flags.Changed("resizable") {
		cfg.Window.Resizable = flagResizable
	}
	if flags.Changed("assets") {
		cfg.Assets.Strategy = flagStrategy
	}
	if flags.Changed("assets-dir") {
		cfg.Assets.Dir = flagAssetsDir
	}
}
