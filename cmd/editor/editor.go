package main

import (
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/railgrid/assets"
	"github.com/milk9111/railgrid/config"
	"github.com/milk9111/railgrid/grid"
	"github.com/milk9111/railgrid/obj"
	"github.com/milk9111/railgrid/render"
	"github.com/milk9111/railgrid/ui"
	"golang.design/x/clipboard"
)

// Editor is the ebiten game: one input snapshot per frame drives the
// controls, then the router, then drawing.
type Editor struct {
	logger *log.Logger

	grid     *grid.Grid
	camera   *obj.Camera
	input    *obj.Input
	router   *obj.Router
	controls *ui.Controls
	renderer *render.Renderer
	tileSize float64

	resources  fs.FS
	strategy   assets.Strategy
	spriteSize int
	watcher    *assets.Watcher

	debug     bool
	clipboard bool
	last      obj.Result
}

func NewEditor(cfg config.EditorConfig, logger *log.Logger) (*Editor, error) {
	e := &Editor{
		logger:   logger,
		grid:     grid.New(cfg.World.Size),
		input:    obj.NewInput(),
		tileSize: float64(cfg.TileSize()),
		debug:    cfg.UI.Debug,
	}

	e.camera = obj.NewCamera(cfg.Window.Width, cfg.Window.Height)
	e.camera.SetZoomLimits(cfg.Camera.MinZoom, cfg.Camera.MaxZoom, cfg.Camera.ZoomStep)
	e.camera.SetAnchorZoom(cfg.Camera.AnchorZoom)
	extent := e.tileSize * float64(e.grid.Size())
	e.camera.SetWorldBounds(extent, extent)

	if err := e.loadSprites(cfg.Assets); err != nil {
		return nil, err
	}

	controls, err := ui.New(ui.Options{
		Selector: cfg.UI.Selector,
		Mode:     grid.Rail,
		Debug:    cfg.UI.Debug,
		OnMode:   e.setMode,
		OnDebug:  func(on bool) { e.debug = on },
	})
	if err != nil {
		return nil, err
	}
	e.controls = controls

	e.router = obj.NewRouter(e.camera, e.grid, e.tileSize, controls)
	e.router.Logger = logger
	e.router.DragPaint = cfg.Input.DragPaint
	if cfg.Input.Interaction == config.InteractionCycle {
		e.router.Interaction = obj.InteractionCycle
	}

	if cfg.Assets.Watch {
		w, err := assets.NewWatcher(cfg.Assets.Dir)
		if err != nil {
			logger.Warn("sprite hot reload disabled", "dir", cfg.Assets.Dir, "error", err)
		} else {
			e.watcher = w
			logger.Info("watching sprites", "dir", cfg.Assets.Dir)
		}
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", "error", err)
	} else {
		e.clipboard = true
	}

	return e, nil
}

func (e *Editor) loadSprites(cfg config.AssetsConfig) error {
	strategy, err := assets.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	resources, err := assets.Resources(cfg.Dir)
	if err != nil {
		return err
	}
	size := cfg.SpriteSize
	if strategy == assets.StrategyGlyph {
		size = int(e.tileSize)
	}
	sprites, err := assets.Load(resources, strategy, size)
	if err != nil {
		return err
	}

	e.resources = resources
	e.strategy = strategy
	e.spriteSize = size
	e.renderer = render.NewRenderer(sprites)
	source := cfg.Dir
	if source == "" {
		source = "embedded"
	}
	e.logger.Info("sprites loaded", "strategy", strategy, "source", source, "size", size)
	return nil
}

// reloadSprites applies pending watcher events on the game goroutine. A
// failed reload keeps the current sprites.
func (e *Editor) reloadSprites() {
	if e.watcher == nil {
		return
	}
	select {
	case err := <-e.watcher.Errors:
		e.logger.Warn("sprite watcher error", "error", err)
	default:
	}
	changed := e.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	sprites, err := assets.Load(e.resources, e.strategy, e.spriteSize)
	if err != nil {
		e.logger.Warn("sprite reload failed", "files", changed, "error", err)
		return
	}
	e.renderer.Sprites = sprites
	e.logger.Info("sprites reloaded", "files", changed)
}

func (e *Editor) setMode(s grid.TileState) {
	e.router.SetMode(s)
	e.logger.Debug("mode selected", "mode", s)
}

func (e *Editor) Update() error {
	e.reloadSprites()
	e.controls.Update()

	s := e.input.Poll()
	if s.Quit {
		return ebiten.Termination
	}
	if s.ModeKey >= 0 {
		mode := grid.TileState(s.ModeKey)
		e.setMode(mode)
		e.controls.SetMode(mode)
	}
	if s.ToggleDebug {
		e.debug = !e.debug
		e.controls.SetDebug(e.debug)
	}

	e.last = e.router.Update(s)
	e.controls.AfterInput(s.PaintPressed, s.CursorX, s.CursorY)

	if s.Copy && e.debug {
		e.copyDebug()
	}
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.renderer.Draw(screen, e.camera, e.grid, e.tileSize, e.router.Hover, e.router.HoverOK)
	e.controls.Draw(screen)
	if e.debug {
		info := e.debugInfo()
		ebitenutil.DebugPrintAt(screen, info.String(), 8, screen.Bounds().Dy()-info.Height()-8)
	}
}

// Layout uses the window size as the screen size so resizing shows more of
// the grid instead of stretching it.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.camera.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (e *Editor) Close() {
	if e.watcher == nil {
		return
	}
	if err := e.watcher.Close(); err != nil {
		e.logger.Warn("close sprite watcher", "error", err)
	}
}

func (e *Editor) copyDebug() {
	if !e.clipboard {
		e.logger.Warn("clipboard unavailable, debug overlay not copied")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(e.debugInfo().String()))
	e.logger.Info("debug overlay copied to clipboard")
}
