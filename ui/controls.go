package ui

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/railgrid/grid"
)

const (
	SelectorToggle   = "toggle"
	SelectorDropdown = "dropdown"
)

// Options configures the on-screen controls.
type Options struct {
	// Selector is SelectorToggle or SelectorDropdown.
	Selector string
	Mode     grid.TileState
	Debug    bool
	// OnMode and OnDebug are called when the user changes a control.
	OnMode  func(grid.TileState)
	OnDebug func(bool)
}

// Controls is the mode selector and the debug toggle. It implements the
// router's Occluder so clicks on a control never reach the grid.
type Controls struct {
	UI *ebitenui.UI

	bar       *widget.Container
	listPanel *widget.Container

	// toggle selector
	group   *widget.RadioGroup
	buttons []*widget.Button

	// dropdown selector
	dropBtn  *widget.Button
	list     *widget.List
	entries  []any
	dropdown dropdownState

	debugBtn *widget.Button

	mode     grid.TileState
	debug    bool
	suppress bool
	onMode   func(grid.TileState)
	onDebug  func(bool)
}

func New(opts Options) (*Controls, error) {
	fontFace, err := newFontFace(14)
	if err != nil {
		return nil, err
	}

	c := &Controls{
		mode:    opts.Mode,
		debug:   opts.Debug,
		onMode:  opts.OnMode,
		onDebug: opts.OnDebug,
	}
	if !c.mode.Valid() {
		c.mode = grid.Rail
	}

	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newTheme(&fontFace)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}

	c.bar = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	if opts.Selector == SelectorDropdown {
		c.buildDropdown(ui.PrimaryTheme, &fontFace)
	} else {
		c.buildToggle(ui.PrimaryTheme, &fontFace)
	}

	c.debugBtn = widget.NewButton(
		widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text(debugLabel(c.debug), &fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 40),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			c.SetDebug(!c.debug)
			if c.onDebug != nil {
				c.onDebug(c.debug)
			}
		}),
	)
	c.bar.AddChild(c.debugBtn)

	panel.AddChild(c.bar)
	if c.listPanel != nil {
		panel.AddChild(c.listPanel)
	}
	root.AddChild(panel)
	ui.Container = root
	c.UI = ui
	return c, nil
}

// Update runs the widget frame. Call it before routing the frame's input.
func (c *Controls) Update() {
	c.dropdown.beginFrame()
	c.UI.Update()
}

// AfterInput closes an open dropdown when the frame's primary press landed
// outside of it.
func (c *Controls) AfterInput(pressed bool, x, y float64) {
	if !c.dropdown.open || !pressed {
		return
	}
	if hitTest(c.rects(), x, y) {
		return
	}
	c.closeDropdown()
}

func (c *Controls) Draw(screen *ebiten.Image) {
	c.UI.Draw(screen)
}

// Occludes reports whether the point lies over a visible control, or the
// toolkit reports the pointer over any widget.
func (c *Controls) Occludes(x, y float64) bool {
	return hitTest(c.rects(), x, y) || ebuiinput.UIHovered
}

// Modal reports whether the dropdown is capturing input this frame.
func (c *Controls) Modal() bool {
	return c.dropdown.modal()
}

func (c *Controls) rects() []image.Rectangle {
	rects := []image.Rectangle{c.bar.GetWidget().Rect}
	if c.listPanel != nil && c.dropdown.open {
		rects = append(rects, c.listPanel.GetWidget().Rect)
	}
	return rects
}

// Mode returns the selected tile state.
func (c *Controls) Mode() grid.TileState {
	return c.mode
}

// SetMode selects a tile state without notifying OnMode.
func (c *Controls) SetMode(s grid.TileState) {
	if !s.Valid() {
		return
	}
	c.mode = s
	c.suppress = true
	defer func() { c.suppress = false }()

	if c.group != nil && int(s) < len(c.buttons) {
		c.group.SetActive(c.buttons[s])
	}
	if c.dropBtn != nil {
		if text := c.dropBtn.Text(); text != nil {
			text.Label = modeLabel(s)
		}
	}
	if c.list != nil && int(s) < len(c.entries) {
		c.list.SetSelectedEntry(c.entries[s])
	}
}

// Debug reports whether the debug overlay is on.
func (c *Controls) Debug() bool {
	return c.debug
}

// SetDebug updates the toggle without notifying OnDebug.
func (c *Controls) SetDebug(on bool) {
	c.debug = on
	if c.debugBtn == nil {
		return
	}
	if text := c.debugBtn.Text(); text != nil {
		text.Label = debugLabel(on)
	}
}

func (c *Controls) selectMode(s grid.TileState) {
	if c.suppress || s == c.mode {
		return
	}
	c.SetMode(s)
	if c.onMode != nil {
		c.onMode(s)
	}
}
