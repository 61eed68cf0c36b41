package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/railgrid/grid"
)

// buildToggle adds one toggle button per tile state, grouped so exactly one
// is active.
func (c *Controls) buildToggle(theme *widget.Theme, fontFace *text.Face) {
	for _, s := range grid.States {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(s.String(), fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		c.buttons = append(c.buttons, btn)
		c.bar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(c.buttons))
	for _, b := range c.buttons {
		elements = append(elements, b)
	}

	c.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range c.buttons {
				if args.Active == b {
					c.selectMode(grid.TileState(idx))
					return
				}
			}
		}),
	)
	c.suppress = true
	c.group.SetActive(c.buttons[c.mode])
	c.suppress = false
}

// buildDropdown adds a button that opens a list of tile states below the bar.
func (c *Controls) buildDropdown(theme *widget.Theme, fontFace *text.Face) {
	c.dropBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(modeLabel(c.mode), fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 40),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			c.dropdown.toggle()
			c.setListVisible(c.dropdown.open)
		}),
	)
	c.bar.AddChild(c.dropBtn)

	c.entries = make([]any, len(grid.States))
	for i, s := range grid.States {
		c.entries[i] = s
	}
	c.list = widget.NewList(
		widget.ListOpts.Entries(c.entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if s, ok := e.(grid.TileState); ok {
				return s.String()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			s, ok := args.Entry.(grid.TileState)
			if !ok || c.suppress {
				return
			}
			c.selectMode(s)
			c.closeDropdown()
		}),
	)

	c.listPanel = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 120),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{235, 235, 235, 255})),
	)
	c.list.GetWidget().LayoutData = widget.AnchorLayoutData{
		StretchHorizontal: true,
		StretchVertical:   true,
	}
	c.listPanel.AddChild(c.list)
	c.listPanel.GetWidget().Visibility = widget.Visibility_Hide

	c.suppress = true
	c.list.SetSelectedEntry(c.entries[c.mode])
	c.suppress = false
}

func (c *Controls) closeDropdown() {
	c.dropdown.close()
	c.setListVisible(false)
}

func (c *Controls) setListVisible(visible bool) {
	if c.listPanel == nil {
		return
	}
	if visible {
		c.listPanel.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.listPanel.GetWidget().Visibility = widget.Visibility_Hide
	}
	c.listPanel.RequestRelayout()
}
