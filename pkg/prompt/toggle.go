package prompt

import (
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
)

// Toggle row geometry shared by checkboxes and switches.
const (
	toggleRowHeight = 32
	toggleTextSize  = 20
	toggleGap       = 5

	checkboxSize      = 24
	checkboxLargeSize = 32
	switchWidth       = 64
	switchHeight      = 32
)

// toggle is the on/off state behind checkboxes and switches.
type toggle struct {
	checked   bool
	onCheck   func()
	onUncheck func()
}

// Check sets the state to on without running callbacks.
func (t *toggle) Check() { t.checked = true }

// Uncheck sets the state to off without running callbacks.
func (t *toggle) Uncheck() { t.checked = false }

// Checked reports the state.
func (t *toggle) Checked() bool { return t.checked }

// Click flips the state and runs exactly one of the check or uncheck
// callbacks.
func (t *toggle) Click() {
	if !t.checked {
		t.Check()
		if t.onCheck != nil {
			t.onCheck()
		}
		return
	}
	t.Uncheck()
	if t.onUncheck != nil {
		t.onUncheck()
	}
}

// toggleRow places a checkbox or switch row. Rows span the prompt width, so
// X shifts the row directly.
func toggleRow(b box, x, y float64) render.Edges {
	return render.Edges{
		Bottom: render.Px(b.height/2 - toggleRowHeight/2 + y),
		Right:  render.Px(-x),
	}
}

func toggleCaption(text string, color graphics.Color, res *resources.Table) render.Node {
	return render.Node{
		Kind: render.KindLabel,
		Label: &render.Label{
			Value:     text,
			Font:      res.Fonts.Default,
			FontSize:  toggleTextSize,
			Color:     color,
			TextAlign: render.AlignMiddleLeft,
		},
		Transform: render.Transform{
			MaxWidth: render.Pct(100),
			Height:   render.Pct(100),
		},
	}
}

func toggleImage(w, h float64, texture string) render.Node {
	return render.Node{
		Kind: render.KindEntity,
		Transform: render.Transform{
			Width:  render.Px(w),
			Height: render.Px(h),
			Margin: render.Edges{Right: render.Px(toggleGap)},
		},
		Background: &render.Background{
			Texture:     texture,
			TextureMode: render.TextureStretch,
		},
	}
}

func toggleRoot(key string, display render.Display, position render.Edges, children ...render.Node) render.Node {
	return render.Entity(key, render.Transform{
		Display:        display,
		Width:          render.Pct(100),
		Height:         render.Px(toggleRowHeight),
		FlexDirection:  render.FlexRow,
		AlignItems:     render.AlignCenter,
		JustifyContent: render.JustifyCenter,
		PositionType:   render.PositionAbsolute,
		Position:       position,
	}, children...)
}

// CheckboxConfig configures a Checkbox.
type CheckboxConfig struct {
	StartHidden bool
	Text        string
	// X shifts the row sideways; Y moves it up from the prompt centre.
	X, Y      float64
	OnCheck   func()
	OnUncheck func()
	// Large uses the 32px box instead of the 24px one.
	Large        bool
	StartChecked bool
}

// Checkbox is a box with a caption. Clicking the box toggles it.
type Checkbox struct {
	core.InContainer
	toggle

	// Image and Caption are the checkbox parts as rendered. The image
	// region follows the checked state.
	Image   render.Node
	Caption render.Node

	position   render.Edges
	brightness theme.Brightness
	large      bool
	res        *resources.Table
}

func newCheckbox(cfg CheckboxConfig, promptVisible bool, b box, brightness theme.Brightness, textColor graphics.Color, res *resources.Table) *Checkbox {
	size := float64(checkboxSize)
	if cfg.Large {
		size = checkboxLargeSize
	}
	return &Checkbox{
		InContainer: core.NewInContainer(cfg.StartHidden, promptVisible),
		toggle:      toggle{checked: cfg.StartChecked, onCheck: cfg.OnCheck, onUncheck: cfg.OnUncheck},
		Image:       toggleImage(size, size, res.Texture(false)),
		Caption:     toggleCaption(cfg.Text, textColor, res),
		position:    toggleRow(b, cfg.X, cfg.Y),
		brightness:  brightness,
		large:       cfg.Large,
		res:         res,
	}
}

// Render implements core.Widget.
func (c *Checkbox) Render(key string) render.Node {
	img := c.Image
	bg := imageBackground(img, c.res)
	bg.UVs = c.res.UVs(resources.GroupCheckboxes, theme.CheckboxRegion(c.brightness, c.large, c.checked))
	img.Background = &bg
	img.OnMouseDown = c.Click
	return toggleRoot(key, c.Display(), c.position, img, c.Caption)
}

// SwitchConfig configures a Switch.
type SwitchConfig struct {
	StartHidden bool
	Text        string
	// X shifts the row sideways; Y moves it up from the prompt centre.
	X, Y         float64
	OnCheck      func()
	OnUncheck    func()
	StartChecked bool
	// Style defaults to theme.SwitchRoundGreen.
	Style theme.SwitchStyle
	// Color overrides the caption colour, which otherwise follows the
	// prompt theme.
	Color graphics.Color
}

// Switch is a sliding on/off control with a caption. Clicking anywhere on
// the row toggles it.
type Switch struct {
	core.InContainer
	toggle

	// Image and Caption are the switch parts as rendered. The image region
	// follows the checked state.
	Image   render.Node
	Caption render.Node

	position render.Edges
	style    theme.SwitchStyle
	res      *resources.Table
}

func newSwitch(cfg SwitchConfig, promptVisible bool, b box, textColor graphics.Color, res *resources.Table) *Switch {
	style := cfg.Style
	if style == "" {
		style = theme.SwitchRoundGreen
	}
	if !cfg.Color.IsZero() {
		textColor = cfg.Color
	}
	return &Switch{
		InContainer: core.NewInContainer(cfg.StartHidden, promptVisible),
		toggle:      toggle{checked: cfg.StartChecked, onCheck: cfg.OnCheck, onUncheck: cfg.OnUncheck},
		Image:       toggleImage(switchWidth, switchHeight, res.Texture(false)),
		Caption:     toggleCaption(cfg.Text, textColor, res),
		position:    toggleRow(b, cfg.X, cfg.Y),
		style:       style,
		res:         res,
	}
}

// Style returns the switch style.
func (s *Switch) Style() theme.SwitchStyle { return s.style }

// Render implements core.Widget.
func (s *Switch) Render(key string) render.Node {
	img := s.Image
	bg := imageBackground(img, s.res)
	bg.UVs = s.res.UVs(resources.GroupSwitches, s.style.Region(s.checked))
	img.Background = &bg
	n := toggleRoot(key, s.Display(), s.position, img, s.Caption)
	n.OnMouseDown = s.Click
	return n
}

// imageBackground copies the image's background so render never mutates
// the exported node. A caller may have replaced the node wholesale, in
// which case a light-atlas stretch background is used.
func imageBackground(img render.Node, res *resources.Table) render.Background {
	if img.Background == nil {
		return render.Background{Texture: res.Texture(false), TextureMode: render.TextureStretch}
	}
	return *img.Background
}
